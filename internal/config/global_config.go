package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/aleister1102/structdiff/internal/common/errorwrapper"
	"gopkg.in/yaml.v3"
)

// GlobalConfig contains all configuration sections for the application
type GlobalConfig struct {
	DiffConfig   DiffConfig   `json:"diff_config,omitempty" yaml:"diff_config,omitempty"`
	LogConfig    LogConfig    `json:"log_config,omitempty" yaml:"log_config,omitempty"`
	OutputConfig OutputConfig `json:"output_config,omitempty" yaml:"output_config,omitempty"`
}

// NewDefaultGlobalConfig creates a new GlobalConfig with default values
func NewDefaultGlobalConfig() *GlobalConfig {
	return &GlobalConfig{
		DiffConfig:   NewDefaultDiffConfig(),
		LogConfig:    NewDefaultLogConfig(),
		OutputConfig: NewDefaultOutputConfig(),
	}
}

// LoadGlobalConfig loads the configuration from a file or default
// locations. YAML is preferred when the extension is .yaml or .yml;
// .json files decode as JSON. A missing path yields the defaults.
func LoadGlobalConfig(providedPath string) (*GlobalConfig, error) {
	cfg := NewDefaultGlobalConfig()

	path := GetConfigPath(providedPath)
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errorwrapper.WrapError(err, "failed to read config file")
	}

	switch filepath.Ext(path) {
	case ".json":
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, errorwrapper.WrapError(err, "failed to parse JSON config")
		}
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, errorwrapper.WrapError(err, "failed to parse YAML config")
		}
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
