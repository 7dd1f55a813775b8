package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestNewDefaultGlobalConfig(t *testing.T) {
	cfg := NewDefaultGlobalConfig()

	assert.Equal(t, DefaultDiffMaxInputSizeMB, cfg.DiffConfig.MaxInputSizeMB)
	assert.Equal(t, DefaultDiffMaxDepth, cfg.DiffConfig.MaxDepth)
	assert.Equal(t, DefaultDiffIndent, cfg.DiffConfig.Indent)
	assert.Equal(t, DefaultLogLevel, cfg.LogConfig.LogLevel)
	assert.Equal(t, DefaultLogFormat, cfg.LogConfig.LogFormat)
	assert.Equal(t, DefaultOutputMode, cfg.OutputConfig.Mode)
	assert.True(t, cfg.OutputConfig.Pretty)
	assert.True(t, cfg.DiffConfig.SyncScroll)
}

func TestLoadGlobalConfig_YAML(t *testing.T) {
	path := writeConfigFile(t, "config.yaml", `
diff_config:
  ignore_key_order: true
  max_depth: 50
log_config:
  log_level: debug
output_config:
  mode: semantic
`)

	cfg, err := LoadGlobalConfig(path)
	require.NoError(t, err)

	assert.True(t, cfg.DiffConfig.IgnoreKeyOrder)
	assert.Equal(t, 50, cfg.DiffConfig.MaxDepth)
	assert.Equal(t, "debug", cfg.LogConfig.LogLevel)
	assert.Equal(t, "semantic", cfg.OutputConfig.Mode)
	// Untouched fields keep their defaults.
	assert.Equal(t, DefaultDiffMaxInputSizeMB, cfg.DiffConfig.MaxInputSizeMB)
}

func TestLoadGlobalConfig_JSON(t *testing.T) {
	path := writeConfigFile(t, "config.json", `{
  "diff_config": {"ignore_case": true, "indent": 4},
  "output_config": {"mode": "text"}
}`)

	cfg, err := LoadGlobalConfig(path)
	require.NoError(t, err)

	assert.True(t, cfg.DiffConfig.IgnoreCase)
	assert.Equal(t, 4, cfg.DiffConfig.Indent)
	assert.Equal(t, "text", cfg.OutputConfig.Mode)
}

func TestLoadGlobalConfig_InvalidValuesRejected(t *testing.T) {
	path := writeConfigFile(t, "config.yaml", `
diff_config:
  max_depth: -1
`)

	_, err := LoadGlobalConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "MaxDepth")
}

func TestLoadGlobalConfig_MalformedYAML(t *testing.T) {
	path := writeConfigFile(t, "config.yaml", "diff_config: [not a mapping")

	_, err := LoadGlobalConfig(path)
	assert.Error(t, err)
}

func TestValidateConfig_BadLogLevel(t *testing.T) {
	cfg := NewDefaultGlobalConfig()
	cfg.LogConfig.LogLevel = "verbose"

	err := ValidateConfig(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loglevel")
}

func TestValidateConfig_BadOutputMode(t *testing.T) {
	cfg := NewDefaultGlobalConfig()
	cfg.OutputConfig.Mode = "everything"

	assert.Error(t, ValidateConfig(cfg))
}

func TestValidateConfig_IndentCeiling(t *testing.T) {
	cfg := NewDefaultGlobalConfig()
	cfg.DiffConfig.Indent = 9

	assert.Error(t, ValidateConfig(cfg))
}

func TestGetConfigPath_PrefersFlag(t *testing.T) {
	path := writeConfigFile(t, "custom.yaml", "log_config: {}\n")

	assert.Equal(t, path, GetConfigPath(path))
}

func TestGetConfigPath_MissingFlagFileIgnored(t *testing.T) {
	t.Setenv("STRUCTDIFF_CONFIG_PATH", "")
	missing := filepath.Join(t.TempDir(), "nope.yaml")

	// The flag path does not exist, so resolution falls through to the
	// other locations, none of which hold a config here.
	assert.Equal(t, "", GetConfigPath(missing))
}
