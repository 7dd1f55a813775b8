package config

// OutputConfig defines configuration for result output
type OutputConfig struct {
	// Mode selects which engine results are emitted: semantic, text, or both.
	Mode   string `json:"mode,omitempty" yaml:"mode,omitempty" validate:"omitempty,outputmode"`
	Pretty bool   `json:"pretty,omitempty" yaml:"pretty,omitempty"`
}

// NewDefaultOutputConfig creates default output configuration
func NewDefaultOutputConfig() OutputConfig {
	return OutputConfig{
		Mode:   DefaultOutputMode,
		Pretty: DefaultOutputPretty,
	}
}
