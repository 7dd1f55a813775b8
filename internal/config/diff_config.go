package config

// DiffConfig defines the default comparison options and engine limits
type DiffConfig struct {
	IgnoreKeyOrder   bool `json:"ignore_key_order,omitempty" yaml:"ignore_key_order,omitempty"`
	IgnoreWhitespace bool `json:"ignore_whitespace,omitempty" yaml:"ignore_whitespace,omitempty"`
	IgnoreCase       bool `json:"ignore_case,omitempty" yaml:"ignore_case,omitempty"`
	IgnoreArrayOrder bool `json:"ignore_array_order,omitempty" yaml:"ignore_array_order,omitempty"`
	ShowWordDiff     bool `json:"show_word_diff,omitempty" yaml:"show_word_diff,omitempty"`
	SyncScroll       bool `json:"sync_scroll,omitempty" yaml:"sync_scroll,omitempty"`
	MaxInputSizeMB   int  `json:"max_input_size_mb,omitempty" yaml:"max_input_size_mb,omitempty"`
	MaxDepth         int  `json:"max_depth,omitempty" yaml:"max_depth,omitempty"`
	Indent           int  `json:"indent,omitempty" yaml:"indent,omitempty"`
}

// NewDefaultDiffConfig creates default diff configuration
func NewDefaultDiffConfig() DiffConfig {
	return DiffConfig{
		SyncScroll:     true,
		MaxInputSizeMB: DefaultDiffMaxInputSizeMB,
		MaxDepth:       DefaultDiffMaxDepth,
		Indent:         DefaultDiffIndent,
	}
}
