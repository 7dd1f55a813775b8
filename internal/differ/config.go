package differ

import (
	"github.com/aleister1102/structdiff/internal/canonicalizer"
	"github.com/aleister1102/structdiff/internal/config"
)

// DiffOptions holds the independent equivalence toggles for one
// comparison. It is passed by value into every comparison call and never
// mutated mid-comparison; both engines consume the same options so their
// results stay consistent.
type DiffOptions struct {
	IgnoreKeyOrder   bool `json:"ignore_key_order" yaml:"ignore_key_order"`
	IgnoreWhitespace bool `json:"ignore_whitespace" yaml:"ignore_whitespace"`
	IgnoreCase       bool `json:"ignore_case" yaml:"ignore_case"`
	IgnoreArrayOrder bool `json:"ignore_array_order" yaml:"ignore_array_order"`
	ShowWordDiff     bool `json:"show_word_diff" yaml:"show_word_diff"`
	// SyncScroll is a pure presentation concern carried for the host;
	// the algorithms ignore it.
	SyncScroll bool `json:"sync_scroll" yaml:"sync_scroll"`
}

// DefaultDiffOptions returns default comparison options
func DefaultDiffOptions() DiffOptions {
	return DiffOptions{
		SyncScroll: true,
	}
}

// OptionsFromConfig maps the file-level diff configuration onto
// comparison options.
func OptionsFromConfig(cfg config.DiffConfig) DiffOptions {
	return DiffOptions{
		IgnoreKeyOrder:   cfg.IgnoreKeyOrder,
		IgnoreWhitespace: cfg.IgnoreWhitespace,
		IgnoreCase:       cfg.IgnoreCase,
		IgnoreArrayOrder: cfg.IgnoreArrayOrder,
		ShowWordDiff:     cfg.ShowWordDiff,
		SyncScroll:       cfg.SyncScroll,
	}
}

// CanonicalizerOptions maps the equivalence toggles onto the
// canonicalizer's normalization axes.
func (o DiffOptions) CanonicalizerOptions(indent int) canonicalizer.Options {
	return canonicalizer.Options{
		SortKeys:       o.IgnoreKeyOrder,
		SortArrays:     o.IgnoreArrayOrder,
		TrimWhitespace: o.IgnoreWhitespace,
		FoldCase:       o.IgnoreCase,
		Indent:         indent,
	}
}

// DifferConfig holds engine limits and tuning shared by both engines.
type DifferConfig struct {
	MaxInputSizeMB        int
	MaxDepth              int
	Indent                int
	EnableSemanticCleanup bool
}

// DefaultDifferConfig returns default configuration
func DefaultDifferConfig() DifferConfig {
	return DifferConfig{
		MaxInputSizeMB:        10,
		MaxDepth:              1000,
		Indent:                canonicalizer.DefaultIndent,
		EnableSemanticCleanup: true,
	}
}
