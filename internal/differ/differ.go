package differ

import (
	"strings"

	"github.com/aleister1102/structdiff/internal/canonicalizer"
	"github.com/aleister1102/structdiff/internal/common/errorwrapper"
	"github.com/aleister1102/structdiff/internal/config"
	"github.com/aleister1102/structdiff/internal/document"
	"github.com/aleister1102/structdiff/internal/models"
	"github.com/rs/zerolog"
)

// Differ is the host-facing entry point: it takes two raw text buffers
// plus their declared formats, parses them, and drives the semantic
// engine and the textual adapter under one set of options.
type Differ struct {
	semantic      *SemanticDiffer
	text          *TextDiffer
	sizeValidator *InputSizeValidator
	config        DifferConfig
	logger        zerolog.Logger
}

// DifferBuilder provides a fluent interface for creating Differ
type DifferBuilder struct {
	config DifferConfig
	logger zerolog.Logger
}

// NewDifferBuilder creates a new builder
func NewDifferBuilder(logger zerolog.Logger) *DifferBuilder {
	return &DifferBuilder{
		config: DefaultDifferConfig(),
		logger: logger.With().Str("component", "Differ").Logger(),
	}
}

// WithConfig sets the differ configuration
func (b *DifferBuilder) WithConfig(cfg DifferConfig) *DifferBuilder {
	b.config = cfg
	return b
}

// WithDiffConfig applies engine limits from the file-level configuration
func (b *DifferBuilder) WithDiffConfig(cfg config.DiffConfig) *DifferBuilder {
	if cfg.MaxInputSizeMB > 0 {
		b.config.MaxInputSizeMB = cfg.MaxInputSizeMB
	}
	if cfg.MaxDepth > 0 {
		b.config.MaxDepth = cfg.MaxDepth
	}
	if cfg.Indent > 0 {
		b.config.Indent = cfg.Indent
	}
	return b
}

// Build creates a new Differ instance
func (b *DifferBuilder) Build() (*Differ, error) {
	semantic, err := NewSemanticDifferBuilder(b.logger).WithConfig(b.config).Build()
	if err != nil {
		return nil, errorwrapper.WrapError(err, "failed to build semantic differ")
	}

	text, err := NewTextDifferBuilder(b.logger).WithConfig(b.config).Build()
	if err != nil {
		return nil, errorwrapper.WrapError(err, "failed to build text differ")
	}

	return &Differ{
		semantic:      semantic,
		text:          text,
		sizeValidator: NewInputSizeValidator(b.config.MaxInputSizeMB),
		config:        b.config,
		logger:        b.logger,
	}, nil
}

// NewDiffer creates a new Differ with default configuration
func NewDiffer(logger zerolog.Logger) (*Differ, error) {
	return NewDifferBuilder(logger).Build()
}

// Compare runs both engines over one input pair.
func (d *Differ) Compare(leftText, rightText string, leftFormat, rightFormat document.Format, opts DiffOptions) (*models.CompareResult, error) {
	semantic, err := d.CompareSemantic(leftText, rightText, leftFormat, rightFormat, opts)
	if err != nil {
		return nil, err
	}

	text, err := d.CompareText(leftText, rightText, leftFormat, rightFormat, opts)
	if err != nil {
		return nil, err
	}

	return &models.CompareResult{Semantic: semantic, Text: text}, nil
}

// CompareSemantic parses both buffers and runs the semantic engine. A
// parse failure on either side does not propagate as an error: the
// result degrades to the parse-error sentinel so an interactive caller
// mid-edit still receives a well-formed result.
func (d *Differ) CompareSemantic(leftText, rightText string, leftFormat, rightFormat document.Format, opts DiffOptions) (*models.SemanticDiffResult, error) {
	if err := d.sizeValidator.ValidateSize(leftText, rightText); err != nil {
		return nil, errorwrapper.WrapError(err, "failed to validate diff inputs")
	}

	leftValue, leftErr := parseDocument(leftText, leftFormat)
	rightValue, rightErr := parseDocument(rightText, rightFormat)

	if leftErr != nil || rightErr != nil {
		message := parseFailureMessage(leftErr, rightErr)
		d.logger.Debug().Str("error", message).Msg("Degrading semantic diff to parse-error sentinel")
		return NewSemanticDiffResultBuilder().WithParseFailure(message).Build(), nil
	}

	return d.semantic.Diff(leftValue, rightValue, opts)
}

// CompareText canonicalizes both buffers and runs the textual adapter.
// A buffer that fails to parse falls back to its raw text with scalar
// normalization applied directly, degrading gracefully to a plain text
// diff of unparseable content.
func (d *Differ) CompareText(leftText, rightText string, leftFormat, rightFormat document.Format, opts DiffOptions) (*models.TextDiffResult, error) {
	if err := d.sizeValidator.ValidateSize(leftText, rightText); err != nil {
		return nil, errorwrapper.WrapError(err, "failed to validate diff inputs")
	}

	leftCanonical, err := d.canonicalText(leftText, leftFormat, opts)
	if err != nil {
		return nil, errorwrapper.WrapError(err, "failed to canonicalize left input")
	}
	rightCanonical, err := d.canonicalText(rightText, rightFormat, opts)
	if err != nil {
		return nil, errorwrapper.WrapError(err, "failed to canonicalize right input")
	}

	return d.text.Diff(leftCanonical, rightCanonical, opts)
}

// canonicalText produces the stable textual form of one buffer.
func (d *Differ) canonicalText(text string, format document.Format, opts DiffOptions) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", nil
	}

	canonOpts := opts.CanonicalizerOptions(d.config.Indent)

	value, err := document.Parse(text, format)
	if err != nil {
		d.logger.Debug().Err(err).Msg("Falling back to raw text canonicalization")
		return canonicalizer.CanonicalizeText(text, canonOpts), nil
	}

	if err := NewDepthValidator(d.config.MaxDepth).Validate(value, "document"); err != nil {
		return "", err
	}

	return canonicalizer.Canonicalize(value, canonOpts)
}

// parseDocument treats blank input as an absent document, which is a
// distinguished state and not a parsed null.
func parseDocument(text string, format document.Format) (*document.Value, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}
	return document.Parse(text, format)
}

// parseFailureMessage combines the per-side parse errors into one
// human-readable sentinel message.
func parseFailureMessage(leftErr, rightErr error) string {
	var parts []string
	if leftErr != nil {
		parts = append(parts, "left: "+leftErr.Error())
	}
	if rightErr != nil {
		parts = append(parts, "right: "+rightErr.Error())
	}
	return strings.Join(parts, "; ")
}
