package differ

import (
	"strings"
	"time"

	"github.com/aleister1102/structdiff/internal/common/errorwrapper"
	"github.com/aleister1102/structdiff/internal/models"
	"github.com/rs/zerolog"
	"github.com/sergi/go-diff/diffmatchpatch"
)

// TextDiffer expands a line-based LCS diff over two canonicalized texts
// into side-by-side annotated line lists, optionally attaching
// word-level spans to modified line pairs.
type TextDiffer struct {
	processor *DiffProcessor
	config    DifferConfig
	logger    zerolog.Logger
}

// TextDifferBuilder provides a fluent interface for creating TextDiffer
type TextDifferBuilder struct {
	config DifferConfig
	logger zerolog.Logger
}

// NewTextDifferBuilder creates a new builder
func NewTextDifferBuilder(logger zerolog.Logger) *TextDifferBuilder {
	return &TextDifferBuilder{
		config: DefaultDifferConfig(),
		logger: logger.With().Str("component", "TextDiffer").Logger(),
	}
}

// WithConfig sets the differ configuration
func (b *TextDifferBuilder) WithConfig(cfg DifferConfig) *TextDifferBuilder {
	b.config = cfg
	return b
}

// Build creates a new TextDiffer instance
func (b *TextDifferBuilder) Build() (*TextDiffer, error) {
	if b.config.MaxInputSizeMB <= 0 {
		return nil, errorwrapper.NewValidationError("max_input_size_mb", b.config.MaxInputSizeMB, "max input size must be positive")
	}

	return &TextDiffer{
		processor: NewDiffProcessor(b.config),
		config:    b.config,
		logger:    b.logger,
	}, nil
}

// NewTextDiffer creates a new instance of TextDiffer
func NewTextDiffer(logger zerolog.Logger) (*TextDiffer, error) {
	return NewTextDifferBuilder(logger).Build()
}

// Diff compares two canonicalized texts line by line. Both sides empty
// yields an empty-but-well-formed result with all counts zero.
func (td *TextDiffer) Diff(leftText, rightText string, opts DiffOptions) (*models.TextDiffResult, error) {
	startTime := time.Now()

	builder := NewTextDiffResultBuilder()

	if leftText == "" && rightText == "" {
		return builder.WithProcessingTime(time.Since(startTime)).Build(), nil
	}

	hunks := td.processor.DiffLines(leftText, rightText)
	left, right, added, removed := td.expandHunks(hunks)

	if opts.ShowWordDiff {
		td.attachWordSpans(left, right)
	}

	result := builder.
		WithLines(left, right, added, removed).
		WithProcessingTime(time.Since(startTime)).
		Build()

	td.logger.Debug().
		Int("added", result.AddedCount).
		Int("removed", result.RemovedCount).
		Msg("Text diff completed")

	return result, nil
}

// expandHunks turns line-block hunks into per-line records. Left and
// right sides count line numbers independently; unchanged lines appear
// on both sides with the same text but their own numbers.
func (td *TextDiffer) expandHunks(hunks []diffmatchpatch.Diff) (left, right []models.DiffLine, added, removed int) {
	leftNumber, rightNumber := 0, 0

	for _, hunk := range hunks {
		for _, line := range hunkLines(hunk.Text) {
			switch hunk.Type {
			case diffmatchpatch.DiffDelete:
				leftNumber++
				removed++
				left = append(left, models.DiffLine{LineNumber: leftNumber, Text: line, Kind: models.LineRemoved})
			case diffmatchpatch.DiffInsert:
				rightNumber++
				added++
				right = append(right, models.DiffLine{LineNumber: rightNumber, Text: line, Kind: models.LineAdded})
			default:
				leftNumber++
				rightNumber++
				left = append(left, models.DiffLine{LineNumber: leftNumber, Text: line, Kind: models.LineUnchanged})
				right = append(right, models.DiffLine{LineNumber: rightNumber, Text: line, Kind: models.LineUnchanged})
			}
		}
	}

	return left, right, added, removed
}

// hunkLines splits a hunk's text block into individual lines.
func hunkLines(block string) []string {
	if block == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(block, "\n"), "\n")
}

// attachWordSpans pairs removed and added lines greedily: the k-th
// removed line in left traversal order pairs with the k-th added line in
// right traversal order, and each pair gets word-level spans on both
// sides. This is a deliberate approximation, not an optimal alignment
// across candidate pairs; lines outside a pair keep nil spans.
func (td *TextDiffer) attachWordSpans(left, right []models.DiffLine) {
	var removedIdx, addedIdx []int
	for i := range left {
		if left[i].Kind == models.LineRemoved {
			removedIdx = append(removedIdx, i)
		}
	}
	for i := range right {
		if right[i].Kind == models.LineAdded {
			addedIdx = append(addedIdx, i)
		}
	}

	pairs := len(removedIdx)
	if len(addedIdx) < pairs {
		pairs = len(addedIdx)
	}

	for k := 0; k < pairs; k++ {
		li, ri := removedIdx[k], addedIdx[k]
		wordDiffs := td.processor.DiffWords(left[li].Text, right[ri].Text)
		left[li].WordSpans = leftWordSpans(wordDiffs)
		right[ri].WordSpans = rightWordSpans(wordDiffs)
	}
}

// leftWordSpans keeps the segments visible on the left side.
func leftWordSpans(diffs []diffmatchpatch.Diff) []models.WordSpan {
	spans := make([]models.WordSpan, 0, len(diffs))
	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffEqual:
			spans = append(spans, models.WordSpan{Text: d.Text, Kind: models.LineUnchanged})
		case diffmatchpatch.DiffDelete:
			spans = append(spans, models.WordSpan{Text: d.Text, Kind: models.LineRemoved})
		}
	}
	return spans
}

// rightWordSpans keeps the segments visible on the right side.
func rightWordSpans(diffs []diffmatchpatch.Diff) []models.WordSpan {
	spans := make([]models.WordSpan, 0, len(diffs))
	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffEqual:
			spans = append(spans, models.WordSpan{Text: d.Text, Kind: models.LineUnchanged})
		case diffmatchpatch.DiffInsert:
			spans = append(spans, models.WordSpan{Text: d.Text, Kind: models.LineAdded})
		}
	}
	return spans
}
