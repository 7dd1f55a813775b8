package differ

import (
	"time"

	"github.com/aleister1102/structdiff/internal/models"
)

// TextDiffResultBuilder builds TextDiffResult objects
type TextDiffResultBuilder struct {
	result models.TextDiffResult
}

// NewTextDiffResultBuilder creates a new result builder
func NewTextDiffResultBuilder() *TextDiffResultBuilder {
	return &TextDiffResultBuilder{
		result: models.TextDiffResult{
			Timestamp: time.Now().UnixMilli(),
		},
	}
}

// WithLines sets the side-by-side line lists and counts
func (rb *TextDiffResultBuilder) WithLines(left, right []models.DiffLine, added, removed int) *TextDiffResultBuilder {
	rb.result.Left = left
	rb.result.Right = right
	rb.result.AddedCount = added
	rb.result.RemovedCount = removed
	rb.result.HasDifferences = added > 0 || removed > 0
	return rb
}

// WithProcessingTime sets the processing time
func (rb *TextDiffResultBuilder) WithProcessingTime(duration time.Duration) *TextDiffResultBuilder {
	rb.result.ProcessingTimeMs = duration.Milliseconds()
	return rb
}

// Build creates the final TextDiffResult
func (rb *TextDiffResultBuilder) Build() *models.TextDiffResult {
	return &rb.result
}
