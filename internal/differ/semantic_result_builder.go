package differ

import (
	"time"

	"github.com/aleister1102/structdiff/internal/document"
	"github.com/aleister1102/structdiff/internal/models"
)

// DiffSummaryCalculator tallies change records by kind
type DiffSummaryCalculator struct{}

// NewDiffSummaryCalculator creates a new summary calculator
func NewDiffSummaryCalculator() *DiffSummaryCalculator {
	return &DiffSummaryCalculator{}
}

// Calculate computes summary tallies from a change list
func (dsc *DiffSummaryCalculator) Calculate(changes []models.Change) models.DiffSummary {
	summary := models.DiffSummary{}

	for _, change := range changes {
		switch change.Kind {
		case models.ChangeAdded:
			summary.Added++
		case models.ChangeRemoved:
			summary.Removed++
		case models.ChangeModified:
			summary.Modified++
		case models.ChangeTypeChanged:
			summary.TypeChanged++
		}
	}
	summary.Total = len(changes)

	return summary
}

// SemanticDiffResultBuilder builds SemanticDiffResult objects
type SemanticDiffResultBuilder struct {
	result     models.SemanticDiffResult
	calculator *DiffSummaryCalculator
}

// NewSemanticDiffResultBuilder creates a new result builder
func NewSemanticDiffResultBuilder() *SemanticDiffResultBuilder {
	return &SemanticDiffResultBuilder{
		result: models.SemanticDiffResult{
			Timestamp: time.Now().UnixMilli(),
		},
		calculator: NewDiffSummaryCalculator(),
	}
}

// WithChanges sets the change list and derives summary tallies
func (rb *SemanticDiffResultBuilder) WithChanges(changes []models.Change) *SemanticDiffResultBuilder {
	rb.result.Changes = changes
	rb.result.Summary = rb.calculator.Calculate(changes)
	rb.result.IsIdentical = len(changes) == 0
	return rb
}

// WithParseFailure degrades the result to the parse-error sentinel: a
// single synthetic Modified record at the root carrying the error
// message as its old value, so callers always get a well-formed result
// instead of a thrown error while the user is mid-edit.
func (rb *SemanticDiffResultBuilder) WithParseFailure(message string) *SemanticDiffResultBuilder {
	rb.result.Changes = []models.Change{
		{
			Path:     "$",
			Kind:     models.ChangeModified,
			OldValue: document.String(message),
		},
	}
	rb.result.Summary = models.DiffSummary{Modified: 1, Total: 1}
	rb.result.IsIdentical = false
	rb.result.ErrorMessage = message
	return rb
}

// WithProcessingTime sets the processing time
func (rb *SemanticDiffResultBuilder) WithProcessingTime(duration time.Duration) *SemanticDiffResultBuilder {
	rb.result.ProcessingTimeMs = duration.Milliseconds()
	return rb
}

// Build creates the final SemanticDiffResult
func (rb *SemanticDiffResultBuilder) Build() *models.SemanticDiffResult {
	return &rb.result
}
