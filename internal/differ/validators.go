package differ

import (
	"fmt"

	"github.com/aleister1102/structdiff/internal/common/errorwrapper"
	"github.com/aleister1102/structdiff/internal/document"
)

// InputSizeValidator validates input buffer sizes against limits
type InputSizeValidator struct {
	maxSizeBytes int64
}

// NewInputSizeValidator creates a new input size validator
func NewInputSizeValidator(maxSizeMB int) *InputSizeValidator {
	return &InputSizeValidator{
		maxSizeBytes: int64(maxSizeMB) * 1024 * 1024,
	}
}

// ValidateSize checks if both input buffers are within limits
func (isv *InputSizeValidator) ValidateSize(leftText, rightText string) error {
	if err := isv.validateSingleInput(leftText, "left_input"); err != nil {
		return err
	}
	return isv.validateSingleInput(rightText, "right_input")
}

// validateSingleInput validates a single input buffer size
func (isv *InputSizeValidator) validateSingleInput(text, fieldName string) error {
	if int64(len(text)) > isv.maxSizeBytes {
		return errorwrapper.NewValidationError(fieldName, len(text),
			fmt.Sprintf("%s too large (%d bytes > %d bytes limit)",
				fieldName, len(text), isv.maxSizeBytes))
	}
	return nil
}

// DepthValidator guards the recursive engines against pathological
// nesting. Nesting depth is user controlled, so comparisons refuse
// documents deeper than the configured ceiling instead of risking stack
// exhaustion.
type DepthValidator struct {
	maxDepth int
}

// NewDepthValidator creates a new depth validator
func NewDepthValidator(maxDepth int) *DepthValidator {
	return &DepthValidator{maxDepth: maxDepth}
}

// Validate checks a parsed value against the depth ceiling. Nil values
// (absent documents) are always valid.
func (dv *DepthValidator) Validate(v *document.Value, fieldName string) error {
	if v == nil {
		return nil
	}
	if depth := document.Depth(v); depth > dv.maxDepth {
		return errorwrapper.WrapError(errorwrapper.ErrDepthExceeded,
			fmt.Sprintf("%s nested %d levels deep (limit: %d)", fieldName, depth, dv.maxDepth))
	}
	return nil
}
