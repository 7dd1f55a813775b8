package document

import "fmt"

// ParseError describes a failure to parse an input buffer into a Value.
// It is returned as a value rather than surfaced as a crash so callers
// can degrade to raw-text comparison.
type ParseError struct {
	Format  Format
	Message string
	Line    int
	Column  int
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s parse error at line %d, column %d: %s", e.Format, e.Line, e.Column, e.Message)
	}
	return fmt.Sprintf("%s parse error: %s", e.Format, e.Message)
}

// NewParseError creates a new parse error
func NewParseError(format Format, message string, line, column int) *ParseError {
	return &ParseError{
		Format:  format,
		Message: message,
		Line:    line,
		Column:  column,
	}
}
