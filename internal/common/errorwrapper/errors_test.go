package errorwrapper

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrapError(t *testing.T) {
	wrapped := WrapError(ErrDepthExceeded, "failed to validate document")

	assert.True(t, errors.Is(wrapped, ErrDepthExceeded))
	assert.Equal(t, "failed to validate document: nesting depth exceeded", wrapped.Error())
}

func TestWrapError_NilError(t *testing.T) {
	wrapped := WrapError(nil, "context only")

	assert.Equal(t, "context only: <nil>", wrapped.Error())
}

func TestNewValidationError(t *testing.T) {
	err := NewValidationError("max_depth", 0, "max depth must be positive")

	assert.Equal(t, "validation error: field 'max_depth' with value '0': max depth must be positive", err.Error())
}

func TestNewError(t *testing.T) {
	err := NewError("bad mode %q", "everything")

	assert.Equal(t, `bad mode "everything"`, err.Error())
}
