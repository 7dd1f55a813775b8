package differ

import (
	"testing"

	"github.com/aleister1102/structdiff/internal/document"
	"github.com/aleister1102/structdiff/internal/models"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSemanticDiffer(t *testing.T) *SemanticDiffer {
	t.Helper()
	sd, err := NewSemanticDiffer(zerolog.Nop())
	require.NoError(t, err)
	return sd
}

func mustParse(t *testing.T, text string) *document.Value {
	t.Helper()
	v, err := document.Parse(text, document.FormatAuto)
	require.NoError(t, err)
	return v
}

func TestSemanticDiffer_Identity(t *testing.T) {
	sd := newTestSemanticDiffer(t)
	v := mustParse(t, `{"a": [1, {"b": "x"}], "c": null}`)

	result, err := sd.Diff(v, v, DefaultDiffOptions())
	require.NoError(t, err)

	assert.True(t, result.IsIdentical)
	assert.Empty(t, result.Changes)
	assert.Equal(t, 0, result.Summary.Total)
}

func TestSemanticDiffer_BothAbsent(t *testing.T) {
	sd := newTestSemanticDiffer(t)

	result, err := sd.Diff(nil, nil, DefaultDiffOptions())
	require.NoError(t, err)

	assert.True(t, result.IsIdentical)
	assert.Empty(t, result.Changes)
}

func TestSemanticDiffer_OneSideAbsent(t *testing.T) {
	sd := newTestSemanticDiffer(t)
	v := mustParse(t, `{"a": 1}`)

	result, err := sd.Diff(nil, v, DefaultDiffOptions())
	require.NoError(t, err)
	require.Len(t, result.Changes, 1)
	assert.Equal(t, "$", result.Changes[0].Path)
	assert.Equal(t, models.ChangeAdded, result.Changes[0].Kind)
	assert.True(t, document.Equal(v, result.Changes[0].NewValue))

	result, err = sd.Diff(v, nil, DefaultDiffOptions())
	require.NoError(t, err)
	require.Len(t, result.Changes, 1)
	assert.Equal(t, models.ChangeRemoved, result.Changes[0].Kind)
	assert.True(t, document.Equal(v, result.Changes[0].OldValue))
}

func TestSemanticDiffer_TypeChangeStopsDescent(t *testing.T) {
	sd := newTestSemanticDiffer(t)
	left := mustParse(t, `"5"`)
	right := mustParse(t, `5`)

	result, err := sd.Diff(left, right, DefaultDiffOptions())
	require.NoError(t, err)

	require.Len(t, result.Changes, 1)
	change := result.Changes[0]
	assert.Equal(t, "$", change.Path)
	assert.Equal(t, models.ChangeTypeChanged, change.Kind)
	assert.Equal(t, "string", change.OldKind)
	assert.Equal(t, "number", change.NewKind)
	assert.Equal(t, 1, result.Summary.TypeChanged)
}

func TestSemanticDiffer_AddedAtDepth(t *testing.T) {
	sd := newTestSemanticDiffer(t)
	left := mustParse(t, `{"a": {"x": 1}}`)
	right := mustParse(t, `{"a": {"x": 1, "y": 2}}`)

	result, err := sd.Diff(left, right, DefaultDiffOptions())
	require.NoError(t, err)

	require.Len(t, result.Changes, 1)
	assert.Equal(t, "a.y", result.Changes[0].Path)
	assert.Equal(t, models.ChangeAdded, result.Changes[0].Kind)
	assert.Equal(t, 2.0, result.Changes[0].NewValue.NumberValue())
}

func TestSemanticDiffer_KeySetComparisonIgnoresKeyOrder(t *testing.T) {
	sd := newTestSemanticDiffer(t)
	left := mustParse(t, `{"a": 1, "b": 2}`)
	right := mustParse(t, `{"b": 2, "a": 1}`)

	// Map comparison is key-set based regardless of the IgnoreKeyOrder
	// flag; the flag only affects canonical serialization.
	for _, ignoreKeyOrder := range []bool{true, false} {
		opts := DefaultDiffOptions()
		opts.IgnoreKeyOrder = ignoreKeyOrder

		result, err := sd.Diff(left, right, opts)
		require.NoError(t, err)
		assert.True(t, result.IsIdentical, "ignoreKeyOrder=%v", ignoreKeyOrder)
	}
}

func TestSemanticDiffer_ArrayOrder(t *testing.T) {
	sd := newTestSemanticDiffer(t)
	left := mustParse(t, `[1, 2, 3]`)
	right := mustParse(t, `[3, 2, 1]`)

	opts := DefaultDiffOptions()
	opts.IgnoreArrayOrder = true
	result, err := sd.Diff(left, right, opts)
	require.NoError(t, err)
	assert.True(t, result.IsIdentical)

	result, err = sd.Diff(left, right, DefaultDiffOptions())
	require.NoError(t, err)
	require.Len(t, result.Changes, 2)
	assert.Equal(t, "[0]", result.Changes[0].Path)
	assert.Equal(t, models.ChangeModified, result.Changes[0].Kind)
	assert.Equal(t, "[2]", result.Changes[1].Path)
	assert.Equal(t, models.ChangeModified, result.Changes[1].Kind)
}

func TestSemanticDiffer_MidArrayInsertionCascades(t *testing.T) {
	sd := newTestSemanticDiffer(t)
	left := mustParse(t, `["a", "b", "c"]`)
	right := mustParse(t, `["a", "x", "b", "c"]`)

	// Index pairing is deliberate: without IgnoreArrayOrder a mid-array
	// insertion reports per-index modifications plus one trailing Added,
	// not a single insertion record.
	result, err := sd.Diff(left, right, DefaultDiffOptions())
	require.NoError(t, err)

	require.Len(t, result.Changes, 3)
	assert.Equal(t, "[1]", result.Changes[0].Path)
	assert.Equal(t, models.ChangeModified, result.Changes[0].Kind)
	assert.Equal(t, "[2]", result.Changes[1].Path)
	assert.Equal(t, models.ChangeModified, result.Changes[1].Kind)
	assert.Equal(t, "[3]", result.Changes[2].Path)
	assert.Equal(t, models.ChangeAdded, result.Changes[2].Kind)
}

func TestSemanticDiffer_ArrayLengthMismatch(t *testing.T) {
	sd := newTestSemanticDiffer(t)
	left := mustParse(t, `[1, 2, 3]`)
	right := mustParse(t, `[1]`)

	result, err := sd.Diff(left, right, DefaultDiffOptions())
	require.NoError(t, err)

	require.Len(t, result.Changes, 2)
	assert.Equal(t, "[1]", result.Changes[0].Path)
	assert.Equal(t, models.ChangeRemoved, result.Changes[0].Kind)
	assert.Equal(t, "[2]", result.Changes[1].Path)
	assert.Equal(t, models.ChangeRemoved, result.Changes[1].Kind)
}

func TestSemanticDiffer_StringNormalization(t *testing.T) {
	sd := newTestSemanticDiffer(t)
	left := mustParse(t, `{"msg": "  Hello   World "}`)
	right := mustParse(t, `{"msg": "hello world"}`)

	opts := DefaultDiffOptions()
	opts.IgnoreWhitespace = true
	opts.IgnoreCase = true
	result, err := sd.Diff(left, right, opts)
	require.NoError(t, err)
	assert.True(t, result.IsIdentical)

	result, err = sd.Diff(left, right, DefaultDiffOptions())
	require.NoError(t, err)
	require.Len(t, result.Changes, 1)
	change := result.Changes[0]
	assert.Equal(t, "msg", change.Path)
	// Records carry the original values even though normalized values
	// drove the comparison.
	assert.Equal(t, "  Hello   World ", change.OldValue.StringValue())
	assert.Equal(t, "hello world", change.NewValue.StringValue())
}

func TestSemanticDiffer_NumbersCompareByValue(t *testing.T) {
	sd := newTestSemanticDiffer(t)
	left := mustParse(t, `{"n": 1}`)
	right := mustParse(t, `{"n": 1.0}`)

	result, err := sd.Diff(left, right, DefaultDiffOptions())
	require.NoError(t, err)
	assert.True(t, result.IsIdentical)
}

func TestSemanticDiffer_SymmetryOfCounts(t *testing.T) {
	sd := newTestSemanticDiffer(t)
	a := mustParse(t, `{"x": 1, "y": [1, 2], "z": "s"}`)
	b := mustParse(t, `{"x": 2, "y": [1], "w": true}`)

	forward, err := sd.Diff(a, b, DefaultDiffOptions())
	require.NoError(t, err)
	backward, err := sd.Diff(b, a, DefaultDiffOptions())
	require.NoError(t, err)

	assert.Equal(t, forward.Summary.Added, backward.Summary.Removed)
	assert.Equal(t, forward.Summary.Removed, backward.Summary.Added)
	assert.Equal(t, forward.Summary.Modified, backward.Summary.Modified)
	assert.Equal(t, forward.Summary.TypeChanged, backward.Summary.TypeChanged)
}

func TestSemanticDiffer_ObjectEmissionOrder(t *testing.T) {
	sd := newTestSemanticDiffer(t)
	left := mustParse(t, `{"b": 1, "a": 2}`)
	right := mustParse(t, `{"c": 3, "d": 4}`)

	result, err := sd.Diff(left, right, DefaultDiffOptions())
	require.NoError(t, err)

	// Left keys in left order first, then right-only keys in right order.
	require.Len(t, result.Changes, 4)
	assert.Equal(t, "b", result.Changes[0].Path)
	assert.Equal(t, models.ChangeRemoved, result.Changes[0].Kind)
	assert.Equal(t, "a", result.Changes[1].Path)
	assert.Equal(t, models.ChangeRemoved, result.Changes[1].Kind)
	assert.Equal(t, "c", result.Changes[2].Path)
	assert.Equal(t, models.ChangeAdded, result.Changes[2].Kind)
	assert.Equal(t, "d", result.Changes[3].Path)
	assert.Equal(t, models.ChangeAdded, result.Changes[3].Kind)
}

func TestSemanticDiffer_IgnoreArrayOrderWithObjects(t *testing.T) {
	sd := newTestSemanticDiffer(t)
	left := mustParse(t, `[{"id": 2}, {"id": 1}]`)
	right := mustParse(t, `[{"id": 1}, {"id": 2}]`)

	opts := DefaultDiffOptions()
	opts.IgnoreArrayOrder = true
	result, err := sd.Diff(left, right, opts)
	require.NoError(t, err)
	assert.True(t, result.IsIdentical)
}

func TestSemanticDiffer_DepthLimit(t *testing.T) {
	cfg := DefaultDifferConfig()
	cfg.MaxDepth = 3
	sd, err := NewSemanticDifferBuilder(zerolog.Nop()).WithConfig(cfg).Build()
	require.NoError(t, err)

	deep := mustParse(t, `{"a": {"b": {"c": {"d": 1}}}}`)
	_, err = sd.Diff(deep, deep, DefaultDiffOptions())
	assert.Error(t, err)
}

func TestSemanticDifferBuilder_RejectsInvalidDepth(t *testing.T) {
	cfg := DefaultDifferConfig()
	cfg.MaxDepth = 0
	_, err := NewSemanticDifferBuilder(zerolog.Nop()).WithConfig(cfg).Build()
	assert.Error(t, err)
}
