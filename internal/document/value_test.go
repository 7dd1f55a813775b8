package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindString(t *testing.T) {
	assert.Equal(t, "null", KindNull.String())
	assert.Equal(t, "bool", KindBool.String())
	assert.Equal(t, "number", KindNumber.String())
	assert.Equal(t, "string", KindString.String())
	assert.Equal(t, "array", KindArray.String())
	assert.Equal(t, "object", KindObject.String())
}

func TestFromInterface_SortsMapKeys(t *testing.T) {
	v, err := FromInterface(map[string]any{"b": 2.0, "a": 1.0, "c": 3.0})
	require.NoError(t, err)
	require.Equal(t, KindObject, v.Kind())

	keys := make([]string, 0, len(v.Entries()))
	for _, e := range v.Entries() {
		keys = append(keys, e.Key)
	}
	assert.Equal(t, []string{"a", "b", "c"}, keys)
}

func TestFromInterface_NestedValues(t *testing.T) {
	v, err := FromInterface(map[string]any{
		"items": []any{1.0, "two", nil, true},
	})
	require.NoError(t, err)

	items, ok := v.Get("items")
	require.True(t, ok)
	require.Equal(t, KindArray, items.Kind())
	require.Len(t, items.Items(), 4)
	assert.Equal(t, KindNumber, items.Items()[0].Kind())
	assert.Equal(t, KindString, items.Items()[1].Kind())
	assert.Equal(t, KindNull, items.Items()[2].Kind())
	assert.Equal(t, KindBool, items.Items()[3].Kind())
}

func TestFromInterface_UnsupportedType(t *testing.T) {
	_, err := FromInterface(struct{}{})
	assert.Error(t, err)
}

func TestEqual_IgnoresObjectEntryOrder(t *testing.T) {
	a := Object(
		Entry{Key: "x", Value: Number(1)},
		Entry{Key: "y", Value: Number(2)},
	)
	b := Object(
		Entry{Key: "y", Value: Number(2)},
		Entry{Key: "x", Value: Number(1)},
	)
	assert.True(t, Equal(a, b))
}

func TestEqual_ArrayOrderMatters(t *testing.T) {
	a := Array(Number(1), Number(2))
	b := Array(Number(2), Number(1))
	assert.False(t, Equal(a, b))
}

func TestEqual_NilValues(t *testing.T) {
	assert.True(t, Equal(nil, nil))
	assert.False(t, Equal(nil, Null()))
	assert.False(t, Equal(Null(), nil))
	assert.True(t, Equal(Null(), Null()))
}

func TestDepth(t *testing.T) {
	assert.Equal(t, 0, Depth(nil))
	assert.Equal(t, 1, Depth(Number(5)))
	assert.Equal(t, 2, Depth(Array(Number(1))))
	assert.Equal(t, 3, Depth(Object(Entry{Key: "a", Value: Array(Number(1))})))
}

func TestGet_MissingKey(t *testing.T) {
	v := Object(Entry{Key: "a", Value: Number(1)})
	_, ok := v.Get("b")
	assert.False(t, ok)

	_, ok = Number(1).Get("a")
	assert.False(t, ok)
}

func TestMarshalJSON_PreservesEntryOrder(t *testing.T) {
	v := Object(
		Entry{Key: "b", Value: Number(2)},
		Entry{Key: "a", Value: Number(1)},
	)
	data, err := v.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `{"b":2,"a":1}`, string(data))
}
