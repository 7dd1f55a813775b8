package document

import (
	"fmt"
	"sort"
)

// Kind identifies the type of a Value node.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

// String returns the kind name used in type-change records.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// Entry is a single key-value pair of an Object. Entry order reflects
// source order; keys are unique within one Object.
type Entry struct {
	Key   string
	Value *Value
}

// Value is the parsed in-memory representation of a JSON or YAML document
// node. It is a tagged union over null, bool, number, string, array, and
// object; traversal code switches exhaustively on Kind().
type Value struct {
	kind    Kind
	b       bool
	n       float64
	s       string
	items   []*Value
	entries []Entry
}

// Null returns the null value.
func Null() *Value {
	return &Value{kind: KindNull}
}

// Bool returns a boolean value.
func Bool(b bool) *Value {
	return &Value{kind: KindBool, b: b}
}

// Number returns a numeric value.
func Number(n float64) *Value {
	return &Value{kind: KindNumber, n: n}
}

// String returns a string value.
func String(s string) *Value {
	return &Value{kind: KindString, s: s}
}

// Array returns an array value holding the given items in order.
func Array(items ...*Value) *Value {
	return &Value{kind: KindArray, items: items}
}

// Object returns an object value holding the given entries in order.
func Object(entries ...Entry) *Value {
	return &Value{kind: KindObject, entries: entries}
}

// Kind reports the node type.
func (v *Value) Kind() Kind { return v.kind }

// BoolValue returns the boolean payload. Valid only for KindBool.
func (v *Value) BoolValue() bool { return v.b }

// NumberValue returns the numeric payload. Valid only for KindNumber.
func (v *Value) NumberValue() float64 { return v.n }

// StringValue returns the string payload. Valid only for KindString.
func (v *Value) StringValue() string { return v.s }

// Items returns the array elements in order. Valid only for KindArray.
func (v *Value) Items() []*Value { return v.items }

// Entries returns the object entries in source order. Valid only for KindObject.
func (v *Value) Entries() []Entry { return v.entries }

// Get looks up a key in an object value.
func (v *Value) Get(key string) (*Value, bool) {
	if v.kind != KindObject {
		return nil, false
	}
	for _, e := range v.entries {
		if e.Key == key {
			return e.Value, true
		}
	}
	return nil, false
}

// Len returns the number of elements or entries of a container value,
// and zero for scalars.
func (v *Value) Len() int {
	switch v.kind {
	case KindArray:
		return len(v.items)
	case KindObject:
		return len(v.entries)
	default:
		return 0
	}
}

// Equal reports deep equality of two values. Object entries must match
// key-for-key but may appear in any order.
func Equal(a, b *Value) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case KindNull:
		return true
	case KindBool:
		return a.b == b.b
	case KindNumber:
		return a.n == b.n
	case KindString:
		return a.s == b.s
	case KindArray:
		if len(a.items) != len(b.items) {
			return false
		}
		for i := range a.items {
			if !Equal(a.items[i], b.items[i]) {
				return false
			}
		}
		return true
	case KindObject:
		if len(a.entries) != len(b.entries) {
			return false
		}
		for _, e := range a.entries {
			other, ok := b.Get(e.Key)
			if !ok || !Equal(e.Value, other) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// Depth returns the maximum nesting depth of the value. A scalar has
// depth 1. Computed iteratively so it is safe on arbitrarily deep input.
func Depth(v *Value) int {
	if v == nil {
		return 0
	}
	type frame struct {
		v     *Value
		depth int
	}
	max := 0
	stack := []frame{{v, 1}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if f.depth > max {
			max = f.depth
		}
		switch f.v.kind {
		case KindArray:
			for _, item := range f.v.items {
				stack = append(stack, frame{item, f.depth + 1})
			}
		case KindObject:
			for _, e := range f.v.entries {
				stack = append(stack, frame{e.Value, f.depth + 1})
			}
		}
	}
	return max
}

// FromInterface converts a Go-native tree (as produced by encoding/json
// style decoding into any) to a Value. Map keys are emitted in sorted
// order since Go maps carry no source order.
func FromInterface(x any) (*Value, error) {
	switch t := x.(type) {
	case nil:
		return Null(), nil
	case bool:
		return Bool(t), nil
	case float64:
		return Number(t), nil
	case int:
		return Number(float64(t)), nil
	case int64:
		return Number(float64(t)), nil
	case string:
		return String(t), nil
	case []any:
		items := make([]*Value, len(t))
		for i, el := range t {
			v, err := FromInterface(el)
			if err != nil {
				return nil, err
			}
			items[i] = v
		}
		return Array(items...), nil
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		entries := make([]Entry, len(keys))
		for i, k := range keys {
			v, err := FromInterface(t[k])
			if err != nil {
				return nil, err
			}
			entries[i] = Entry{Key: k, Value: v}
		}
		return Object(entries...), nil
	default:
		return nil, fmt.Errorf("unsupported value type %T", x)
	}
}

// Interface converts a Value back to a Go-native tree. Object entry
// order is lost since Go maps are unordered.
func (v *Value) Interface() any {
	switch v.kind {
	case KindNull:
		return nil
	case KindBool:
		return v.b
	case KindNumber:
		return v.n
	case KindString:
		return v.s
	case KindArray:
		out := make([]any, len(v.items))
		for i, item := range v.items {
			out[i] = item.Interface()
		}
		return out
	case KindObject:
		out := make(map[string]any, len(v.entries))
		for _, e := range v.entries {
			out[e.Key] = e.Value.Interface()
		}
		return out
	default:
		return nil
	}
}

// MarshalJSON renders the value as compact JSON, preserving object entry
// order. Used when change records are serialized for output.
func (v *Value) MarshalJSON() ([]byte, error) {
	text, err := Serialize(v, 0)
	if err != nil {
		return nil, err
	}
	return []byte(text), nil
}
