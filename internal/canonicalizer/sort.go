package canonicalizer

import (
	"sort"

	"github.com/aleister1102/structdiff/internal/document"
)

// SortKeysDeep returns a copy of v with every object's entries reordered
// by ascending key (codepoint order), applied recursively. Arrays are
// walked but their element order is untouched.
func SortKeysDeep(v *document.Value) *document.Value {
	switch v.Kind() {
	case document.KindArray:
		items := make([]*document.Value, len(v.Items()))
		for i, item := range v.Items() {
			items[i] = SortKeysDeep(item)
		}
		return document.Array(items...)
	case document.KindObject:
		entries := make([]document.Entry, len(v.Entries()))
		for i, e := range v.Entries() {
			entries[i] = document.Entry{Key: e.Key, Value: SortKeysDeep(e.Value)}
		}
		sort.SliceStable(entries, func(i, j int) bool {
			return entries[i].Key < entries[j].Key
		})
		return document.Object(entries...)
	default:
		return v
	}
}

// SortArraysDeep returns a copy of v with every array's elements
// reordered by the lexical order of their own serialized form, applied
// bottom-up. Serialization is deterministic, so this is a total order.
// Objects are walked but their key order is untouched.
func SortArraysDeep(v *document.Value) (*document.Value, error) {
	switch v.Kind() {
	case document.KindArray:
		type keyed struct {
			value *document.Value
			key   string
		}
		items := make([]keyed, len(v.Items()))
		for i, item := range v.Items() {
			sorted, err := SortArraysDeep(item)
			if err != nil {
				return nil, err
			}
			key, err := document.Serialize(sorted, 0)
			if err != nil {
				return nil, err
			}
			items[i] = keyed{value: sorted, key: key}
		}
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].key < items[j].key
		})
		out := make([]*document.Value, len(items))
		for i, item := range items {
			out[i] = item.value
		}
		return document.Array(out...), nil
	case document.KindObject:
		entries := make([]document.Entry, len(v.Entries()))
		for i, e := range v.Entries() {
			sorted, err := SortArraysDeep(e.Value)
			if err != nil {
				return nil, err
			}
			entries[i] = document.Entry{Key: e.Key, Value: sorted}
		}
		return document.Object(entries...), nil
	default:
		return v, nil
	}
}
