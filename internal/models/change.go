package models

import (
	"github.com/aleister1102/structdiff/internal/document"
)

// ChangeKind classifies a structural change between two documents.
type ChangeKind string

const (
	// ChangeAdded indicates a node present only on the right side.
	ChangeAdded ChangeKind = "added"
	// ChangeRemoved indicates a node present only on the left side.
	ChangeRemoved ChangeKind = "removed"
	// ChangeModified indicates a scalar whose value differs.
	ChangeModified ChangeKind = "modified"
	// ChangeTypeChanged indicates a node whose kind differs; the whole
	// subtree is treated as replaced.
	ChangeTypeChanged ChangeKind = "type_changed"
)

// Change represents one structural difference, addressed by a dotted
// path ("$" at the root, ".key" for object traversal, "[i]" for array
// traversal). Old/new values carry the original, non-normalized values
// for display even when the comparison used normalized forms.
type Change struct {
	Path     string          `json:"path"`
	Kind     ChangeKind      `json:"kind"`
	OldValue *document.Value `json:"old_value,omitempty"`
	NewValue *document.Value `json:"new_value,omitempty"`
	OldKind  string          `json:"old_kind,omitempty"`
	NewKind  string          `json:"new_kind,omitempty"`
}
