package differ

import (
	"fmt"
	"sort"
	"time"

	"github.com/aleister1102/structdiff/internal/canonicalizer"
	"github.com/aleister1102/structdiff/internal/common/errorwrapper"
	"github.com/aleister1102/structdiff/internal/document"
	"github.com/aleister1102/structdiff/internal/models"
	"github.com/rs/zerolog"
)

// SemanticDiffer walks two parsed documents in lock-step and emits a
// flat, pre-order list of structural change records. A nil document
// means "absent" (empty input), which is distinct from a parsed null.
type SemanticDiffer struct {
	config         DifferConfig
	logger         zerolog.Logger
	depthValidator *DepthValidator
}

// SemanticDifferBuilder provides a fluent interface for creating SemanticDiffer
type SemanticDifferBuilder struct {
	config DifferConfig
	logger zerolog.Logger
}

// NewSemanticDifferBuilder creates a new builder
func NewSemanticDifferBuilder(logger zerolog.Logger) *SemanticDifferBuilder {
	return &SemanticDifferBuilder{
		config: DefaultDifferConfig(),
		logger: logger.With().Str("component", "SemanticDiffer").Logger(),
	}
}

// WithConfig sets the differ configuration
func (b *SemanticDifferBuilder) WithConfig(cfg DifferConfig) *SemanticDifferBuilder {
	b.config = cfg
	return b
}

// Build creates a new SemanticDiffer instance
func (b *SemanticDifferBuilder) Build() (*SemanticDiffer, error) {
	if b.config.MaxDepth <= 0 {
		return nil, errorwrapper.NewValidationError("max_depth", b.config.MaxDepth, "max depth must be positive")
	}

	return &SemanticDiffer{
		config:         b.config,
		logger:         b.logger,
		depthValidator: NewDepthValidator(b.config.MaxDepth),
	}, nil
}

// NewSemanticDiffer creates a new instance of SemanticDiffer
func NewSemanticDiffer(logger zerolog.Logger) (*SemanticDiffer, error) {
	return NewSemanticDifferBuilder(logger).Build()
}

// Diff compares two parsed documents under the given options and returns
// the ordered change list with summary tallies. Either side may be nil
// to represent an absent document.
func (sd *SemanticDiffer) Diff(left, right *document.Value, opts DiffOptions) (*models.SemanticDiffResult, error) {
	startTime := time.Now()

	if err := sd.depthValidator.Validate(left, "left_document"); err != nil {
		return nil, errorwrapper.WrapError(err, "failed to validate left document")
	}
	if err := sd.depthValidator.Validate(right, "right_document"); err != nil {
		return nil, errorwrapper.WrapError(err, "failed to validate right document")
	}

	walk := newSemanticWalk(opts)
	walk.compare(left, right, "")
	if walk.err != nil {
		return nil, errorwrapper.WrapError(walk.err, "comparison failed")
	}

	result := NewSemanticDiffResultBuilder().
		WithChanges(walk.changes).
		WithProcessingTime(time.Since(startTime)).
		Build()

	sd.logger.Debug().
		Int("changes", result.Summary.Total).
		Bool("identical", result.IsIdentical).
		Msg("Semantic diff completed")

	return result, nil
}

// semanticWalk is the accumulator for one top-level comparison; it is
// created per Diff call and discarded afterwards, so the differ itself
// stays stateless and safe for repeated invocation.
type semanticWalk struct {
	opts    DiffOptions
	changes []models.Change
	err     error
}

func newSemanticWalk(opts DiffOptions) *semanticWalk {
	return &semanticWalk{opts: opts}
}

func (w *semanticWalk) record(c models.Change) {
	w.changes = append(w.changes, c)
}

// compare is the recursive entry point. path is the dotted parent path,
// empty at the root.
func (w *semanticWalk) compare(left, right *document.Value, path string) {
	if w.err != nil {
		return
	}

	// Absence: both absent means identical; one absent means the whole
	// present side was added or removed, with no further descent.
	if left == nil && right == nil {
		return
	}
	if left == nil {
		w.record(models.Change{Path: displayPath(path), Kind: models.ChangeAdded, NewValue: right})
		return
	}
	if right == nil {
		w.record(models.Change{Path: displayPath(path), Kind: models.ChangeRemoved, OldValue: left})
		return
	}

	// A kind mismatch replaces the whole subtree; finer changes inside
	// it are not reported.
	if left.Kind() != right.Kind() {
		w.record(models.Change{
			Path:     displayPath(path),
			Kind:     models.ChangeTypeChanged,
			OldValue: left,
			NewValue: right,
			OldKind:  left.Kind().String(),
			NewKind:  right.Kind().String(),
		})
		return
	}

	switch left.Kind() {
	case document.KindArray:
		w.compareArrays(left, right, path)
	case document.KindObject:
		w.compareObjects(left, right, path)
	default:
		w.compareScalars(left, right, path)
	}
}

// compareArrays pairs elements by index up to the longer side. With
// IgnoreArrayOrder set, a copy of each side is independently reordered
// by the serialized form of its canonicalized elements before pairing.
// Index pairing is a deliberate simplification: no LCS alignment of
// elements is attempted, so a mid-array insertion without
// IgnoreArrayOrder shows up as a cascade of per-index modifications.
func (w *semanticWalk) compareArrays(left, right *document.Value, path string) {
	leftItems := left.Items()
	rightItems := right.Items()

	if w.opts.IgnoreArrayOrder {
		var err error
		if leftItems, err = w.reorderItems(leftItems); err != nil {
			w.err = err
			return
		}
		if rightItems, err = w.reorderItems(rightItems); err != nil {
			w.err = err
			return
		}
	}

	max := len(leftItems)
	if len(rightItems) > max {
		max = len(rightItems)
	}

	for i := 0; i < max; i++ {
		childPath := fmt.Sprintf("%s[%d]", path, i)
		switch {
		case i >= len(leftItems):
			w.record(models.Change{Path: childPath, Kind: models.ChangeAdded, NewValue: rightItems[i]})
		case i >= len(rightItems):
			w.record(models.Change{Path: childPath, Kind: models.ChangeRemoved, OldValue: leftItems[i]})
		default:
			w.compare(leftItems[i], rightItems[i], childPath)
		}
	}
}

// reorderItems canonicalizes each element (key sort when active, then
// deep array sort) and orders the canonical copies by their serialized
// form, the same total order the canonicalizer uses.
func (w *semanticWalk) reorderItems(items []*document.Value) ([]*document.Value, error) {
	type keyed struct {
		value *document.Value
		key   string
	}
	sorted := make([]keyed, len(items))
	for i, item := range items {
		elem := item
		if w.opts.IgnoreKeyOrder {
			elem = canonicalizer.SortKeysDeep(elem)
		}
		elem, err := canonicalizer.SortArraysDeep(elem)
		if err != nil {
			return nil, err
		}
		key, err := document.Serialize(elem, 0)
		if err != nil {
			return nil, err
		}
		sorted[i] = keyed{value: elem, key: key}
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].key < sorted[j].key
	})
	out := make([]*document.Value, len(sorted))
	for i, k := range sorted {
		out[i] = k.value
	}
	return out, nil
}

// compareObjects compares key sets as sets regardless of IgnoreKeyOrder;
// that flag only affects canonical serialization. Records are emitted in
// left key order first, then right-only keys in right order, which keeps
// output deterministic without an alphabetical pass.
func (w *semanticWalk) compareObjects(left, right *document.Value, path string) {
	for _, e := range left.Entries() {
		childPath := joinKey(path, e.Key)
		if rightValue, ok := right.Get(e.Key); ok {
			w.compare(e.Value, rightValue, childPath)
		} else {
			w.record(models.Change{Path: childPath, Kind: models.ChangeRemoved, OldValue: e.Value})
		}
	}
	for _, e := range right.Entries() {
		if _, ok := left.Get(e.Key); !ok {
			w.record(models.Change{Path: joinKey(path, e.Key), Kind: models.ChangeAdded, NewValue: e.Value})
		}
	}
}

// compareScalars compares leaves. String comparison honors the
// whitespace and case axes but the emitted record carries the original
// values for display.
func (w *semanticWalk) compareScalars(left, right *document.Value, path string) {
	equal := false
	switch left.Kind() {
	case document.KindNull:
		equal = true
	case document.KindBool:
		equal = left.BoolValue() == right.BoolValue()
	case document.KindNumber:
		equal = left.NumberValue() == right.NumberValue()
	case document.KindString:
		opts := canonicalizer.Options{
			TrimWhitespace: w.opts.IgnoreWhitespace,
			FoldCase:       w.opts.IgnoreCase,
		}
		equal = canonicalizer.NormalizeScalar(left.StringValue(), opts) ==
			canonicalizer.NormalizeScalar(right.StringValue(), opts)
	}

	if !equal {
		w.record(models.Change{
			Path:     displayPath(path),
			Kind:     models.ChangeModified,
			OldValue: left,
			NewValue: right,
		})
	}
}

// joinKey appends a map key to a dotted path.
func joinKey(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}

// displayPath renders the root path as "$".
func displayPath(path string) string {
	if path == "" {
		return "$"
	}
	return path
}
