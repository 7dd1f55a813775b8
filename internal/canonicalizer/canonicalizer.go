package canonicalizer

import (
	"github.com/aleister1102/structdiff/internal/common/errorwrapper"
	"github.com/aleister1102/structdiff/internal/document"
)

// DefaultIndent is the indent width of canonical output.
const DefaultIndent = 2

// Options controls which equivalence axes are normalized away before
// serialization. Two values that are equivalent under the active options
// canonicalize to identical text.
type Options struct {
	SortKeys       bool
	SortArrays     bool
	TrimWhitespace bool
	FoldCase       bool
	Indent         int
}

// DefaultOptions returns options that normalize nothing and indent with
// the default width.
func DefaultOptions() Options {
	return Options{Indent: DefaultIndent}
}

// Canonicalize normalizes a value under the given options and serializes
// it to deterministic JSON text. Key sorting runs before array sorting so
// the element serializations used for array ordering are themselves
// order-stable; scalar normalization runs last since it only rewrites
// leaves.
func Canonicalize(v *document.Value, opts Options) (string, error) {
	if v == nil {
		return "", errorwrapper.NewValidationError("value", v, "value cannot be nil")
	}

	out := v
	if opts.SortKeys {
		out = SortKeysDeep(out)
	}
	if opts.SortArrays {
		var err error
		out, err = SortArraysDeep(out)
		if err != nil {
			return "", errorwrapper.WrapError(err, "failed to sort arrays")
		}
	}
	out = normalizeStringsDeep(out, opts)

	indent := opts.Indent
	if indent <= 0 {
		indent = DefaultIndent
	}

	text, err := document.Serialize(out, indent)
	if err != nil {
		return "", errorwrapper.WrapError(err, "failed to serialize canonical value")
	}
	return text, nil
}

// CanonicalizeText applies the scalar normalization axes directly to raw
// text, line by line. It is the graceful-degradation path for buffers
// that failed to parse: line structure is preserved so the result is
// still usable for line diffing.
func CanonicalizeText(raw string, opts Options) string {
	if !opts.TrimWhitespace && !opts.FoldCase {
		return raw
	}

	lines := splitLines(raw)
	for i, line := range lines {
		lines[i] = NormalizeScalar(line, opts)
	}
	return joinLines(lines)
}
