package canonicalizer

import (
	"strings"

	"github.com/aleister1102/structdiff/internal/document"
)

// NormalizeScalar applies the scalar equivalence axes to a string:
// whitespace normalization (trim plus collapsing internal runs to a
// single space) before case folding. Non-string scalars are never
// normalized.
func NormalizeScalar(s string, opts Options) string {
	if opts.TrimWhitespace {
		s = strings.Join(strings.Fields(s), " ")
	}
	if opts.FoldCase {
		s = strings.ToLower(s)
	}
	return s
}

// normalizeStringsDeep returns a copy of v with NormalizeScalar applied
// to every string leaf. Returns v unchanged when no scalar axis is on.
func normalizeStringsDeep(v *document.Value, opts Options) *document.Value {
	if !opts.TrimWhitespace && !opts.FoldCase {
		return v
	}

	switch v.Kind() {
	case document.KindString:
		return document.String(NormalizeScalar(v.StringValue(), opts))
	case document.KindArray:
		items := make([]*document.Value, len(v.Items()))
		for i, item := range v.Items() {
			items[i] = normalizeStringsDeep(item, opts)
		}
		return document.Array(items...)
	case document.KindObject:
		entries := make([]document.Entry, len(v.Entries()))
		for i, e := range v.Entries() {
			entries[i] = document.Entry{Key: e.Key, Value: normalizeStringsDeep(e.Value, opts)}
		}
		return document.Object(entries...)
	default:
		return v
	}
}

// splitLines splits on "\n", tolerating CRLF input.
func splitLines(text string) []string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

func joinLines(lines []string) string {
	return strings.Join(lines, "\n")
}
