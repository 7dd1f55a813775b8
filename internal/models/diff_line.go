package models

// LineKind defines the classification of a diff line or word span.
type LineKind int

const (
	// LineUnchanged indicates a segment shared by both sides.
	LineUnchanged LineKind = 0
	// LineAdded indicates a segment present only on the right side.
	LineAdded LineKind = 1
	// LineRemoved indicates a segment present only on the left side.
	LineRemoved LineKind = -1
)

// String returns the lowercase kind name.
func (lk LineKind) String() string {
	switch lk {
	case LineAdded:
		return "added"
	case LineRemoved:
		return "removed"
	default:
		return "unchanged"
	}
}

// WordSpan is one word-level segment within a modified line pair.
type WordSpan struct {
	Text string   `json:"text"`
	Kind LineKind `json:"kind"`
}

// DiffLine is one annotated line of a side-by-side diff. Left and right
// sides carry independently incrementing line numbers. WordSpans is nil
// unless the line belongs to a greedily paired removed/added pair and
// word diffing was requested.
type DiffLine struct {
	LineNumber int        `json:"line_number"`
	Text       string     `json:"text"`
	Kind       LineKind   `json:"kind"`
	WordSpans  []WordSpan `json:"word_spans,omitempty"`
}
