package models

// DiffSummary tallies change records by kind.
type DiffSummary struct {
	Added       int `json:"added"`
	Removed     int `json:"removed"`
	Modified    int `json:"modified"`
	TypeChanged int `json:"type_changed"`
	Total       int `json:"total"`
}

// SemanticDiffResult holds the structured result of a semantic diff
// operation. When an input fails to parse the result degrades to a
// single synthetic Modified record at the root carrying the parse error
// message, so callers always receive a well-formed result.
type SemanticDiffResult struct {
	Timestamp        int64       `json:"timestamp"`
	Changes          []Change    `json:"changes"`
	Summary          DiffSummary `json:"summary"`
	IsIdentical      bool        `json:"is_identical"`
	ErrorMessage     string      `json:"error_message,omitempty"`
	ProcessingTimeMs int64       `json:"processing_time_ms"`
}

// CompareResult bundles both engines' outputs for one input pair so a
// host driving both views gets them under one set of options.
type CompareResult struct {
	Semantic *SemanticDiffResult `json:"semantic,omitempty"`
	Text     *TextDiffResult     `json:"text,omitempty"`
}
