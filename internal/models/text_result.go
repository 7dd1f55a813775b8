package models

// TextDiffResult holds the side-by-side line lists produced by the
// textual diff over the canonicalized serializations of both inputs.
type TextDiffResult struct {
	Timestamp        int64      `json:"timestamp"`
	Left             []DiffLine `json:"left"`
	Right            []DiffLine `json:"right"`
	HasDifferences   bool       `json:"has_differences"`
	AddedCount       int        `json:"added_count"`
	RemovedCount     int        `json:"removed_count"`
	ProcessingTimeMs int64      `json:"processing_time_ms"`
}
