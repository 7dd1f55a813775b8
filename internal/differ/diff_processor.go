package differ

import (
	"github.com/sergi/go-diff/diffmatchpatch"
)

// DiffProcessor wraps the LCS diff primitives used by the textual engine
type DiffProcessor struct {
	dmp    *diffmatchpatch.DiffMatchPatch
	config DifferConfig
}

// NewDiffProcessor creates a new diff processor
func NewDiffProcessor(config DifferConfig) *DiffProcessor {
	return &DiffProcessor{
		dmp:    diffmatchpatch.New(),
		config: config,
	}
}

// DiffLines runs a line-based LCS diff over two texts. Each returned
// hunk is a block of whole lines classified as equal, deleted, or
// inserted.
func (dp *DiffProcessor) DiffLines(text1, text2 string) []diffmatchpatch.Diff {
	chars1, chars2, lineArray := dp.dmp.DiffLinesToChars(text1, text2)
	diffs := dp.dmp.DiffMain(chars1, chars2, false)
	return dp.dmp.DiffCharsToLines(diffs, lineArray)
}

// DiffWords runs a character-level LCS diff between two lines, cleaned
// up to word-sized segments for readable span rendering.
func (dp *DiffProcessor) DiffWords(text1, text2 string) []diffmatchpatch.Diff {
	diffs := dp.dmp.DiffMain(text1, text2, false)

	if dp.config.EnableSemanticCleanup {
		diffs = dp.dmp.DiffCleanupSemantic(diffs)
	}

	return diffs
}
