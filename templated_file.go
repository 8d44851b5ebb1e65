package sqltemplater

import (
	"strings"
)

// TemplatedFile is the result of templating one source text. It is
// immutable once returned.
//
// Slices() and RawSlices() always have the same length. Their source spans
// cover SourceStr from 0 to len(SourceStr) without gaps or overlaps, and the
// templated spans cover TemplatedStr the same way.
type TemplatedFile struct {
	SourceStr    string
	TemplatedStr string
	Filename     string

	slices     TemplatedFileSlices
	rawSlices  RawSlices
	parameters Parameters
}

func newTemplatedFile(filename string, s *sliceState) *TemplatedFile {
	return &TemplatedFile{
		SourceStr:    s.src,
		TemplatedStr: s.out.String(),
		Filename:     filename,
		slices:       s.slices,
		rawSlices:    s.rawSlices,
		parameters:   s.params,
	}
}

// String returns the templated text.
func (tf *TemplatedFile) String() string {
	return tf.TemplatedStr
}

// Slices returns a copy of the slice mapping.
func (tf *TemplatedFile) Slices() TemplatedFileSlices {
	return append(TemplatedFileSlices(nil), tf.slices...)
}

// RawSlices returns a copy of the raw slices, parallel to Slices().
func (tf *TemplatedFile) RawSlices() RawSlices {
	return append(RawSlices(nil), tf.rawSlices...)
}

// Parameters returns the distinct parameters in order of first appearance.
func (tf *TemplatedFile) Parameters() Parameters {
	return append(Parameters(nil), tf.parameters...)
}

// SourcePosition maps an offset in TemplatedStr to the offset in SourceStr
// it came from. Offsets inside a replacement map to the start of the
// placeholder; offsets at or beyond the end map to len(SourceStr).
func (tf *TemplatedFile) SourcePosition(templatedIdx int) (sourceIdx int) {
	var s TemplatedFileSlice

	idx := tf.slices.findTemplated(templatedIdx)
	if idx < 0 {
		sourceIdx = clampOffset(templatedIdx, len(tf.SourceStr))
		if templatedIdx >= len(tf.TemplatedStr) {
			sourceIdx = len(tf.SourceStr)
		}
		goto end
	}
	s = tf.slices[idx]
	if s.Type == TemplatedSlice {
		sourceIdx = s.SourceSlice.Start
		goto end
	}
	sourceIdx = s.SourceSlice.Start + templatedIdx - s.TemplatedSlice.Start
end:
	return sourceIdx
}

// TemplatedPosition maps an offset in SourceStr to TemplatedStr. Offsets
// inside a placeholder map to the start of its replacement.
func (tf *TemplatedFile) TemplatedPosition(sourceIdx int) (templatedIdx int) {
	var s TemplatedFileSlice

	idx := tf.slices.findSource(sourceIdx)
	if idx < 0 {
		templatedIdx = clampOffset(sourceIdx, len(tf.TemplatedStr))
		if sourceIdx >= len(tf.SourceStr) {
			templatedIdx = len(tf.TemplatedStr)
		}
		goto end
	}
	s = tf.slices[idx]
	if s.Type == TemplatedSlice {
		templatedIdx = s.TemplatedSlice.Start
		goto end
	}
	templatedIdx = s.TemplatedSlice.Start + sourceIdx - s.SourceSlice.Start
end:
	return templatedIdx
}

// LineCol returns the 1-based line and byte column of a source offset.
func (tf *TemplatedFile) LineCol(sourceIdx int) (line, col int) {
	sourceIdx = clampOffset(sourceIdx, len(tf.SourceStr))
	before := tf.SourceStr[:sourceIdx]
	line = strings.Count(before, "\n") + 1
	col = sourceIdx - (strings.LastIndexByte(before, '\n') + 1) + 1
	return line, col
}

func clampOffset(offset, n int) int {
	return max(0, min(offset, n))
}
