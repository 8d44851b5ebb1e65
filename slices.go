package sqltemplater

// SliceType tags a slice as copied literal text or a substituted placeholder.
type SliceType string

const (
	LiteralSlice   SliceType = "literal"
	TemplatedSlice SliceType = "templated"
)

// Span is a half-open byte range [Start, End).
type Span struct {
	Start int
	End   int
}

func (s Span) Len() int {
	return s.End - s.Start
}

// Contains reports whether offset falls inside the span.
func (s Span) Contains(offset int) bool {
	return offset >= s.Start && offset < s.End
}

// RawSlice is one contiguous region of the source text.
type RawSlice struct {
	Raw       string    // source bytes of the region
	Type      SliceType // literal or templated
	SourceIdx int       // byte offset of Raw in the source
}

// TemplatedFileSlice maps a region of the source text to the region of the
// templated text it produced.
type TemplatedFileSlice struct {
	Type           SliceType
	SourceSlice    Span
	TemplatedSlice Span
}

type RawSlices []RawSlice

type TemplatedFileSlices []TemplatedFileSlice

// Templated returns only the placeholder slices.
func (tfs TemplatedFileSlices) Templated() (out TemplatedFileSlices) {
	out = make(TemplatedFileSlices, 0, len(tfs)/2)
	for _, s := range tfs {
		if s.Type != TemplatedSlice {
			continue
		}
		out = append(out, s)
	}
	return out
}

// findTemplated returns the index of the slice whose templated span holds
// offset. Zero-length slices never hold an offset.
func (tfs TemplatedFileSlices) findTemplated(offset int) (idx int) {
	idx = -1
	for i, s := range tfs {
		if s.TemplatedSlice.Contains(offset) {
			idx = i
			break
		}
	}
	return idx
}

func (tfs TemplatedFileSlices) findSource(offset int) (idx int) {
	idx = -1
	for i, s := range tfs {
		if s.SourceSlice.Contains(offset) {
			idx = i
			break
		}
	}
	return idx
}
