package sqltemplater

import (
	"strconv"
	"strings"
)

// sliceState is the accumulator for one templating run. It is owned by a
// single call to Substitute and never shared.
type sliceState struct {
	src          string
	rawPos       int // end of the last consumed region in src
	templatedPos int // length of out so far
	paramCounter int // next synthetic name for nameless placeholders
	out          strings.Builder
	slices       TemplatedFileSlices
	rawSlices    RawSlices
	params       Parameters
	indexOf      map[Identifier]int
}

func newSliceState(src string) *sliceState {
	return &sliceState{
		src:          src,
		paramCounter: 1,
		slices:       make(TemplatedFileSlices, 0),
		rawSlices:    make(RawSlices, 0),
		params:       make(Parameters, 0),
		indexOf:      make(map[Identifier]int),
	}
}

// paramName returns the logical name of a match. Patterns without a
// param_name group get a shared 1-based counter.
func (s *sliceState) paramName(p *Pattern, m Match) (name Identifier) {
	if p.HasNameGroup() {
		name = Identifier(m.Name)
		goto end
	}
	name = Identifier(strconv.Itoa(s.paramCounter))
	s.paramCounter++
end:
	return name
}

// addLiteral copies src[s.rawPos:end] verbatim. A zero-length literal is
// still recorded so every placeholder is preceded by exactly one literal.
func (s *sliceState) addLiteral(end int) {
	n := end - s.rawPos
	s.slices = append(s.slices, TemplatedFileSlice{
		Type:           LiteralSlice,
		SourceSlice:    Span{Start: s.rawPos, End: end},
		TemplatedSlice: Span{Start: s.templatedPos, End: s.templatedPos + n},
	})
	s.rawSlices = append(s.rawSlices, RawSlice{
		Raw:       s.src[s.rawPos:end],
		Type:      LiteralSlice,
		SourceIdx: s.rawPos,
	})
	s.out.WriteString(s.src[s.rawPos:end])
	s.rawPos = end
	s.templatedPos += n
}

func (s *sliceState) addTemplated(m Match, name Identifier, replacement string) {
	s.slices = append(s.slices, TemplatedFileSlice{
		Type:           TemplatedSlice,
		SourceSlice:    Span{Start: m.Start, End: m.End},
		TemplatedSlice: Span{Start: s.templatedPos, End: s.templatedPos + len(replacement)},
	})
	s.rawSlices = append(s.rawSlices, RawSlice{
		Raw:       m.Raw,
		Type:      TemplatedSlice,
		SourceIdx: m.Start,
	})
	s.out.WriteString(replacement)
	s.rawPos = m.End
	s.templatedPos += len(replacement)
	s.addParameter(name, replacement)
}

func (s *sliceState) addParameter(name Identifier, replacement string) {
	idx, ok := s.indexOf[name]
	if ok {
		s.params[idx].Occurrences++
		return
	}
	s.indexOf[name] = len(s.params)
	s.params = append(s.params, Parameter{
		Name:        name,
		Index:       len(s.params) + 1,
		Replacement: replacement,
		Occurrences: 1,
	})
}

// finish adds the trailing literal, if any source text is left.
func (s *sliceState) finish() {
	if s.rawPos < len(s.src) {
		s.addLiteral(len(s.src))
	}
}
