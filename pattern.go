package sqltemplater

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// runeGuard reports whether a rune adjacent to a match disqualifies it.
type runeGuard func(r rune) bool

// Pattern is a compiled placeholder pattern. It is read-only once built and
// safe for concurrent use.
//
// Go's regexp has no look-around, so the built-in styles express "not
// preceded by" and "not followed by" as guards checked against the runes
// on either side of each candidate match.
type Pattern struct {
	re        *regexp.Regexp
	nameIdx   int
	typeIdx   int
	notAfter  runeGuard
	notBefore runeGuard
}

// Match is one placeholder occurrence found in the source text.
type Match struct {
	Start int    // byte offset of the token in the source
	End   int    // byte offset just past the token, including any type annotation
	Raw   string // full token, e.g. "@ids::integer[]"

	// Name is the captured param_name group. NameOK is false when the
	// pattern has that group but it did not participate in this match.
	Name   string
	NameOK bool

	// Type is the captured param_type group, empty when absent.
	Type string
}

// CompilePattern compiles a caller-supplied param_regex. Name and type are
// read from the param_name and param_type groups, written (?P<param_name>...).
func CompilePattern(expr string) (p *Pattern, err error) {
	var re *regexp.Regexp

	re, err = regexp.Compile(expr)
	if err != nil {
		err = &ConfigurationError{
			Err: NewErr(ErrInvalidParamRegex, err, "param_regex", expr),
		}
		goto end
	}
	p = newPattern(re, nil, nil)
end:
	return p, err
}

func mustPattern(expr string, notAfter, notBefore runeGuard) *Pattern {
	return newPattern(regexp.MustCompile(expr), notAfter, notBefore)
}

func newPattern(re *regexp.Regexp, notAfter, notBefore runeGuard) *Pattern {
	return &Pattern{
		re:        re,
		nameIdx:   re.SubexpIndex(ParamNameGroup),
		typeIdx:   re.SubexpIndex(ParamTypeGroup),
		notAfter:  notAfter,
		notBefore: notBefore,
	}
}

// String returns the source text of the regular expression.
func (p *Pattern) String() string {
	return p.re.String()
}

// HasNameGroup reports whether the pattern captures a param_name. When it
// does not, placeholders get synthetic 1-based names.
func (p *Pattern) HasNameGroup() bool {
	return p.nameIdx >= 0
}

func (p *Pattern) HasTypeGroup() bool {
	return p.typeIdx >= 0
}

// FindAll returns the leftmost, non-overlapping matches in src, in order.
// Matches rejected by a guard are skipped.
func (p *Pattern) FindAll(src string) (matches []Match) {
	locs := p.re.FindAllStringSubmatchIndex(src, -1)
	matches = make([]Match, 0, len(locs))
	for _, loc := range locs {
		start, end := loc[0], loc[1]
		if !p.accepts(src, start, end) {
			continue
		}
		m := Match{
			Start: start,
			End:   end,
			Raw:   src[start:end],
		}
		if p.nameIdx >= 0 && loc[2*p.nameIdx] >= 0 {
			m.Name = src[loc[2*p.nameIdx]:loc[2*p.nameIdx+1]]
			m.NameOK = true
		}
		if p.typeIdx >= 0 && loc[2*p.typeIdx] >= 0 {
			m.Type = src[loc[2*p.typeIdx]:loc[2*p.typeIdx+1]]
		}
		matches = append(matches, m)
	}
	return matches
}

func (p *Pattern) accepts(src string, start, end int) (ok bool) {
	if p.notAfter != nil && start > 0 {
		r, _ := utf8.DecodeLastRuneInString(src[:start])
		if p.notAfter(r) {
			goto end
		}
	}
	if p.notBefore != nil && end < len(src) {
		r, _ := utf8.DecodeRuneInString(src[end:])
		if p.notBefore(r) {
			goto end
		}
	}
	ok = true
end:
	return ok
}

// runeIn returns a guard matching any of the given runes.
func runeIn(chars string) runeGuard {
	return func(r rune) bool {
		return strings.ContainsRune(chars, r)
	}
}

// wordOr returns a guard matching word runes (letters, digits, underscore)
// and any of the given runes.
func wordOr(chars string) runeGuard {
	return func(r rune) bool {
		return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) || strings.ContainsRune(chars, r)
	}
}
