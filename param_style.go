package sqltemplater

import (
	"slices"
	"sort"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// ParamStyle names a built-in placeholder pattern.
type ParamStyle string

const (
	SQLCParamStyle          ParamStyle = "sqlc"
	ColonParamStyle         ParamStyle = "colon"
	ColonNoSpacesParamStyle ParamStyle = "colon_nospaces"
	NumericColonParamStyle  ParamStyle = "numeric_colon"
	PyformatParamStyle      ParamStyle = "pyformat"
	DollarParamStyle        ParamStyle = "dollar"
	NumericDollarParamStyle ParamStyle = "numeric_dollar"
	QuestionMarkParamStyle  ParamStyle = "question_mark"
	PercentParamStyle       ParamStyle = "percent"
	AmpersandParamStyle     ParamStyle = "ampersand"
)

// word is a unicode-aware \w; Go's \w is ASCII only.
const word = `\p{L}\p{N}_`

// notAfterWord rejects tokens glued to a word, a colon or a backslash, so
// e.g. the cast in x::int or an escaped \:name is not a placeholder.
var notAfterWord = wordOr(`:\`)

var paramStyles = map[ParamStyle]*Pattern{
	// @name or @name::type, as written in sqlc queries for PostgreSQL.
	SQLCParamStyle: mustPattern(`@(?P<param_name>[`+word+`]+)(::(?P<param_type>[`+word+`\[\]]+))?`, nil, nil),

	ColonParamStyle:         mustPattern(`:(?P<param_name>[`+word+`]+)`, notAfterWord, runeIn(":")),
	ColonNoSpacesParamStyle: mustPattern(`:(?P<param_name>[`+word+`]+)`, runeIn(":"), nil),
	NumericColonParamStyle:  mustPattern(`:(?P<param_name>\d+)`, notAfterWord, nil),
	PyformatParamStyle:      mustPattern(`%\((?P<param_name>[`+word+`]+)\)s`, notAfterWord, nil),
	DollarParamStyle:        mustPattern(`\$(?P<param_name>[`+word+`]+)`, notAfterWord, nil),
	NumericDollarParamStyle: mustPattern(`\$(?P<param_name>\d+)`, notAfterWord, nil),
	QuestionMarkParamStyle:  mustPattern(`\?`, notAfterWord, nil),
	PercentParamStyle:       mustPattern(`%s`, wordOr("-"), nil),
	AmpersandParamStyle:     mustPattern(`&\{?(?P<param_name>[`+word+`]+)\}?`, runeIn("&"), nil),
}

// ParamStyles returns the registered style names, sorted.
func ParamStyles() (styles []ParamStyle) {
	styles = make([]ParamStyle, 0, len(paramStyles))
	for s := range paramStyles {
		styles = append(styles, s)
	}
	slices.Sort(styles)
	return styles
}

// LookupParamStyle returns the compiled pattern registered for style. An
// unknown style is a *ConfigurationError listing every registered style.
func LookupParamStyle(style ParamStyle) (p *Pattern, err error) {
	var ok bool

	p, ok = paramStyles[style]
	if ok {
		goto end
	}
	err = &ConfigurationError{
		Err:         ErrUnknownParamStyle,
		Style:       style,
		KnownStyles: ParamStyles(),
		Suggestion:  suggestParamStyle(style),
	}
end:
	return p, err
}

func suggestParamStyle(style ParamStyle) (suggestion ParamStyle) {
	var ranks fuzzy.Ranks

	names := make([]string, 0, len(paramStyles))
	for _, s := range ParamStyles() {
		names = append(names, string(s))
	}
	ranks = fuzzy.RankFindFold(string(style), names)
	if len(ranks) == 0 {
		goto end
	}
	sort.Sort(ranks)
	suggestion = ParamStyle(ranks[0].Target)
end:
	return suggestion
}
