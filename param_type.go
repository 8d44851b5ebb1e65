package sqltemplater

import (
	"strings"
)

// AutofillKind names a row of the autofill table.
type AutofillKind string

const (
	IntegerArrayAutofill AutofillKind = "integer_array"
	FloatArrayAutofill   AutofillKind = "float_array"
	BooleanArrayAutofill AutofillKind = "boolean_array"
	TextArrayAutofill    AutofillKind = "text_array"
	IntegerAutofill      AutofillKind = "integer"
	FloatAutofill        AutofillKind = "float"
	BooleanAutofill      AutofillKind = "boolean"
	DateAutofill         AutofillKind = "date"
	StringAutofill       AutofillKind = "string"
)

// AutofillValues are the literals substituted for unbound parameters.
var AutofillValues = map[AutofillKind]string{
	IntegerArrayAutofill: "ARRAY[1,2,3]",
	FloatArrayAutofill:   "ARRAY[1.1,2.2,3.3]",
	BooleanArrayAutofill: "ARRAY[true,false,true]",
	TextArrayAutofill:    "ARRAY['abc','def','ghi']",
	IntegerAutofill:      "1000",
	FloatAutofill:        "1.2345",
	BooleanAutofill:      "true",
	DateAutofill:         "CURRENT_DATE",
	StringAutofill:       "'string'",
}

type autofillRule struct {
	contains []string
	kind     AutofillKind
}

// autofillRules is checked top to bottom and the first rule with a matching
// substring wins. Scalar names are substrings of the array names, so the
// array rules must come first.
var autofillRules = []autofillRule{
	{contains: []string{"integer[]", "int[]"}, kind: IntegerArrayAutofill},
	{contains: []string{"float[]"}, kind: FloatArrayAutofill},
	{contains: []string{"boolean[]"}, kind: BooleanArrayAutofill},
	{contains: []string{"text[]"}, kind: TextArrayAutofill},
	{contains: []string{"integer", "int"}, kind: IntegerAutofill},
	{contains: []string{"float"}, kind: FloatAutofill},
	{contains: []string{"boolean"}, kind: BooleanAutofill},
	{contains: []string{"date"}, kind: DateAutofill},
}

// ParseAutofillKind maps a type annotation such as "INTEGER[]" or "bigint"
// to its autofill kind. ok is false when no rule matched, in which case
// StringAutofill is returned.
func ParseAutofillKind(paramType string) (kind AutofillKind, ok bool) {
	t := strings.ToLower(paramType)
	for _, rule := range autofillRules {
		for _, s := range rule.contains {
			if !strings.Contains(t, s) {
				continue
			}
			kind, ok = rule.kind, true
			goto end
		}
	}
	kind = StringAutofill
end:
	return kind, ok
}
