// Package sqltemplater replaces bind-parameter placeholders in SQL text with
// literal values while keeping a byte-exact mapping between the original
// source and the templated result.
//
// The templated text is meant for a downstream SQL linter or parser. Every
// position that tool reports against the templated text can be translated
// back into the user's source through the slices of a TemplatedFile.
//
// Placeholders are found with a regular expression selected by name
// (param_style, e.g. "sqlc" for @name::type tokens) or supplied directly
// (param_regex). Each placeholder is replaced either with an explicitly
// configured value or, when autofill_missing_params is set, with a literal
// derived from its ::type annotation.
package sqltemplater

// Identifier is the logical name of a bind parameter, e.g. user_id for the
// sqlc placeholder @user_id::integer. Placeholders without a name group are
// given synthetic 1-based names ("1", "2", ...).
type Identifier string

// SQLQuery is for the SQL text being templated. It may be for any dialect;
// nothing in this package parses it.
type SQLQuery string

// Settings is one layer of templater options keyed by option name. Keys that
// are not recognized options are parameter bindings: param name -> value.
type Settings map[string]any

// Violation is a structural lint finding produced while templating. The
// templater never produces any, but hosts expect the slot.
type Violation struct {
	Msg    string
	Offset int
}
