// Package sqltemplater/errors defines error values used throughout the
// sqltemplater package. Configuration problems are reported before any text
// is scanned; a missing parameter is the only failure that depends on the
// text being templated.
package sqltemplater

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for various sqltemplater operations.
var (
	// ErrConfiguration is matched by every *ConfigurationError.
	ErrConfiguration = errors.New("invalid templater configuration")

	// ErrParamOptionsExclusive indicates both param_style and param_regex were set.
	ErrParamOptionsExclusive = errors.New("either param_style or param_regex must be provided, not both")

	// ErrParamOptionRequired indicates neither param_style nor param_regex was set.
	ErrParamOptionRequired = errors.New("no param_regex nor param_style was provided to the placeholder templater")

	ErrUnknownParamStyle = errors.New("unknown param_style")

	ErrInvalidParamRegex = errors.New("invalid param_regex")

	// ErrInvalidSetting indicates an option value of the wrong type, e.g. a
	// non-boolean autofill_missing_params.
	ErrInvalidSetting = errors.New("invalid setting")

	// ErrMissingParameter is matched by every *MissingParameterError.
	ErrMissingParameter = errors.New("missing parameter")
)

// ConfigurationError is returned while resolving the effective context,
// before any scanning begins.
type ConfigurationError struct {
	// Err is one of the specific sentinels above, possibly carrying
	// key/value detail added with NewErr.
	Err error

	// Style, KnownStyles and Suggestion are only set for ErrUnknownParamStyle.
	Style       ParamStyle
	KnownStyles []ParamStyle
	Suggestion  ParamStyle
}

func (e *ConfigurationError) Error() string {
	var b strings.Builder
	if !errors.Is(e.Err, ErrUnknownParamStyle) {
		return e.Err.Error()
	}
	names := make([]string, len(e.KnownStyles))
	for i, s := range e.KnownStyles {
		names[i] = string(s)
	}
	fmt.Fprintf(&b, "%s %q, available are: [%s]", ErrUnknownParamStyle, e.Style, strings.Join(names, ", "))
	if e.Suggestion != "" {
		fmt.Fprintf(&b, " (did you mean %q?)", e.Suggestion)
	}
	return b.String()
}

func (e *ConfigurationError) Unwrap() []error {
	return []error{ErrConfiguration, e.Err}
}

// MissingParameterError is returned when a placeholder has no configured
// value and autofill does not apply. It aborts templating.
type MissingParameterError struct {
	Name Identifier
}

func (e *MissingParameterError) Error() string {
	return fmt.Sprintf("failure in placeholder templating: '%s'. Have you configured your variables?", e.Name)
}

func (e *MissingParameterError) Unwrap() error {
	return ErrMissingParameter
}
