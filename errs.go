package sqltemplater

import (
	"errors"
	"fmt"
	"strings"
)

// kvErr is an error made of one or more wrapped errors plus ordered
// key/value detail, e.g. "invalid setting; key=autofill_missing_params".
type kvErr struct {
	errs []error
	kvs  []kvPair
}

type kvPair struct {
	key   string
	value any
}

// NewErr builds an error from a mix of errors and key/value pairs. Every
// error argument is wrapped so errors.Is matches it; a string argument is a
// key and the argument after it is its value.
//
//	NewErr(ErrInvalidSetting, "key", "autofill_missing_params", "value", v)
func NewErr(parts ...any) error {
	e := &kvErr{}
	for i := 0; i < len(parts); i++ {
		switch p := parts[i].(type) {
		case nil:
			continue
		case error:
			e.errs = append(e.errs, p)
		case string:
			var v any
			if i+1 < len(parts) {
				i++
				v = parts[i]
			}
			e.kvs = append(e.kvs, kvPair{key: p, value: v})
		default:
			e.kvs = append(e.kvs, kvPair{key: fmt.Sprintf("arg%d", i), value: p})
		}
	}
	return e
}

func (e *kvErr) Error() string {
	var b strings.Builder
	for i, err := range e.errs {
		if i > 0 {
			b.WriteString(": ")
		}
		b.WriteString(err.Error())
	}
	for _, kv := range e.kvs {
		if b.Len() > 0 {
			b.WriteString("; ")
		}
		fmt.Fprintf(&b, "%s=%v", kv.key, kv.value)
	}
	return b.String()
}

func (e *kvErr) Unwrap() []error {
	return e.errs
}

// CombineErrs returns nil for no errors, the error itself for one, and a
// joined error otherwise.
func CombineErrs(errs []error) (err error) {
	switch len(errs) {
	case 0:
	case 1:
		err = errs[0]
	default:
		err = errors.Join(errs...)
	}
	return err
}
