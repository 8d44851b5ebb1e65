package sqltemplater

import (
	"fmt"
	"maps"
	"strconv"
)

// MergeSettings merges layers into a new Settings; later layers win on key
// collisions. Nil layers are skipped.
func MergeSettings(layers ...Settings) (merged Settings) {
	merged = make(Settings)
	for _, layer := range layers {
		maps.Copy(merged, layer)
	}
	return merged
}

// Has reports whether key is present, whatever its value.
func (s Settings) Has(key string) (ok bool) {
	_, ok = s[key]
	return ok
}

// String returns the value for key as SQL literal text. Strings are returned
// as-is; a nil value (e.g. YAML ~) becomes NULL.
func (s Settings) String(key string) (value string, ok bool) {
	var v any

	v, ok = s[key]
	if !ok {
		goto end
	}
	value = literalString(v)
end:
	return value, ok
}

// Bool returns the boolean value for key. Config files often carry flags as
// strings, so "true", "1", "False" and friends are accepted. A missing key is
// false.
func (s Settings) Bool(key string) (b bool, err error) {
	var v any
	var ok bool

	v, ok = s[key]
	if !ok || v == nil {
		goto end
	}
	switch t := v.(type) {
	case bool:
		b = t
	case string:
		b, err = strconv.ParseBool(t)
	case int:
		b = t != 0
	case int64:
		b = t != 0
	case float64:
		b = t != 0
	default:
		err = fmt.Errorf("unsupported type %T", v)
	}
	if err != nil {
		err = &ConfigurationError{
			Err: NewErr(ErrInvalidSetting, "key", key, "value", v),
		}
	}
end:
	return b, err
}

func literalString(v any) (s string) {
	switch t := v.(type) {
	case nil:
		s = "NULL"
	case string:
		s = t
	case float64:
		s = strconv.FormatFloat(t, 'f', -1, 64)
	case float32:
		s = strconv.FormatFloat(float64(t), 'f', -1, 32)
	default:
		s = fmt.Sprint(t)
	}
	return s
}
