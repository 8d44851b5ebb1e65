package settings

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mikeschinkel/go-sqltemplater"
)

// SectionKey is the top-level key (YAML) or block type (HCL) holding
// per-templater sections.
const SectionKey = "templater"

var (
	ErrUnsupportedFormat = errors.New("unsupported settings file format")
	ErrNonScalarValue    = errors.New("settings value must be a scalar")
)

// Format is a settings file syntax.
type Format string

const (
	YAMLFormat Format = "yaml"
	HCLFormat  Format = "hcl"
)

// FormatForPath picks the format from the file extension.
func FormatForPath(path string) (f Format, err error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		f = YAMLFormat
	case ".hcl":
		f = HCLFormat
	default:
		err = sqltemplater.NewErr(ErrUnsupportedFormat, "path", path)
	}
	return f, err
}

// LoadFile reads path and returns the settings for the named templater.
func LoadFile(path string) (sqltemplater.Settings, error) {
	format, err := FormatForPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read settings file %s: %w", path, err)
	}

	s, err := Parse(data, format, path)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings file %s: %w", path, err)
	}
	return s, nil
}

// Parse decodes data in the given format. filename is only used in HCL
// diagnostics.
func Parse(data []byte, format Format, filename string) (sqltemplater.Settings, error) {
	switch format {
	case YAMLFormat:
		return parseYAML(data)
	case HCLFormat:
		return parseHCL(data, filename)
	}
	return nil, sqltemplater.NewErr(ErrUnsupportedFormat, "format", format)
}

// checkScalar rejects nested lists and maps; a binding must render as a
// single SQL literal.
func checkScalar(key string, v any) error {
	switch v.(type) {
	case nil, string, bool, int, int64, float64:
		return nil
	}
	return sqltemplater.NewErr(ErrNonScalarValue, "key", key, "type", fmt.Sprintf("%T", v))
}
