package settings

import (
	"fmt"

	"github.com/mikeschinkel/go-sqltemplater"
	"gopkg.in/yaml.v3"
)

func parseYAML(data []byte) (sqltemplater.Settings, error) {
	var doc map[string]any

	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse settings YAML: %w", err)
	}

	section := doc
	if raw, ok := doc[SectionKey]; ok {
		sections, ok := raw.(map[string]any)
		if !ok {
			return nil, sqltemplater.NewErr(sqltemplater.ErrInvalidSetting, "key", SectionKey, "type", fmt.Sprintf("%T", raw))
		}
		section, _ = sections[sqltemplater.TemplaterName].(map[string]any)
	}

	s := make(sqltemplater.Settings, len(section))
	for k, v := range section {
		if err := checkScalar(k, v); err != nil {
			return nil, err
		}
		s[k] = v
	}
	return s, nil
}
