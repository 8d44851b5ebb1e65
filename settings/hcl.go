package settings

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/mikeschinkel/go-sqltemplater"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"
)

var rootSchema = &hcl.BodySchema{
	Blocks: []hcl.BlockHeaderSchema{
		{Type: SectionKey, LabelNames: []string{"name"}},
	},
}

func parseHCL(data []byte, filename string) (sqltemplater.Settings, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(data, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse settings HCL %s: %w", filename, diags)
	}

	content, remain, diags := file.Body.PartialContent(rootSchema)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode settings HCL %s: %w", filename, diags)
	}

	body := remain
	found := false
	for _, block := range content.Blocks {
		if block.Labels[0] == sqltemplater.TemplaterName {
			body, found = block.Body, true
		}
	}
	if len(content.Blocks) > 0 && !found {
		// only sections for other templaters
		return sqltemplater.Settings{}, nil
	}

	attrs, diags := body.JustAttributes()
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode settings HCL %s: %w", filename, diags)
	}

	s := make(sqltemplater.Settings, len(attrs))
	for name, attr := range attrs {
		val, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to evaluate %s in %s: %w", name, filename, diags)
		}
		native, err := ctyToNative(name, val)
		if err != nil {
			return nil, err
		}
		s[name] = native
	}
	return s, nil
}

// ctyToNative converts a scalar cty.Value to string, bool, int64 or
// float64. Whole numbers become int64 so they print without a decimal point.
func ctyToNative(name string, v cty.Value) (any, error) {
	if v.IsNull() || !v.IsKnown() {
		return nil, nil
	}

	switch ty := v.Type(); ty {
	case cty.String:
		return v.AsString(), nil

	case cty.Bool:
		return v.True(), nil

	case cty.Number:
		bf := v.AsBigFloat()
		if bf.IsInt() {
			var i int64
			if err := gocty.FromCtyValue(v, &i); err == nil {
				return i, nil
			}
		}
		var f float64
		if err := gocty.FromCtyValue(v, &f); err != nil {
			return nil, fmt.Errorf("could not convert %s to float64: %w", name, err)
		}
		return f, nil

	default:
		return nil, sqltemplater.NewErr(ErrNonScalarValue, "key", name, "type", ty.FriendlyName())
	}
}
