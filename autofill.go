package sqltemplater

import (
	"fmt"
	"log/slog"
)

// valueResolver turns one placeholder into its replacement literal.
type valueResolver struct {
	ctx      *Context
	logger   *slog.Logger
	sink     NoticeSink
	filename string
}

// resolveValue prefers autofill only for names that are not bound at all;
// an explicit binding always wins over the type annotation.
func (vr valueResolver) resolveValue(name Identifier, m Match) (value string, err error) {
	var ok bool

	if vr.ctx.AutofillMissingParams && !vr.ctx.Has(name) {
		value = vr.autofillValue(name, m)
		goto notice
	}
	value, ok = vr.ctx.Lookup(name)
	if !ok {
		err = &MissingParameterError{Name: name}
		goto end
	}
notice:
	if vr.ctx.LogParamReplacements {
		vr.sink.Notice(Notice{
			Level:       ReplacementNotice,
			Filename:    vr.filename,
			Raw:         m.Raw,
			Param:       name,
			Replacement: value,
		})
	}
end:
	return value, err
}

func (vr valueResolver) autofillValue(name Identifier, m Match) string {
	var msg string

	kind, ok := ParseAutofillKind(m.Type)
	switch {
	case ok:
		return AutofillValues[kind]
	case m.Type == "":
		msg = fmt.Sprintf("No type was specified for parameter %s. Assuming text.", name)
	default:
		msg = fmt.Sprintf("Parsed type of parameter %s was not recognized. Assuming text. "+
			"You can manually specify the parameter value in your config file instead.", name)
	}
	vr.logger.Info("assumed text for parameter",
		"param", string(name),
		"type", m.Type,
		"file", vr.filename,
	)
	if vr.ctx.LogParamReplacements {
		vr.sink.Notice(Notice{
			Level:       AssumedTextNotice,
			Filename:    vr.filename,
			Raw:         m.Raw,
			Param:       name,
			Replacement: AutofillValues[StringAutofill],
			Msg:         msg,
		})
	}
	return AutofillValues[StringAutofill]
}
