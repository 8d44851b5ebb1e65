package sqltemplater

// Context is the effective configuration for one templating run: the merged
// settings plus the compiled placeholder pattern. It is not modified after
// ResolveContext returns.
type Context struct {
	Pattern               *Pattern
	AutofillMissingParams bool
	LogParamReplacements  bool

	settings Settings
}

// ResolveContext merges defaults < loaded < overrides and validates the
// pattern options. Exactly one of param_regex and param_style must be
// present in the merged result.
func ResolveContext(defaults, loaded, overrides Settings) (ctx *Context, err error) {
	var merged Settings
	var pattern *Pattern
	var autofill, logReplacements bool

	merged = MergeSettings(defaults, loaded, overrides)

	switch {
	case merged.Has(ParamRegexOption) && merged.Has(ParamStyleOption):
		err = &ConfigurationError{Err: ErrParamOptionsExclusive}
	case merged.Has(ParamRegexOption):
		expr, _ := merged.String(ParamRegexOption)
		pattern, err = CompilePattern(expr)
	case merged.Has(ParamStyleOption):
		style, _ := merged.String(ParamStyleOption)
		pattern, err = LookupParamStyle(ParamStyle(style))
	default:
		err = &ConfigurationError{Err: ErrParamOptionRequired}
	}
	if err != nil {
		goto end
	}

	autofill, err = merged.Bool(AutofillMissingParamsOption)
	if err != nil {
		goto end
	}
	logReplacements, err = merged.Bool(LogParamReplacementsOption)
	if err != nil {
		goto end
	}

	ctx = &Context{
		Pattern:               pattern,
		AutofillMissingParams: autofill,
		LogParamReplacements:  logReplacements,
		settings:              merged,
	}
end:
	return ctx, err
}

// Has reports whether name is bound in the merged settings. Option keys
// count too, as they share the same namespace as parameter bindings.
func (c *Context) Has(name Identifier) bool {
	return c.settings.Has(string(name))
}

// Lookup returns the literal bound to name.
func (c *Context) Lookup(name Identifier) (value string, ok bool) {
	return c.settings.String(string(name))
}

// Settings returns a copy of the merged settings.
func (c *Context) Settings() Settings {
	return MergeSettings(c.settings)
}
