package sqltemplater

const (
	// TemplaterName is the name hosts use to select this templater, and the
	// name of its section in settings files.
	TemplaterName = "sqlfluff-sqlc-postgres"

	// DefaultParamStyle is the style used by the CLI when no pattern option
	// is given anywhere.
	DefaultParamStyle = SQLCParamStyle
)

// Option keys recognized in Settings.
const (
	ParamRegexOption            = "param_regex"
	ParamStyleOption            = "param_style"
	AutofillMissingParamsOption = "autofill_missing_params"
	LogParamReplacementsOption  = "log_param_replacements"
)

// Capture group names a placeholder pattern may define.
const (
	ParamNameGroup = "param_name"
	ParamTypeGroup = "param_type"
)

// DefaultSettings returns the lowest-priority settings layer.
func DefaultSettings() Settings {
	return Settings{
		"test_value": "__test__",
	}
}
