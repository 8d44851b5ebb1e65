// Package settings loads the templater's section from a configuration file,
// producing the "loaded" layer that sits between the package defaults and
// caller overrides.
//
// # YAML
//
//	templater:
//	  sqlfluff-sqlc-postgres:
//	    param_style: sqlc
//	    autofill_missing_params: true
//	    user_id: 42
//
// # HCL
//
//	templater "sqlfluff-sqlc-postgres" {
//	  param_style             = "sqlc"
//	  autofill_missing_params = true
//	  user_id                 = 42
//	}
//
// A file without a templater section is read as a flat map of settings.
// Values must be scalars: strings, numbers, booleans or null.
package settings
