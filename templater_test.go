package sqltemplater

import (
	"errors"
	"testing"
	"time"
)

// noinspection SqlResolveForFile

func TestProcess(t *testing.T) {
	tests := []struct {
		name          string
		sql           SQLQuery
		overrides     Settings
		expected      SQLQuery
		expectError   bool
		expectedError error
	}{
		{
			name:      "no placeholders",
			sql:       "SELECT * FROM {{blah}} WHERE %(gnepr)s OR e~':'",
			overrides: Settings{"param_style": "sqlc"},
			expected:  "SELECT * FROM {{blah}} WHERE %(gnepr)s OR e~':'",
		},
		{
			name: "explicit param and autofilled untyped param",
			sql:  "SELECT bla FROM blob WHERE missing_param = @missing_param AND explicit_param = @explicit_param",
			overrides: Settings{
				"param_style":             "sqlc",
				"autofill_missing_params": true,
				"explicit_param":          "explicit_param",
			},
			expected: "SELECT bla FROM blob WHERE missing_param = 'string' AND explicit_param = explicit_param",
		},
		{
			name: "explicit param wins over its type annotation",
			sql:  "SELECT * FROM users WHERE id = @id::integer",
			overrides: Settings{
				"param_style":             "sqlc",
				"autofill_missing_params": true,
				"id":                      "42",
			},
			expected: "SELECT * FROM users WHERE id = 42",
		},
		{
			name: "integer array autofill",
			sql:  "SELECT bla FROM blob WHERE missing_param = @missing_param::integer[]",
			overrides: Settings{
				"param_style":             "sqlc",
				"autofill_missing_params": true,
			},
			expected: "SELECT bla FROM blob WHERE missing_param = ARRAY[1,2,3]",
		},
		{
			name: "same param twice",
			sql:  "SELECT * FROM orders WHERE created_at >= @since AND updated_at >= @since",
			overrides: Settings{
				"param_style": "sqlc",
				"since":       "'2024-01-01'",
			},
			expected: "SELECT * FROM orders WHERE created_at >= '2024-01-01' AND updated_at >= '2024-01-01'",
		},
		{
			name: "adjacent placeholders",
			sql:  "SELECT @a@b",
			overrides: Settings{
				"param_style": "sqlc",
				"a":           "1",
				"b":           "2",
			},
			expected: "SELECT 12",
		},
		{
			name: "question marks get 1-based synthetic names",
			sql:  "SELECT * FROM t WHERE a = ? AND b = ?",
			overrides: Settings{
				"param_style": "question_mark",
				"1":           "'x'",
				"2":           "7",
			},
			expected: "SELECT * FROM t WHERE a = 'x' AND b = 7",
		},
		{
			name: "colon style skips casts",
			sql:  "SELECT name::text FROM users WHERE id = :id",
			overrides: Settings{
				"param_style": "colon",
				"id":          "5",
			},
			expected: "SELECT name::text FROM users WHERE id = 5",
		},
		{
			name: "custom regex",
			sql:  "SELECT * FROM users WHERE id = {{ id }}",
			overrides: Settings{
				"param_regex": `\{\{ (?P<param_name>\w+) \}\}`,
				"id":          "1",
			},
			expected: "SELECT * FROM users WHERE id = 1",
		},
		{
			name: "non-string binding",
			sql:  "SELECT * FROM users LIMIT @limit",
			overrides: Settings{
				"param_style": "sqlc",
				"limit":       10,
			},
			expected: "SELECT * FROM users LIMIT 10",
		},
		// Error cases
		{
			name:          "missing param without autofill",
			sql:           "SELECT name FROM table WHERE user_id = @user_id",
			overrides:     Settings{"param_style": "sqlc"},
			expectError:   true,
			expectedError: ErrMissingParameter,
		},
		{
			name:          "neither pattern option",
			sql:           "SELECT 2+2",
			overrides:     Settings{"name": "'john'"},
			expectError:   true,
			expectedError: ErrParamOptionRequired,
		},
		{
			name:          "both pattern options",
			sql:           "SELECT 2+2",
			overrides:     Settings{"param_style": "bla", "param_regex": "bli"},
			expectError:   true,
			expectedError: ErrParamOptionsExclusive,
		},
		{
			name:          "unknown style",
			sql:           "SELECT 2+2",
			overrides:     Settings{"param_style": "pperccent"},
			expectError:   true,
			expectedError: ErrUnknownParamStyle,
		},
		{
			name:          "invalid regex",
			sql:           "SELECT 2+2",
			overrides:     Settings{"param_regex": "(?P<param_name>"},
			expectError:   true,
			expectedError: ErrInvalidParamRegex,
		},
		{
			name:          "invalid autofill flag",
			sql:           "SELECT 2+2",
			overrides:     Settings{"param_style": "sqlc", "autofill_missing_params": "sometimes"},
			expectError:   true,
			expectedError: ErrInvalidSetting,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, violations, err := New(tt.overrides).Process(tt.sql, "test", nil)

			if tt.expectError {
				if err == nil {
					t.Fatalf("expected error but got none")
				}
				if tt.expectedError != nil && !errors.Is(err, tt.expectedError) {
					t.Errorf("expected error %v, got %v", tt.expectedError, err)
				}
				if result != nil {
					t.Errorf("expected no result on error, got %q", result.TemplatedStr)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(violations) != 0 {
				t.Errorf("expected no violations, got %d", len(violations))
			}
			if result.TemplatedStr != string(tt.expected) {
				t.Errorf("SQL mismatch:\nexpected: %q\nactual:   %q", tt.expected, result.TemplatedStr)
			}
			if result.SourceStr != string(tt.sql) {
				t.Errorf("source mismatch:\nexpected: %q\nactual:   %q", tt.sql, result.SourceStr)
			}
			checkSliceInvariants(t, result)
		})
	}
}

func TestProcess_Autofill(t *testing.T) {
	tests := []struct {
		name     string
		sql      SQLQuery
		expected string
	}{
		{name: "boolean", sql: "SELECT bla FROM blob WHERE missing_param IS @missing_param::boolean", expected: "SELECT bla FROM blob WHERE missing_param IS true"},
		{name: "integer", sql: "SELECT bla FROM blob WHERE missing_param = @missing_param::integer", expected: "SELECT bla FROM blob WHERE missing_param = 1000"},
		{name: "float", sql: "SELECT bla FROM blob WHERE missing_param = @missing_param::float", expected: "SELECT bla FROM blob WHERE missing_param = 1.2345"},
		{name: "date", sql: "SELECT bla FROM blob WHERE missing_param = @missing_param::date", expected: "SELECT bla FROM blob WHERE missing_param = CURRENT_DATE"},
		{name: "integer array", sql: "SELECT bla FROM blob WHERE missing_param = @missing_param::integer[]", expected: "SELECT bla FROM blob WHERE missing_param = ARRAY[1,2,3]"},
		{name: "text array", sql: "SELECT bla FROM blob WHERE missing_param = @missing_param::text[]", expected: "SELECT bla FROM blob WHERE missing_param = ARRAY['abc','def','ghi']"},
		{name: "boolean array", sql: "SELECT bla FROM blob WHERE missing_param = @missing_param::boolean[]", expected: "SELECT bla FROM blob WHERE missing_param = ARRAY[true,false,true]"},
		{name: "float array", sql: "SELECT bla FROM blob WHERE missing_param = @missing_param::float[]", expected: "SELECT bla FROM blob WHERE missing_param = ARRAY[1.1,2.2,3.3]"},
		{name: "untyped", sql: "SELECT bla FROM blob WHERE missing_param = @missing_param", expected: "SELECT bla FROM blob WHERE missing_param = 'string'"},
		{name: "unrecognized type", sql: "SELECT bla FROM blob WHERE missing_param = @missing_param::uuid", expected: "SELECT bla FROM blob WHERE missing_param = 'string'"},
		{name: "upper case type", sql: "SELECT bla FROM blob WHERE missing_param = @missing_param::INT[]", expected: "SELECT bla FROM blob WHERE missing_param = ARRAY[1,2,3]"},
	}

	templater := New(Settings{
		"param_style":             "sqlc",
		"autofill_missing_params": true,
		"explicit_param":          "explicit_param",
	})
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, _, err := templater.Process(tt.sql, "test", nil)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if result.TemplatedStr != tt.expected {
				t.Errorf("SQL mismatch:\nexpected: %q\nactual:   %q", tt.expected, result.TemplatedStr)
			}
		})
	}
}

func TestProcess_MissingParameterName(t *testing.T) {
	_, _, err := New(Settings{"param_style": "sqlc"}).Process("SELECT name FROM table WHERE user_id = @user_id", "test", nil)

	var mpe *MissingParameterError
	if !errors.As(err, &mpe) {
		t.Fatalf("expected *MissingParameterError, got %T: %v", err, err)
	}
	if mpe.Name != "user_id" {
		t.Errorf("expected name %q, got %q", "user_id", mpe.Name)
	}
	if mpe.Error() != "failure in placeholder templating: 'user_id'. Have you configured your variables?" {
		t.Errorf("unexpected message %q", mpe.Error())
	}
}

// TestProcess_NoHang makes sure patterns that can match the empty string do
// not stall the scanner.
func TestProcess_NoHang(t *testing.T) {
	tests := []struct {
		name  string
		regex string
		sql   SQLQuery
	}{
		{name: "empty-matching regex", regex: `(?P<param_name>x*)`, sql: "SELECT y FROM z"},
		{name: "optional group", regex: `@(?P<param_name>\w*)`, sql: "@@@ @ @a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			done := make(chan struct{})
			var result *TemplatedFile
			var err error

			go func() {
				result, _, err = New(Settings{
					"param_regex":             tt.regex,
					"autofill_missing_params": true,
				}).Process(tt.sql, "test", nil)
				close(done)
			}()

			select {
			case <-done:
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				checkSliceInvariants(t, result)
			case <-time.After(100 * time.Millisecond):
				t.Fatal("templater hung - took longer than 100ms")
			}
		})
	}
}

// checkSliceInvariants verifies the structural guarantees of a TemplatedFile.
func checkSliceInvariants(t *testing.T, tf *TemplatedFile) {
	t.Helper()

	slices := tf.Slices()
	raws := tf.RawSlices()
	if len(slices) != len(raws) {
		t.Fatalf("slices/raw slices length mismatch: %d vs %d", len(slices), len(raws))
	}
	if tf.SourceStr == "" && len(slices) != 0 {
		t.Fatalf("expected no slices for empty input, got %d", len(slices))
	}

	var source, templated string
	var srcPos, tplPos int
	for i, s := range slices {
		if s.SourceSlice.Start != srcPos {
			t.Errorf("slice %d: source starts at %d, expected %d", i, s.SourceSlice.Start, srcPos)
		}
		if s.TemplatedSlice.Start != tplPos {
			t.Errorf("slice %d: templated starts at %d, expected %d", i, s.TemplatedSlice.Start, tplPos)
		}
		if raws[i].SourceIdx != s.SourceSlice.Start || raws[i].Type != s.Type {
			t.Errorf("slice %d: raw slice %+v does not match %+v", i, raws[i], s)
		}
		srcText := tf.SourceStr[s.SourceSlice.Start:s.SourceSlice.End]
		tplText := tf.TemplatedStr[s.TemplatedSlice.Start:s.TemplatedSlice.End]
		if raws[i].Raw != srcText {
			t.Errorf("slice %d: raw %q, expected %q", i, raws[i].Raw, srcText)
		}
		if s.Type == LiteralSlice && srcText != tplText {
			t.Errorf("slice %d: literal changed from %q to %q", i, srcText, tplText)
		}
		source += srcText
		templated += tplText
		srcPos = s.SourceSlice.End
		tplPos = s.TemplatedSlice.End
	}
	if source != tf.SourceStr {
		t.Errorf("source not reconstructed:\nexpected: %q\nactual:   %q", tf.SourceStr, source)
	}
	if templated != tf.TemplatedStr {
		t.Errorf("templated not reconstructed:\nexpected: %q\nactual:   %q", tf.TemplatedStr, templated)
	}
}
