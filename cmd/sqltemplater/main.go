package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mikeschinkel/go-sqltemplater"
	"github.com/mikeschinkel/go-sqltemplater/settings"
	"github.com/spf13/cobra"
)

type options struct {
	configPath      string
	style           string
	regex           string
	autofill        bool
	logReplacements bool
	params          []string
	showSlices      bool
	jsonOutput      bool
	noColor         bool
	logLevel        string
	logFormat       string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "sqltemplater [files...]",
		Short: "Replace SQL bind parameters with literal values",
		Long: `sqltemplater rewrites SQL containing bind-parameter placeholders (sqlc's
@name::type by default) into literal SQL that a linter can parse, and can show
the slice mapping between the original and the templated text.

With no files, SQL is read from standard input.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, opts, args)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "Settings file (.yaml, .yml or .hcl)")
	flags.StringVarP(&opts.style, "style", "s", "", "Placeholder style ("+styleList()+")")
	flags.StringVarP(&opts.regex, "regex", "r", "", "Custom placeholder regex with a (?P<param_name>...) group")
	flags.BoolVarP(&opts.autofill, "autofill", "a", false, "Fill unbound parameters from their ::type annotation")
	flags.BoolVar(&opts.logReplacements, "log-replacements", false, "Print every replacement to stderr")
	flags.StringArrayVarP(&opts.params, "param", "p", nil, "Bind a parameter, name=value (repeatable)")
	flags.BoolVar(&opts.showSlices, "slices", false, "Print the slice mapping as a table")
	flags.BoolVarP(&opts.jsonOutput, "json", "j", false, "Output the result and slice mapping as JSON")
	flags.BoolVar(&opts.noColor, "no-color", false, "Disable colored notices")
	flags.StringVar(&opts.logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	flags.StringVar(&opts.logFormat, "log-format", "text", "Log format (text, json)")

	rootCmd.AddCommand(newREPLCmd(opts))
	return rootCmd
}

func styleList() string {
	styles := sqltemplater.ParamStyles()
	names := make([]string, len(styles))
	for i, s := range styles {
		names[i] = string(s)
	}
	return strings.Join(names, ", ")
}

// overrides turns the flags that were set into the highest settings layer.
func (o *options) overrides(cmd *cobra.Command) (s sqltemplater.Settings, err error) {
	flags := cmd.Flags()
	s = make(sqltemplater.Settings)

	for _, p := range o.params {
		name, value, ok := strings.Cut(p, "=")
		if !ok || name == "" {
			err = sqltemplater.NewErr(sqltemplater.ErrInvalidSetting, "param", p)
			goto end
		}
		s[name] = value
	}
	if flags.Changed("style") {
		s[sqltemplater.ParamStyleOption] = o.style
	}
	if flags.Changed("regex") {
		s[sqltemplater.ParamRegexOption] = o.regex
	}
	if flags.Changed("autofill") {
		s[sqltemplater.AutofillMissingParamsOption] = o.autofill
	}
	if flags.Changed("log-replacements") {
		s[sqltemplater.LogParamReplacementsOption] = o.logReplacements
	}
end:
	return s, err
}

// loaded reads the settings file, if any.
func (o *options) loaded() (sqltemplater.Settings, error) {
	if o.configPath == "" {
		return sqltemplater.Settings{}, nil
	}
	return settings.LoadFile(o.configPath)
}

// newTemplater builds the templater and the loaded layer from the flags.
// When no pattern option is given anywhere the default style is used.
func (o *options) newTemplater(cmd *cobra.Command) (t *sqltemplater.Templater, loaded sqltemplater.Settings, err error) {
	var overrides sqltemplater.Settings

	overrides, err = o.overrides(cmd)
	if err != nil {
		goto end
	}
	loaded, err = o.loaded()
	if err != nil {
		goto end
	}
	if !hasPatternOption(overrides) && !hasPatternOption(loaded) {
		overrides[sqltemplater.ParamStyleOption] = string(sqltemplater.DefaultParamStyle)
	}
	t = sqltemplater.New(overrides,
		sqltemplater.WithLogger(newLogger(o.logLevel, o.logFormat, cmd.ErrOrStderr())),
		sqltemplater.WithNoticeSink(sqltemplater.NewWriterSink(cmd.ErrOrStderr(), !o.noColor)),
	)
end:
	return t, loaded, err
}

func hasPatternOption(s sqltemplater.Settings) bool {
	return s.Has(sqltemplater.ParamStyleOption) || s.Has(sqltemplater.ParamRegexOption)
}

func runRender(cmd *cobra.Command, opts *options, args []string) error {
	t, loaded, err := opts.newTemplater(cmd)
	if err != nil {
		return err
	}

	if len(args) == 0 {
		src, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("error reading stdin: %w", err)
		}
		return renderOne(cmd.OutOrStdout(), t, opts, sqltemplater.SQLQuery(src), "stdin", loaded)
	}

	// A bad file does not stop the rest from rendering.
	var errs []error
	for _, path := range args {
		src, err := os.ReadFile(path)
		if err != nil {
			errs = append(errs, fmt.Errorf("error reading file %s: %w", path, err))
			continue
		}
		err = renderOne(cmd.OutOrStdout(), t, opts, sqltemplater.SQLQuery(src), path, loaded)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", path, err))
		}
	}
	return sqltemplater.CombineErrs(errs)
}

func renderOne(w io.Writer, t *sqltemplater.Templater, opts *options, src sqltemplater.SQLQuery, filename string, loaded sqltemplater.Settings) error {
	tf, _, err := t.Process(src, filename, loaded)
	if err != nil {
		return err
	}
	switch {
	case opts.jsonOutput:
		return writeJSON(w, tf)
	case opts.showSlices:
		writeSliceTable(w, tf)
		return nil
	}
	writeTemplated(w, tf)
	return nil
}
