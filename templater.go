package sqltemplater

import (
	"io"
	"log/slog"
)

// Engine is what a host linter registers: something that turns source text
// into a TemplatedFile.
type Engine interface {
	Name() string
	Process(src SQLQuery, filename string, loaded Settings) (*TemplatedFile, []Violation, error)
}

var _ Engine = (*Templater)(nil)

// Factory builds an Engine from caller overrides.
type Factory func(overrides Settings, opts ...Option) Engine

// Templaters returns the engine factories a host should register.
func Templaters() []Factory {
	return []Factory{
		func(overrides Settings, opts ...Option) Engine {
			return New(overrides, opts...)
		},
	}
}

// Templater substitutes bind-parameter placeholders. It holds no per-run
// state, so one Templater may process many texts concurrently.
type Templater struct {
	defaults  Settings
	overrides Settings
	logger    *slog.Logger
	sink      NoticeSink
}

type Option func(*Templater)

// WithLogger sets the logger used for "assumed text" messages.
func WithLogger(logger *slog.Logger) Option {
	return func(t *Templater) {
		t.logger = logger
	}
}

// WithNoticeSink sets where replacement notices go when
// log_param_replacements is enabled.
func WithNoticeSink(sink NoticeSink) Option {
	return func(t *Templater) {
		t.sink = sink
	}
}

// WithDefaults replaces DefaultSettings() as the lowest settings layer.
func WithDefaults(defaults Settings) Option {
	return func(t *Templater) {
		t.defaults = MergeSettings(defaults)
	}
}

// New returns a Templater whose overrides take precedence over any settings
// loaded from files.
func New(overrides Settings, opts ...Option) *Templater {
	t := &Templater{
		defaults:  DefaultSettings(),
		overrides: MergeSettings(overrides),
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		sink:      discardSink{},
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func (t *Templater) Name() string {
	return TemplaterName
}

// Context resolves the effective context for the given loaded settings.
func (t *Templater) Context(loaded Settings) (*Context, error) {
	return ResolveContext(t.defaults, loaded, t.overrides)
}

// Process resolves the context and templates src. The violations slice is
// always empty; templating produces no lint findings.
func (t *Templater) Process(src SQLQuery, filename string, loaded Settings) (tf *TemplatedFile, violations []Violation, err error) {
	var ctx *Context

	violations = []Violation{}
	ctx, err = t.Context(loaded)
	if err != nil {
		goto end
	}
	tf, err = t.Substitute(src, filename, ctx)
end:
	return tf, violations, err
}

// Substitute scans src left to right and replaces every placeholder the
// context's pattern finds. A missing parameter aborts the scan and no
// TemplatedFile is returned.
func (t *Templater) Substitute(src SQLQuery, filename string, ctx *Context) (tf *TemplatedFile, err error) {
	var state *sliceState
	var vr valueResolver

	state = newSliceState(string(src))
	vr = valueResolver{
		ctx:      ctx,
		logger:   t.logger,
		sink:     t.sink,
		filename: filename,
	}
	for _, m := range ctx.Pattern.FindAll(state.src) {
		var replacement string

		name := state.paramName(ctx.Pattern, m)
		state.addLiteral(m.Start)
		replacement, err = vr.resolveValue(name, m)
		if err != nil {
			goto end
		}
		state.addTemplated(m, name, replacement)
	}
	state.finish()
	tf = newTemplatedFile(filename, state)
end:
	return tf, err
}
