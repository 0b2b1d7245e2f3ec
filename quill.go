// Package quill provides a simple API for evaluating Quill value
// expressions. It ties the reader, the object system, and the builtin
// functions together:
//
//	result, err := quill.Eval(ctx, `(1, -1, 99, 42).sort_copy()`)
package quill

import (
	"context"

	"github.com/quill-lang/quill/builtins"
	"github.com/quill-lang/quill/object"
	"github.com/quill-lang/quill/parser"
)

// Option describes a function used to configure an evaluation.
type Option func(*config)

type config struct {
	globals               map[string]object.Object
	denylist              map[string]bool
	filename              string
	withoutDefaultGlobals bool
}

func newConfig(opts ...Option) *config {
	cfg := &config{
		globals:  map[string]object.Object{},
		denylist: map[string]bool{},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(cfg)
		}
	}
	return cfg
}

func (cfg *config) resolveGlobals() map[string]object.Object {
	globals := map[string]object.Object{}
	if !cfg.withoutDefaultGlobals {
		for k, v := range DefaultGlobals() {
			globals[k] = v
		}
	}
	for k, v := range cfg.globals {
		globals[k] = v
	}
	for name := range cfg.denylist {
		delete(globals, name)
	}
	return globals
}

func (cfg *config) parserOpts() []parser.Option {
	opts := []parser.Option{parser.WithGlobals(cfg.resolveGlobals())}
	if cfg.filename != "" {
		opts = append(opts, parser.WithFilename(cfg.filename))
	}
	return opts
}

// WithGlobals provides named functions that are made available to
// evaluations. This option is additive, so multiple WithGlobals options
// may be supplied. If the same name is supplied multiple times, the last
// supplied value is used.
func WithGlobals(globals map[string]object.Object) Option {
	return func(cfg *config) {
		for k, v := range globals {
			cfg.globals[k] = v
		}
	}
}

// WithGlobal supplies a single named global to the evaluation.
func WithGlobal(name string, value object.Object) Option {
	return func(cfg *config) {
		cfg.globals[name] = value
	}
}

// WithoutGlobal opts out of a given default global. If the name can't be
// resolved, this is a no-op.
func WithoutGlobal(name string) Option {
	return func(cfg *config) {
		cfg.denylist[name] = true
	}
}

// WithoutDefaultGlobals opts out of all default globals.
func WithoutDefaultGlobals() Option {
	return func(cfg *config) {
		cfg.withoutDefaultGlobals = true
	}
}

// WithFilename sets the filename for the source being evaluated. This is
// used in syntax error locations.
func WithFilename(filename string) Option {
	return func(cfg *config) {
		cfg.filename = filename
	}
}

// DefaultGlobals returns the standard global functions available to
// evaluations by default. To customize the environment, modify the
// returned map:
//
//	env := quill.DefaultGlobals()
//	delete(env, "sprintf")
//	result, _ := quill.Eval(ctx, source, quill.WithoutDefaultGlobals(), quill.WithGlobals(env))
func DefaultGlobals() map[string]object.Object {
	return builtins.Builtins()
}

// Eval evaluates a single value expression and returns the resulting
// object. The entire input must be one expression; trailing input is a
// syntax error.
func Eval(ctx context.Context, source string, opts ...Option) (object.Object, error) {
	cfg := newConfig(opts...)
	return parser.Evaluate(ctx, source, cfg.parserOpts()...)
}
