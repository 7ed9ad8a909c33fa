package cli

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/hashicorp/go-hclog"

	"github.com/tivojn/google-maps-api-skill/internal/normalize"
	"github.com/tivojn/google-maps-api-skill/internal/pipeline"
	"github.com/tivojn/google-maps-api-skill/internal/transport"
)

// Env holds injectable dependencies for CLI commands.
// This is the central injection point for testing commands in isolation.
//
// All fields have production defaults via DefaultEnv(). Tests override
// specific fields with the With* options or by setting Client directly.
type Env struct {
	Stdout io.Writer
	Stderr io.Writer
	Now    func() time.Time

	// Verbose and Retries are bound to the root command's persistent
	// flags; they are read after flag parsing, when the client is built.
	Verbose bool
	Retries int

	// Client, when set, is used as-is (tests). When nil, a production
	// pipeline client honoring Verbose/Retries is built per invocation.
	Client Invoker
}

// Invoker is the pipeline surface the commands depend on.
type Invoker interface {
	Invoke(ctx context.Context, req pipeline.Request) (*normalize.Outcome, error)
	Operations() []string
}

// Compile-time interface verification.
var _ Invoker = (*pipeline.Client)(nil)

// EnvOption configures an Env.
type EnvOption func(*Env)

// WithStdout sets the stdout writer.
func WithStdout(w io.Writer) EnvOption {
	return func(e *Env) { e.Stdout = w }
}

// WithStderr sets the stderr writer.
func WithStderr(w io.Writer) EnvOption {
	return func(e *Env) { e.Stderr = w }
}

// WithNow sets the time provider.
func WithNow(fn func() time.Time) EnvOption {
	return func(e *Env) { e.Now = fn }
}

// WithClient sets the pipeline client.
func WithClient(c Invoker) EnvOption {
	return func(e *Env) { e.Client = c }
}

// DefaultEnv returns an Env with production defaults.
func DefaultEnv() *Env {
	return &Env{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Now:    time.Now,
	}
}

// NewEnv creates an Env with the given options applied to defaults.
func NewEnv(opts ...EnvOption) *Env {
	env := DefaultEnv()
	for _, opt := range opts {
		opt(env)
	}
	return env
}

// client returns the injected client or builds the production pipeline,
// honoring the flag-bound settings.
func (e *Env) client() Invoker {
	if e.Client != nil {
		return e.Client
	}

	level := hclog.Warn
	if e.Verbose {
		level = hclog.Debug
	}
	logger := hclog.New(&hclog.LoggerOptions{
		Name:   "gmaps",
		Level:  level,
		Output: e.Stderr,
	})

	return pipeline.New(
		pipeline.WithLogger(logger),
		pipeline.WithTransport(transport.New(
			transport.WithLogger(logger),
			transport.WithMaxRetries(e.Retries),
		)),
	)
}
