package command

import (
	"context"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/strongspace/cli/internal/domain"
	"github.com/strongspace/cli/internal/log"
)

const (
	// DefaultMaxRetries bounds re-authentication retries per run.
	DefaultMaxRetries = 3

	// ReauthorizeCommand is run before every retry.
	ReauthorizeCommand = "auth:reauthorize"

	authFailureNotice = "Authentication failure"
)

// ExtensionLoader registers dynamically discovered handler types. LoadAll
// is called before every attempt and must be idempotent.
type ExtensionLoader interface {
	LoadAll()
}

// LoaderFunc adapts a function to ExtensionLoader.
type LoaderFunc func()

// LoadAll calls f.
func (f LoaderFunc) LoadAll() { f() }

type nopLoader struct{}

func (nopLoader) LoadAll() {}

// Dispatcher runs commands against a registry.
type Dispatcher struct {
	registry   *Registry
	loader     ExtensionLoader
	session    *domain.Session
	stderr     io.Writer
	logger     domain.Logger
	tool       string
	maxRetries int
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithLoader sets the extension loader.
func WithLoader(l ExtensionLoader) Option {
	return func(d *Dispatcher) { d.loader = l }
}

// WithSession sets the session handed to handler factories.
func WithSession(s *domain.Session) Option {
	return func(d *Dispatcher) { d.session = s }
}

// WithStderr sets where retry notices are written.
func WithStderr(w io.Writer) Option {
	return func(d *Dispatcher) { d.stderr = w }
}

// WithLogger sets the logger.
func WithLogger(l domain.Logger) Option {
	return func(d *Dispatcher) { d.logger = l }
}

// WithTool sets the executable name used in messages.
func WithTool(name string) Option {
	return func(d *Dispatcher) { d.tool = name }
}

// WithMaxRetries overrides DefaultMaxRetries.
func WithMaxRetries(n int) Option {
	return func(d *Dispatcher) { d.maxRetries = n }
}

// NewDispatcher returns a dispatcher over registry.
func NewDispatcher(registry *Registry, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		registry:   registry,
		loader:     nopLoader{},
		stderr:     os.Stderr,
		logger:     log.NopLogger{},
		tool:       "strongspace",
		maxRetries: DefaultMaxRetries,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Run executes command with args and reports a single outcome. Failures
// never escape as errors. args is never modified; every handler receives
// its own copy.
func (d *Dispatcher) Run(ctx context.Context, command string, args []string) Outcome {
	for attempt := 0; ; attempt++ {
		err := d.attempt(ctx, command, args, attempt)
		if err == nil {
			return Outcome{Kind: OutcomeSuccess, Attempts: attempt + 1}
		}

		c := Classify(err, d.tool)
		d.logger.Debug("%s attempt %d: %s: %v", command, attempt+1, c.Decision, err)

		switch c.Decision {
		case DecisionRetry:
			if attempt < d.maxRetries {
				fmt.Fprintln(d.stderr, authFailureNotice)
				continue
			}
			d.logger.Warn("%s: giving up after %d attempts", command, attempt+1)
			return Outcome{Kind: OutcomeReportedError, Err: c.Err, Attempts: attempt + 1}
		case DecisionSuppress:
			return Outcome{Kind: OutcomeSuppressed, Attempts: attempt + 1}
		case DecisionCancel:
			return Outcome{Kind: OutcomeCanceled, Err: c.Err, Attempts: attempt + 1}
		default:
			return Outcome{Kind: OutcomeReportedError, Err: c.Err, Attempts: attempt + 1}
		}
	}
}

// attempt loads extensions, re-authorises on retries, then runs command
// once.
func (d *Dispatcher) attempt(ctx context.Context, command string, args []string, n int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	d.loader.LoadAll()

	if n > 0 {
		if err := d.invoke(ctx, ReauthorizeCommand, args); err != nil {
			return err
		}
	}
	return d.invoke(ctx, command, args)
}

func (d *Dispatcher) invoke(ctx context.Context, command string, args []string) error {
	binding, err := d.registry.Resolve(command)
	if err != nil {
		return err
	}
	h, err := binding.New(slices.Clone(args), d.session)
	if err != nil {
		return err
	}
	if !h.Supports(binding.Operation) {
		return fmt.Errorf("%w: %s", ErrInvalidCommand, command)
	}
	return h.Invoke(ctx, binding.Operation)
}
