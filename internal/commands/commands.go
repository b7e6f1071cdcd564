// Package commands implements the built-in handler types. Every type
// embeds command.Operations and takes the raw argument list plus an
// optional session from its factory.
package commands

import (
	"context"
	"io"

	"github.com/spf13/pflag"

	"github.com/strongspace/cli/internal/app"
	"github.com/strongspace/cli/internal/command"
	"github.com/strongspace/cli/internal/domain"
	"github.com/strongspace/cli/internal/usage"
)

// DefaultSession builds the session used by handlers constructed without
// one. It runs at most once per handler, when the first operation starts.
var DefaultSession = func() (*domain.Session, error) {
	a, err := app.New(app.DefaultOptions())
	if err != nil {
		return nil, err
	}
	return a.Session, nil
}

type operation func(ctx context.Context, s *domain.Session) error

type handler struct {
	args    []string
	session *domain.Session
}

func newHandler(args []string, session *domain.Session) handler {
	return handler{args: args, session: session}
}

func (h *handler) resolveSession() (*domain.Session, error) {
	if h.session != nil {
		return h.session, nil
	}
	s, err := DefaultSession()
	if err != nil {
		return nil, err
	}
	h.session = s
	return s, nil
}

// bind turns session-taking operations into command.Operations. The
// session is resolved lazily so constructing a handler stays free of I/O.
func (h *handler) bind(ops map[string]operation) command.Operations {
	out := make(command.Operations, len(ops))
	for name, fn := range ops {
		out[name] = func(ctx context.Context) error {
			s, err := h.resolveSession()
			if err != nil {
				return err
			}
			return fn(ctx, s)
		}
	}
	return out
}

// parseFlags parses the handler's args. Flags may appear anywhere; the
// remaining positional arguments are returned.
func (h *handler) parseFlags(name string, define func(fs *pflag.FlagSet)) ([]string, error) {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	if define != nil {
		define(fs)
	}
	if err := fs.Parse(h.args); err != nil {
		return nil, usage.FlagError(err)
	}
	return fs.Args(), nil
}

// requireArgs fails with the first missing positional argument.
func requireArgs(args []string, names ...string) error {
	if len(args) < len(names) {
		return usage.MissingArgument(names[len(args)])
	}
	return nil
}
