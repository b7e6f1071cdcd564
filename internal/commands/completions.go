package commands

import (
	"context"
	"os"
	"strings"

	"github.com/strongspace/cli/internal/app"
	"github.com/strongspace/cli/internal/command"
	"github.com/strongspace/cli/internal/completions"
	"github.com/strongspace/cli/internal/domain"
	"github.com/strongspace/cli/internal/usage"
)

// Completions prints shell completion scripts.
type Completions struct {
	command.Operations
	handler

	registry *command.Registry
	getenv   func(string) string
}

// NewCompletions returns the factory for the completions type.
func NewCompletions(registry *command.Registry) command.Factory {
	return func(args []string, session *domain.Session) command.Handler {
		h := &Completions{handler: newHandler(args, session), registry: registry, getenv: os.Getenv}
		h.Operations = h.bind(map[string]operation{
			command.DefaultOperation: h.script,
		})
		return h
	}
}

func (h *Completions) script(_ context.Context, s *domain.Session) error {
	var shell completions.Shell
	if len(h.args) > 0 {
		shell = completions.Shell(h.args[0])
	} else {
		detected, ok := completions.DetectShell(h.getenv("SHELL"))
		if !ok {
			return usage.MissingArgument("shell")
		}
		shell = detected
	}

	script, err := completions.Script(shell, app.Tool, completions.Entries(h.registry))
	if err != nil {
		names := make([]string, len(completions.Shells))
		for i, sh := range completions.Shells {
			names[i] = string(sh)
		}
		return usage.Failed("Unsupported shell %s. Use one of: %s", shell, strings.Join(names, ", "))
	}
	_, _ = s.Output.Printf("%s", script)
	return nil
}
