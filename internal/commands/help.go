package commands

import (
	"context"
	"strings"

	"github.com/strongspace/cli/internal/app"
	"github.com/strongspace/cli/internal/command"
	"github.com/strongspace/cli/internal/domain"
	"github.com/strongspace/cli/internal/ui"
	"github.com/strongspace/cli/internal/usage"
)

const maxSuggestions = 3

// Help lists the registered commands.
type Help struct {
	command.Operations
	handler

	registry *command.Registry
}

// NewHelp returns the factory for the help type. It reads registry at
// invocation time, so plugins registered later are listed too.
func NewHelp(registry *command.Registry) command.Factory {
	return func(args []string, session *domain.Session) command.Handler {
		h := &Help{handler: newHandler(args, session), registry: registry}
		h.Operations = h.bind(map[string]operation{
			command.DefaultOperation: h.show,
		})
		return h
	}
}

func (h *Help) show(_ context.Context, s *domain.Session) error {
	if len(h.args) == 0 {
		s.Output.Pager(h.overview(s))
		return nil
	}

	topic := h.args[0]
	if t, ok := h.registry.Lookup(topic); ok {
		s.Output.Pager(h.topic(s, t))
		return nil
	}
	if fb := h.registry.Fallback(); fb != nil {
		for _, op := range fb.Operations {
			if op.Name == topic {
				s.Output.Pager(usageLine(op.Usage, topic) + "\n\n" + op.Summary + "\n")
				return nil
			}
		}
	}
	return h.unknown(topic)
}

func (h *Help) overview(s *domain.Session) string {
	var b strings.Builder
	b.WriteString("Usage: " + app.Tool + " COMMAND [command-specific-arguments]\n\n")
	b.WriteString(s.Styler.Header("Commands") + " (run \"" + app.Tool + " help COMMAND\" for details):\n\n")

	var rows [][]string
	for _, t := range h.registry.Types() {
		rows = append(rows, []string{"  " + t.Command, t.Summary})
	}
	if fb := h.registry.Fallback(); fb != nil {
		for _, op := range fb.Operations {
			rows = append(rows, []string{"  " + op.Name, op.Summary})
		}
	}
	b.WriteString(ui.Table(nil, rows))
	b.WriteString("\n")
	return b.String()
}

func (h *Help) topic(s *domain.Session, t *command.HandlerType) string {
	path := t.Path()

	var b strings.Builder
	b.WriteString("Usage: " + app.Tool + " " + path + "\n")
	if t.Summary != "" {
		b.WriteString("\n" + t.Summary + "\n")
	}

	var rows [][]string
	for _, op := range t.Operations {
		cmd := path
		if op.Name != command.DefaultOperation {
			cmd = path + command.Separator + op.Name
		}
		rows = append(rows, []string{"  " + usageLine(op.Usage, cmd), op.Summary})
	}
	for _, c := range t.Children() {
		rows = append(rows, []string{"  " + c.Path(), c.Summary})
	}
	if len(rows) > 0 {
		b.WriteString("\n" + s.Styler.Header("Additional commands") + ":\n\n")
		b.WriteString(ui.Table(nil, rows))
		b.WriteString("\n")
	}
	return b.String()
}

func (h *Help) unknown(topic string) error {
	msg := "'" + topic + "' is not a " + app.Tool + " command."
	if suggestions := h.registry.Suggest(topic, maxSuggestions); len(suggestions) > 0 {
		msg += "\nDid you mean: " + strings.Join(suggestions, ", ") + "?"
	} else {
		msg += " See '" + app.Tool + " help'."
	}
	return usage.Failed("%s", msg)
}

// usageLine prefers the documented usage and falls back to the command.
func usageLine(documented, cmd string) string {
	if documented != "" {
		return documented
	}
	return cmd
}
