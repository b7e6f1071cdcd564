package commands

import (
	"github.com/strongspace/cli/internal/command"
	"github.com/strongspace/cli/internal/domain"
)

// Base receives bare commands that name no registered type, so
// "strongspace login" works as a shortcut for "strongspace auth:login".
type Base struct {
	command.Operations
	handler
}

// NewBase is the factory for the fallback type.
func NewBase(args []string, session *domain.Session) command.Handler {
	h := &Base{handler: newHandler(args, session)}
	h.Operations = h.bind(map[string]operation{
		"version": showVersion,
		"login":   login,
		"logout":  logout,
	})
	return h
}
