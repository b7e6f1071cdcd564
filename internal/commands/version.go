package commands

import (
	"context"
	"runtime"

	"github.com/strongspace/cli/internal/app"
	"github.com/strongspace/cli/internal/command"
	"github.com/strongspace/cli/internal/domain"
)

// Version prints the client version.
type Version struct {
	command.Operations
	handler
}

// NewVersion is the factory for the version type.
func NewVersion(args []string, session *domain.Session) command.Handler {
	h := &Version{handler: newHandler(args, session)}
	h.Operations = h.bind(map[string]operation{
		command.DefaultOperation: showVersion,
	})
	return h
}

func showVersion(_ context.Context, s *domain.Session) error {
	_, _ = s.Output.Printf("%s/%s %s %s/%s\n", app.Tool, app.Version, runtime.Version(), runtime.GOOS, runtime.GOARCH)
	return nil
}
