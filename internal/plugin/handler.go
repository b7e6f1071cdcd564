package plugin

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/strongspace/cli/internal/command"
	"github.com/strongspace/cli/internal/domain"
	"github.com/strongspace/cli/internal/usage"
)

// Environment variables passed to plugin executables.
const (
	EnvUsername = "STRONGSPACE_USERNAME"
	EnvToken    = "STRONGSPACE_TOKEN"
	EnvAPIURL   = "STRONGSPACE_API_URL"
)

// Handler runs a plugin executable.
type Handler struct {
	command.Operations

	manifest Manifest
	dir      string
	args     []string
	session  *domain.Session
	stdout   io.Writer
	stderr   io.Writer
}

// Factory returns a command.Factory for the plugin installed in dir.
func Factory(m Manifest, dir string) command.Factory {
	return func(args []string, session *domain.Session) command.Handler {
		h := &Handler{
			manifest: m,
			dir:      dir,
			args:     args,
			session:  session,
			stdout:   os.Stdout,
			stderr:   os.Stderr,
		}
		if session != nil && session.Output != nil {
			h.stdout = session.Output
		}
		h.Operations = make(command.Operations, len(m.Operations))
		for _, op := range m.Operations {
			h.Operations[op.Name] = func(ctx context.Context) error {
				return h.run(ctx, op.Name)
			}
		}
		return h
	}
}

func (h *Handler) run(ctx context.Context, op string) error {
	exe := filepath.Join(h.dir, h.manifest.Executable)
	cmd := exec.CommandContext(ctx, exe, append([]string{op}, h.args...)...)
	cmd.Dir = h.dir
	cmd.Stdin = os.Stdin
	cmd.Stdout = h.stdout
	cmd.Stderr = h.stderr
	cmd.Env = append(os.Environ(), h.environment()...)

	err := cmd.Run()
	if err == nil {
		return nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return usage.Failed("%s:%s exited with status %d", h.manifest.Name, op, exitErr.ExitCode())
	}
	return fmt.Errorf("run plugin %s: %w", h.manifest.Name, err)
}

// environment exposes the stored login so plugins can call the API.
func (h *Handler) environment() []string {
	if h.session == nil {
		return nil
	}

	var env []string
	if h.session.Credentials != nil {
		if creds, err := h.session.Credentials.Load(); err == nil && !creds.IsEmpty() {
			env = append(env, EnvUsername+"="+creds.Username, EnvToken+"="+creds.Token)
		}
	}
	if h.session.Config != nil {
		if url, ok := h.session.Config.Get("api_url"); ok {
			env = append(env, EnvAPIURL+"="+url)
		}
	}
	return env
}
