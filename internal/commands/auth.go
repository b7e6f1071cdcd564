package commands

import (
	"context"
	"fmt"

	"github.com/strongspace/cli/internal/app"
	"github.com/strongspace/cli/internal/command"
	"github.com/strongspace/cli/internal/domain"
	"github.com/strongspace/cli/internal/format"
	"github.com/strongspace/cli/internal/usage"
)

// Auth manages the stored login.
type Auth struct {
	command.Operations
	handler
}

// NewAuth is the factory for the auth type.
func NewAuth(args []string, session *domain.Session) command.Handler {
	h := &Auth{handler: newHandler(args, session)}
	h.Operations = h.bind(map[string]operation{
		command.DefaultOperation: whoami,
		"login":                  login,
		"logout":                 logout,
		"reauthorize":            reauthorize,
		"token":                  token,
	})
	return h
}

// whoami asks the API who the stored token belongs to, so a stale token
// surfaces as an authentication failure.
func whoami(ctx context.Context, s *domain.Session) error {
	profile, err := s.API.Profile(ctx)
	if err != nil {
		return err
	}

	who := profile.Username
	if profile.Email != "" {
		who = fmt.Sprintf("%s <%s>", profile.Username, profile.Email)
	}
	_, _ = s.Output.Printf("Logged in as %s\n", who)
	_, _ = s.Output.Printf("Usage: %s\n", format.Quota(profile.UsedBytes, profile.QuotaGB))
	return nil
}

func login(ctx context.Context, s *domain.Session) error {
	creds, err := s.Credentials.Load()
	if err != nil {
		return err
	}
	username, err := authenticate(ctx, s, creds.Username)
	if err != nil {
		return err
	}
	_, _ = s.Output.Println(s.Styler.Success("Logged in as " + username))
	return nil
}

func logout(_ context.Context, s *domain.Session) error {
	if err := s.Credentials.Clear(); err != nil {
		return err
	}
	_, _ = s.Output.Println("Local credentials cleared")
	return nil
}

// reauthorize runs before every retried command. The stored token is
// discarded up front so a failed prompt cannot leave it in place.
func reauthorize(ctx context.Context, s *domain.Session) error {
	creds, err := s.Credentials.Load()
	if err != nil {
		return err
	}
	if creds.Token != "" {
		if err := s.Credentials.Save(domain.Credentials{Username: creds.Username}); err != nil {
			return err
		}
	}
	_, err = authenticate(ctx, s, creds.Username)
	return err
}

func token(_ context.Context, s *domain.Session) error {
	creds, err := s.Credentials.Load()
	if err != nil {
		return err
	}
	if creds.IsEmpty() {
		return usage.NotLoggedIn(app.Tool)
	}
	_, _ = s.Output.Println(creds.Token)
	return nil
}

// authenticate prompts for a login, exchanges it for a token and stores
// the result.
func authenticate(ctx context.Context, s *domain.Session, defaultUsername string) (string, error) {
	username, password, err := s.Prompter.Credentials(ctx, defaultUsername)
	if err != nil {
		return "", err
	}

	tok, err := s.API.Login(ctx, username, password)
	if err != nil {
		return "", err
	}

	if err := s.Credentials.Save(domain.Credentials{Username: username, Token: tok}); err != nil {
		return "", err
	}
	s.Logger.Info("auth: stored token for %s", username)
	return username, nil
}
