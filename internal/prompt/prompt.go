// Package prompt asks the user for login details.
package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/strongspace/cli/internal/command"
	"github.com/strongspace/cli/internal/config"
	"github.com/strongspace/cli/internal/domain"
	"github.com/strongspace/cli/internal/usage"
)

// Prompter reads credentials from the environment, an interactive form, or
// plain lines on stdin, in that order.
type Prompter struct {
	in          io.Reader
	out         io.Writer
	interactive func() bool
	env         func() (config.Env, error)
	password    func(r *bufio.Reader) (string, error)
}

var _ domain.Prompter = (*Prompter)(nil)

// New returns a prompter bound to the process terminal.
func New() *Prompter {
	return &Prompter{
		in:  os.Stdin,
		out: os.Stderr,
		interactive: func() bool {
			return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stderr.Fd()))
		},
		env:      config.ParseEnv,
		password: readHiddenPassword,
	}
}

// Credentials returns a username and password. An empty username answer
// keeps defaultUsername.
func (p *Prompter) Credentials(ctx context.Context, defaultUsername string) (string, string, error) {
	if e, err := p.env(); err == nil && e.Username != "" && e.Password != "" {
		return e.Username, e.Password, nil
	}

	var (
		username, password string
		err                error
	)
	if p.interactive() {
		username, password, err = p.form(ctx, defaultUsername)
	} else {
		username, password, err = p.lines(defaultUsername)
	}
	if err != nil {
		return "", "", err
	}
	if username == "" {
		return "", "", usage.MissingArgument("username")
	}
	return username, password, nil
}

func (p *Prompter) form(ctx context.Context, defaultUsername string) (string, string, error) {
	program := tea.NewProgram(
		newLoginModel(defaultUsername),
		tea.WithContext(ctx),
		tea.WithInput(p.in),
		tea.WithOutput(p.out),
	)

	final, err := program.Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) || errors.Is(err, context.Canceled) {
			return "", "", command.ErrInterrupted
		}
		return "", "", fmt.Errorf("login prompt: %w", err)
	}

	m := final.(loginModel)
	if m.canceled {
		return "", "", command.ErrInterrupted
	}
	return m.username(), m.password.Value(), nil
}

func (p *Prompter) lines(defaultUsername string) (string, string, error) {
	reader := bufio.NewReader(p.in)

	if defaultUsername != "" {
		fmt.Fprintf(p.out, "Username [%s]: ", defaultUsername)
	} else {
		fmt.Fprint(p.out, "Username: ")
	}
	username, err := readLine(reader)
	if err != nil {
		return "", "", err
	}
	if username == "" {
		username = defaultUsername
	}

	fmt.Fprint(p.out, "Password: ")
	password, err := p.password(reader)
	fmt.Fprintln(p.out)
	if err != nil {
		return "", "", err
	}
	return username, password, nil
}

// readHiddenPassword disables echo when stdin is a terminal.
func readHiddenPassword(r *bufio.Reader) (string, error) {
	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		b, err := term.ReadPassword(fd)
		if err != nil {
			return "", fmt.Errorf("read password: %w", err)
		}
		return string(b), nil
	}
	return readLine(r)
}

func readLine(r *bufio.Reader) (string, error) {
	line, err := r.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read input: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
