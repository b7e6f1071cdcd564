package prompt

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/strongspace/cli/internal/ui/style"
)

type loginModel struct {
	user            textinput.Model
	password        textinput.Model
	defaultUsername string
	focus           int
	canceled        bool
}

func newLoginModel(defaultUsername string) loginModel {
	user := textinput.New()
	user.Prompt = "Username: "
	user.Placeholder = defaultUsername
	user.CharLimit = 128
	user.Focus()

	password := textinput.New()
	password.Prompt = "Password: "
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '*'
	password.CharLimit = 256

	return loginModel{user: user, password: password, defaultUsername: defaultUsername}
}

func (m loginModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m loginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.canceled = true
			return m, tea.Quit
		case tea.KeyEnter, tea.KeyTab:
			if m.focus == 0 {
				m.focus = 1
				m.user.Blur()
				return m, m.password.Focus()
			}
			if key.Type == tea.KeyEnter {
				return m, tea.Quit
			}
		case tea.KeyShiftTab:
			if m.focus == 1 {
				m.focus = 0
				m.password.Blur()
				return m, m.user.Focus()
			}
		}
	}

	var cmd tea.Cmd
	if m.focus == 0 {
		m.user, cmd = m.user.Update(msg)
	} else {
		m.password, cmd = m.password.Update(msg)
	}
	return m, cmd
}

func (m loginModel) View() string {
	var b strings.Builder
	b.WriteString(style.Header("Log in to Strongspace"))
	b.WriteString("\n\n")
	b.WriteString(m.user.View())
	b.WriteString("\n")
	b.WriteString(m.password.View())
	b.WriteString("\n\n")
	b.WriteString(style.Muted("enter: next/submit  esc: cancel"))
	b.WriteString("\n")
	return b.String()
}

// username returns the typed username, or the default when left blank.
func (m loginModel) username() string {
	if v := strings.TrimSpace(m.user.Value()); v != "" {
		return v
	}
	return m.defaultUsername
}
