package style

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/strongspace/cli/internal/domain"
)

// Styler is the domain.Styler handed to command handlers. It follows the
// settings from Init unless it was created with Plain.
type Styler struct {
	plain bool
}

var _ domain.Styler = (*Styler)(nil)

// NewStyler returns a styler that follows Init.
func NewStyler() *Styler {
	return &Styler{}
}

// Plain returns a styler that never adds escape codes, for tests and for
// output that is piped elsewhere.
func Plain() *Styler {
	return &Styler{plain: true}
}

func (s *Styler) apply(st *lipgloss.Style, text string) string {
	if s.plain {
		return text
	}
	return render(*st, text)
}

func (s *Styler) Enabled() bool { return !s.plain && Enabled() }

func (s *Styler) Success(text string) string { return s.apply(&successStyle, text) }
func (s *Styler) Warning(text string) string { return s.apply(&warningStyle, text) }
func (s *Styler) Error(text string) string   { return s.apply(&errorStyle, text) }
func (s *Styler) Info(text string) string    { return s.apply(&infoStyle, text) }
func (s *Styler) Muted(text string) string   { return s.apply(&mutedStyle, text) }
func (s *Styler) Header(text string) string  { return s.apply(&headerStyle, text) }
