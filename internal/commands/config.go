package commands

import (
	"context"

	"github.com/strongspace/cli/internal/command"
	"github.com/strongspace/cli/internal/domain"
	"github.com/strongspace/cli/internal/usage"
)

// Config reads and writes ~/.strongspacerc.
type Config struct {
	command.Operations
	handler
}

// NewConfig is the factory for the config type.
func NewConfig(args []string, session *domain.Session) command.Handler {
	h := &Config{handler: newHandler(args, session)}
	h.Operations = h.bind(map[string]operation{
		command.DefaultOperation: h.list,
		"get":                    h.get,
		"set":                    h.set,
		"unset":                  h.unset,
	})
	return h
}

func (h *Config) list(_ context.Context, s *domain.Session) error {
	values, err := s.Config.GetAll()
	if err != nil {
		return err
	}

	bySection := domain.ConfigKeysBySection()
	first := true
	for _, section := range domain.ConfigSections() {
		var lines []string
		for _, key := range bySection[section] {
			value, ok := values[key.Name]
			if !ok || (key.HideIfEmpty && value == "") {
				continue
			}
			lines = append(lines, key.Name+"="+value)
		}
		if len(lines) == 0 {
			continue
		}
		if !first {
			_, _ = s.Output.Println()
		}
		first = false
		_, _ = s.Output.Println(s.Styler.Header("[" + section + "]"))
		for _, line := range lines {
			_, _ = s.Output.Println(line)
		}
	}
	return nil
}

func (h *Config) get(_ context.Context, s *domain.Session) error {
	if err := requireArgs(h.args, "key"); err != nil {
		return err
	}
	key := h.args[0]
	if !domain.IsValidConfigKey(key) {
		return usage.InvalidConfigKey(key)
	}

	value, _ := s.Config.Get(key)
	_, _ = s.Output.Println(value)
	return nil
}

func (h *Config) set(_ context.Context, s *domain.Session) error {
	if err := requireArgs(h.args, "key", "value"); err != nil {
		return err
	}
	key, value := h.args[0], h.args[1]
	if !domain.IsValidConfigKey(key) {
		return usage.InvalidConfigKey(key)
	}

	if err := s.Config.Set(key, value); err != nil {
		return err
	}
	_, _ = s.Output.Printf("%s=%s\n", key, value)
	return nil
}

func (h *Config) unset(_ context.Context, s *domain.Session) error {
	if err := requireArgs(h.args, "key"); err != nil {
		return err
	}
	key := h.args[0]
	if !domain.IsValidConfigKey(key) {
		return usage.InvalidConfigKey(key)
	}

	if err := s.Config.Unset(key); err != nil {
		return err
	}
	_, _ = s.Output.Printf("unset %s\n", key)
	return nil
}
