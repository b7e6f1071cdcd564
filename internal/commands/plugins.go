package commands

import (
	"context"

	"github.com/strongspace/cli/internal/command"
	"github.com/strongspace/cli/internal/domain"
	"github.com/strongspace/cli/internal/ui"
	"github.com/strongspace/cli/internal/usage"
)

// Plugins installs and toggles plugins.
type Plugins struct {
	command.Operations
	handler
}

// NewPlugins is the factory for the plugins type.
func NewPlugins(args []string, session *domain.Session) command.Handler {
	h := &Plugins{handler: newHandler(args, session)}
	h.Operations = h.bind(map[string]operation{
		command.DefaultOperation: h.list,
		"install":                h.install,
		"uninstall":              h.uninstall,
		"enable":                 h.enable,
		"disable":                h.disable,
	})
	return h
}

func manager(s *domain.Session) (domain.PluginManager, error) {
	if s.Plugins == nil {
		return nil, usage.Failed("Plugins are unavailable: the plugin catalog could not be opened")
	}
	return s.Plugins, nil
}

func (h *Plugins) list(_ context.Context, s *domain.Session) error {
	m, err := manager(s)
	if err != nil {
		return err
	}
	plugins, err := m.List()
	if err != nil {
		return err
	}
	if len(plugins) == 0 {
		_, _ = s.Output.Println(s.Styler.Muted("No plugins installed."))
		return nil
	}

	rows := make([][]string, 0, len(plugins))
	for _, p := range plugins {
		state := "enabled"
		if !p.Enabled {
			state = "disabled"
		}
		rows = append(rows, []string{p.Name, p.Version, state, p.Source})
	}
	_, _ = s.Output.Printf("%s", ui.Table([]string{"NAME", "VERSION", "STATE", "SOURCE"}, rows))
	return nil
}

func (h *Plugins) install(_ context.Context, s *domain.Session) error {
	if err := requireArgs(h.args, "dir"); err != nil {
		return err
	}
	m, err := manager(s)
	if err != nil {
		return err
	}
	p, err := m.Install(h.args[0])
	if err != nil {
		return err
	}
	_, _ = s.Output.Println(s.Styler.Success("Installed plugin " + p.Name))
	return nil
}

func (h *Plugins) uninstall(_ context.Context, s *domain.Session) error {
	if err := requireArgs(h.args, "name"); err != nil {
		return err
	}
	m, err := manager(s)
	if err != nil {
		return err
	}
	if err := m.Uninstall(h.args[0]); err != nil {
		return err
	}
	_, _ = s.Output.Println("Uninstalled plugin " + h.args[0])
	return nil
}

func (h *Plugins) enable(_ context.Context, s *domain.Session) error {
	return h.toggle(s, true)
}

func (h *Plugins) disable(_ context.Context, s *domain.Session) error {
	return h.toggle(s, false)
}

func (h *Plugins) toggle(s *domain.Session, enabled bool) error {
	if err := requireArgs(h.args, "name"); err != nil {
		return err
	}
	m, err := manager(s)
	if err != nil {
		return err
	}
	if err := m.SetEnabled(h.args[0], enabled); err != nil {
		return err
	}
	state := "Disabled"
	if enabled {
		state = "Enabled"
	}
	_, _ = s.Output.Printf("%s plugin %s\n", state, h.args[0])
	return nil
}
