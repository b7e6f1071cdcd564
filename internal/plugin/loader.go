package plugin

import (
	"fmt"
	"path/filepath"

	"github.com/strongspace/cli/internal/command"
	"github.com/strongspace/cli/internal/domain"
)

// Loader registers enabled plugins as root handler types.
type Loader struct {
	catalog  Catalog
	registry *command.Registry
	logger   domain.Logger
}

var _ command.ExtensionLoader = (*Loader)(nil)

// NewLoader returns a loader. A nil catalog makes LoadAll a no-op.
func NewLoader(catalog Catalog, registry *command.Registry, logger domain.Logger) *Loader {
	return &Loader{catalog: catalog, registry: registry, logger: logger}
}

// LoadAll registers every enabled plugin not yet in the registry. Broken
// plugins are logged and skipped.
func (l *Loader) LoadAll() {
	if l.catalog == nil {
		return
	}

	plugins, err := l.catalog.ListEnabledPlugins()
	if err != nil {
		l.logger.Warn("plugin: list enabled: %v", err)
		return
	}

	for _, p := range plugins {
		if l.registry.Has(p.Name) {
			continue
		}
		if err := l.register(p); err != nil {
			l.logger.Warn("plugin: skipping %s: %v", p.Name, err)
		}
	}
}

func (l *Loader) register(p domain.Plugin) error {
	m, err := ReadManifest(p.Path)
	if err != nil {
		return err
	}
	if m.Name != p.Name {
		return fmt.Errorf("manifest names %q, catalog has %q", m.Name, p.Name)
	}

	ops := make([]command.OperationInfo, len(m.Operations))
	for i, op := range m.Operations {
		ops[i] = command.OperationInfo{Name: op.Name, Usage: op.Usage, Summary: op.Summary}
	}

	_, err = l.registry.TryRegister(command.TypeSpec{
		Command:    m.Name,
		Summary:    m.Summary,
		Operations: ops,
		New:        Factory(m, filepath.Clean(p.Path)),
	})
	if err != nil {
		return err
	}
	l.logger.Debug("plugin: registered %s", m.Name)
	return nil
}
