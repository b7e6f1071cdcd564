// Package plugin installs external command plugins and registers them as
// handler types.
//
// A plugin is a directory with a plugin.yaml manifest and an executable.
// Each operation runs the executable as "<exe> <operation> [args...]".
package plugin

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"gopkg.in/yaml.v3"
)

// ManifestFile is the manifest name inside a plugin directory.
const ManifestFile = "plugin.yaml"

var namePattern = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

// Manifest describes a plugin.
type Manifest struct {
	Name       string      `yaml:"name"`
	Version    string      `yaml:"version"`
	Summary    string      `yaml:"summary"`
	Executable string      `yaml:"executable"`
	Operations []Operation `yaml:"operations"`
}

// Operation is one operation exposed by a plugin.
type Operation struct {
	Name    string `yaml:"name"`
	Usage   string `yaml:"usage"`
	Summary string `yaml:"summary"`
}

// ReadManifest loads and validates dir/plugin.yaml.
func ReadManifest(dir string) (Manifest, error) {
	data, err := os.ReadFile(filepath.Join(dir, ManifestFile))
	if err != nil {
		return Manifest{}, fmt.Errorf("read manifest: %w", err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return Manifest{}, fmt.Errorf("parse %s: %w", ManifestFile, err)
	}
	if err := m.Validate(); err != nil {
		return Manifest{}, fmt.Errorf("invalid %s: %w", ManifestFile, err)
	}
	return m, nil
}

// Validate checks the fields the loader relies on.
func (m Manifest) Validate() error {
	if !namePattern.MatchString(m.Name) {
		return fmt.Errorf("name %q must be lowercase letters, digits and underscores", m.Name)
	}
	if m.Executable == "" {
		return fmt.Errorf("executable is required")
	}
	if filepath.IsAbs(m.Executable) || !filepath.IsLocal(m.Executable) {
		return fmt.Errorf("executable %q must be a path inside the plugin directory", m.Executable)
	}
	if len(m.Operations) == 0 {
		return fmt.Errorf("at least one operation is required")
	}

	seen := make(map[string]bool, len(m.Operations))
	for _, op := range m.Operations {
		if !namePattern.MatchString(op.Name) {
			return fmt.Errorf("operation name %q is invalid", op.Name)
		}
		if seen[op.Name] {
			return fmt.Errorf("operation %q is declared twice", op.Name)
		}
		seen[op.Name] = true
	}
	return nil
}
