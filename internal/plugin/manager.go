package plugin

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/strongspace/cli/internal/domain"
	"github.com/strongspace/cli/internal/log"
	"github.com/strongspace/cli/internal/store"
	"github.com/strongspace/cli/internal/usage"
)

// Catalog is the persistence the manager and loader need.
type Catalog interface {
	AddPlugin(name, version, source, path string) (domain.Plugin, error)
	GetPlugin(name string) (domain.Plugin, error)
	ListPlugins() ([]domain.Plugin, error)
	ListEnabledPlugins() ([]domain.Plugin, error)
	SetPluginEnabled(name string, enabled bool) error
	RemovePlugin(name string) error
}

var _ Catalog = (*store.Store)(nil)

// Manager installs plugins into a directory and records them in a catalog.
type Manager struct {
	catalog  Catalog
	dir      string
	reserved func(name string) bool
}

var _ domain.PluginManager = (*Manager)(nil)

// NewManager returns a manager installing into dir. reserved reports names
// already taken by built-in handler types; it may be nil.
func NewManager(catalog Catalog, dir string, reserved func(string) bool) *Manager {
	if reserved == nil {
		reserved = func(string) bool { return false }
	}
	return &Manager{catalog: catalog, dir: dir, reserved: reserved}
}

// List returns every installed plugin.
func (m *Manager) List() ([]domain.Plugin, error) {
	return m.catalog.ListPlugins()
}

// Install validates the plugin in src, copies it into the plugins directory
// and records it as enabled.
func (m *Manager) Install(src string) (domain.Plugin, error) {
	src, err := filepath.Abs(src)
	if err != nil {
		return domain.Plugin{}, fmt.Errorf("resolve %s: %w", src, err)
	}

	manifest, err := ReadManifest(src)
	if err != nil {
		return domain.Plugin{}, usage.Failed("%s", err.Error())
	}
	if m.reserved(manifest.Name) {
		return domain.Plugin{}, usage.Failed("Plugin name %s conflicts with a built-in command", manifest.Name)
	}
	if _, err := m.catalog.GetPlugin(manifest.Name); err == nil {
		return domain.Plugin{}, usage.Failed("Plugin %s is already installed", manifest.Name)
	} else if !errors.Is(err, store.ErrPluginNotFound) {
		return domain.Plugin{}, err
	}

	dest := filepath.Join(m.dir, manifest.Name)
	if _, err := os.Stat(dest); err == nil {
		return domain.Plugin{}, usage.Failed("%s already exists", dest)
	}
	if err := copyTree(src, dest); err != nil {
		_ = os.RemoveAll(dest)
		return domain.Plugin{}, fmt.Errorf("copy plugin: %w", err)
	}

	p, err := m.catalog.AddPlugin(manifest.Name, manifest.Version, src, dest)
	if err != nil {
		_ = os.RemoveAll(dest)
		return domain.Plugin{}, err
	}
	log.Info("plugin: installed %s from %s", p.Name, src)
	return p, nil
}

// Uninstall removes the plugin files and its catalog entry.
func (m *Manager) Uninstall(name string) error {
	p, err := m.catalog.GetPlugin(name)
	if err != nil {
		return notInstalled(name, err)
	}
	if err := os.RemoveAll(p.Path); err != nil {
		return fmt.Errorf("remove %s: %w", p.Path, err)
	}
	if err := m.catalog.RemovePlugin(name); err != nil {
		return err
	}
	log.Info("plugin: uninstalled %s", name)
	return nil
}

// SetEnabled toggles whether the loader registers the plugin.
func (m *Manager) SetEnabled(name string, enabled bool) error {
	if err := m.catalog.SetPluginEnabled(name, enabled); err != nil {
		return notInstalled(name, err)
	}
	return nil
}

func notInstalled(name string, err error) error {
	if errors.Is(err, store.ErrPluginNotFound) {
		return usage.Failed("Plugin %s is not installed", name)
	}
	return err
}

// copyTree copies regular files and directories from src to dst, keeping
// file modes. Symlinks are skipped.
func copyTree(src, dst string) error {
	return filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)

		info, err := d.Info()
		if err != nil {
			return err
		}
		switch {
		case d.IsDir():
			return os.MkdirAll(target, 0755)
		case info.Mode().IsRegular():
			return copyFile(path, target, info.Mode().Perm())
		default:
			return nil
		}
	})
}

func copyFile(src, dst string, perm fs.FileMode) (err error) {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, perm)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); err == nil {
			err = cerr
		}
	}()

	_, err = io.Copy(out, in)
	return err
}
