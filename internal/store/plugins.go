package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/strongspace/cli/internal/domain"
)

var (
	// ErrPluginNotFound is returned when no catalog entry has the name.
	ErrPluginNotFound = errors.New("plugin not found")

	// ErrPluginExists is returned when adding a name already in the catalog.
	ErrPluginExists = errors.New("plugin already installed")
)

const pluginColumns = `id, name, version, source, path, enabled, installed_at`

// AddPlugin records a newly installed plugin as enabled.
func (s *Store) AddPlugin(name, version, source, path string) (domain.Plugin, error) {
	p := domain.Plugin{
		ID:          uuid.NewString(),
		Name:        name,
		Version:     version,
		Source:      source,
		Path:        path,
		Enabled:     true,
		InstalledAt: time.Now().UTC().Format(time.RFC3339),
	}

	if _, err := s.GetPlugin(name); err == nil {
		return domain.Plugin{}, fmt.Errorf("%w: %s", ErrPluginExists, name)
	} else if !errors.Is(err, ErrPluginNotFound) {
		return domain.Plugin{}, err
	}

	_, err := s.db.Exec(
		`INSERT INTO plugins (`+pluginColumns+`) VALUES (?, ?, ?, ?, ?, 1, ?)`,
		p.ID, p.Name, p.Version, p.Source, p.Path, p.InstalledAt,
	)
	if err != nil {
		return domain.Plugin{}, fmt.Errorf("insert plugin: %w", err)
	}
	return p, nil
}

// GetPlugin returns the catalog entry for name.
func (s *Store) GetPlugin(name string) (domain.Plugin, error) {
	row := s.db.QueryRow(`SELECT `+pluginColumns+` FROM plugins WHERE name = ?`, name)
	p, err := scanPlugin(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Plugin{}, fmt.Errorf("%w: %s", ErrPluginNotFound, name)
	}
	return p, err
}

// ListPlugins returns every catalog entry ordered by name.
func (s *Store) ListPlugins() ([]domain.Plugin, error) {
	return s.queryPlugins(`SELECT ` + pluginColumns + ` FROM plugins ORDER BY name`)
}

// ListEnabledPlugins returns the entries the extension loader should register.
func (s *Store) ListEnabledPlugins() ([]domain.Plugin, error) {
	return s.queryPlugins(`SELECT ` + pluginColumns + ` FROM plugins WHERE enabled = 1 ORDER BY name`)
}

// SetPluginEnabled toggles a plugin.
func (s *Store) SetPluginEnabled(name string, enabled bool) error {
	res, err := s.db.Exec(`UPDATE plugins SET enabled = ? WHERE name = ?`, enabled, name)
	if err != nil {
		return fmt.Errorf("update plugin: %w", err)
	}
	return requireRow(res, name)
}

// RemovePlugin deletes the catalog entry for name.
func (s *Store) RemovePlugin(name string) error {
	res, err := s.db.Exec(`DELETE FROM plugins WHERE name = ?`, name)
	if err != nil {
		return fmt.Errorf("delete plugin: %w", err)
	}
	return requireRow(res, name)
}

func (s *Store) queryPlugins(query string) ([]domain.Plugin, error) {
	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("query plugins: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var plugins []domain.Plugin
	for rows.Next() {
		p, err := scanPlugin(rows)
		if err != nil {
			return nil, err
		}
		plugins = append(plugins, p)
	}
	return plugins, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanPlugin(row scanner) (domain.Plugin, error) {
	var p domain.Plugin
	err := row.Scan(&p.ID, &p.Name, &p.Version, &p.Source, &p.Path, &p.Enabled, &p.InstalledAt)
	return p, err
}

func requireRow(res sql.Result, name string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrPluginNotFound, name)
	}
	return nil
}
