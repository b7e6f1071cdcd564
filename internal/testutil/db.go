// Package testutil holds helpers shared by package tests.
package testutil

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"

	"github.com/strongspace/cli/internal/domain"
	"github.com/strongspace/cli/internal/store"
	"github.com/strongspace/cli/internal/store/migrations"
)

// NewTestDB creates an in-memory SQLite database with migrations applied.
// The database is closed when the test finishes.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err, "failed to open in-memory database")
	// Every pooled connection would get its own empty database.
	db.SetMaxOpenConns(1)

	t.Cleanup(func() {
		_ = db.Close()
	})

	require.NoError(t, migrations.Run(db), "failed to run migrations")
	return db
}

// NewTestStore wraps NewTestDB in a store.Store.
func NewTestStore(t *testing.T) *store.Store {
	t.Helper()
	return store.NewWithDB(NewTestDB(t))
}

// SeedPlugins records plugins in the catalog, disabling those marked so.
func SeedPlugins(t *testing.T, s *store.Store, plugins []domain.Plugin) {
	t.Helper()

	for _, p := range plugins {
		_, err := s.AddPlugin(p.Name, p.Version, p.Source, p.Path)
		require.NoError(t, err, "failed to seed plugin: %+v", p)
		if !p.Enabled {
			require.NoError(t, s.SetPluginEnabled(p.Name, false))
		}
	}
}
