package store_test

import (
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/strongspace/cli/internal/domain"
	"github.com/strongspace/cli/internal/store"
	"github.com/strongspace/cli/internal/testutil"
)

func TestStore_AddPlugin(t *testing.T) {
	s := testutil.NewTestStore(t)

	p, err := s.AddPlugin("backup", "1.0.0", "/src/backup", "/plugins/backup")
	require.NoError(t, err)
	require.True(t, p.Enabled)
	_, err = uuid.Parse(p.ID)
	require.NoError(t, err)

	got, err := s.GetPlugin("backup")
	require.NoError(t, err)
	require.Equal(t, p, got)
}

func TestStore_AddPlugin_Duplicate(t *testing.T) {
	s := testutil.NewTestStore(t)

	_, err := s.AddPlugin("backup", "", "/a", "/b")
	require.NoError(t, err)

	_, err = s.AddPlugin("backup", "", "/a", "/b")
	require.ErrorIs(t, err, store.ErrPluginExists)
}

func TestStore_GetPlugin_Missing(t *testing.T) {
	s := testutil.NewTestStore(t)

	_, err := s.GetPlugin("nope")
	require.ErrorIs(t, err, store.ErrPluginNotFound)
}

func TestStore_ListPlugins(t *testing.T) {
	s := testutil.NewTestStore(t)
	testutil.SeedPlugins(t, s, []domain.Plugin{
		{Name: "zeta", Path: "/z", Enabled: true},
		{Name: "alpha", Path: "/a", Enabled: false},
		{Name: "mid", Path: "/m", Enabled: true},
	})

	all, err := s.ListPlugins()
	require.NoError(t, err)
	require.Len(t, all, 3)
	require.Equal(t, "alpha", all[0].Name)
	require.False(t, all[0].Enabled)

	enabled, err := s.ListEnabledPlugins()
	require.NoError(t, err)
	require.Len(t, enabled, 2)
	require.Equal(t, "mid", enabled[0].Name)
	require.Equal(t, "zeta", enabled[1].Name)
}

func TestStore_SetPluginEnabled(t *testing.T) {
	s := testutil.NewTestStore(t)
	testutil.SeedPlugins(t, s, []domain.Plugin{{Name: "backup", Enabled: true}})

	require.NoError(t, s.SetPluginEnabled("backup", false))
	p, err := s.GetPlugin("backup")
	require.NoError(t, err)
	require.False(t, p.Enabled)

	require.NoError(t, s.SetPluginEnabled("backup", true))
	p, err = s.GetPlugin("backup")
	require.NoError(t, err)
	require.True(t, p.Enabled)

	require.ErrorIs(t, s.SetPluginEnabled("nope", true), store.ErrPluginNotFound)
}

func TestStore_RemovePlugin(t *testing.T) {
	s := testutil.NewTestStore(t)
	testutil.SeedPlugins(t, s, []domain.Plugin{{Name: "backup", Enabled: true}})

	require.NoError(t, s.RemovePlugin("backup"))
	_, err := s.GetPlugin("backup")
	require.ErrorIs(t, err, store.ErrPluginNotFound)

	require.ErrorIs(t, s.RemovePlugin("backup"), store.ErrPluginNotFound)
}

func TestNew_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "plugins.db")

	s, err := store.New(path)
	require.NoError(t, err)
	require.Equal(t, path, s.Path())

	_, err = s.AddPlugin("backup", "", "/a", "/b")
	require.NoError(t, err)
	require.NoError(t, s.Close())

	reopened, err := store.New(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = reopened.Close() })

	_, err = reopened.GetPlugin("backup")
	require.NoError(t, err)
}
