package plugin

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/strongspace/cli/internal/command"
	"github.com/strongspace/cli/internal/domain"
	"github.com/strongspace/cli/internal/log"
	"github.com/strongspace/cli/internal/testutil"
)

func TestLoader_LoadAll(t *testing.T) {
	s := testutil.NewTestStore(t)
	m := NewManager(s, filepath.Join(t.TempDir(), "plugins"), nil)
	_, err := m.Install(writePlugin(t, "backup", backupManifest("backup")))
	require.NoError(t, err)
	_, err = m.Install(writePlugin(t, "mirror", backupManifest("mirror")))
	require.NoError(t, err)
	require.NoError(t, m.SetEnabled("mirror", false))

	registry := command.NewRegistry()
	loader := NewLoader(s, registry, log.NopLogger{})

	loader.LoadAll()
	loader.LoadAll()

	require.True(t, registry.Has("backup"))
	require.False(t, registry.Has("mirror"))

	b, err := registry.Resolve("backup:push")
	require.NoError(t, err)
	require.Equal(t, "Back up local directories", b.Type.Summary)
	require.Len(t, b.Type.Operations, 3)

	h, err := b.New(nil, nil)
	require.NoError(t, err)
	require.True(t, h.Supports("push"))
	require.False(t, h.Supports("pull"))
}

func TestLoader_SkipsBrokenPlugins(t *testing.T) {
	s := testutil.NewTestStore(t)
	testutil.SeedPlugins(t, s, []domain.Plugin{
		{Name: "ghost", Path: filepath.Join(t.TempDir(), "missing"), Enabled: true},
		{Name: "renamed", Path: writePlugin(t, "renamed", backupManifest("other")), Enabled: true},
		{Name: "good", Path: writePlugin(t, "good", backupManifest("good")), Enabled: true},
	})

	registry := command.NewRegistry()
	NewLoader(s, registry, log.NopLogger{}).LoadAll()

	require.False(t, registry.Has("ghost"))
	require.False(t, registry.Has("renamed"))
	require.False(t, registry.Has("other"))
	require.True(t, registry.Has("good"))
}

func TestLoader_KeepsExistingTypes(t *testing.T) {
	s := testutil.NewTestStore(t)
	testutil.SeedPlugins(t, s, []domain.Plugin{
		{Name: "spaces", Path: writePlugin(t, "spaces", backupManifest("spaces")), Enabled: true},
	})

	registry := command.NewRegistry()
	builtin := registry.Register(command.TypeSpec{Command: "spaces", Summary: "built-in"})
	NewLoader(s, registry, log.NopLogger{}).LoadAll()

	b, err := registry.Resolve("spaces")
	require.NoError(t, err)
	require.Same(t, builtin, b.Type)
}

func TestLoader_NilCatalog(t *testing.T) {
	registry := command.NewRegistry()
	require.NotPanics(t, func() {
		NewLoader(nil, registry, log.NopLogger{}).LoadAll()
	})
	require.Empty(t, registry.Types())
}
