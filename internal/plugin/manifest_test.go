package plugin

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReadManifest(t *testing.T) {
	dir := writePlugin(t, "backup", backupManifest("backup"))

	m, err := ReadManifest(dir)
	require.NoError(t, err)
	require.Equal(t, "backup", m.Name)
	require.Equal(t, "1.2.0", m.Version)
	require.Equal(t, "bin/run", m.Executable)
	require.Len(t, m.Operations, 3)
	require.Equal(t, "push <dir>", m.Operations[1].Usage)
}

func TestReadManifest_Missing(t *testing.T) {
	_, err := ReadManifest(t.TempDir())
	require.Error(t, err)
}

func TestReadManifest_Malformed(t *testing.T) {
	dir := writePlugin(t, "bad", "name: [unterminated")

	_, err := ReadManifest(dir)
	require.ErrorContains(t, err, "parse plugin.yaml")
}

func TestManifest_Validate(t *testing.T) {
	valid := func() Manifest {
		return Manifest{
			Name:       "backup",
			Executable: "bin/run",
			Operations: []Operation{{Name: "index"}},
		}
	}

	tests := []struct {
		name   string
		mutate func(*Manifest)
		errMsg string
	}{
		{"valid", func(*Manifest) {}, ""},
		{"empty name", func(m *Manifest) { m.Name = "" }, "name"},
		{"name with separator", func(m *Manifest) { m.Name = "a:b" }, "name"},
		{"uppercase name", func(m *Manifest) { m.Name = "Backup" }, "name"},
		{"no executable", func(m *Manifest) { m.Executable = "" }, "executable is required"},
		{"absolute executable", func(m *Manifest) { m.Executable = "/bin/sh" }, "inside the plugin directory"},
		{"escaping executable", func(m *Manifest) { m.Executable = "../run" }, "inside the plugin directory"},
		{"no operations", func(m *Manifest) { m.Operations = nil }, "at least one operation"},
		{"bad operation", func(m *Manifest) { m.Operations = []Operation{{Name: "a:b"}} }, "operation name"},
		{"duplicate operation", func(m *Manifest) {
			m.Operations = []Operation{{Name: "index"}, {Name: "index"}}
		}, "declared twice"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := valid()
			tt.mutate(&m)
			err := m.Validate()
			if tt.errMsg == "" {
				require.NoError(t, err)
				return
			}
			require.ErrorContains(t, err, tt.errMsg)
		})
	}
}
