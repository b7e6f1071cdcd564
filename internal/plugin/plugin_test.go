package plugin

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const testScript = `#!/bin/sh
echo "op=$1 args=$2 user=$STRONGSPACE_USERNAME"
if [ "$1" = "fail" ]; then
	exit 4
fi
`

// writePlugin creates a plugin directory with a shell executable.
func writePlugin(t *testing.T, name string, manifest string) string {
	t.Helper()

	dir := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "bin"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ManifestFile), []byte(manifest), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bin", "run"), []byte(testScript), 0755))
	return dir
}

func backupManifest(name string) string {
	return `name: ` + name + `
version: 1.2.0
summary: Back up local directories
executable: bin/run
operations:
  - name: index
    summary: Show backup status
  - name: push
    usage: push <dir>
    summary: Upload a directory
  - name: fail
`
}
