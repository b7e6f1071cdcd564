package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func setupTempHome(t *testing.T) {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", home)
	t.Setenv("APPDATA", home)
	t.Setenv("STRONGSPACE_API_URL", "http://127.0.0.1:1")
	t.Setenv("STRONGSPACE_USERNAME", "")
	t.Setenv("STRONGSPACE_PASSWORD", "")
}

func TestRun(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		wantCode   int
		wantStderr string
	}{
		{name: "version", args: []string{"--no-pager", "version"}, wantCode: 0},
		{name: "bare fallback", args: []string{"logout"}, wantCode: 0},
		{name: "unknown type", args: []string{"bogus:cmd"}, wantCode: 1, wantStderr: "Unknown command. Run 'strongspace help' for usage information."},
		{name: "unknown operation", args: []string{"spaces:nope"}, wantCode: 1, wantStderr: "Unknown command."},
		{name: "unknown bare command", args: []string{"frobnicate"}, wantCode: 1, wantStderr: "Unknown command."},
		{name: "empty segment", args: []string{"auth:"}, wantCode: 1, wantStderr: "Unknown command."},
		{name: "bad global flag", args: []string{"--bogus"}, wantCode: 2, wantStderr: "bogus"},
		{name: "missing argument", args: []string{"config:get"}, wantCode: 2, wantStderr: "key"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupTempHome(t)
			var stderr bytes.Buffer

			code := run(context.Background(), tt.args, &stderr)

			require.Equal(t, tt.wantCode, code, stderr.String())
			if tt.wantStderr != "" {
				require.Contains(t, stderr.String(), tt.wantStderr)
			} else {
				require.Empty(t, stderr.String())
			}
		})
	}
}

func TestRun_Canceled(t *testing.T) {
	setupTempHome(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var stderr bytes.Buffer

	code := run(ctx, []string{"spaces"}, &stderr)

	require.Equal(t, 130, code)
	require.Contains(t, stderr.String(), "[canceled]")
}
