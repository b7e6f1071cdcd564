package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, home string, lines ...string) {
	t.Helper()
	content := strings.Join(lines, "\n") + "\n"
	require.NoError(t, os.WriteFile(filepath.Join(home, ".strongspacerc"), []byte(content), 0600))
}

func TestGet(t *testing.T) {
	tests := []struct {
		name        string
		configLines []string
		key         string
		wantValue   string
		wantFound   bool
	}{
		{
			name:        "value from config file",
			configLines: []string{"api_timeout_sec=5"},
			key:         "api_timeout_sec",
			wantValue:   "5",
			wantFound:   true,
		},
		{
			name:        "default when key not in file",
			configLines: []string{"pager=cat"},
			key:         "api_timeout_sec",
			wantValue:   "30",
			wantFound:   true,
		},
		{
			name:        "custom key without default",
			configLines: []string{"custom=value"},
			key:         "custom",
			wantValue:   "value",
			wantFound:   true,
		},
		{
			name:        "unknown key",
			configLines: []string{"pager=cat"},
			key:         "nope",
			wantFound:   false,
		},
		{
			name:        "defaults when file is malformed",
			configLines: []string{"not a key value line"},
			key:         "log_level",
			wantValue:   "info",
			wantFound:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			home := setupTempHome(t)
			writeConfig(t, home, tt.configLines...)

			gotValue, gotFound := Get(tt.key)
			require.Equal(t, tt.wantFound, gotFound, "found mismatch")
			if tt.wantFound {
				require.Equal(t, tt.wantValue, gotValue, "value mismatch")
			}
		})
	}
}

func TestGet_EnvOverride(t *testing.T) {
	home := setupTempHome(t)
	writeConfig(t, home, "api_url=http://from-file")
	t.Setenv("STRONGSPACE_API_URL", "http://from-env")

	value, found := Get("api_url")
	require.True(t, found)
	require.Equal(t, "http://from-env", value)
}

func TestGetAll_MergesCorrectly(t *testing.T) {
	home := setupTempHome(t)
	writeConfig(t, home,
		"api_timeout_sec=9999",
		"log_level=warn",
		"my_custom_setting=custom_value",
	)
	t.Setenv("STRONGSPACE_LOG_LEVEL", "debug")

	got, err := GetAll()
	require.NoError(t, err)

	require.Len(t, got, len(Defaults)+1)
	require.Equal(t, "9999", got["api_timeout_sec"])
	require.Equal(t, "debug", got["log_level"], "environment wins over the file")
	require.Equal(t, "custom_value", got["my_custom_setting"])
	require.Equal(t, "https://www.strongspace.com", got["api_url"])
}

func TestGetAll_NoConfigFile(t *testing.T) {
	setupTempHome(t)

	got, err := GetAll()
	require.NoError(t, err)
	require.Len(t, got, len(Defaults))
	require.Equal(t, "30", got["api_timeout_sec"])
	require.Equal(t, "true", got["enable_log"])
}
