package commands

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/strongspace/cli/internal/usage"
)

func TestConfig_List(t *testing.T) {
	f := newFixture(t)
	f.config.values = map[string]string{
		"api_url":       "https://api.example.com",
		"log_level":     "debug",
		"color_success": "",
		"color_error":   "9",
	}

	err := NewConfig(nil, f.session).Invoke(context.Background(), "index")

	require.NoError(t, err)
	out := f.out.String()
	require.Contains(t, out, "[API]\napi_url=https://api.example.com\n")
	require.Contains(t, out, "log_level=debug")
	require.Contains(t, out, "color_error=9")
	require.NotContains(t, out, "color_success")
	require.NotContains(t, out, "[Display]")
}

func TestConfig_Get(t *testing.T) {
	f := newFixture(t)
	f.config.values["theme"] = "mono"

	require.NoError(t, NewConfig([]string{"theme"}, f.session).Invoke(context.Background(), "get"))
	require.Equal(t, "mono\n", f.out.String())

	err := NewConfig([]string{"nope"}, f.session).Invoke(context.Background(), "get")
	requireUsageKind(t, err, usage.ErrInvalidConfigKey)

	err = NewConfig(nil, f.session).Invoke(context.Background(), "get")
	requireUsageKind(t, err, usage.ErrMissingArgument)
}

func TestConfig_Set(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr usage.ErrorKind
	}{
		{name: "valid", args: []string{"theme", "contrast"}},
		{name: "invalid key", args: []string{"colour", "red"}, wantErr: usage.ErrInvalidConfigKey},
		{name: "missing value", args: []string{"theme"}, wantErr: usage.ErrMissingArgument},
		{name: "missing key", args: nil, wantErr: usage.ErrMissingArgument},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			err := NewConfig(tt.args, f.session).Invoke(context.Background(), "set")

			if tt.wantErr != 0 {
				requireUsageKind(t, err, tt.wantErr)
				require.Empty(t, f.config.values)
				return
			}
			require.NoError(t, err)
			require.Equal(t, "contrast", f.config.values["theme"])
			require.Equal(t, "theme=contrast\n", f.out.String())
		})
	}
}

func TestConfig_Unset(t *testing.T) {
	f := newFixture(t)
	f.config.values["pager"] = "most"

	require.NoError(t, NewConfig([]string{"pager"}, f.session).Invoke(context.Background(), "unset"))
	require.NotContains(t, f.config.values, "pager")
	require.Equal(t, "unset pager\n", f.out.String())
}
