package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Env holds the environment overrides. They take precedence over the
// config file and the built-in defaults.
type Env struct {
	APIURL        string `env:"STRONGSPACE_API_URL"`
	APITimeoutSec string `env:"STRONGSPACE_API_TIMEOUT"`
	LogLevel      string `env:"STRONGSPACE_LOG_LEVEL"`
	PluginsDir    string `env:"STRONGSPACE_PLUGINS_DIR"`
	Username      string `env:"STRONGSPACE_USERNAME"`
	Password      string `env:"STRONGSPACE_PASSWORD"`
	NoColor       string `env:"STRONGSPACE_NO_COLOR"`
}

// ParseEnv loads the overrides from the process environment.
func ParseEnv() (Env, error) {
	var e Env
	if err := env.Parse(&e); err != nil {
		return Env{}, fmt.Errorf("parse env: %w", err)
	}
	return e, nil
}

// Overrides returns the config keys overridden by the environment.
func (e Env) Overrides() map[string]string {
	out := make(map[string]string)
	if e.APIURL != "" {
		out["api_url"] = e.APIURL
	}
	if e.APITimeoutSec != "" {
		out["api_timeout_sec"] = e.APITimeoutSec
	}
	if e.LogLevel != "" {
		out["log_level"] = e.LogLevel
	}
	if e.PluginsDir != "" {
		out["plugins_dir"] = e.PluginsDir
	}
	return out
}

func envOverride(key string) (string, bool) {
	e, err := ParseEnv()
	if err != nil {
		return "", false
	}
	v, ok := e.Overrides()[key]
	return v, ok
}
