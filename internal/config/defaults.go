package config

import (
	"github.com/strongspace/cli/internal/paths"
)

// Default configuration values (in code, not persisted)
var Defaults = map[string]func() string{
	"api_url":         func() string { return "https://www.strongspace.com" },
	"api_timeout_sec": func() string { return "30" },
	"theme":           func() string { return "default" }, // auto-detects -dark/-light
	"display_date":    func() string { return "Jan 02" },
	"display_time":    func() string { return "24h" },
	"color_success":   func() string { return "" }, // uses theme default
	"color_warning":   func() string { return "" }, // uses theme default
	"color_error":     func() string { return "" }, // uses theme default
	"color_info":      func() string { return "" }, // uses theme default
	"color_muted":     func() string { return "" }, // uses theme default
	"color_header":    func() string { return "" }, // uses theme default
	"enable_log":      func() string { return "true" },
	"log_level":       func() string { return "info" },
	"plugins_dir":     func() string { return paths.PluginsDir() },
	"pager":           func() string { return "" }, // falls back to $PAGER, then less
}

// Get returns the value for a config key.
// Environment overrides win, then the config file, then the default.
// Returns the value and whether it was found.
func Get(key string) (string, bool) {
	if value, ok := envOverride(key); ok {
		return value, true
	}

	lines, err := ReadLines()
	if err != nil {
		if defaultFn, ok := Defaults[key]; ok {
			return defaultFn(), true
		}
		return "", false
	}

	cfg, err := Parse(lines)
	if err != nil {
		if defaultFn, ok := Defaults[key]; ok {
			return defaultFn(), true
		}
		return "", false
	}

	if value, exists := cfg[key]; exists {
		return value, true
	}

	if defaultFn, ok := Defaults[key]; ok {
		return defaultFn(), true
	}

	return "", false
}

// GetAll returns all config values (defaults, then user config, then
// environment overrides).
func GetAll() (map[string]string, error) {
	result := make(map[string]string)

	for key, valueFn := range Defaults {
		result[key] = valueFn()
	}

	lines, err := ReadLines()
	if err == nil {
		if cfg, err := Parse(lines); err == nil {
			for key, value := range cfg {
				result[key] = value
			}
		}
	}

	if e, err := ParseEnv(); err == nil {
		for key, value := range e.Overrides() {
			result[key] = value
		}
	}

	return result, nil
}
