package style

import (
	"os"
	"strings"

	"github.com/muesli/termenv"
)

// ColorConfig holds the configurable colors. Values are ANSI color numbers
// (0-255) or "bold".
type ColorConfig struct {
	Success string
	Warning string
	Error   string
	Info    string
	Muted   string
	Header  string
}

// ThemeNames lists the selectable theme bases. Each has a -dark and a
// -light variant picked from the terminal background.
var ThemeNames = []string{"default", "mono", "contrast"}

// Themes contains the built-in color themes. Dark variants use bright
// colors, light variants use dark ones.
var Themes = map[string]ColorConfig{
	"default-dark": {
		Success: "10",
		Warning: "11",
		Error:   "9",
		Info:    "14",
		Muted:   "245",
		Header:  "bold",
	},
	"default-light": {
		Success: "28",
		Warning: "130",
		Error:   "124",
		Info:    "27",
		Muted:   "243",
		Header:  "bold",
	},
	// mono keeps errors readable without relying on hue.
	"mono-dark": {
		Success: "252",
		Warning: "250",
		Error:   "bold",
		Info:    "248",
		Muted:   "242",
		Header:  "bold",
	},
	"mono-light": {
		Success: "236",
		Warning: "238",
		Error:   "bold",
		Info:    "240",
		Muted:   "246",
		Header:  "bold",
	},
	"contrast-dark": {
		Success: "46",
		Warning: "226",
		Error:   "196",
		Info:    "51",
		Muted:   "250",
		Header:  "bold",
	},
	"contrast-light": {
		Success: "22",
		Warning: "130",
		Error:   "124",
		Info:    "21",
		Muted:   "240",
		Header:  "bold",
	},
}

// colorConfigKeys maps config keys to the field they override.
var colorConfigKeys = map[string]func(*ColorConfig, string){
	"color_success": func(c *ColorConfig, v string) { c.Success = v },
	"color_warning": func(c *ColorConfig, v string) { c.Warning = v },
	"color_error":   func(c *ColorConfig, v string) { c.Error = v },
	"color_info":    func(c *ColorConfig, v string) { c.Info = v },
	"color_muted":   func(c *ColorConfig, v string) { c.Muted = v },
	"color_header":  func(c *ColorConfig, v string) { c.Header = v },
}

// IsDarkBackground reports whether the terminal background is dark.
// Detection failures count as dark.
func IsDarkBackground() bool {
	return termenv.HasDarkBackground()
}

// ResolveThemeName appends -dark or -light to a theme base.
func ResolveThemeName(name string) string {
	if strings.HasSuffix(name, "-dark") || strings.HasSuffix(name, "-light") {
		return name
	}
	if IsDarkBackground() {
		return name + "-dark"
	}
	return name + "-light"
}

// LoadColorConfig builds the colors from config values.
//
// Resolution priority:
//  1. STRONGSPACE_COLOR_* environment variables
//  2. color_* config keys
//  3. the theme named by STRONGSPACE_THEME or the theme key
//  4. default
func LoadColorConfig(cfg map[string]string) ColorConfig {
	name := "default"
	if v := os.Getenv("STRONGSPACE_THEME"); v != "" {
		name = v
	} else if v := cfg["theme"]; v != "" {
		name = v
	}

	result, ok := Themes[ResolveThemeName(name)]
	if !ok {
		result = Themes["default-dark"]
	}

	for key, set := range colorConfigKeys {
		if v := os.Getenv("STRONGSPACE_" + strings.ToUpper(key)); v != "" {
			set(&result, v)
			continue
		}
		if v := cfg[key]; v != "" {
			set(&result, v)
		}
	}
	return result
}
