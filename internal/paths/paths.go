package paths

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
)

const appDirName = "strongspace"

// AppDataDir returns the application data directory for the log file and
// plugin catalog. Uses os.UserConfigDir() which returns:
//   - macOS: ~/Library/Application Support
//   - Linux: $XDG_CONFIG_HOME or ~/.config
//   - Windows: %AppData% (roaming)
func AppDataDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "."
	}

	path := filepath.Join(dir, appDirName)

	// Use restrictive permissions for application data
	_ = os.MkdirAll(path, 0700)

	return path
}

// AppLocalDataDir returns the OS-appropriate local data directory.
// Installed plugins live here.
//   - macOS: ~/Library/Application Support/strongspace
//   - Linux: $XDG_DATA_HOME/strongspace or ~/.local/share/strongspace
//   - Windows: %LOCALAPPDATA%\strongspace
func AppLocalDataDir() string {
	var base string

	switch runtime.GOOS {
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "."
		}
		base = filepath.Join(home, "Library", "Application Support")

	case "windows":
		base = os.Getenv("LOCALAPPDATA")
		if base == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "."
			}
			base = filepath.Join(home, "AppData", "Local")
		}

	default:
		base = os.Getenv("XDG_DATA_HOME")
		if base == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "."
			}
			base = filepath.Join(home, ".local", "share")
		}
	}

	return filepath.Join(base, appDirName)
}

// PluginsDir returns the default directory plugins are copied into.
func PluginsDir() string {
	return filepath.Join(AppLocalDataDir(), "plugins")
}

// ConfigFilePath returns the path of the user configuration file.
func ConfigFilePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, ".strongspacerc"), nil
}

// CredentialsFilePath returns the path of the stored login.
//   - macOS/Linux: ~/.strongspace/credentials
//   - Windows: %APPDATA%\Strongspace\credentials
func CredentialsFilePath() (string, error) {
	dir := credentialsDir()
	if dir == "" {
		return "", errors.New("paths: cannot determine credentials directory")
	}
	return filepath.Join(dir, "credentials"), nil
}

// DBPath returns the path of the plugin catalog database.
func DBPath() string {
	return filepath.Join(AppDataDir(), "plugins.db")
}

// LogFilePath returns the path to the application log file.
//   - macOS: ~/Library/Application Support/strongspace/strongspace.log
//   - Linux: $XDG_CONFIG_HOME/strongspace/strongspace.log or ~/.config/strongspace/strongspace.log
//   - Windows: %AppData%\strongspace\strongspace.log
func LogFilePath() string {
	return filepath.Join(AppDataDir(), "strongspace.log")
}
