package config

import (
	"bufio"
	"os"
	"strings"

	"github.com/strongspace/cli/internal/domain"
	"github.com/strongspace/cli/internal/log"
	"github.com/strongspace/cli/internal/paths"
)

// ReadLines returns the raw lines of ~/.strongspacerc, creating the file
// with commented defaults when it does not exist yet.
func ReadLines() ([]string, error) {
	configPath, err := paths.ConfigFilePath()
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(configPath)
	isNew := os.IsNotExist(err) || (err == nil && info.Size() == 0)

	lines, err := ReadLinesFrom(configPath)
	if err != nil {
		return nil, err
	}

	if isNew && len(lines) == 0 {
		lines = initializeDefaults()
		if err := WriteLines(lines); err != nil {
			log.Warn("config: could not write default config: %v", err)
		}
	}

	return lines, nil
}

// ReadLinesFrom reads a key=value file, creating it empty with 0600
// permissions if missing.
func ReadLinesFrom(path string) ([]string, error) {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_RDONLY, 0600)
	if err != nil {
		return nil, err
	}
	defer func() { _ = file.Close() }()

	if err := os.Chmod(path, 0600); err != nil {
		log.Warn("config: could not set permissions on %s: %v", path, err)
	}

	var lines []string
	scanner := bufio.NewScanner(file)

	for scanner.Scan() {
		line := scanner.Text()
		line = strings.TrimSuffix(line, "\r") // Windows CRLF
		lines = append(lines, line)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}

// initializeDefaults creates config lines with default values for visible keys.
func initializeDefaults() []string {
	var lines []string

	lines = append(lines, "# Strongspace configuration")
	lines = append(lines, "# Edit values below or use: strongspace config:set <key> <value>")
	lines = append(lines, "")

	for _, key := range domain.ConfigKeys {
		if key.Hidden {
			continue
		}

		value := key.Default
		if fn, ok := Defaults[key.Name]; ok {
			value = fn()
		}

		if strings.Contains(value, " ") {
			value = "\"" + value + "\""
		}

		// Optional overrides and empty defaults are commented out.
		if key.HideIfEmpty || value == "" {
			lines = append(lines, "# "+key.Name+"=")
		} else {
			lines = append(lines, key.Name+"="+value)
		}
	}

	return lines
}
