//go:build !windows

package paths

import "os"

func credentialsDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return home + "/.strongspace"
}
