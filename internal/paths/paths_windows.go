package paths

import "os"

func credentialsDir() string {
	appData := os.Getenv("APPDATA")
	if appData == "" {
		return ""
	}
	return appData + "\\Strongspace"
}
