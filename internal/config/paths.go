package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// UserConfigPath returns the user-level config file. GX_CONFIG overrides the
// platform location.
func UserConfigPath() string {
	if envPath := os.Getenv("GX_CONFIG"); envPath != "" {
		return envPath
	}

	configDir := getUserConfigDir()
	if configDir == "" {
		return ""
	}
	return filepath.Join(configDir, "config.toml")
}

// getUserConfigDir returns the user's config directory based on platform
func getUserConfigDir() string {
	switch runtime.GOOS {
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "gx")
		}
		return ""
	case "darwin":
		if homeDir := getHomeDir(); homeDir != "" {
			return filepath.Join(homeDir, "Library", "Application Support", "gx")
		}
		return ""
	default:
		// Follow XDG Base Directory specification
		if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
			return filepath.Join(xdgConfig, "gx")
		}
		if homeDir := getHomeDir(); homeDir != "" {
			return filepath.Join(homeDir, ".config", "gx")
		}
		return ""
	}
}

// getHomeDir returns the user's home directory
func getHomeDir() string {
	if home := os.Getenv("HOME"); home != "" {
		return home
	}
	if userProfile := os.Getenv("USERPROFILE"); userProfile != "" {
		return userProfile
	}
	return ""
}
