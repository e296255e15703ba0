// Package appdata resolves the per-user directories Driftnote persists into.
package appdata

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

const (
	// appName is used on platforms with cased, human-readable paths
	// (Windows known folders, macOS Application Support).
	appName = "Driftnote"
	// appNameLower is used for XDG-style paths.
	appNameLower = "driftnote"
)

// Dir returns the platform-specific application data directory. The directory
// is not created; callers that write into it are responsible for MkdirAll.
func Dir() (string, error) {
	switch runtime.GOOS {
	case "windows":
		if localAppData := os.Getenv("LOCALAPPDATA"); localAppData != "" {
			return filepath.Join(localAppData, appName), nil
		}
		dir, err := os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("resolve app data dir: %w", err)
		}
		return filepath.Join(dir, appName), nil
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve app data dir: %w", err)
		}
		return filepath.Join(home, "Library", "Application Support", appName), nil
	default:
		if xdgData := os.Getenv("XDG_DATA_HOME"); xdgData != "" {
			return filepath.Join(xdgData, appNameLower), nil
		}
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve app data dir: %w", err)
		}
		return filepath.Join(home, ".local", "share", appNameLower), nil
	}
}

// LogDir returns the directory for log files. Logs live outside the app data
// directory on macOS and Linux so cache invalidation and log rotation never
// interfere with each other.
func LogDir() (string, error) {
	switch runtime.GOOS {
	case "windows":
		dir, err := Dir()
		if err != nil {
			return "", err
		}
		return filepath.Join(dir, "logs"), nil
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve log dir: %w", err)
		}
		return filepath.Join(home, "Library", "Logs", appName), nil
	default:
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve log dir: %w", err)
		}
		return filepath.Join(home, ".config", appNameLower, "logs"), nil
	}
}
