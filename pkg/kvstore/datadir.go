package kvstore

import (
	"os"
	"path/filepath"
	"runtime"
)

// DefaultDataDir returns the OS-appropriate default data directory for fluorish.
//
//   - macOS:   ~/Library/Application Support/fluorish
//   - Linux:   $XDG_DATA_HOME/fluorish (fallback ~/.local/share/fluorish)
//   - Windows: %LOCALAPPDATA%\fluorish (fallback %APPDATA%\fluorish)
func DefaultDataDir() string {
	return defaultDataDirForOS(runtime.GOOS)
}

func defaultDataDirForOS(goos string) string {
	home, _ := os.UserHomeDir()

	switch goos {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "fluorish")
	case "windows":
		if dir := os.Getenv("LOCALAPPDATA"); dir != "" {
			return filepath.Join(dir, "fluorish")
		}
		if dir := os.Getenv("APPDATA"); dir != "" {
			return filepath.Join(dir, "fluorish")
		}
		return filepath.Join(home, "fluorish")
	default: // linux, freebsd, etc.
		if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
			return filepath.Join(dir, "fluorish")
		}
		return filepath.Join(home, ".local", "share", "fluorish")
	}
}
