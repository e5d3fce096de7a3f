package config

import (
	"os"
	"path/filepath"
	"strings"
)

// ExpandTilde replaces ~ or ~/path with the user's home directory.
// Does not support ~username syntax - just ~ for the current user.
func ExpandTilde(path string) string {
	if path == "" {
		return path
	}

	// Handle ~/path
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path // Return unchanged if we can't get home
		}
		return filepath.Join(home, path[2:])
	}

	// Handle standalone ~
	if path == "~" {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return home
	}

	return path
}

// ExpandPath expands environment variables (${HOME}, $XDG_RUNTIME_DIR, ...)
// and a leading ~ in a filesystem root, then cleans it. Used for proc_root
// and sys_root so fixture trees can live under the home directory.
func ExpandPath(path string) string {
	if path == "" {
		return path
	}
	return filepath.Clean(ExpandTilde(os.ExpandEnv(path)))
}

// expandRoots rewrites the filesystem roots in cfg in place.
func expandRoots(cfg *Config) {
	cfg.ProcRoot = ExpandPath(cfg.ProcRoot)
	cfg.SysRoot = ExpandPath(cfg.SysRoot)
}
