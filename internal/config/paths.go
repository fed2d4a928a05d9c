package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Dir returns the vaultgate configuration directory path.
// By default, this is ~/.config/vaultgate/. If the XDG_CONFIG_HOME
// environment variable is set, it uses $XDG_CONFIG_HOME/vaultgate/ instead.
func Dir() string {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		base = "~/.config"
	}
	return filepath.Join(expandHome(base), "vaultgate")
}

// EnsureDir creates the vaultgate configuration directory if it doesn't
// exist. It uses 0700 permissions for security (user-only access).
func EnsureDir() error {
	if err := os.MkdirAll(Dir(), 0o700); err != nil {
		return fmt.Errorf("ensure config dir: %w", err)
	}
	return nil
}

// Path returns the full path to the configuration file.
func Path() string {
	return filepath.Join(Dir(), "config.yaml")
}

// expandHome replaces a leading ~ in path with the user's home directory.
// If the home directory cannot be determined, the path is returned unchanged.
func expandHome(path string) string {
	if path == "~" {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return home
	}
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}
