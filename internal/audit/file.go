package audit

import (
	"fmt"
	"os"
	"path/filepath"
)

// DefaultPath returns the default audit log path following XDG conventions.
// Returns ~/.local/state/vaultgate/audit.log
func DefaultPath() string {
	stateDir := os.Getenv("XDG_STATE_HOME")
	if stateDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			home = "."
		}
		stateDir = filepath.Join(home, ".local", "state")
	}
	return filepath.Join(stateDir, "vaultgate", "audit.log")
}

// OpenFile opens an audit log file for appending, creating parent
// directories if needed. The caller owns the returned file.
func OpenFile(path string) (*os.File, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("create audit directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
	if err != nil {
		return nil, fmt.Errorf("open audit log: %w", err)
	}

	return f, nil
}
