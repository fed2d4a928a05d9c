package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDirHonorsXDGConfigHome(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	if got := Dir(); got != filepath.Join("/tmp/xdg", "vaultgate") {
		t.Errorf("Dir() = %q", got)
	}
}

func TestDirDefaultsToHomeConfig(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "")
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("home dir unavailable: %v", err)
	}
	want := filepath.Join(home, ".config", "vaultgate")
	if got := Dir(); got != want {
		t.Errorf("Dir() = %q, want %q", got, want)
	}
}

func TestPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	if got := Path(); !strings.HasSuffix(got, filepath.Join("vaultgate", "config.yaml")) {
		t.Errorf("Path() = %q", got)
	}
}

func TestWriteDefaultRefusesOverwrite(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	if err := WriteDefault(); err != nil {
		t.Fatalf("WriteDefault() error = %v", err)
	}
	if err := WriteDefault(); err == nil {
		t.Fatal("second WriteDefault() should refuse to overwrite")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() after WriteDefault() error = %v", err)
	}
	if cfg.Gateway.TimeoutSeconds != DefaultTimeoutSeconds {
		t.Errorf("TimeoutSeconds = %d, want %d", cfg.Gateway.TimeoutSeconds, DefaultTimeoutSeconds)
	}
}
