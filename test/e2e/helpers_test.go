//go:build e2e

package e2e

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

// testEnv holds the isolated directories one e2e test runs against.
type testEnv struct {
	ConfigHome string
	StateHome  string
}

// setupEnv writes a fake az script with the given body, a config file
// pointing vaultgate at it, and isolated XDG directories.
func setupEnv(t *testing.T, toolBody string) testEnv {
	t.Helper()

	tool := filepath.Join(t.TempDir(), "az")
	script := "#!/bin/sh\n" + toolBody + "\n"
	if err := os.WriteFile(tool, []byte(script), 0o755); err != nil {
		t.Fatal(err)
	}

	env := testEnv{
		ConfigHome: t.TempDir(),
		StateHome:  t.TempDir(),
	}

	cfgDir := filepath.Join(env.ConfigHome, "vaultgate")
	if err := os.MkdirAll(cfgDir, 0o700); err != nil {
		t.Fatal(err)
	}
	cfgYAML := fmt.Sprintf("gateway:\n  tool_path: %s\n", tool)
	if err := os.WriteFile(filepath.Join(cfgDir, "config.yaml"), []byte(cfgYAML), 0o600); err != nil {
		t.Fatal(err)
	}

	return env
}

// vaultgate runs the binary under test with the environment's XDG paths and
// returns combined output plus the process exit code.
func (e testEnv) vaultgate(t *testing.T, args ...string) (string, int) {
	t.Helper()

	cmd := exec.Command(binaryPath, args...)
	cmd.Env = append(os.Environ(),
		"XDG_CONFIG_HOME="+e.ConfigHome,
		"XDG_STATE_HOME="+e.StateHome,
	)

	out, err := cmd.CombinedOutput()
	if err == nil {
		return string(out), 0
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return string(out), exitErr.ExitCode()
	}
	t.Fatalf("failed to run vaultgate: %v", err)
	return "", 0
}

func (e testEnv) auditLog(t *testing.T) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(e.StateHome, "vaultgate", "audit.log"))
	if err != nil {
		return ""
	}
	return string(data)
}
