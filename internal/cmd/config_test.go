package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestConfigCmd_HasSubcommands(t *testing.T) {
	expected := map[string]bool{
		"show": false,
		"path": false,
		"init": false,
	}

	for _, cmd := range configCmd.Commands() {
		if _, ok := expected[cmd.Name()]; ok {
			expected[cmd.Name()] = true
		}
	}

	for name, found := range expected {
		if !found {
			t.Errorf("missing subcommand: %s", name)
		}
	}
}

func TestConfigPath_PrintsPath(t *testing.T) {
	output, err := execute(t, "config", "path")
	if err != nil {
		t.Fatalf("config path returned error: %v", err)
	}

	if !strings.Contains(output, filepath.Join("vaultgate", "config.yaml")) {
		t.Errorf("config path output = %q, want it to end with vaultgate/config.yaml", output)
	}
}

func TestConfigShow_DefaultsWhenNoFile(t *testing.T) {
	output, err := execute(t, "config", "show")
	if err != nil {
		t.Fatalf("config show returned error: %v", err)
	}

	for _, want := range []string{"gateway:", "az keyvault list", "timeout_seconds: 300", "max_concurrent: 5"} {
		if !strings.Contains(output, want) {
			t.Errorf("config show output missing %q\nGot: %s", want, output)
		}
	}
}

func TestConfigInit_CreatesFile(t *testing.T) {
	output, err := execute(t, "config", "init")
	if err != nil {
		t.Fatalf("config init returned error: %v", err)
	}

	if !strings.Contains(output, "Created default config at:") {
		t.Errorf("config init output = %q, want creation message", output)
	}

	// The execute helper points XDG_CONFIG_HOME at a temp dir.
	path := filepath.Join(os.Getenv("XDG_CONFIG_HOME"), "vaultgate", "config.yaml")
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected config file at %s: %v", path, err)
	}
}

func TestConfigInit_RefusesOverwrite(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_STATE_HOME", t.TempDir())
	resetFlags()

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)

	rootCmd.SetArgs([]string{"config", "init"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("first config init returned error: %v", err)
	}

	rootCmd.SetArgs([]string{"config", "init"})
	if err := rootCmd.Execute(); err == nil {
		t.Error("second config init should fail, got nil")
	}
}

func TestAllowlist_PrintsDefaultPrefixes(t *testing.T) {
	output, err := execute(t, "allowlist")
	if err != nil {
		t.Fatalf("allowlist returned error: %v", err)
	}

	for _, want := range []string{"az login", "az keyvault secret set", "az keyvault certificate delete"} {
		if !strings.Contains(output, want) {
			t.Errorf("allowlist output missing %q\nGot: %s", want, output)
		}
	}

	if strings.Contains(output, "prefix:") {
		t.Errorf("allowlist should print bare prefixes, got: %s", output)
	}
}
