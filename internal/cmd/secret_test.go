package cmd

import (
	"strings"
	"testing"
)

func TestSecretSet_EscapedValueReachesTool(t *testing.T) {
	// The fake tool echoes its argv so the test can see exactly what the
	// gateway passed through.
	setupFakeTool(t, `echo "$@"`)

	value := "it's a; secret|value"
	out, err := executeRun(t, "secret", "set", "vault-1", "db-password", value)
	if err != nil {
		t.Fatalf("secret set returned error: %v", err)
	}
	if !strings.Contains(out, value) {
		t.Errorf("escaped value did not reach the tool intact, got: %s", out)
	}
}

func TestSecretSet_BadNameFailsBeforeSpawn(t *testing.T) {
	setupFakeTool(t, `echo should-not-run`)

	out, err := executeRun(t, "secret", "set", "vault-1", "no spaces", "value")
	if err == nil {
		t.Fatal("expected error for malformed secret name")
	}
	if strings.Contains(out, "should-not-run") {
		t.Errorf("malformed input must not spawn the tool, got: %s", out)
	}
}

func TestSecretShow_RunsBuiltCommand(t *testing.T) {
	setupFakeTool(t, `echo "$@"`)

	out, err := executeRun(t, "secret", "show", "vault-1", "db-password")
	if err != nil {
		t.Fatalf("secret show returned error: %v", err)
	}
	for _, want := range []string{"keyvault", "secret", "show", "--vault-name", "vault-1", "--name", "db-password"} {
		if !strings.Contains(out, want) {
			t.Errorf("tool argv missing %q, got: %s", want, out)
		}
	}
}

func TestVaultCreate_BadLocationFailsBeforeSpawn(t *testing.T) {
	setupFakeTool(t, `echo should-not-run`)

	out, err := executeRun(t, "vault", "create", "vault-1", "my-group", "West Europe")
	if err == nil {
		t.Fatal("expected error for malformed location")
	}
	if strings.Contains(out, "should-not-run") {
		t.Errorf("malformed input must not spawn the tool, got: %s", out)
	}
}

func TestVaultList_RunsBuiltCommand(t *testing.T) {
	setupFakeTool(t, `echo "$@"`)

	out, err := executeRun(t, "vault", "list")
	if err != nil {
		t.Fatalf("vault list returned error: %v", err)
	}
	if !strings.Contains(out, "keyvault list") {
		t.Errorf("tool argv missing keyvault list, got: %s", out)
	}
}
