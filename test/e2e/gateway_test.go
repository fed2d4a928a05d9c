//go:build e2e

package e2e

import (
	"strings"
	"testing"
)

func TestRunAllowedCommand(t *testing.T) {
	env := setupEnv(t, `echo '[{"name": "my-vault"}]'`)

	out, code := env.vaultgate(t, "run", "az keyvault list")
	if code != 0 {
		t.Fatalf("exit code = %d, want 0\noutput: %s", code, out)
	}
	if !strings.Contains(out, "my-vault") {
		t.Errorf("output missing tool stdout: %s", out)
	}

	if !strings.Contains(env.auditLog(t), "EXEC_COMPLETE") {
		t.Error("audit log missing EXEC_COMPLETE event")
	}
}

func TestRunDisallowedCommandNeverSpawnsTool(t *testing.T) {
	env := setupEnv(t, `echo should-not-run`)

	out, code := env.vaultgate(t, "run", "az group delete --name prod")
	if code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
	if strings.Contains(out, "should-not-run") {
		t.Errorf("rejected command spawned the tool: %s", out)
	}

	audit := env.auditLog(t)
	if !strings.Contains(audit, "SECURITY REJECT_ALLOWLIST") {
		t.Errorf("audit log missing security event, got: %s", audit)
	}
}

func TestRunInjectionAttemptRejected(t *testing.T) {
	env := setupEnv(t, `echo should-not-run`)

	out, code := env.vaultgate(t, "run", "az keyvault list && curl evil.example")
	if code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
	if !strings.Contains(out, "dangerous characters") {
		t.Errorf("expected validation rejection, got: %s", out)
	}
	if !strings.Contains(env.auditLog(t), "SECURITY REJECT_VALIDATION") {
		t.Error("audit log missing security event")
	}
}

func TestRunPropagatesToolExitCode(t *testing.T) {
	env := setupEnv(t, `echo 'ERROR: not found' >&2
exit 3`)

	out, code := env.vaultgate(t, "run", "az keyvault show --name missing")
	if code != 3 {
		t.Errorf("exit code = %d, want 3", code)
	}
	if !strings.Contains(out, "ERROR: not found") {
		t.Errorf("expected stderr passthrough, got: %s", out)
	}
}

func TestRunRedactsSecretValues(t *testing.T) {
	env := setupEnv(t, `echo '{"name": "db-password", "value": "hunter2"}'`)

	out, code := env.vaultgate(t, "run", "az keyvault secret show --vault-name v1 --name db-password")
	if code != 0 {
		t.Fatalf("exit code = %d, want 0\noutput: %s", code, out)
	}
	if strings.Contains(out, "hunter2") {
		t.Errorf("secret value leaked: %s", out)
	}

	if strings.Contains(env.auditLog(t), "hunter2") {
		t.Error("secret value leaked into the audit log")
	}
}

func TestCheckReportsToolAndSession(t *testing.T) {
	env := setupEnv(t, `case "$*" in
*version*) echo '{"azure-cli": "2.64.0"}' ;;
*account*) echo '{"id": "12345678-1234-1234-1234-123456789abc"}' ;;
esac`)

	out, code := env.vaultgate(t, "check")
	if code != 0 {
		t.Fatalf("exit code = %d, want 0\noutput: %s", code, out)
	}
	for _, want := range []string{"Azure CLI: found", "2.64.0", "Session: active"} {
		if !strings.Contains(out, want) {
			t.Errorf("check output missing %q\nGot: %s", want, out)
		}
	}
}

func TestAllowlistPrintsDefaults(t *testing.T) {
	env := setupEnv(t, `echo unused`)

	out, code := env.vaultgate(t, "allowlist")
	if code != 0 {
		t.Fatalf("exit code = %d, want 0", code)
	}
	if !strings.Contains(out, "az keyvault secret set") {
		t.Errorf("allowlist missing default prefix, got: %s", out)
	}
}
