//go:build unix

package gateway

import (
	"os/exec"
	"syscall"
)

// isolateProcess places the child in its own process group and cancels by
// killing the whole group. The tool is itself a wrapper that spawns
// helpers; killing only the direct child would leave them running and
// holding the output pipes open past the timeout.
func isolateProcess(proc *exec.Cmd) {
	proc.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	proc.Cancel = func() error {
		return syscall.Kill(-proc.Process.Pid, syscall.SIGKILL)
	}
}
