//go:build !unix

package gateway

import "os/exec"

// isolateProcess is a no-op where POSIX process groups are unavailable.
// The default cancel kills the direct child, and WaitDelay unblocks the
// pipe readers if anything it spawned survives.
func isolateProcess(proc *exec.Cmd) {}
