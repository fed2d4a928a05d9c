// Package gateway mediates execution of Azure CLI commands on behalf of the
// client. Every command passes three gates (validation, allow-list,
// concurrency admission) before an external process is spawned, and every
// terminal outcome is returned as a Result and written to the audit log.
package gateway

import (
	"context"
	"runtime"
	"time"

	"github.com/vaultgate/vaultgate/internal/audit"
	"github.com/vaultgate/vaultgate/internal/resolver"
)

// SentinelExitCode marks results for commands that never produced a real
// exit code: gate rejections, tool-not-found, spawn failures, timeouts, and
// cancellations.
const SentinelExitCode = -1

// Defaults applied when Config leaves the corresponding knob zero. The
// production values come from internal/config; tests inject their own.
const (
	defaultTimeout       = 300 * time.Second
	defaultMaxConcurrent = 5
)

// Command is one request to execute the external tool. The text is
// immutable and never persisted; overrides are optional.
type Command struct {
	Text    string
	Env     map[string]string // overlaid on the inherited environment
	Workdir string
	Timeout time.Duration // 0 means the configured default
}

// Result is the uniform, non-throwing outcome shape for every command.
// Callers branch on Succeeded; no error category is surfaced as a panic or
// an error return from Execute.
type Result struct {
	Succeeded bool
	Output    string // sanitized stdout, redacted but not truncated
	ErrorText string // raw stderr or a failure message
	ExitCode  int
	Elapsed   time.Duration
}

// Gateway is the unified surface callers see regardless of which concrete
// implementation backs it. The platform is selected exactly once, at
// construction; call sites never branch on it.
type Gateway interface {
	// Execute runs one command through the gates and returns its outcome.
	// The context cancels the command at the same suspension points as the
	// timeout race.
	Execute(ctx context.Context, cmd Command) Result

	// CheckAvailability reports whether the external tool can be located.
	CheckAvailability(ctx context.Context) bool

	// Version returns the external tool's version output.
	Version(ctx context.Context) (string, error)

	// IsAuthenticated reports whether the tool has an active session.
	IsAuthenticated(ctx context.Context) bool

	// InFlight returns the number of currently admitted commands.
	InFlight() int

	// CancelAll force-completes every admitted command with a cancellation
	// result and clears internal tracking.
	CancelAll()
}

// Config carries the knobs the gateway consumes but does not own.
type Config struct {
	// Allow is the set of case-insensitive command prefixes that may run.
	Allow []string

	// Timeout is the per-command deadline. Zero means the default (300s).
	Timeout time.Duration

	// MaxConcurrent caps admitted commands. Zero means the default (5).
	MaxConcurrent int

	// ToolPath, when set, bypasses executable resolution.
	ToolPath string

	// Audit receives one event per terminal outcome. Nil disables auditing.
	Audit *audit.Logger
}

// New selects the Gateway implementation for the host environment.
// Sandboxed runtimes get a gateway that short-circuits every command;
// desktop environments get the real gateway paired with the host OS
// resolver.
func New(cfg Config) Gateway {
	if sandboxed() {
		return unsupportedGateway{}
	}
	return newRealGateway(cfg, resolver.New())
}

// sandboxed reports whether the host environment categorically disallows
// spawning external processes.
func sandboxed() bool {
	switch runtime.GOOS {
	case "js", "wasip1", "ios", "android":
		return true
	}
	return false
}
