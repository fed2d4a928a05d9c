package gateway

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"github.com/vaultgate/vaultgate/internal/clog"
	"github.com/vaultgate/vaultgate/internal/validate"
)

// pathResolver locates the external tool. Satisfied by *resolver.Resolver;
// tests substitute stubs.
type pathResolver interface {
	Resolve(ctx context.Context) (string, error)
	SearchPath() string
}

// realGateway executes commands as isolated external processes. One
// instance serves many callers; shared state is limited to the slot table
// and the resolver's path cache, both guarded by their own mutexes.
type realGateway struct {
	cfg      Config
	allow    []string // lower-cased prefixes
	slots    *slotTable
	resolver pathResolver
}

func newRealGateway(cfg Config, r pathResolver) *realGateway {
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.MaxConcurrent <= 0 {
		cfg.MaxConcurrent = defaultMaxConcurrent
	}

	allow := make([]string, 0, len(cfg.Allow))
	for _, p := range cfg.Allow {
		allow = append(allow, strings.ToLower(strings.TrimSpace(p)))
	}

	return &realGateway{
		cfg:      cfg,
		allow:    allow,
		slots:    newSlotTable(cfg.MaxConcurrent),
		resolver: r,
	}
}

// Execute drives one command through its lifecycle:
// validate, allow-list, admission, resolve, spawn, classify.
func (g *realGateway) Execute(ctx context.Context, cmd Command) Result {
	redacted := validate.RedactForLog(cmd.Text)

	// Gate 1: validation. Nothing past this line sees a command that could
	// smuggle shell syntax.
	if err := validate.Command(cmd.Text); err != nil {
		clog.Warn("gateway: validation rejected command: %v", err)
		_ = g.cfg.Audit.LogValidationReject(redacted, err.Error())
		return failure(err.Error(), 0)
	}

	// Gate 2: allow-list.
	if !g.allowed(cmd.Text) {
		clog.Warn("gateway: command not on allow-list: %s", redacted)
		_ = g.cfg.Audit.LogAllowlistReject(redacted, "command not on the allow-list")
		return failure("command not permitted: not on the allow-list", 0)
	}

	// Gate 3: concurrency admission. No queueing; rejection is immediate.
	runCtx, cancel := context.WithCancel(ctx)
	slot, ok := g.slots.tryAcquire(cancel)
	if !ok {
		cancel()
		msg := fmt.Sprintf("too many concurrent commands (limit %d)", g.cfg.MaxConcurrent)
		clog.Warn("gateway: %s", msg)
		_ = g.cfg.Audit.LogConcurrencyReject(redacted, msg)
		return failure(msg, 0)
	}
	// The slot is released on every terminal path, including panics in the
	// spawn machinery; the count never drifts from truly in-flight work.
	defer func() {
		g.slots.release(slot)
		cancel()
	}()

	toolPath := g.cfg.ToolPath
	if toolPath == "" {
		var err error
		toolPath, err = g.resolver.Resolve(runCtx)
		if err != nil {
			clog.Error("gateway: %v", err)
			_ = g.cfg.Audit.LogToolNotFound(redacted, err.Error())
			return failure("azure cli not found; install it from https://aka.ms/azure-cli", 0)
		}
	}

	return g.spawn(runCtx, toolPath, cmd, redacted)
}

// allowed checks the command's normalized, lower-cased text against the
// allow-list prefixes.
func (g *realGateway) allowed(text string) bool {
	norm := strings.ToLower(strings.Join(strings.Fields(text), " "))
	for _, prefix := range g.allow {
		if strings.HasPrefix(norm, prefix) {
			return true
		}
	}
	return false
}

// spawn runs the resolved tool and classifies its outcome. The command text
// is tokenized with the quote-aware splitter so escaped arguments with
// embedded whitespace survive intact.
func (g *realGateway) spawn(ctx context.Context, toolPath string, cmd Command, redacted string) Result {
	args, err := validate.SplitArgs(strings.TrimSpace(cmd.Text))
	if err != nil {
		// Unterminated quotes are caught by validation; this is a safety net.
		_ = g.cfg.Audit.LogExecError(redacted, err.Error())
		return failure("execution error: "+err.Error(), 0)
	}

	timeout := cmd.Timeout
	if timeout <= 0 {
		timeout = g.cfg.Timeout
	}
	runCtx, cancelTimeout := context.WithTimeout(ctx, timeout)
	defer cancelTimeout()

	proc := exec.CommandContext(runCtx, toolPath, args[1:]...)
	proc.Dir = cmd.Workdir
	proc.Env = g.environ(cmd.Env)
	isolateProcess(proc)
	// Without a wait delay, Run blocks on the output pipes until every
	// descendant of the tool exits, unbounding the timeout.
	proc.WaitDelay = time.Second

	var stdout, stderr bytes.Buffer
	proc.Stdout = &stdout
	proc.Stderr = &stderr

	start := time.Now()
	runErr := proc.Run()
	elapsed := time.Since(start)

	// stdout is sanitized for the caller; stderr is surfaced unredacted to
	// aid diagnosis. The tool's own error text does not carry secret
	// payloads, and callers depend on seeing it verbatim.
	output := validate.SanitizeOutput(stdout.String())
	errText := stderr.String()

	switch {
	case runErr != nil && errors.Is(runCtx.Err(), context.DeadlineExceeded):
		msg := fmt.Sprintf("operation timed out after %s", timeout)
		clog.Warn("gateway: %s: %s", msg, redacted)
		_ = g.cfg.Audit.LogTimeout(redacted, msg, elapsed)
		return failure(msg, elapsed)

	case runErr != nil && errors.Is(ctx.Err(), context.Canceled):
		clog.Info("gateway: command canceled: %s", redacted)
		_ = g.cfg.Audit.LogCanceled(redacted, "command canceled")
		return failure("command canceled", elapsed)

	case runErr != nil:
		var exitErr *exec.ExitError
		if errors.As(runErr, &exitErr) {
			// The process ran to completion and reported failure.
			clog.Info("gateway: command exited %d in %s: %s", exitErr.ExitCode(), elapsed, redacted)
			_ = g.cfg.Audit.LogComplete(redacted, validate.RedactForLog(stdout.String()), exitErr.ExitCode(), elapsed)
			return Result{
				Succeeded: false,
				Output:    output,
				ErrorText: errText,
				ExitCode:  exitErr.ExitCode(),
				Elapsed:   elapsed,
			}
		}
		// Tool present but unlaunchable: permissions, corrupt binary, etc.
		clog.Error("gateway: execution error: %v", runErr)
		_ = g.cfg.Audit.LogExecError(redacted, runErr.Error())
		return failure("execution error: "+runErr.Error(), elapsed)
	}

	clog.Info("gateway: command succeeded in %s: %s output=%s",
		elapsed, redacted, validate.RedactForLog(stdout.String()))
	_ = g.cfg.Audit.LogComplete(redacted, validate.RedactForLog(stdout.String()), 0, elapsed)
	return Result{
		Succeeded: true,
		Output:    output,
		ErrorText: errText,
		ExitCode:  0,
		Elapsed:   elapsed,
	}
}

// environ builds the child environment: the inherited environment with PATH
// widened to the resolver's search path, overlaid with caller-supplied
// variables.
func (g *realGateway) environ(overlay map[string]string) []string {
	env := os.Environ()
	filtered := env[:0]
	for _, kv := range env {
		if !strings.HasPrefix(kv, "PATH=") {
			filtered = append(filtered, kv)
		}
	}
	filtered = append(filtered, "PATH="+g.resolver.SearchPath())
	for k, v := range overlay {
		filtered = append(filtered, k+"="+v)
	}
	return filtered
}

// CheckAvailability reports whether the tool can be located.
func (g *realGateway) CheckAvailability(ctx context.Context) bool {
	if g.cfg.ToolPath != "" {
		return true
	}
	_, err := g.resolver.Resolve(ctx)
	return err == nil
}

// Version runs "az version" and returns its output.
func (g *realGateway) Version(ctx context.Context) (string, error) {
	res := g.Execute(ctx, Command{Text: validate.ToolName + " version"})
	if !res.Succeeded {
		return "", errors.New(res.ErrorText)
	}
	return res.Output, nil
}

// IsAuthenticated runs "az account show" and checks for an account payload.
// A non-zero exit (no active session) is not an error, just false.
func (g *realGateway) IsAuthenticated(ctx context.Context) bool {
	res := g.Execute(ctx, Command{Text: validate.ToolName + " account show"})
	if !res.Succeeded {
		return false
	}
	return gjson.Get(res.Output, "id").Exists()
}

// InFlight returns the number of currently admitted commands.
func (g *realGateway) InFlight() int {
	return g.slots.count()
}

// CancelAll force-completes every admitted command.
func (g *realGateway) CancelAll() {
	n := g.slots.cancelAll()
	clog.Info("gateway: canceled %d in-flight commands", n)
	_ = g.cfg.Audit.LogCancelAll(n)
}

// failure builds the uniform rejection/failure Result.
func failure(msg string, elapsed time.Duration) Result {
	return Result{
		Succeeded: false,
		ErrorText: msg,
		ExitCode:  SentinelExitCode,
		Elapsed:   elapsed,
	}
}
