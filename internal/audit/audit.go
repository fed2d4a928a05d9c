// Package audit provides structured logging for command gateway events.
// Log entries follow a key=value format suitable for parsing and analysis.
// Callers are responsible for redacting command text and output before
// handing it to this package.
package audit

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"
	"time"
)

// EventType represents the type of gateway event.
type EventType string

// Event types for security rejections (gates 1 and 2).
const (
	EventValidationReject EventType = "REJECT_VALIDATION"
	EventAllowlistReject  EventType = "REJECT_ALLOWLIST"
)

// Event types for operational outcomes.
const (
	EventConcurrencyReject EventType = "REJECT_CONCURRENCY"
	EventToolNotFound      EventType = "TOOL_NOT_FOUND"
	EventExecComplete      EventType = "EXEC_COMPLETE"
	EventExecTimeout       EventType = "EXEC_TIMEOUT"
	EventExecError         EventType = "EXEC_ERROR"
	EventExecCanceled      EventType = "EXEC_CANCELED"
	EventCancelAll         EventType = "CANCEL_ALL"
)

// Event represents a single gateway audit log entry.
type Event struct {
	// Timestamp is when the event occurred.
	Timestamp time.Time

	// Type is the event type (REJECT_VALIDATION, EXEC_COMPLETE, etc.)
	Type EventType

	// Cmd is the command text, already redacted and truncated by the caller.
	Cmd string

	// Reason is the rejection or failure reason.
	Reason string

	// Output is a redacted, truncated copy of the command output
	// (for EXEC_COMPLETE events).
	Output string

	// ExitCode is the command exit code (for EXEC_COMPLETE events).
	ExitCode int

	// Duration is the execution time (for EXEC_COMPLETE and EXEC_TIMEOUT events).
	Duration time.Duration
}

// IsSecurity reports whether the event is a security event, i.e. a
// validation or allow-list rejection, as opposed to an operational outcome.
func (e *Event) IsSecurity() bool {
	return e.Type == EventValidationReject || e.Type == EventAllowlistReject
}

// Format returns the log entry as a formatted string.
// Format: 2024-01-15T14:32:05Z SECURITY REJECT_VALIDATION cmd="..." reason="..."
// Format: 2024-01-15T14:32:05Z EXEC EXEC_COMPLETE cmd="..." exit=0 duration=1.2s
func (e *Event) Format() string {
	var b strings.Builder

	b.WriteString(e.Timestamp.UTC().Format(time.RFC3339))

	if e.IsSecurity() {
		b.WriteString(" SECURITY ")
	} else {
		b.WriteString(" EXEC ")
	}
	b.WriteString(string(e.Type))

	b.WriteString(" cmd=")
	b.WriteString(quoteValue(e.Cmd))

	e.formatTypeSpecificFields(&b)

	return b.String()
}

// formatTypeSpecificFields appends type-specific key=value pairs to the builder.
func (e *Event) formatTypeSpecificFields(b *strings.Builder) {
	switch e.Type {
	case EventValidationReject, EventAllowlistReject, EventConcurrencyReject,
		EventToolNotFound, EventExecError, EventExecCanceled:
		writeOptionalField(b, "reason", e.Reason)
	case EventExecComplete:
		b.WriteString(" exit=")
		b.WriteString(strconv.Itoa(e.ExitCode))
		b.WriteString(" duration=")
		b.WriteString(formatDuration(e.Duration))
		writeOptionalField(b, "output", e.Output)
	case EventExecTimeout:
		b.WriteString(" duration=")
		b.WriteString(formatDuration(e.Duration))
		writeOptionalField(b, "reason", e.Reason)
	}
}

// writeOptionalField appends " key=quoted_value" to the builder if value is non-empty.
func writeOptionalField(b *strings.Builder, key, value string) {
	if value == "" {
		return
	}
	b.WriteString(" ")
	b.WriteString(key)
	b.WriteString("=")
	b.WriteString(quoteValue(value))
}

// quoteValue returns a quoted string value.
// Values are always quoted for consistency and to handle spaces/special chars.
func quoteValue(s string) string {
	return fmt.Sprintf("%q", s)
}

// formatDuration formats a duration as a human-readable string (e.g., "2.3s", "1m30s").
func formatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%.1fms", float64(d)/float64(time.Millisecond))
	}
	if d < time.Minute {
		return fmt.Sprintf("%.1fs", d.Seconds())
	}
	return d.Round(time.Second).String()
}

// Logger writes audit events to an io.Writer.
type Logger struct {
	mu sync.Mutex
	w  io.Writer
}

// NewLogger creates a new audit logger that writes to the given writer.
func NewLogger(w io.Writer) *Logger {
	return &Logger{w: w}
}

// Log writes an event to the audit log.
func (l *Logger) Log(e *Event) error {
	if l == nil || l.w == nil {
		return nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	line := e.Format() + "\n"
	_, err := l.w.Write([]byte(line))
	if err != nil {
		return fmt.Errorf("write audit event: %w", err)
	}
	return nil
}

// LogValidationReject logs a SECURITY REJECT_VALIDATION event.
func (l *Logger) LogValidationReject(cmd, reason string) error {
	return l.Log(&Event{
		Timestamp: time.Now(),
		Type:      EventValidationReject,
		Cmd:       cmd,
		Reason:    reason,
	})
}

// LogAllowlistReject logs a SECURITY REJECT_ALLOWLIST event.
func (l *Logger) LogAllowlistReject(cmd, reason string) error {
	return l.Log(&Event{
		Timestamp: time.Now(),
		Type:      EventAllowlistReject,
		Cmd:       cmd,
		Reason:    reason,
	})
}

// LogConcurrencyReject logs an EXEC REJECT_CONCURRENCY event.
func (l *Logger) LogConcurrencyReject(cmd, reason string) error {
	return l.Log(&Event{
		Timestamp: time.Now(),
		Type:      EventConcurrencyReject,
		Cmd:       cmd,
		Reason:    reason,
	})
}

// LogToolNotFound logs an EXEC TOOL_NOT_FOUND event.
func (l *Logger) LogToolNotFound(cmd, reason string) error {
	return l.Log(&Event{
		Timestamp: time.Now(),
		Type:      EventToolNotFound,
		Cmd:       cmd,
		Reason:    reason,
	})
}

// LogComplete logs an EXEC EXEC_COMPLETE event.
func (l *Logger) LogComplete(cmd, output string, exitCode int, duration time.Duration) error {
	return l.Log(&Event{
		Timestamp: time.Now(),
		Type:      EventExecComplete,
		Cmd:       cmd,
		Output:    output,
		ExitCode:  exitCode,
		Duration:  duration,
	})
}

// LogTimeout logs an EXEC EXEC_TIMEOUT event.
func (l *Logger) LogTimeout(cmd, reason string, duration time.Duration) error {
	return l.Log(&Event{
		Timestamp: time.Now(),
		Type:      EventExecTimeout,
		Cmd:       cmd,
		Reason:    reason,
		Duration:  duration,
	})
}

// LogExecError logs an EXEC EXEC_ERROR event.
func (l *Logger) LogExecError(cmd, reason string) error {
	return l.Log(&Event{
		Timestamp: time.Now(),
		Type:      EventExecError,
		Cmd:       cmd,
		Reason:    reason,
	})
}

// LogCanceled logs an EXEC EXEC_CANCELED event.
func (l *Logger) LogCanceled(cmd, reason string) error {
	return l.Log(&Event{
		Timestamp: time.Now(),
		Type:      EventExecCanceled,
		Cmd:       cmd,
		Reason:    reason,
	})
}

// LogCancelAll logs an EXEC CANCEL_ALL event. The reason carries the number
// of commands that were in flight when the bulk cancel was issued.
func (l *Logger) LogCancelAll(inFlight int) error {
	return l.Log(&Event{
		Timestamp: time.Now(),
		Type:      EventCancelAll,
		Reason:    fmt.Sprintf("canceled %d in-flight commands", inFlight),
	})
}
