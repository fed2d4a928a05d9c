// Package validate judges candidate command strings and structured fields
// before they reach the command gateway, and provides the escaping and
// redaction primitives the rest of the system relies on. All functions are
// pure: no I/O, no state.
package validate

import (
	"errors"
	"regexp"
	"strings"
)

// ToolName is the only executable root token the gateway will accept.
const ToolName = "az"

// Rejection reasons returned by Command. Callers match with errors.Is.
var (
	ErrEmptyCommand    = errors.New("command cannot be empty")
	ErrNotAllowedTool  = errors.New("only " + ToolName + " commands are allowed")
	ErrDangerousChars  = errors.New("command contains potentially dangerous characters")
	ErrUnbalancedQuote = errors.New("command contains an unterminated quote")
)

// dangerousPatterns are matched against the command text with quoted spans
// masked out. Quoted spans are exempt because EscapeShellArgument has
// already neutralized their contents and the tokenizer passes them to the
// process as single literal arguments with no shell in between.
var dangerousPatterns = []*regexp.Regexp{
	// Shell metacharacters: command chaining, pipes, substitution, globs,
	// redirection.
	regexp.MustCompile("[;&|`$(){}\\[\\]<>]"),
	// Backslash escape sequences.
	regexp.MustCompile(`\\`),
	// Path traversal.
	regexp.MustCompile(`\.\./`),
	// Parameter injection: a flag whose inline value carries a metacharacter.
	regexp.MustCompile("--[A-Za-z0-9-]+=[^ \t]*[;&|`$<>]"),
}

// Command judges a candidate command string. It returns nil if the command
// may proceed to the allow-list gate, or a rejection error. Rules are
// applied in order and the first match wins:
//
//  1. empty or whitespace-only text
//  2. root token is not the sanctioned tool
//  3. text matches a dangerous pattern outside of quoted arguments
func Command(text string) error {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return ErrEmptyCommand
	}

	root := trimmed
	if i := strings.IndexAny(trimmed, " \t"); i >= 0 {
		root = trimmed[:i]
	}
	if root != ToolName {
		return ErrNotAllowedTool
	}

	masked, ok := maskQuoted(trimmed)
	if !ok {
		return ErrUnbalancedQuote
	}
	for _, p := range dangerousPatterns {
		if p.MatchString(masked) {
			return ErrDangerousChars
		}
	}

	return nil
}

// maskQuoted replaces the contents of quoted spans with a neutral
// placeholder, using shell quoting semantics: inside single quotes a double
// quote is literal and vice versa. The quote characters themselves are kept
// so flag=value shapes remain visible to the pattern scan. Returns false if
// a quote is left unterminated.
func maskQuoted(s string) (string, bool) {
	var b strings.Builder
	b.Grow(len(s))

	const (
		unquoted = iota
		single
		double
	)
	state := unquoted

	for _, r := range s {
		switch state {
		case unquoted:
			switch r {
			case '\'':
				state = single
				b.WriteRune(r)
			case '"':
				state = double
				b.WriteRune(r)
			default:
				b.WriteRune(r)
			}
		case single:
			if r == '\'' {
				state = unquoted
				b.WriteRune(r)
			} else {
				b.WriteByte('x')
			}
		case double:
			if r == '"' {
				state = unquoted
				b.WriteRune(r)
			} else {
				b.WriteByte('x')
			}
		}
	}

	return b.String(), state == unquoted
}
