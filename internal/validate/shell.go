package validate

import (
	"fmt"
	"strings"
)

// EscapeShellArgument wraps text in single quotes so that it reaches the
// external tool as one atomic argument regardless of its content. Embedded
// single quotes are replaced with the POSIX-safe '"'"' sequence.
func EscapeShellArgument(text string) string {
	return "'" + strings.ReplaceAll(text, "'", `'"'"'`) + "'"
}

// SplitArgs tokenizes a command string into an argument vector using shell
// quoting rules: unquoted whitespace separates arguments, while single- or
// double-quoted spans preserve embedded whitespace and the opposite quote
// character. Quote characters are stripped from the resulting arguments, so
// a value produced by EscapeShellArgument round-trips to the original
// string. Returns an error for unterminated quotes.
func SplitArgs(text string) ([]string, error) {
	var args []string
	var cur strings.Builder
	inToken := false

	const (
		unquoted = iota
		single
		double
	)
	state := unquoted

	for _, r := range text {
		switch state {
		case unquoted:
			switch r {
			case '\'':
				state = single
				inToken = true
			case '"':
				state = double
				inToken = true
			case ' ', '\t', '\n':
				if inToken {
					args = append(args, cur.String())
					cur.Reset()
					inToken = false
				}
			default:
				cur.WriteRune(r)
				inToken = true
			}
		case single:
			if r == '\'' {
				state = unquoted
			} else {
				cur.WriteRune(r)
			}
		case double:
			if r == '"' {
				state = unquoted
			} else {
				cur.WriteRune(r)
			}
		}
	}

	if state != unquoted {
		return nil, fmt.Errorf("split command: %w", ErrUnbalancedQuote)
	}
	if inToken {
		args = append(args, cur.String())
	}

	return args, nil
}
