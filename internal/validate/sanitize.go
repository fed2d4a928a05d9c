package validate

import "regexp"

// RedactionToken replaces sensitive field values in sanitized output.
const RedactionToken = "***REDACTED***"

// maxLogLength caps how much command output is written to logs. The value
// returned to the caller is redacted but never truncated; the logged copy
// is both.
const maxLogLength = 500

// sensitiveFieldPattern matches quoted JSON-like key/value pairs whose key
// names are known to carry secret material. Field names are case-sensitive,
// matching the external tool's output shapes.
var sensitiveFieldPattern = regexp.MustCompile(
	`("(?:value|password|connectionString|key|secret)"\s*:\s*")(?:[^"\\]|\\.)*(")`)

// SanitizeOutput redacts the values of known sensitive fields in text,
// leaving all other content intact.
func SanitizeOutput(text string) string {
	return sensitiveFieldPattern.ReplaceAllString(text, "${1}"+RedactionToken+"${2}")
}

// TruncateForLog caps text for log output. Text at or under the cap is
// returned unchanged.
func TruncateForLog(text string) string {
	if len(text) <= maxLogLength {
		return text
	}
	return text[:maxLogLength] + "... (truncated)"
}

// RedactForLog produces the log-safe copy of text: redacted and truncated.
func RedactForLog(text string) string {
	return TruncateForLog(SanitizeOutput(text))
}
