// Package redact removes sensitive information from strings before they are
// logged. Error values in this service can carry database connection
// strings and bearer credentials; nothing that passes through here should
// reach a log line intact.
package redact

import "regexp"

// Precompiled redaction patterns
var (
	// Connection strings with inline credentials
	dbConnRegex = regexp.MustCompile(`(?i)(postgres(?:ql)?|mysql)://[^@\s]+@`)

	// Three-part base64url JWT tokens
	jwtTokenRegex = regexp.MustCompile(`eyJ[A-Za-z0-9_-]+\.eyJ[A-Za-z0-9_-]+\.[A-Za-z0-9_-]+`)

	// key=value style secrets
	secretRegex = regexp.MustCompile(`(?i)(password|secret|token|api[_-]?key)(['"\s:=]+)[^'"&\s]{4,}`)
)

// String returns s with credential-bearing fragments replaced by
// placeholders.
func String(s string) string {
	s = dbConnRegex.ReplaceAllString(s, "$1://[REDACTED]@")
	s = jwtTokenRegex.ReplaceAllString(s, "[REDACTED_JWT]")
	s = secretRegex.ReplaceAllString(s, "$1$2[REDACTED]")
	return s
}

// Error returns the redacted message of err, or "" for a nil error.
func Error(err error) string {
	if err == nil {
		return ""
	}
	return String(err.Error())
}
