// Package redact scrubs sensitive fragments from error text before it is
// logged. Storage errors can echo connection strings, SQL statements and the
// values a client submitted; none of that should reach the logs verbatim.
package redact

import "regexp"

// Placeholders substituted for redacted fragments.
const (
	Placeholder           = "[REDACTED]"
	CredentialPlaceholder = "[REDACTED_CREDENTIAL]"
	SQLPlaceholder        = "[REDACTED_SQL]"
	PathPlaceholder       = "[REDACTED_PATH]"
	EmailPlaceholder      = "[REDACTED_EMAIL]"
)

type rule struct {
	pattern     *regexp.Regexp
	placeholder string
}

// Rules run in order; earlier rules win on overlapping text.
var rules = []rule{
	// user:password@ in postgres://, postgresql:// and similar URLs.
	{regexp.MustCompile(`(?i)\b[a-z][a-z0-9+.-]*://[^@\s/]+@`), CredentialPlaceholder},
	// key=value connection-string credentials.
	{regexp.MustCompile(`(?i)\b(password|passwd|pwd|secret|token)\s*[=:]\s*['"]?[^'"\s&]+`), CredentialPlaceholder},
	// SQL statements, up to the end of the statement or the line. Keywords
	// are matched in upper case only so prose like "update failed" survives.
	{regexp.MustCompile(`\b(SELECT\s.+?\sFROM|INSERT\s+INTO|UPDATE\s+\w+\s+SET|DELETE\s+FROM)\b[^;\n]*`), SQLPlaceholder},
	// Email addresses, which user records carry.
	{regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`), EmailPlaceholder},
	// Absolute file paths with at least two components (sqlite database files).
	{regexp.MustCompile(`(?:/[\w.-]+){2,}`), PathPlaceholder},
}

// String redacts sensitive fragments from s.
func String(s string) string {
	for _, r := range rules {
		if s == "" {
			break
		}
		s = r.pattern.ReplaceAllString(s, r.placeholder)
	}
	return s
}

// Error redacts the text of err. A nil error yields "".
func Error(err error) string {
	if err == nil {
		return ""
	}
	return String(err.Error())
}
