package eventlog

import (
	"regexp"
	"unicode/utf8"
)

// maxSummaryBytes bounds input/output summaries. Raw LLM payloads never
// enter the log; summaries beyond this limit are cut and marked.
const maxSummaryBytes = 4096

const truncationMarker = "…[truncated]"

// redactRule replaces credential-shaped content in summaries before they
// are persisted. The rules run in order; certificates go first so the
// token rule does not chew through PEM bodies line by line.
type redactRule struct {
	name        string
	pattern     *regexp.Regexp
	replacement string
}

var redactRules = []redactRule{
	{
		name:        "certificate",
		pattern:     regexp.MustCompile(`(?s)-----BEGIN [A-Z ]+-----.*?-----END [A-Z ]+-----`),
		replacement: `__REDACTED_CERTIFICATE__`,
	},
	{
		name:        "api_key",
		pattern:     regexp.MustCompile(`(?i)(?:api[_-]?key|apikey)["']?\s*[:=]\s*["']?([A-Za-z0-9_\-]{16,})["']?`),
		replacement: `api_key=__REDACTED_API_KEY__`,
	},
	{
		name:        "token",
		pattern:     regexp.MustCompile(`(?i)(?:token|bearer|jwt)["']?\s*[:=]?\s*["']?([A-Za-z0-9_\-\.]{20,})["']?`),
		replacement: `token=__REDACTED_TOKEN__`,
	},
	{
		name:        "password",
		pattern:     regexp.MustCompile(`(?i)(?:password|passwd|pwd)["']?\s*[:=]\s*["']?([^"'\s\n]{6,})["']?`),
		replacement: `password=__REDACTED_PASSWORD__`,
	},
	{
		name:        "ssh_key",
		pattern:     regexp.MustCompile(`ssh-(?:rsa|dss|ed25519|ecdsa)\s+[A-Za-z0-9+/=]+`),
		replacement: `__REDACTED_SSH_KEY__`,
	},
}

// Redact replaces credential-shaped substrings in s.
func Redact(s string) string {
	for _, r := range redactRules {
		s = r.pattern.ReplaceAllString(s, r.replacement)
	}
	return s
}

// boundSummary redacts s and enforces the summary size limit, cutting at a
// rune boundary so the stored text stays valid UTF-8.
func boundSummary(s string) string {
	s = Redact(s)
	if len(s) <= maxSummaryBytes {
		return s
	}
	cut := maxSummaryBytes - len(truncationMarker)
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + truncationMarker
}
