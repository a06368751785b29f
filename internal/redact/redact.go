// Package redact scrubs secrets from detail text before it reaches the
// persistent run log. Alias definitions regularly embed tokens (think
// `alias deploy='DEPLOY_TOKEN=... ./deploy.sh'`), and the log file
// outlives the shell session that defined them.
package redact

import "regexp"

var secretPatterns = []*regexp.Regexp{
	// key=value style assignments with secret-looking keys
	regexp.MustCompile(`(?i)(api_key|apikey|secret_key|access_token|auth_token|password|passwd|token)\s*[=:]\s*['"]?[^\s'"]{8,}['"]?`),

	// provider token formats
	regexp.MustCompile(`AKIA[0-9A-Z]{16}`),
	regexp.MustCompile(`gh[pousr]_[A-Za-z0-9]{36}`),
	regexp.MustCompile(`xox[baprs]-[0-9]{10,13}-[0-9]{10,13}[a-zA-Z0-9-]*`),
	regexp.MustCompile(`sk_live_[0-9a-zA-Z]{24}`),

	// bearer tokens and basic auth in URLs
	regexp.MustCompile(`(?i)bearer\s+[A-Za-z0-9_-]{20,}`),
	regexp.MustCompile(`https?://[^:\s]+:[^@\s]+@`),
}

const placeholder = "[REDACTED]"

// Scrub replaces anything secret-looking in s with a placeholder.
func Scrub(s string) string {
	for _, pattern := range secretPatterns {
		s = pattern.ReplaceAllString(s, placeholder)
	}
	return s
}
