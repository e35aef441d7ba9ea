// Package security scans template text for sensitive values that are not
// disguised as documentation placeholders.
package security

import "regexp"

// Pattern is one sensitive-value detector. Each pattern captures the
// suspicious value in its first submatch and is evaluated independently, so
// false-positive behavior stays auditable per pattern.
type Pattern struct {
	Name  string
	Regex *regexp.Regexp
}

// DefaultPatterns returns the built-in detector table: credential assignments
// in key/value form plus raw Authorization headers.
func DefaultPatterns() []Pattern {
	return []Pattern{
		{
			Name:  "api-key",
			Regex: regexp.MustCompile(`(?i)"?api[_-]?key"?\s*[:=]\s*"([^"]+)"`),
		},
		{
			Name:  "secret",
			Regex: regexp.MustCompile(`(?i)"?(?:client_)?secret"?\s*[:=]\s*"([^"]+)"`),
		},
		{
			Name:  "password",
			Regex: regexp.MustCompile(`(?i)"?password"?\s*[:=]\s*"([^"]+)"`),
		},
		{
			Name:  "token",
			Regex: regexp.MustCompile(`(?i)"?(?:access_|auth_|refresh_)?token"?\s*[:=]\s*"([^"]+)"`),
		},
		{
			// Opaque bearer values shorter than 40 chars are ignored; real
			// tokens are long and doc prose rarely is.
			Name:  "bearer",
			Regex: regexp.MustCompile(`(?i)authorization:\s*bearer\s+([A-Za-z0-9._~+/=-]{40,})`),
		},
	}
}
