package security

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/jonathan/apidocs-generator/internal/types"
)

// redactPrefixLen is how many leading characters of a detected value survive
// redaction in finding messages.
const redactPrefixLen = 4

// Scanner detects sensitive values in raw template text. The pattern table
// and placeholder markers are fixed at construction.
type Scanner struct {
	patterns []Pattern
	markers  []string
}

// NewScanner builds a Scanner from a pattern table and the case-insensitive
// placeholder markers that exempt documentation stand-ins.
func NewScanner(patterns []Pattern, markers []string) *Scanner {
	return &Scanner{patterns: patterns, markers: markers}
}

// Scan walks the template line by line and reports every non-exempt match as
// an error finding. Matched values are always redacted in messages. Each
// pattern reports at most once per line.
func (s *Scanner) Scan(content string) []types.Finding {
	var findings []types.Finding

	for i, line := range strings.Split(content, "\n") {
		for _, p := range s.patterns {
			m := p.Regex.FindStringSubmatch(line)
			if m == nil {
				continue
			}
			value := m[1]
			if s.isPlaceholder(value) {
				continue
			}
			findings = append(findings, types.ErrorFinding(
				"security/"+p.Name,
				fmt.Sprintf("possible %s value detected: %s", p.Name, Redact(value)),
				fmt.Sprintf("line %d", i+1),
			))
		}
	}

	return findings
}

// isPlaceholder reports whether a matched value is a documentation stand-in:
// it contains one of the configured markers, is wrapped in angle brackets,
// or is an all-caps token like YOUR_ACCESS_TOKEN.
func (s *Scanner) isPlaceholder(value string) bool {
	lower := strings.ToLower(value)
	for _, marker := range s.markers {
		if strings.Contains(lower, strings.ToLower(marker)) {
			return true
		}
	}

	trimmed := strings.TrimSpace(value)
	if strings.HasPrefix(trimmed, "<") && strings.HasSuffix(trimmed, ">") {
		return true
	}

	return isAllCapsToken(trimmed)
}

// isAllCapsToken reports whether the value consists only of uppercase
// letters, digits and underscores, with at least one letter.
func isAllCapsToken(value string) bool {
	if value == "" {
		return false
	}
	hasLetter := false
	for _, r := range value {
		switch {
		case unicode.IsUpper(r):
			hasLetter = true
		case unicode.IsDigit(r) || r == '_':
		default:
			return false
		}
	}
	return hasLetter
}

// Redact keeps the first few characters of a value and masks the rest, so a
// finding message never echoes a secret-looking string in full.
func Redact(value string) string {
	runes := []rune(value)
	if len(runes) <= redactPrefixLen {
		return strings.Repeat("*", len(runes))
	}
	return string(runes[:redactPrefixLen]) + strings.Repeat("*", len(runes)-redactPrefixLen)
}
