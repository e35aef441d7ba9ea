package types

// Severity classifies a finding. Only error-severity findings fail validation.
type Severity string

const (
	// SeverityError marks a rule violation that fails validation.
	SeverityError Severity = "error"
	// SeverityWarning marks an advisory observation that never fails validation.
	SeverityWarning Severity = "warning"
)

// Finding represents a single rule-evaluation result. Findings are value
// records and are never mutated after creation.
type Finding struct {
	Rule     string   `json:"rule"`
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
	Location string   `json:"location,omitempty"`
}

// ErrorFinding builds an error-severity finding.
func ErrorFinding(rule, message, location string) Finding {
	return Finding{Rule: rule, Severity: SeverityError, Message: message, Location: location}
}

// WarningFinding builds a warning-severity finding.
func WarningFinding(rule, message, location string) Finding {
	return Finding{Rule: rule, Severity: SeverityWarning, Message: message, Location: location}
}
