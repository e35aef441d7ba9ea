package types

import (
	"time"

	"github.com/google/uuid"
)

// Metrics holds the document measurements captured alongside findings.
// CodeBlocks counts fenced code blocks keyed by their fence tag.
type Metrics struct {
	Lines      int            `json:"lines"`
	Words      int            `json:"words"`
	Sections   int            `json:"sections"`
	CodeBlocks map[string]int `json:"code_blocks"`
}

// ValidationReport is the aggregated, serializable outcome of a pipeline run.
// It is immutable once built; Passed is true iff Findings contains no
// error-severity entry.
type ValidationReport struct {
	ID        uuid.UUID `json:"id"`
	Template  string    `json:"template"`
	Passed    bool      `json:"passed"`
	Findings  []Finding `json:"findings"`
	Metrics   Metrics   `json:"metrics"`
	Timestamp time.Time `json:"timestamp"`
}

// ErrorFindings returns the error-severity findings in report order.
func (r *ValidationReport) ErrorFindings() []Finding {
	var errs []Finding
	for _, f := range r.Findings {
		if f.Severity == SeverityError {
			errs = append(errs, f)
		}
	}
	return errs
}

// WarningFindings returns the warning-severity findings in report order.
func (r *ValidationReport) WarningFindings() []Finding {
	var warns []Finding
	for _, f := range r.Findings {
		if f.Severity == SeverityWarning {
			warns = append(warns, f)
		}
	}
	return warns
}
