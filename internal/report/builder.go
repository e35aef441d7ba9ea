// Package report assembles validation findings and document metrics into a
// serializable validation report.
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/apidocs-generator/internal/format"
	"github.com/jonathan/apidocs-generator/internal/types"
)

// ComputeMetrics measures the template: total lines, whitespace-separated
// words, extracted section count and code blocks per fence tag.
func ComputeMetrics(tmpl *types.Template, sections []types.Section) types.Metrics {
	return types.Metrics{
		Lines:      len(tmpl.Lines()),
		Words:      len(strings.Fields(tmpl.Content)),
		Sections:   len(sections),
		CodeBlocks: format.CountByTag(format.ScanCodeBlocks(tmpl.Content)),
	}
}

// Build assembles the final report. The timestamp and report ID are captured
// here; everything else is a pure function of the template and findings.
func Build(tmpl *types.Template, sections []types.Section, findings []types.Finding, passed bool) *types.ValidationReport {
	if findings == nil {
		findings = []types.Finding{}
	}
	return &types.ValidationReport{
		ID:        uuid.New(),
		Template:  tmpl.Source,
		Passed:    passed,
		Findings:  findings,
		Metrics:   ComputeMetrics(tmpl, sections),
		Timestamp: time.Now().UTC(),
	}
}

// Encode serializes a report to indented JSON. Identical findings and
// metrics serialize identically except for the id and timestamp fields.
func Encode(rep *types.ValidationReport) ([]byte, error) {
	data, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal validation report: %w", err)
	}
	return append(data, '\n'), nil
}

// WriteFile serializes the report and writes it to path, creating parent
// directories as needed.
func WriteFile(rep *types.ValidationReport, path string) error {
	data, err := Encode(rep)
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create report directory: %w", err)
		}
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write validation report: %w", err)
	}
	return nil
}
