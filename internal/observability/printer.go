// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/jonathan/apidocs-generator/internal/types"
)

// boxWidth is the default width for formatted output boxes
const boxWidth = 60

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintReport outputs a human-readable summary of a validation report.
func (p *Printer) PrintReport(rep *types.ValidationReport) {
	if rep == nil {
		return
	}

	var sb strings.Builder

	status := "PASSED"
	if !rep.Passed {
		status = "FAILED"
	}
	sb.WriteString(fmt.Sprintf("Template: %s\n", rep.Template))
	sb.WriteString(fmt.Sprintf("Status:   %s\n", status))
	sb.WriteString(fmt.Sprintf("Errors:   %d\n", len(rep.ErrorFindings())))
	sb.WriteString(fmt.Sprintf("Warnings: %d\n", len(rep.WarningFindings())))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Lines:    %d\n", rep.Metrics.Lines))
	sb.WriteString(fmt.Sprintf("Words:    %d\n", rep.Metrics.Words))
	sb.WriteString(fmt.Sprintf("Sections: %d\n", rep.Metrics.Sections))
	sb.WriteString(fmt.Sprintf("Code:     %s", formatCodeBlocks(rep.Metrics.CodeBlocks)))

	p.printBox("Validation Report", sb.String())
}

// PrintFindings renders the findings as a table, errors and warnings alike.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintFindings(findings []types.Finding) {
	if len(findings) == 0 {
		fmt.Fprintln(p.out, "No findings.")
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(p.out)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"#", "RULE", "SEVERITY", "LOCATION", "MESSAGE"})
	for i, f := range findings {
		t.AppendRow(table.Row{i + 1, f.Rule, string(f.Severity), f.Location, f.Message})
	}
	t.Render()
}

// formatCodeBlocks renders per-tag code block counts in a stable order.
func formatCodeBlocks(counts map[string]int) string {
	if len(counts) == 0 {
		return "none"
	}

	tags := make([]string, 0, len(counts))
	for tag := range counts {
		tags = append(tags, tag)
	}
	sort.Strings(tags)

	parts := make([]string, 0, len(tags))
	for _, tag := range tags {
		parts = append(parts, fmt.Sprintf("%s=%d", tag, counts[tag]))
	}
	return strings.Join(parts, " ")
}
