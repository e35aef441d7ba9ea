// Package rules composes the section, format and security checks against a
// fixed rule set and decides the overall validation outcome.
package rules

import (
	"fmt"
	"strings"

	"github.com/jonathan/apidocs-generator/internal/config"
	"github.com/jonathan/apidocs-generator/internal/extraction"
	"github.com/jonathan/apidocs-generator/internal/format"
	"github.com/jonathan/apidocs-generator/internal/security"
	"github.com/jonathan/apidocs-generator/internal/types"
)

// Engine evaluates a template against a rule set. The rule set is fixed at
// construction; evaluation is pure and deterministic.
type Engine struct {
	rules   config.Rules
	checker *format.Checker
	scanner *security.Scanner
}

// Result is the outcome of one evaluation. Passed is true iff Findings
// contains no error-severity entry; warnings never fail validation.
type Result struct {
	Sections []types.Section
	Findings []types.Finding
	Passed   bool
}

// NewEngine builds an Engine from an explicit rule set.
func NewEngine(rules config.Rules) *Engine {
	return &Engine{
		rules: rules,
		checker: format.NewChecker(
			rules.RequiredCodeTags,
			rules.ExampleCodeTags,
			rules.MinCodeExamples,
			rules.RequireTables,
		),
		scanner: security.NewScanner(security.DefaultPatterns(), rules.PlaceholderMarkers),
	}
}

// Evaluate runs all rules over the template. Findings are appended in a
// fixed order (required sections, format, security) so identical content
// always yields an identical sequence.
func (e *Engine) Evaluate(tmpl *types.Template) Result {
	sections := extraction.ExtractSections(tmpl.Content)

	var findings []types.Finding
	findings = append(findings, e.checkRequiredSections(sections)...)
	findings = append(findings, e.checker.Check(tmpl.Content)...)
	findings = append(findings, e.scanner.Scan(tmpl.Content)...)

	return Result{
		Sections: sections,
		Findings: findings,
		Passed:   Passed(findings),
	}
}

// checkRequiredSections reports one error per missing required title and an
// advisory for required sections with unusually short bodies. The first
// occurrence of a duplicated title is the canonical one.
func (e *Engine) checkRequiredSections(sections []types.Section) []types.Finding {
	byTitle := extraction.FirstByTitle(sections)

	var findings []types.Finding
	for _, title := range e.rules.RequiredSections {
		section, ok := byTitle[title]
		if !ok {
			findings = append(findings, types.ErrorFinding(
				"sections/missing",
				fmt.Sprintf("missing required section: %s", title),
				"",
			))
			continue
		}
		if e.rules.MinSectionWords > 0 {
			if words := len(strings.Fields(section.Body)); words < e.rules.MinSectionWords {
				findings = append(findings, types.WarningFinding(
					"sections/short",
					fmt.Sprintf("section %q has only %d word(s), consider expanding it", title, words),
					title,
				))
			}
		}
	}
	return findings
}

// Passed reports whether a finding sequence contains no error-severity entry.
func Passed(findings []types.Finding) bool {
	for _, f := range findings {
		if f.Severity == types.SeverityError {
			return false
		}
	}
	return true
}
