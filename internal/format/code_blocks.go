// Package format inspects template text for required code examples and
// structural well-formedness of fenced blocks.
package format

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/jonathan/apidocs-generator/internal/types"
)

// CodeBlock is one fenced code block found in the template.
type CodeBlock struct {
	Tag       string // fence info string, lowercased ("" for untagged blocks)
	Body      string
	StartLine int // 1-based line of the opening fence
	Closed    bool
}

// ScanCodeBlocks walks the template line by line and collects every fenced
// code block. A block opens at a line starting with ``` and closes at the
// next bare ``` line; a block still open at end of text is reported with
// Closed=false.
func ScanCodeBlocks(content string) []CodeBlock {
	var blocks []CodeBlock

	var current *CodeBlock
	var body []string

	for i, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)

		if current == nil {
			if strings.HasPrefix(trimmed, "```") {
				current = &CodeBlock{
					Tag:       strings.ToLower(strings.TrimSpace(strings.TrimPrefix(trimmed, "```"))),
					StartLine: i + 1,
				}
				body = nil
			}
			continue
		}

		if trimmed == "```" {
			current.Body = strings.Join(body, "\n")
			current.Closed = true
			blocks = append(blocks, *current)
			current = nil
			continue
		}

		body = append(body, line)
	}

	if current != nil {
		current.Body = strings.Join(body, "\n")
		blocks = append(blocks, *current)
	}

	return blocks
}

// Checker verifies code-example requirements against template text.
type Checker struct {
	RequiredTags  []string // fence tags that must each appear at least once
	ExampleTags   []string // tags counted toward the completeness advisory
	MinExamples   int      // advisory threshold; zero disables
	RequireTables bool     // advise when no markdown table rows exist
}

// NewChecker builds a Checker for the given requirements.
func NewChecker(requiredTags, exampleTags []string, minExamples int, requireTables bool) *Checker {
	return &Checker{
		RequiredTags:  requiredTags,
		ExampleTags:   exampleTags,
		MinExamples:   minExamples,
		RequireTables: requireTables,
	}
}

// Check returns the format findings for the template text, in a fixed order:
// unclosed fences, missing required tags, JSON syntax advisories, then
// completeness advisories.
func (c *Checker) Check(content string) []types.Finding {
	var findings []types.Finding
	blocks := ScanCodeBlocks(content)

	for _, b := range blocks {
		if !b.Closed {
			findings = append(findings, types.ErrorFinding(
				"format/unclosed-fence",
				fmt.Sprintf("code fence opened at line %d is never closed", b.StartLine),
				fmt.Sprintf("line %d", b.StartLine),
			))
		}
	}

	counts := CountByTag(blocks)
	for _, tag := range c.RequiredTags {
		if counts[tag] == 0 {
			findings = append(findings, types.ErrorFinding(
				"format/missing-example",
				fmt.Sprintf("no ```%s code block found in template", tag),
				"",
			))
		}
	}

	for _, b := range blocks {
		if b.Tag != "json" || !b.Closed {
			continue
		}
		if _, err := gojsonschema.NewStringLoader(b.Body).LoadJSON(); err != nil {
			findings = append(findings, types.WarningFinding(
				"format/json-syntax",
				fmt.Sprintf("json example does not parse: %v", err),
				fmt.Sprintf("line %d", b.StartLine),
			))
		}
	}

	if c.MinExamples > 0 {
		total := 0
		for _, tag := range c.ExampleTags {
			total += counts[tag]
		}
		if total < c.MinExamples {
			findings = append(findings, types.WarningFinding(
				"format/few-examples",
				fmt.Sprintf("only %d code example(s) found, consider adding more (want at least %d)", total, c.MinExamples),
				"",
			))
		}
	}

	if c.RequireTables && !hasTableRow(content) {
		findings = append(findings, types.WarningFinding(
			"format/no-tables",
			"no tables found, consider adding tables for error codes or parameters",
			"",
		))
	}

	return findings
}

// CountByTag counts closed and unclosed blocks per fence tag.
func CountByTag(blocks []CodeBlock) map[string]int {
	counts := make(map[string]int)
	for _, b := range blocks {
		if b.Tag != "" {
			counts[b.Tag]++
		}
	}
	return counts
}

// hasTableRow reports whether any line looks like a markdown table row with
// at least two cells.
func hasTableRow(content string) bool {
	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "|") && strings.Count(trimmed, "|") >= 3 {
			return true
		}
	}
	return false
}
