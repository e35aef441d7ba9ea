// Package extraction parses raw template text into ordered sections.
package extraction

import (
	"strings"

	"github.com/jonathan/apidocs-generator/internal/types"
)

const headingPrefix = "## "

// ExtractSections splits template content into an ordered sequence of
// sections. A section begins at a second-level markdown heading and ends at
// the next such heading or end of text. Headings are matched case-sensitively
// and the title is trimmed. Text before the first heading is not a section.
// Heading-shaped lines inside fenced code blocks are treated as content, not
// section boundaries.
func ExtractSections(content string) []types.Section {
	var sections []types.Section

	var current *types.Section
	var body []string
	inFence := false

	flush := func() {
		if current != nil {
			current.Body = strings.Join(body, "\n")
			sections = append(sections, *current)
			current = nil
		}
		body = nil
	}

	for i, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)

		if strings.HasPrefix(trimmed, "```") {
			inFence = !inFence
			if current != nil {
				body = append(body, line)
			}
			continue
		}

		if !inFence && strings.HasPrefix(line, headingPrefix) {
			flush()
			current = &types.Section{
				Title: strings.TrimSpace(strings.TrimPrefix(line, headingPrefix)),
				Line:  i + 1,
			}
			continue
		}

		if current != nil {
			body = append(body, line)
		}
	}
	flush()

	return sections
}

// FirstByTitle indexes sections by title. When a title occurs more than
// once, the first occurrence in document order is the canonical one.
func FirstByTitle(sections []types.Section) map[string]types.Section {
	byTitle := make(map[string]types.Section, len(sections))
	for _, s := range sections {
		if _, ok := byTitle[s.Title]; !ok {
			byTitle[s.Title] = s
		}
	}
	return byTitle
}
