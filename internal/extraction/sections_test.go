package extraction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractSections_Basic(t *testing.T) {
	content := `# API Documentation

Intro text before any section.

## Overview

The overview body.

## Endpoints

GET /api/v1/devices
`
	sections := ExtractSections(content)
	require.Len(t, sections, 2)

	assert.Equal(t, "Overview", sections[0].Title)
	assert.Equal(t, 5, sections[0].Line)
	assert.Contains(t, sections[0].Body, "The overview body.")

	assert.Equal(t, "Endpoints", sections[1].Title)
	assert.Contains(t, sections[1].Body, "GET /api/v1/devices")
}

func TestExtractSections_Empty(t *testing.T) {
	assert.Empty(t, ExtractSections(""))
	assert.Empty(t, ExtractSections("no headings here\njust text"))
}

func TestExtractSections_PreambleIgnored(t *testing.T) {
	content := "preamble line\n## Overview\nbody"
	sections := ExtractSections(content)
	require.Len(t, sections, 1)
	assert.Equal(t, "Overview", sections[0].Title)
	assert.NotContains(t, sections[0].Body, "preamble")
}

func TestExtractSections_TitleTrimmed(t *testing.T) {
	sections := ExtractSections("##   Error Codes   \nbody")
	require.Len(t, sections, 1)
	assert.Equal(t, "Error Codes", sections[0].Title)
}

func TestExtractSections_CaseSensitive(t *testing.T) {
	sections := ExtractSections("## overview\nbody")
	require.Len(t, sections, 1)
	// Extraction preserves the title as written; matching against required
	// titles happens downstream and is case-sensitive.
	assert.Equal(t, "overview", sections[0].Title)
}

func TestExtractSections_ThirdLevelNotASection(t *testing.T) {
	content := "## Endpoints\n### GET /devices\ndetails"
	sections := ExtractSections(content)
	require.Len(t, sections, 1)
	assert.Equal(t, "Endpoints", sections[0].Title)
	assert.Contains(t, sections[0].Body, "### GET /devices")
}

func TestExtractSections_HeadingInsideFenceIgnored(t *testing.T) {
	content := "## Overview\n```markdown\n## Not A Section\n```\nafter"
	sections := ExtractSections(content)
	require.Len(t, sections, 1)
	assert.Equal(t, "Overview", sections[0].Title)
	assert.Contains(t, sections[0].Body, "## Not A Section")
}

func TestExtractSections_DuplicateTitlesKept(t *testing.T) {
	content := "## Overview\nfirst\n## Overview\nsecond"
	sections := ExtractSections(content)
	require.Len(t, sections, 2)
	assert.Equal(t, "first", sections[0].Body)
	assert.Equal(t, "second", sections[1].Body)
}

func TestFirstByTitle(t *testing.T) {
	content := "## Overview\nfirst\n\n## Endpoints\nroutes\n\n## Overview\nsecond\n"
	byTitle := FirstByTitle(ExtractSections(content))
	require.Len(t, byTitle, 2)
	// The first occurrence of a duplicated title is the canonical one.
	assert.Contains(t, byTitle["Overview"].Body, "first")
	assert.Equal(t, 1, byTitle["Overview"].Line)
	assert.Contains(t, byTitle["Endpoints"].Body, "routes")
}
