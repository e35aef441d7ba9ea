package rules

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/apidocs-generator/internal/config"
	"github.com/jonathan/apidocs-generator/internal/types"
)

const validTemplate = `# Smart Home API

## Overview

The Smart Home API exposes device state and control operations over REST.

## Authentication

All requests carry a bearer token in the Authorization header, for example
Authorization: Bearer YOUR_ACCESS_TOKEN on every request you make.

## Endpoints

| Method | Path | Description |
|--------|------|-------------|
| GET | /api/v1/devices | List devices |
| POST | /api/v1/devices/{id}/commands | Send a command |

## Request/Response Examples

` + "```http" + `
GET /api/v1/devices HTTP/1.1
Host: api.example.com
Authorization: Bearer YOUR_ACCESS_TOKEN
` + "```" + `

` + "```json" + `
{
  "devices": [
    {"id": "thermostat-1", "state": "heating"}
  ]
}
` + "```" + `

## Error Codes

| Code | Meaning |
|------|---------|
| 401 | Missing or invalid token |
| 404 | Device not found |
`

func newTemplate(t *testing.T, content string) *types.Template {
	t.Helper()
	tmpl, err := types.NewTemplate("test.md", content)
	require.NoError(t, err)
	return tmpl
}

func errorRules(findings []types.Finding) []string {
	var rules []string
	for _, f := range findings {
		if f.Severity == types.SeverityError {
			rules = append(rules, f.Rule)
		}
	}
	return rules
}

func TestEvaluate_ValidTemplatePasses(t *testing.T) {
	engine := NewEngine(config.DefaultRules())
	res := engine.Evaluate(newTemplate(t, validTemplate))

	assert.True(t, res.Passed)
	assert.Empty(t, errorRules(res.Findings))
	assert.Len(t, res.Sections, 5)
}

func TestEvaluate_EachMissingSectionFlagged(t *testing.T) {
	for _, title := range config.DefaultRules().RequiredSections {
		t.Run(title, func(t *testing.T) {
			content := strings.Replace(validTemplate, "## "+title+"\n", "## Replaced\n", 1)
			engine := NewEngine(config.DefaultRules())
			res := engine.Evaluate(newTemplate(t, content))

			assert.False(t, res.Passed)

			missing := 0
			for _, f := range res.Findings {
				if f.Rule == "sections/missing" {
					missing++
					assert.Contains(t, f.Message, title)
				}
			}
			assert.Equal(t, 1, missing, "exactly one missing-section finding expected")
		})
	}
}

func TestEvaluate_WarningsDoNotFail(t *testing.T) {
	rules := config.DefaultRules()
	rules.MinCodeExamples = 50 // force the few-examples advisory
	engine := NewEngine(rules)
	res := engine.Evaluate(newTemplate(t, validTemplate))

	assert.True(t, res.Passed)
	hasWarning := false
	for _, f := range res.Findings {
		if f.Severity == types.SeverityWarning {
			hasWarning = true
		}
	}
	assert.True(t, hasWarning)
}

func TestEvaluate_ShortSectionAdvisory(t *testing.T) {
	content := strings.Replace(validTemplate,
		"The Smart Home API exposes device state and control operations over REST.",
		"Brief.", 1)
	engine := NewEngine(config.DefaultRules())
	res := engine.Evaluate(newTemplate(t, content))

	assert.True(t, res.Passed, "short sections are advisory only")
	found := false
	for _, f := range res.Findings {
		if f.Rule == "sections/short" {
			found = true
			assert.Equal(t, types.SeverityWarning, f.Severity)
			assert.Equal(t, "Overview", f.Location)
		}
	}
	assert.True(t, found)
}

func TestEvaluate_SecurityFindingFails(t *testing.T) {
	content := validTemplate + "\n" + `"api_key": "sk_live_51H8xJ2KQabcdef"` + "\n"
	engine := NewEngine(config.DefaultRules())
	res := engine.Evaluate(newTemplate(t, content))

	assert.False(t, res.Passed)
	assert.Contains(t, errorRules(res.Findings), "security/api-key")
}

func TestEvaluate_FixedFindingOrder(t *testing.T) {
	// Missing sections, a missing json block and a secret together: findings
	// must arrive grouped as sections, then format, then security.
	content := "## Overview\nShort overview body with enough words here.\n\n" +
		"```http\nGET / HTTP/1.1\n```\n\n" +
		`"password": "actual-hunter2-value"` + "\n"
	engine := NewEngine(config.DefaultRules())
	res := engine.Evaluate(newTemplate(t, content))

	errs := errorRules(res.Findings)
	require.NotEmpty(t, errs)

	stage := func(rule string) int {
		switch {
		case strings.HasPrefix(rule, "sections/"):
			return 0
		case strings.HasPrefix(rule, "format/"):
			return 1
		default:
			return 2
		}
	}
	for i := 1; i < len(errs); i++ {
		assert.LessOrEqual(t, stage(errs[i-1]), stage(errs[i]))
	}
	assert.False(t, res.Passed)
}

func TestEvaluate_Deterministic(t *testing.T) {
	engine := NewEngine(config.DefaultRules())
	tmpl := newTemplate(t, validTemplate+"\n"+`"password": "actual-hunter2-value"`)

	first := engine.Evaluate(tmpl)
	second := engine.Evaluate(tmpl)
	assert.Equal(t, first.Findings, second.Findings)
	assert.Equal(t, first.Passed, second.Passed)
}

func TestEvaluate_AlternateRuleSet(t *testing.T) {
	rules := config.DefaultRules()
	rules.RequiredSections = []string{"Changelog"}
	engine := NewEngine(rules)
	res := engine.Evaluate(newTemplate(t, validTemplate))

	assert.False(t, res.Passed)
	assert.Contains(t, errorRules(res.Findings), "sections/missing")
}

func TestPassed(t *testing.T) {
	assert.True(t, Passed(nil))
	assert.True(t, Passed([]types.Finding{types.WarningFinding("x", "m", "")}))
	assert.False(t, Passed([]types.Finding{
		types.WarningFinding("x", "m", ""),
		types.ErrorFinding("y", "m", ""),
	}))
}
