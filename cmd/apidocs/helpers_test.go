package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// validTemplateContent is a template that passes the default rule set.
const validTemplateContent = `# Smart Home API

## Overview

The Smart Home API exposes device state and control operations over REST.

## Authentication

All requests carry a bearer token in the Authorization header, for example
Authorization: Bearer YOUR_ACCESS_TOKEN on every request you make.

## Endpoints

| Method | Path | Description |
|--------|------|-------------|
| GET | /api/v1/devices | List devices |

## Request/Response Examples

` + "```http" + `
GET /api/v1/devices HTTP/1.1
Host: api.example.com
` + "```" + `

` + "```json" + `
{"devices": []}
` + "```" + `

## Error Codes

| Code | Meaning |
|------|---------|
| 401 | Missing or invalid token |
`

// writeTempTemplate writes template content into a temp dir and returns its path.
func writeTempTemplate(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "template.md")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// resetValidateFlags restores the validate command's flag variables.
func resetValidateFlags(t *testing.T) {
	t.Helper()
	prevIn, prevReport, prevConfig, prevDebug := validateInput, validateReportPath, validateConfigPath, debugMode
	t.Cleanup(func() {
		validateInput, validateReportPath, validateConfigPath, debugMode = prevIn, prevReport, prevConfig, prevDebug
	})
}

// resetGenerateFlags restores the generate command's flag variables.
func resetGenerateFlags(t *testing.T) {
	t.Helper()
	prevIn, prevOut, prevReport, prevConfig, prevSkip := generateInput, generateOutput, generateReportPath, generateConfigPath, generateSkipValidate
	t.Cleanup(func() {
		generateInput, generateOutput, generateReportPath, generateConfigPath, generateSkipValidate = prevIn, prevOut, prevReport, prevConfig, prevSkip
	})
}
