package pipeline

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/jonathan/apidocs-generator/internal/config"
	"github.com/jonathan/apidocs-generator/internal/types"
)

// healthTemplate is a minimal known-good template. Running the pipeline over
// it exercises every stage; if it ever fails validation, the installation is
// broken, not the template.
const healthTemplate = `# Health Check API

## Overview

Minimal built-in template used to self-test the validation pipeline.

## Authentication

Requests authenticate with a bearer token, for example
Authorization: Bearer YOUR_ACCESS_TOKEN on each request.

## Endpoints

| Method | Path | Description |
|--------|------|-------------|
| GET | /health | Liveness probe |

## Request/Response Examples

` + "```http" + `
GET /health HTTP/1.1
Host: api.example.com
` + "```" + `

` + "```json" + `
{"status": "ok"}
` + "```" + `

## Error Codes

| Code | Meaning |
|------|---------|
| 503 | Service unavailable |
`

// HealthCheckSource identifies the built-in template in health reports.
const HealthCheckSource = "builtin:health-check"

// HealthCheck runs the pipeline over the built-in template with the default
// rule set and reports an error unless it passes cleanly.
func HealthCheck(logger *zap.Logger) (*types.ValidationReport, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	rep, err := ValidateContent(HealthCheckSource, healthTemplate, config.DefaultRules(), logger)
	if err != nil {
		return nil, fmt.Errorf("health check could not run: %w", err)
	}

	if !rep.Passed {
		errs := rep.ErrorFindings()
		return rep, fmt.Errorf("health check failed with %d error finding(s)", len(errs))
	}
	return rep, nil
}
