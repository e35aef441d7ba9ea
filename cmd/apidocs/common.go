package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/jonathan/apidocs-generator/internal/config"
	"github.com/jonathan/apidocs-generator/internal/report"
	"github.com/jonathan/apidocs-generator/internal/schemas"
	"github.com/jonathan/apidocs-generator/internal/types"
)

// loadConfig resolves the effective configuration: the built-in defaults,
// optionally overridden by a JSON or YAML config file.
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return &config.Config{Rules: config.DefaultRules()}, nil
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// writeReport serializes the report to path and checks the output against
// the embedded report schema. Schema mismatches are warnings, not failures:
// the report on disk is still the authoritative artifact.
func writeReport(rep *types.ValidationReport, path string) error {
	if err := report.WriteFile(rep, path); err != nil {
		return err
	}

	data, err := report.Encode(rep)
	if err != nil {
		return err
	}
	if err := schemas.ValidateReportJSON(string(data)); err != nil {
		var validationErr *schemas.ValidationError
		var schemaLoadErr *schemas.SchemaLoadError
		if errors.As(err, &validationErr) {
			_, _ = fmt.Fprintf(os.Stderr, "Warning: Generated report does not validate against schema: %v\n", err)
		} else if errors.As(err, &schemaLoadErr) {
			_, _ = fmt.Fprintf(os.Stderr, "Warning: Could not validate report against schema (schema loading failed): %v\n", err)
		} else {
			_, _ = fmt.Fprintf(os.Stderr, "Warning: Could not validate report against schema: %v\n", err)
		}
	}
	return nil
}
