// Package pipeline provides the high-level orchestration for template
// validation and document generation.
package pipeline

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/jonathan/apidocs-generator/internal/config"
	"github.com/jonathan/apidocs-generator/internal/generator"
	"github.com/jonathan/apidocs-generator/internal/report"
	"github.com/jonathan/apidocs-generator/internal/rules"
	"github.com/jonathan/apidocs-generator/internal/types"
)

// Options holds configuration for running the pipeline.
type Options struct {
	TemplatePath   string
	Rules          config.Rules
	SkipValidation bool // generate mode only: emit the document without gating on validation
	Logger         *zap.Logger
}

func (o *Options) logger() *zap.Logger {
	if o.Logger == nil {
		return zap.NewNop()
	}
	return o.Logger
}

// Validate reads the template file and runs the full validation pipeline.
// Unreadable or empty templates are fatal: no report is produced for them.
func Validate(opts Options) (*types.ValidationReport, error) {
	content, err := os.ReadFile(opts.TemplatePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read template %s: %w", opts.TemplatePath, err)
	}
	return ValidateContent(opts.TemplatePath, string(content), opts.Rules, opts.logger())
}

// ValidateContent runs the validation pipeline over in-memory template
// content. This is the single pure entry point: everything downstream of the
// template read is deterministic apart from the report id and timestamp.
func ValidateContent(source, content string, ruleSet config.Rules, logger *zap.Logger) (*types.ValidationReport, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	tmpl, err := types.NewTemplate(source, content)
	if err != nil {
		return nil, fmt.Errorf("invalid template %s: %w", source, err)
	}

	engine := rules.NewEngine(ruleSet)
	result := engine.Evaluate(tmpl)
	rep := report.Build(tmpl, result.Sections, result.Findings, result.Passed)

	for _, f := range result.Findings {
		logger.Debug("finding",
			zap.String("rule", f.Rule),
			zap.String("severity", string(f.Severity)),
			zap.String("location", f.Location),
			zap.String("message", f.Message),
		)
	}
	logger.Info("validation complete",
		zap.String("template", source),
		zap.Bool("passed", rep.Passed),
		zap.Int("errors", len(rep.ErrorFindings())),
		zap.Int("warnings", len(rep.WarningFindings())),
		zap.Int("sections", rep.Metrics.Sections),
	)

	return rep, nil
}

// Generate validates the template and, when the report passes, returns the
// generated document alongside the report. A failing report yields a
// *generator.BlockedError. With SkipValidation set the document is emitted
// unconditionally and no report is produced.
func Generate(opts Options) (string, *types.ValidationReport, error) {
	if opts.SkipValidation {
		content, err := os.ReadFile(opts.TemplatePath)
		if err != nil {
			return "", nil, fmt.Errorf("failed to read template %s: %w", opts.TemplatePath, err)
		}
		tmpl, err := types.NewTemplate(opts.TemplatePath, string(content))
		if err != nil {
			return "", nil, fmt.Errorf("invalid template %s: %w", opts.TemplatePath, err)
		}
		doc, err := generator.Generate(tmpl, &types.ValidationReport{Passed: true})
		if err != nil {
			return "", nil, err
		}
		opts.logger().Info("document generated without validation", zap.String("template", opts.TemplatePath))
		return doc, nil, nil
	}

	content, err := os.ReadFile(opts.TemplatePath)
	if err != nil {
		return "", nil, fmt.Errorf("failed to read template %s: %w", opts.TemplatePath, err)
	}
	tmpl, err := types.NewTemplate(opts.TemplatePath, string(content))
	if err != nil {
		return "", nil, fmt.Errorf("invalid template %s: %w", opts.TemplatePath, err)
	}

	rep, err := ValidateContent(opts.TemplatePath, string(content), opts.Rules, opts.logger())
	if err != nil {
		return "", nil, err
	}

	doc, err := generator.Generate(tmpl, rep)
	if err != nil {
		return "", rep, err
	}

	opts.logger().Info("document generated", zap.String("template", opts.TemplatePath))
	return doc, rep, nil
}
