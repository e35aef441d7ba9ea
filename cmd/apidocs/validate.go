package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/apidocs-generator/internal/config"
	"github.com/jonathan/apidocs-generator/internal/logging"
	"github.com/jonathan/apidocs-generator/internal/observability"
	"github.com/jonathan/apidocs-generator/internal/pipeline"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate an API documentation template",
	Long:  "Validates a markdown template for required sections, code example format, fence well-formedness and sensitive-value leaks, and writes a machine-readable validation report.",
	RunE:  runValidate,
}

var (
	validateInput      string
	validateReportPath string
	validateConfigPath string
)

func init() {
	validateCmd.Flags().StringVarP(&validateInput, "in", "i", "", "Path to the markdown template (required unless set in config)")
	validateCmd.Flags().StringVarP(&validateReportPath, "report", "r", "", "Path to write the validation report JSON (optional)")
	validateCmd.Flags().StringVarP(&validateConfigPath, "config", "c", "", "Path to a JSON or YAML rules config file (optional)")

	rootCmd.AddCommand(validateCmd)
}

func runValidate(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig(validateConfigPath)
	if err != nil {
		return err
	}

	// Flags win; the config file supplies defaults for anything left unset.
	flags := config.Config{Template: validateInput, Report: validateReportPath}
	effective := flags.MergeWithDefaults(*cfg)

	if effective.Template == "" {
		return fmt.Errorf("no template given: pass --in or set 'template' in the config file")
	}

	logger := logging.New(debugMode || cfg.Debug)
	defer func() { _ = logger.Sync() }()

	rep, err := pipeline.Validate(pipeline.Options{
		TemplatePath: effective.Template,
		Rules:        effective.Rules,
		Logger:       logger,
	})
	if err != nil {
		return err
	}

	if reportPath := effective.Report; reportPath != "" {
		if err := writeReport(rep, reportPath); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(os.Stdout, "Report: %s\n", reportPath)
	}

	if debugMode || cfg.Debug {
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintReport(rep)
		printer.PrintFindings(rep.Findings)
	}

	errCount := len(rep.ErrorFindings())
	if rep.Passed {
		_, _ = fmt.Fprintf(os.Stdout, "Validation passed: %d warning(s)\n", len(rep.WarningFindings()))
		return nil
	}

	_, _ = fmt.Fprintf(os.Stdout, "Validation failed\n")
	for _, f := range rep.ErrorFindings() {
		_, _ = fmt.Fprintf(os.Stdout, "  - %s: %s\n", f.Rule, f.Message)
	}

	// Return error to indicate validation failed (exit code 1)
	return fmt.Errorf("validation failed with %d error finding(s)", errCount)
}
