package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/apidocs-generator/internal/config"
	"github.com/jonathan/apidocs-generator/internal/generator"
	"github.com/jonathan/apidocs-generator/internal/logging"
	"github.com/jonathan/apidocs-generator/internal/observability"
	"github.com/jonathan/apidocs-generator/internal/pipeline"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the published document from a template",
	Long:  "Validates a markdown template and, when validation passes, writes the generated document with a provenance note. A failing template blocks generation.",
	RunE:  runGenerate,
}

var (
	generateInput        string
	generateOutput       string
	generateReportPath   string
	generateConfigPath   string
	generateSkipValidate bool
)

func init() {
	generateCmd.Flags().StringVarP(&generateInput, "in", "i", "", "Path to the markdown template (required unless set in config)")
	generateCmd.Flags().StringVarP(&generateOutput, "out", "o", "", "Path to write the generated document (required unless set in config)")
	generateCmd.Flags().StringVarP(&generateReportPath, "report", "r", "", "Path to write the validation report JSON (optional)")
	generateCmd.Flags().StringVarP(&generateConfigPath, "config", "c", "", "Path to a JSON or YAML rules config file (optional)")
	generateCmd.Flags().BoolVar(&generateSkipValidate, "skip-validate", false, "Generate without gating on validation")

	rootCmd.AddCommand(generateCmd)
}

func runGenerate(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig(generateConfigPath)
	if err != nil {
		return err
	}

	// Flags win; the config file supplies defaults for anything left unset.
	flags := config.Config{Template: generateInput, Output: generateOutput, Report: generateReportPath}
	effective := flags.MergeWithDefaults(*cfg)

	if effective.Template == "" {
		return fmt.Errorf("no template given: pass --in or set 'template' in the config file")
	}
	if effective.Output == "" {
		return fmt.Errorf("no output path given: pass --out or set 'output' in the config file")
	}

	logger := logging.New(debugMode || cfg.Debug)
	defer func() { _ = logger.Sync() }()

	doc, rep, err := pipeline.Generate(pipeline.Options{
		TemplatePath:   effective.Template,
		Rules:          effective.Rules,
		SkipValidation: generateSkipValidate,
		Logger:         logger,
	})

	if rep != nil {
		if reportPath := effective.Report; reportPath != "" {
			if werr := writeReport(rep, reportPath); werr != nil {
				return werr
			}
			_, _ = fmt.Fprintf(os.Stdout, "Report: %s\n", reportPath)
		}
		if debugMode || cfg.Debug {
			printer := observability.NewPrinter(os.Stdout)
			printer.PrintReport(rep)
			printer.PrintFindings(rep.Findings)
		}
	}

	if err != nil {
		var blocked *generator.BlockedError
		if errors.As(err, &blocked) {
			_, _ = fmt.Fprintf(os.Stdout, "Generation blocked\n")
			for _, f := range blocked.Findings {
				_, _ = fmt.Fprintf(os.Stdout, "  - %s: %s\n", f.Rule, f.Message)
			}
		}
		return err
	}

	if err := generator.WriteFile(doc, effective.Output); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(os.Stdout, "Documentation generated: %s\n", effective.Output)
	return nil
}
