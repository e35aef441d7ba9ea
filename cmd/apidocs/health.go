package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/apidocs-generator/internal/logging"
	"github.com/jonathan/apidocs-generator/internal/observability"
	"github.com/jonathan/apidocs-generator/internal/pipeline"
)

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Self-test the validation pipeline",
	Long:  "Runs the full pipeline over a built-in known-good template and fails if it does not validate cleanly.",
	RunE:  runHealth,
}

func init() {
	rootCmd.AddCommand(healthCmd)
}

func runHealth(_ *cobra.Command, _ []string) error {
	logger := logging.New(debugMode)
	defer func() { _ = logger.Sync() }()

	rep, err := pipeline.HealthCheck(logger)
	if err != nil {
		if rep != nil && debugMode {
			observability.NewPrinter(os.Stdout).PrintFindings(rep.Findings)
		}
		return err
	}

	if debugMode {
		observability.NewPrinter(os.Stdout).PrintReport(rep)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Pipeline healthy: %d section(s), %d finding(s)\n",
		rep.Metrics.Sections, len(rep.Findings))
	return nil
}
