// Package main provides the entry point for the apidocs CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "apidocs",
	Short: "API documentation generator and validator",
	Long:  "apidocs validates API documentation markdown templates against required-section, format and security rules, and generates the published document once validation passes.",
}

var debugMode bool

func init() {
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Print detailed finding information and debug logs")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
