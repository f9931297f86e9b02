// =============================================================================
// Sales Analytics System - Root Command
// =============================================================================
//
// This file defines the root command for the Cobra CLI. All other commands
// ('analyze', 'version') are attached to it.
//
// COBRA CLI STRUCTURE:
//   rootCmd (sales-analytics)
//   ├── analyzeCmd (sales-analytics analyze)
//   └── versionCmd (sales-analytics version)
//
// The root command owns the global flags (--config, --verbose) shared by
// every subcommand.
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ashacherry/sales-analytics-system/internal/config"
)

// cfgFile holds the path to the main configuration file. Overridden with
// --config.
var cfgFile string

// verbose enables debug logging when set.
var verbose bool

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "sales-analytics",
	Short: "Sales Analytics System - Analyze pipe-delimited sales data",
	Long: `Sales Analytics System ingests a pipe-delimited sales transaction file,
cleans and validates the records, computes descriptive aggregates, enriches
transactions from a remote product catalog, and writes a plain-text report
plus an enriched data file.

Key Features:
  - Multi-stage discard accounting with verbatim rejected lines
  - Region and amount filters with cumulative counts
  - Revenue, region, product, customer, and daily aggregates
  - Catalog enrichment that degrades gracefully when the API is unreachable
  - Optional XLSX workbook export

Example Usage:
  sales-analytics analyze                      # Analyze the configured data file
  sales-analytics analyze --region North       # Only the North region
  sales-analytics analyze --interactive        # Prompt for filter values
  sales-analytics analyze --config ./my.yaml   # Use a custom configuration file`,

	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately. It is called by main.main() exactly once.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		config.DefaultPath,
		"Path to the configuration file",
	)

	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Enable verbose output for debugging",
	)
}
