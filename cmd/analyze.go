// =============================================================================
// Sales Analytics System - Analyze Command
// =============================================================================
//
// This file defines the 'analyze' command, which runs the full analysis
// pipeline for one sales data file.
//
// COMMAND USAGE:
//   sales-analytics analyze [flags]
//
// FLAGS:
//   --file         : Override the data file from the configuration
//   --region       : Keep only transactions from this region
//   --min-amount   : Keep only transactions with amount >= this value
//   --max-amount   : Keep only transactions with amount <= this value
//   --interactive  : Prompt for filter values on stdin
//   --no-enrich    : Skip the catalog API call
//   --xlsx         : Force the XLSX workbook export
//
// PIPELINE:
//   1. Load configuration
//   2. Read the sales data file (encoding fallback)
//   3. Parse and clean records
//   4. Validate and apply filters
//   5. Compute aggregates
//   6. Enrich from the product catalog
//   7. Write the report, enriched data file, and optional workbook
//
// =============================================================================

package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ashacherry/sales-analytics-system/internal/analyzer"
	"github.com/ashacherry/sales-analytics-system/internal/config"
	"github.com/ashacherry/sales-analytics-system/internal/logger"
	"github.com/ashacherry/sales-analytics-system/internal/reader"
	"github.com/ashacherry/sales-analytics-system/internal/salesparser"
	"github.com/ashacherry/sales-analytics-system/internal/validation"
)

// =============================================================================
// COMMAND FLAGS
// =============================================================================

// dataFile overrides the configured sales data file.
var dataFile string

// filterRegion keeps only transactions from this region.
var filterRegion string

// minAmount / maxAmount bound the transaction amount. They only apply when
// their flag was actually set; zero is a meaningful bound.
var minAmount float64
var maxAmount float64

// interactive prompts for filter values on stdin.
var interactive bool

// noEnrich skips the catalog API call.
var noEnrich bool

// exportXLSX forces the workbook export regardless of configuration.
var exportXLSX bool

// =============================================================================
// ANALYZE COMMAND DEFINITION
// =============================================================================

// analyzeCmd represents the 'analyze' command.
var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze the sales data file and write the report",
	Long: `The analyze command reads the configured pipe-delimited sales data file,
cleans and validates the records, computes the aggregates, enriches the
transactions from the remote product catalog, and writes a plain-text report
plus an enriched data file into the output directory.

Filters may be given as flags or entered interactively. The catalog call
fails soft: an unreachable API only reduces enrichment coverage, it never
fails the run.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		return runAnalyze(cmd)
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringVar(&dataFile, "file", "", "Sales data file (overrides configuration)")
	analyzeCmd.Flags().StringVar(&filterRegion, "region", "", "Keep only transactions from this region")
	analyzeCmd.Flags().Float64Var(&minAmount, "min-amount", 0, "Keep only transactions with amount >= this value")
	analyzeCmd.Flags().Float64Var(&maxAmount, "max-amount", 0, "Keep only transactions with amount <= this value")
	analyzeCmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Prompt for filter values on stdin")
	analyzeCmd.Flags().BoolVar(&noEnrich, "no-enrich", false, "Skip the catalog API call")
	analyzeCmd.Flags().BoolVar(&exportXLSX, "xlsx", false, "Export the run as an XLSX workbook")
}

// =============================================================================
// MAIN ANALYSIS FUNCTION
// =============================================================================

// runAnalyze orchestrates one pipeline run from the CLI.
func runAnalyze(cmd *cobra.Command) error {
	fmt.Println("=== Sales Analytics System ===")
	fmt.Println("Loading configuration...")

	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if dataFile != "" {
		cfg.DataFile = dataFile
	}
	if exportXLSX {
		cfg.ExportWorkbook = true
	}

	log := logger.New()
	if verbose {
		log = log.Level(logger.ParseLevel("debug"))
	} else {
		log = log.Level(logger.ParseLevel(cfg.LogLevel))
	}

	filters := validation.Filters{Region: filterRegion}
	if cmd.Flags().Changed("min-amount") {
		v := minAmount
		filters.MinAmount = &v
	}
	if cmd.Flags().Changed("max-amount") {
		v := maxAmount
		filters.MaxAmount = &v
	}

	a := analyzer.New(cfg, filters, log)
	a.Enrich = !noEnrich

	// Interactive mode reads the file once up front so the prompt can show
	// the available regions and the observed amount range. The pre-read
	// lines are handed to the analyzer so the file is not read twice.
	if interactive {
		fmt.Printf("Reading %s...\n", cfg.DataFile)
		lines, discarded, err := reader.ReadLines(cfg.DataFile)
		if err != nil {
			return fmt.Errorf("failed to read sales data: %w", err)
		}

		parsed, _ := salesparser.ParseLines(lines)
		filters, err = promptFilters(os.Stdin, os.Stdout, validation.DescribeOptions(parsed))
		if err != nil {
			return fmt.Errorf("failed to read filter input: %w", err)
		}

		a.Source = preReadLineSource{lines: lines, discarded: discarded}
		a.SetFilters(filters)
	}

	fmt.Println("Analyzing sales data...")

	result := a.Run(cmd.Context())
	if !result.Success {
		return result.Error
	}

	printSummary(result)
	return nil
}

// preReadLineSource serves lines that were already read for the interactive
// prompt.
type preReadLineSource struct {
	lines     []string
	discarded int
}

func (s preReadLineSource) ReadLines(string) ([]string, int, error) {
	return s.lines, s.discarded, nil
}

// =============================================================================
// INTERACTIVE PROMPT
// =============================================================================

// promptFilters runs the interactive y/n filter flow: show the filterable
// shape of the data, then ask for region and amount bounds. Empty answers
// leave a filter unset.
func promptFilters(in io.Reader, out io.Writer, opts validation.Options) (validation.Filters, error) {
	var filters validation.Filters
	scanner := bufio.NewScanner(in)

	ask := func(prompt string) (string, error) {
		fmt.Fprint(out, prompt)
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return "", err
			}
			return "", nil
		}
		return strings.TrimSpace(scanner.Text()), nil
	}

	answer, err := ask("Do you want to apply filters? (y/n): ")
	if err != nil {
		return filters, err
	}
	if !strings.EqualFold(answer, "y") && !strings.EqualFold(answer, "yes") {
		return filters, nil
	}

	if len(opts.Regions) > 0 {
		fmt.Fprintf(out, "Available regions: %s\n", strings.Join(opts.Regions, ", "))
	}
	if opts.HasAmounts {
		fmt.Fprintf(out, "Amount range: %.2f - %.2f\n", opts.MinAmount, opts.MaxAmount)
	}

	region, err := ask("Filter by region (press Enter to skip): ")
	if err != nil {
		return filters, err
	}
	filters.Region = region

	minStr, err := ask("Minimum amount (press Enter to skip): ")
	if err != nil {
		return filters, err
	}
	if minStr != "" {
		v, err := strconv.ParseFloat(minStr, 64)
		if err != nil {
			return filters, fmt.Errorf("invalid minimum amount %q: %w", minStr, err)
		}
		filters.MinAmount = &v
	}

	maxStr, err := ask("Maximum amount (press Enter to skip): ")
	if err != nil {
		return filters, err
	}
	if maxStr != "" {
		v, err := strconv.ParseFloat(maxStr, 64)
		if err != nil {
			return filters, fmt.Errorf("invalid maximum amount %q: %w", maxStr, err)
		}
		filters.MaxAmount = &v
	}

	return filters, nil
}

// =============================================================================
// SUMMARY OUTPUT
// =============================================================================

// printSummary prints the run summary block after a successful run.
func printSummary(result analyzer.Result) {
	s := result.Stats

	fmt.Println("\n=== Analysis Complete ===")
	fmt.Printf("Run ID:            %s\n", result.RunID)
	if len(result.Options.Regions) > 0 {
		fmt.Printf("Regions:           %s\n", strings.Join(result.Options.Regions, ", "))
	}
	if result.Options.HasAmounts {
		fmt.Printf("Amount range:      %.2f - %.2f\n", result.Options.MinAmount, result.Options.MaxAmount)
	}
	fmt.Printf("Lines read:        %d\n", s.LinesRead)
	fmt.Printf("Parsed:            %d\n", s.Parsed)
	fmt.Printf("Rejected:          %d\n", s.ParseRejected)
	fmt.Printf("Invalid:           %d\n", s.Invalid)
	if s.FilteredByRegion > 0 {
		fmt.Printf("Filtered (region): %d\n", s.FilteredByRegion)
	}
	if s.FilteredByAmount > 0 {
		fmt.Printf("Filtered (amount): %d\n", s.FilteredByAmount)
	}
	fmt.Printf("Analyzed:          %d\n", s.FinalCount)
	fmt.Printf("Enriched:          %d/%d\n", s.Matched, s.FinalCount)
	fmt.Printf("Time elapsed:      %s\n", s.Elapsed)

	fmt.Printf("\nReport:        %s\n", result.ReportPath)
	fmt.Printf("Enriched data: %s\n", result.EnrichedPath)
	if result.WorkbookPath != "" {
		fmt.Printf("Workbook:      %s\n", result.WorkbookPath)
	}
	if result.ArchivedPath != "" {
		fmt.Printf("Archived:      %s\n", result.ArchivedPath)
	}
}
