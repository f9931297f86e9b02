// =============================================================================
// Sales Analytics System - Pipeline Orchestrator
// =============================================================================
//
// The Analyzer runs the whole pipeline for one data file:
//
//   read lines -> parse records -> validate + filter -> aggregate ->
//   enrich from catalog -> write report, enriched data, optional workbook
//
// Each stage either fully succeeds or fails before later stages run; no
// partial aggregation happens on a corrupted input set. The one exception
// is the catalog fetch, which degrades to zero enrichment instead of
// failing the run.
//
// =============================================================================

package analyzer

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/ashacherry/sales-analytics-system/internal/analytics"
	"github.com/ashacherry/sales-analytics-system/internal/config"
	"github.com/ashacherry/sales-analytics-system/internal/enrichment"
	"github.com/ashacherry/sales-analytics-system/internal/reader"
	"github.com/ashacherry/sales-analytics-system/internal/report"
	"github.com/ashacherry/sales-analytics-system/internal/salesparser"
	"github.com/ashacherry/sales-analytics-system/internal/types"
	"github.com/ashacherry/sales-analytics-system/internal/validation"
	"github.com/ashacherry/sales-analytics-system/pkg/utils"
)

// =============================================================================
// COLLABORATOR INTERFACES
// =============================================================================

// LineSource yields decoded data lines from a path plus the count of lines
// discarded at read level. Implemented by the reader package; replaced by
// fakes in tests.
type LineSource interface {
	ReadLines(path string) ([]string, int, error)
}

// CatalogProvider supplies the external product catalog. An empty result
// means no enrichment is possible; it is never an error.
type CatalogProvider interface {
	FetchAll(ctx context.Context) []types.CatalogEntry
}

// fileLineSource adapts the reader package to the LineSource interface.
type fileLineSource struct{}

func (fileLineSource) ReadLines(path string) ([]string, int, error) {
	return reader.ReadLines(path)
}

// =============================================================================
// RESULT TYPES
// =============================================================================

// Stats collects per-stage counters for one run.
type Stats struct {
	LinesRead        int
	ReadDiscarded    int
	Parsed           int
	ParseRejected    int
	Invalid          int
	FilteredByRegion int
	FilteredByAmount int
	FinalCount       int
	CatalogEntries   int
	Matched          int
	Elapsed          time.Duration
}

// Result is the outcome of one pipeline run.
type Result struct {
	RunID   string
	Success bool
	Error   error

	ReportPath   string
	EnrichedPath string
	WorkbookPath string
	ArchivedPath string

	Stats   Stats
	Options validation.Options
}

// =============================================================================
// ANALYZER
// =============================================================================

// Analyzer executes the pipeline for one data file.
type Analyzer struct {
	cfg     *config.Config
	filters validation.Filters
	log     zerolog.Logger

	// Source and Catalog are swappable for tests. Enrich=false skips the
	// network call entirely.
	Source  LineSource
	Catalog CatalogProvider
	Enrich  bool
}

// New creates an Analyzer wired to the real line source and catalog client.
func New(cfg *config.Config, filters validation.Filters, log zerolog.Logger) *Analyzer {
	return &Analyzer{
		cfg:     cfg,
		filters: filters,
		log:     log,
		Source:  fileLineSource{},
		Catalog: enrichment.NewClient(
			cfg.Catalog.URL,
			cfg.Catalog.Limit,
			time.Duration(cfg.Catalog.TimeoutSeconds)*time.Second,
			log,
		),
		Enrich: true,
	}
}

// SetFilters replaces the filters for the next run. Used when filter values
// arrive after construction, e.g. from the interactive prompt.
func (a *Analyzer) SetFilters(filters validation.Filters) {
	a.filters = filters
}

// Run executes the pipeline and returns its result. Fatal errors (unreadable
// input, unwritable output) are reported in Result.Error; a failed catalog
// fetch only reduces enrichment coverage.
func (a *Analyzer) Run(ctx context.Context) Result {
	start := time.Now()
	result := Result{RunID: uuid.NewString()}

	fail := func(err error) Result {
		result.Success = false
		result.Error = err
		result.Stats.Elapsed = time.Since(start)
		return result
	}

	fm := utils.NewFileManager(a.cfg.OutputDir, a.cfg.InputArchiveDir, a.cfg.ArchiveOnSuccess)
	if err := fm.EnsureDirectories(); err != nil {
		return fail(err)
	}

	// Stage 1: read.
	lines, readDiscarded, err := a.Source.ReadLines(a.cfg.DataFile)
	if err != nil {
		return fail(fmt.Errorf("reading sales data: %w", err))
	}
	result.Stats.LinesRead = len(lines)
	result.Stats.ReadDiscarded = readDiscarded
	a.log.Info().Int("lines", len(lines)).Int("discarded", readDiscarded).Msg("Read sales data")

	// Stage 2: parse.
	parsed, rejections := salesparser.ParseLines(lines)
	result.Stats.Parsed = len(parsed)
	result.Stats.ParseRejected = len(rejections)
	a.log.Info().Int("parsed", len(parsed)).Int("rejected", len(rejections)).Msg("Parsed records")

	// Stage 3: validate and filter. The display step always runs so the
	// report can show the filterable shape of the data.
	result.Options = validation.DescribeOptions(parsed)

	valid, invalid, summary := validation.Apply(parsed, a.filters)
	result.Stats.Invalid = invalid
	result.Stats.FilteredByRegion = summary.FilteredByRegion
	result.Stats.FilteredByAmount = summary.FilteredByAmount
	result.Stats.FinalCount = summary.FinalCount
	a.log.Info().
		Int("valid", summary.FinalCount).
		Int("invalid", invalid).
		Int("filtered_by_region", summary.FilteredByRegion).
		Int("filtered_by_amount", summary.FilteredByAmount).
		Msg("Validated transactions")

	// Stage 4: aggregate over the post-filter valid set.
	data := &report.ReportData{
		RunID:         result.RunID,
		Timestamp:     time.Now(),
		ReadDiscarded: readDiscarded,
		Rejections:    rejections,
		Summary:       summary,
		TotalRevenue:  analytics.TotalRevenue(valid),
		Regions:       analytics.RegionSales(valid),
		TopProducts:   analytics.TopProducts(valid, a.cfg.Analysis.TopProducts),
		LowProducts:   analytics.LowProducts(valid, a.cfg.Analysis.LowQuantityThreshold),
		Customers:     analytics.CustomerStats(valid),
		DailyTrend:    analytics.DailyTrend(valid),
		PeakDay:       analytics.PeakDay(valid),
	}
	a.log.Info().Float64("total_revenue", data.TotalRevenue).Msg("Analysis complete")

	// Stage 5: enrich. An unreachable catalog means zero matches, not a
	// failed run.
	var catalog []types.CatalogEntry
	if a.Enrich {
		catalog = a.Catalog.FetchAll(ctx)
	}
	result.Stats.CatalogEntries = len(catalog)

	data.Enriched = enrichment.Enrich(valid, enrichment.Mapping(catalog))
	data.MatchedCount = enrichment.MatchCount(data.Enriched)
	result.Stats.Matched = data.MatchedCount
	a.log.Info().
		Int("catalog_entries", len(catalog)).
		Int("matched", data.MatchedCount).
		Int("total", len(data.Enriched)).
		Msg("Enriched transactions")

	// Stage 6: write outputs.
	reportName := utils.GenerateOutputFileName(a.cfg.ReportNameFormat, nil, ".txt")
	result.ReportPath = filepath.Join(a.cfg.OutputDir, reportName)
	if err := report.SaveTextReport(result.ReportPath, data); err != nil {
		return fail(err)
	}

	enrichedName := utils.GenerateOutputFileName(a.cfg.EnrichedNameFormat, nil, ".txt")
	result.EnrichedPath = filepath.Join(a.cfg.OutputDir, enrichedName)
	if err := report.SaveEnrichedData(result.EnrichedPath, data.Enriched); err != nil {
		return fail(err)
	}

	if a.cfg.ExportWorkbook {
		workbookName := utils.GenerateOutputFileName(a.cfg.WorkbookNameFormat, nil, ".xlsx")
		result.WorkbookPath = filepath.Join(a.cfg.OutputDir, workbookName)
		if err := report.SaveWorkbook(result.WorkbookPath, data); err != nil {
			return fail(err)
		}
	}

	// Archive the input only after every output landed.
	if a.cfg.ArchiveOnSuccess {
		archived, err := fm.ArchiveInputFile(a.cfg.DataFile)
		if err != nil {
			return fail(fmt.Errorf("archiving input: %w", err))
		}
		result.ArchivedPath = archived
	}

	result.Success = true
	result.Stats.Elapsed = time.Since(start)
	return result
}
