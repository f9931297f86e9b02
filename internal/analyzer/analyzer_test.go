package analyzer

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ashacherry/sales-analytics-system/internal/config"
	"github.com/ashacherry/sales-analytics-system/internal/logger"
	"github.com/ashacherry/sales-analytics-system/internal/types"
	"github.com/ashacherry/sales-analytics-system/internal/validation"
)

// stubLineSource returns canned lines or a canned error.
type stubLineSource struct {
	lines     []string
	discarded int
	err       error
}

func (s stubLineSource) ReadLines(string) ([]string, int, error) {
	return s.lines, s.discarded, s.err
}

// stubCatalog returns a fixed catalog without any network access.
type stubCatalog struct {
	entries []types.CatalogEntry
	calls   int
}

func (s *stubCatalog) FetchAll(context.Context) []types.CatalogEntry {
	s.calls++
	return s.entries
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()

	cfg := config.Default()
	cfg.DataFile = filepath.Join(dir, "sales_data.txt")
	cfg.OutputDir = filepath.Join(dir, "output")
	cfg.InputArchiveDir = filepath.Join(dir, "archive")
	cfg.ReportNameFormat = "report"
	cfg.EnrichedNameFormat = "enriched"
	return cfg
}

func newTestAnalyzer(t *testing.T, cfg *config.Config, filters validation.Filters) *Analyzer {
	t.Helper()
	a := New(cfg, filters, logger.NewWithWriter(io.Discard))
	a.Source = stubLineSource{
		lines: []string{
			"T001|2024-01-05|P101|Laptop|2|50000|C001|North",
			"T002|2024-01-05|P102|Mouse|3|500|C002|South",
			"not a record",
			"T003|2024-01-06|P999|Webcam|1|2000|C003|North",
		},
		discarded: 1,
	}
	a.Catalog = &stubCatalog{entries: []types.CatalogEntry{
		{ID: 101, Title: "Thin Laptop", Category: "computers", Brand: "Acme", Rating: 4.2},
	}}
	return a
}

func TestAnalyzer_Run(t *testing.T) {
	cfg := testConfig(t)
	a := newTestAnalyzer(t, cfg, validation.Filters{})

	result := a.Run(context.Background())
	if !result.Success {
		t.Fatalf("Run() failed: %v", result.Error)
	}

	s := result.Stats
	if s.LinesRead != 4 || s.ReadDiscarded != 1 {
		t.Errorf("read stats = %+v, want 4 lines, 1 discarded", s)
	}
	if s.Parsed != 3 || s.ParseRejected != 1 {
		t.Errorf("parse stats = %+v, want 3 parsed, 1 rejected", s)
	}
	if s.Parsed+s.ParseRejected != s.LinesRead {
		t.Errorf("parsed (%d) + rejected (%d) != lines read (%d)", s.Parsed, s.ParseRejected, s.LinesRead)
	}
	if s.FinalCount != 3 {
		t.Errorf("FinalCount = %d, want 3", s.FinalCount)
	}
	if s.CatalogEntries != 1 || s.Matched != 1 {
		t.Errorf("enrichment stats = %+v, want 1 catalog entry, 1 match", s)
	}

	// Both output files land in the output directory.
	for _, path := range []string{result.ReportPath, result.EnrichedPath} {
		if _, err := os.Stat(path); err != nil {
			t.Errorf("output file %s missing: %v", path, err)
		}
	}

	data, err := os.ReadFile(result.EnrichedPath)
	if err != nil {
		t.Fatalf("reading enriched data: %v", err)
	}
	if !strings.Contains(string(data), "T001|2024-01-05|P101|Laptop|2|50000|C001|North|computers|Acme|4.2|True") {
		t.Errorf("enriched data missing the matched record:\n%s", data)
	}
}

func TestAnalyzer_Run_WithFilters(t *testing.T) {
	cfg := testConfig(t)
	a := newTestAnalyzer(t, cfg, validation.Filters{Region: "north"})

	result := a.Run(context.Background())
	if !result.Success {
		t.Fatalf("Run() failed: %v", result.Error)
	}

	if result.Stats.FilteredByRegion != 1 {
		t.Errorf("FilteredByRegion = %d, want 1", result.Stats.FilteredByRegion)
	}
	if result.Stats.FinalCount != 2 {
		t.Errorf("FinalCount = %d, want 2", result.Stats.FinalCount)
	}
}

func TestAnalyzer_Run_ReadErrorStopsPipeline(t *testing.T) {
	cfg := testConfig(t)
	a := newTestAnalyzer(t, cfg, validation.Filters{})

	readErr := errors.New("disk on fire")
	a.Source = stubLineSource{err: readErr}
	catalog := &stubCatalog{}
	a.Catalog = catalog

	result := a.Run(context.Background())
	if result.Success {
		t.Fatal("Run() succeeded despite a read error")
	}
	if !errors.Is(result.Error, readErr) {
		t.Errorf("error = %v, want wrapped read error", result.Error)
	}
	if catalog.calls != 0 {
		t.Error("catalog was fetched after a fatal read error")
	}
	if result.ReportPath != "" {
		if _, err := os.Stat(result.ReportPath); err == nil {
			t.Error("report was written despite a fatal read error")
		}
	}
}

func TestAnalyzer_Run_EmptyCatalogIsNotAnError(t *testing.T) {
	cfg := testConfig(t)
	a := newTestAnalyzer(t, cfg, validation.Filters{})
	a.Catalog = &stubCatalog{}

	result := a.Run(context.Background())
	if !result.Success {
		t.Fatalf("Run() failed on empty catalog: %v", result.Error)
	}
	if result.Stats.Matched != 0 {
		t.Errorf("Matched = %d, want 0", result.Stats.Matched)
	}
}

func TestAnalyzer_Run_EnrichDisabledSkipsCatalog(t *testing.T) {
	cfg := testConfig(t)
	a := newTestAnalyzer(t, cfg, validation.Filters{})
	catalog := &stubCatalog{}
	a.Catalog = catalog
	a.Enrich = false

	result := a.Run(context.Background())
	if !result.Success {
		t.Fatalf("Run() failed: %v", result.Error)
	}
	if catalog.calls != 0 {
		t.Error("catalog was fetched with enrichment disabled")
	}
}

func TestAnalyzer_Run_ArchivesInputOnSuccess(t *testing.T) {
	cfg := testConfig(t)
	cfg.ArchiveOnSuccess = true
	if err := os.WriteFile(cfg.DataFile, []byte("header\n"), 0644); err != nil {
		t.Fatalf("writing data file: %v", err)
	}

	a := newTestAnalyzer(t, cfg, validation.Filters{})
	result := a.Run(context.Background())
	if !result.Success {
		t.Fatalf("Run() failed: %v", result.Error)
	}

	if result.ArchivedPath == "" {
		t.Fatal("ArchivedPath empty, want archived file path")
	}
	if _, err := os.Stat(result.ArchivedPath); err != nil {
		t.Errorf("archived file missing: %v", err)
	}
	if _, err := os.Stat(cfg.DataFile); !os.IsNotExist(err) {
		t.Error("original data file still present after archival")
	}
}

func TestAnalyzer_SetFilters(t *testing.T) {
	cfg := testConfig(t)
	a := newTestAnalyzer(t, cfg, validation.Filters{})
	a.SetFilters(validation.Filters{Region: "South"})

	result := a.Run(context.Background())
	if !result.Success {
		t.Fatalf("Run() failed: %v", result.Error)
	}
	if result.Stats.FinalCount != 1 {
		t.Errorf("FinalCount = %d, want 1 South transaction", result.Stats.FinalCount)
	}
}
