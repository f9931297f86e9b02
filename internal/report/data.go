// =============================================================================
// Sales Analytics System - Report Data
// =============================================================================
//
// ReportData is the structured result of one analysis run. The pipeline
// fills it in; the renderers in this package format it for the text report,
// the enriched data file, and the XLSX workbook. Keeping the result as a
// plain struct means any sink can render it without re-running the pipeline.
//
// =============================================================================

package report

import (
	"time"

	"github.com/ashacherry/sales-analytics-system/internal/analytics"
	"github.com/ashacherry/sales-analytics-system/internal/salesparser"
	"github.com/ashacherry/sales-analytics-system/internal/types"
	"github.com/ashacherry/sales-analytics-system/internal/validation"
)

// ReportData carries everything a renderer needs about one run.
type ReportData struct {
	RunID     string
	Timestamp time.Time

	// Discard accounting, one counter per pipeline stage.
	ReadDiscarded int
	Rejections    []salesparser.Rejection
	Summary       validation.Summary

	// Aggregates over the post-filter valid set.
	TotalRevenue float64
	Regions      []analytics.RegionStat
	TopProducts  []analytics.ProductStat
	LowProducts  []analytics.ProductStat
	Customers    []analytics.CustomerStat
	DailyTrend   []analytics.DailyStat
	PeakDay      analytics.DailyStat

	// Enrichment results.
	Enriched     []types.EnrichedTransaction
	MatchedCount int
}

// Coverage returns the enrichment match percentage, 0 when nothing was
// enriched.
func (d *ReportData) Coverage() float64 {
	if len(d.Enriched) == 0 {
		return 0
	}
	return float64(d.MatchedCount) / float64(len(d.Enriched)) * 100
}
