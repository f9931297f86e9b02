// =============================================================================
// Sales Analytics System - Aggregation Functions
// =============================================================================
//
// This package holds the descriptive aggregates: revenue total, region-wise
// sales, top/low products, customer analysis, daily trend, and peak day.
// Every function is a pure function of its input slice; nothing here keeps
// state, and the functions may run in any order.
//
// ORDERING POLICY:
//   Grouping preserves first-seen insertion order, and all sorts are stable,
//   so equal sort keys keep first-seen order. Dates sort lexicographically,
//   which is chronological for YYYY-MM-DD text.
//
// ROUNDING POLICY:
//   Monetary values are rounded half away from zero (math.Round) to two
//   decimals at the final step only, never per record.
//
// =============================================================================

package analytics

import (
	"math"

	"github.com/ashacherry/sales-analytics-system/internal/types"
)

// round2 rounds half away from zero to two decimal places.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// TotalRevenue sums quantity * unit_price over all transactions and rounds
// the final sum to two decimals.
func TotalRevenue(transactions []types.Transaction) float64 {
	total := 0.0
	for _, t := range transactions {
		total += t.Amount()
	}
	return round2(total)
}
