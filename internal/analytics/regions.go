package analytics

import (
	"sort"

	"github.com/ashacherry/sales-analytics-system/internal/types"
)

// RegionStat is the per-region sales aggregate.
type RegionStat struct {
	Region           string
	TotalSales       float64
	TransactionCount int

	// Percentage is this region's share of the grand total, 0.0 when the
	// grand total is zero.
	Percentage float64
}

// RegionSales groups transactions by region, accumulating sales totals and
// counts. The result is sorted by total sales descending; regions with equal
// totals keep first-seen order.
func RegionSales(transactions []types.Transaction) []RegionStat {
	index := make(map[string]int)
	var stats []RegionStat
	grandTotal := 0.0

	for _, t := range transactions {
		i, ok := index[t.Region]
		if !ok {
			i = len(stats)
			index[t.Region] = i
			stats = append(stats, RegionStat{Region: t.Region})
		}

		amount := t.Amount()
		stats[i].TotalSales += amount
		stats[i].TransactionCount++
		grandTotal += amount
	}

	for i := range stats {
		if grandTotal > 0 {
			stats[i].Percentage = round2(stats[i].TotalSales / grandTotal * 100)
		}
		stats[i].TotalSales = round2(stats[i].TotalSales)
	}

	sort.SliceStable(stats, func(a, b int) bool {
		return stats[a].TotalSales > stats[b].TotalSales
	})

	return stats
}
