package analytics

import (
	"sort"

	"github.com/ashacherry/sales-analytics-system/internal/types"
)

// Defaults for the product rankings.
const (
	DefaultTopProducts  = 5
	DefaultLowThreshold = 10
)

// ProductStat is the per-product sales aggregate.
type ProductStat struct {
	Name          string
	TotalQuantity int
	TotalRevenue  float64
}

// groupByProduct accumulates quantity and revenue per product name,
// preserving first-seen order. Revenue is rounded at the end.
func groupByProduct(transactions []types.Transaction) []ProductStat {
	index := make(map[string]int)
	var stats []ProductStat

	for _, t := range transactions {
		i, ok := index[t.ProductName]
		if !ok {
			i = len(stats)
			index[t.ProductName] = i
			stats = append(stats, ProductStat{Name: t.ProductName})
		}
		stats[i].TotalQuantity += t.Quantity
		stats[i].TotalRevenue += t.Amount()
	}

	for i := range stats {
		stats[i].TotalRevenue = round2(stats[i].TotalRevenue)
	}

	return stats
}

// TopProducts returns the first n products by total quantity sold,
// descending. Ties keep first-seen order. n <= 0 falls back to the default.
func TopProducts(transactions []types.Transaction, n int) []ProductStat {
	if n <= 0 {
		n = DefaultTopProducts
	}

	stats := groupByProduct(transactions)
	sort.SliceStable(stats, func(a, b int) bool {
		return stats[a].TotalQuantity > stats[b].TotalQuantity
	})

	if len(stats) > n {
		stats = stats[:n]
	}
	return stats
}

// LowProducts returns every product whose total quantity is strictly below
// the threshold, sorted by quantity ascending. Ties keep first-seen order.
// threshold <= 0 falls back to the default.
func LowProducts(transactions []types.Transaction, threshold int) []ProductStat {
	if threshold <= 0 {
		threshold = DefaultLowThreshold
	}

	stats := groupByProduct(transactions)

	low := stats[:0:0]
	for _, s := range stats {
		if s.TotalQuantity < threshold {
			low = append(low, s)
		}
	}

	sort.SliceStable(low, func(a, b int) bool {
		return low[a].TotalQuantity < low[b].TotalQuantity
	})

	return low
}
