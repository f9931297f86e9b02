package analytics

import (
	"sort"

	"github.com/ashacherry/sales-analytics-system/internal/types"
)

// CustomerStat is the per-customer purchase aggregate.
type CustomerStat struct {
	CustomerID    string
	TotalSpent    float64
	PurchaseCount int
	AvgOrderValue float64

	// ProductsBought is the lexicographically sorted set of distinct product
	// names this customer purchased.
	ProductsBought []string
}

// CustomerStats groups transactions by customer, accumulating spend, purchase
// count, and the set of distinct products bought. The result is sorted by
// total spent descending; ties keep first-seen order.
func CustomerStats(transactions []types.Transaction) []CustomerStat {
	index := make(map[string]int)
	products := make(map[string]map[string]bool)
	var stats []CustomerStat

	for _, t := range transactions {
		i, ok := index[t.CustomerID]
		if !ok {
			i = len(stats)
			index[t.CustomerID] = i
			products[t.CustomerID] = make(map[string]bool)
			stats = append(stats, CustomerStat{CustomerID: t.CustomerID})
		}

		stats[i].TotalSpent += t.Amount()
		stats[i].PurchaseCount++
		products[t.CustomerID][t.ProductName] = true
	}

	for i := range stats {
		// PurchaseCount is incremented alongside TotalSpent, so zero should
		// not occur; guard anyway rather than divide by zero.
		if stats[i].PurchaseCount > 0 {
			stats[i].AvgOrderValue = round2(stats[i].TotalSpent / float64(stats[i].PurchaseCount))
		}
		stats[i].TotalSpent = round2(stats[i].TotalSpent)

		bought := make([]string, 0, len(products[stats[i].CustomerID]))
		for name := range products[stats[i].CustomerID] {
			bought = append(bought, name)
		}
		sort.Strings(bought)
		stats[i].ProductsBought = bought
	}

	sort.SliceStable(stats, func(a, b int) bool {
		return stats[a].TotalSpent > stats[b].TotalSpent
	})

	return stats
}
