package analytics

import (
	"sort"

	"github.com/ashacherry/sales-analytics-system/internal/types"
)

// DailyStat is the per-date sales aggregate.
type DailyStat struct {
	Date             string
	Revenue          float64
	TransactionCount int
	UniqueCustomers  int
}

// groupByDate accumulates revenue, counts, and distinct customers per date,
// preserving first-seen order. Revenue is rounded at the end.
func groupByDate(transactions []types.Transaction) []DailyStat {
	index := make(map[string]int)
	customers := make(map[string]map[string]bool)
	var stats []DailyStat

	for _, t := range transactions {
		i, ok := index[t.Date]
		if !ok {
			i = len(stats)
			index[t.Date] = i
			customers[t.Date] = make(map[string]bool)
			stats = append(stats, DailyStat{Date: t.Date})
		}

		stats[i].Revenue += t.Amount()
		stats[i].TransactionCount++
		customers[t.Date][t.CustomerID] = true
	}

	for i := range stats {
		stats[i].Revenue = round2(stats[i].Revenue)
		stats[i].UniqueCustomers = len(customers[stats[i].Date])
	}

	return stats
}

// DailyTrend returns the per-date aggregates sorted by date ascending.
func DailyTrend(transactions []types.Transaction) []DailyStat {
	stats := groupByDate(transactions)
	sort.SliceStable(stats, func(a, b int) bool {
		return stats[a].Date < stats[b].Date
	})
	return stats
}

// PeakDay returns the date with the greatest revenue. Ties break to the
// earliest date so repeated runs over the same data always agree. An empty
// input returns the zero DailyStat rather than failing.
func PeakDay(transactions []types.Transaction) DailyStat {
	stats := DailyTrend(transactions)

	var peak DailyStat
	for _, s := range stats {
		if s.Revenue > peak.Revenue {
			peak = s
		}
	}
	return peak
}
