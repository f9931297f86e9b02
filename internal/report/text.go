package report

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Currency glyph used throughout the report.
const rupee = "₹"

// WriteTextReport renders the full plain-text report to w.
func WriteTextReport(w io.Writer, data *ReportData) error {
	bw := bufio.NewWriter(w)

	line := strings.Repeat("=", 60)
	rule := strings.Repeat("-", 40)

	fmt.Fprintln(bw, line)
	fmt.Fprintln(bw, "SALES ANALYTICS REPORT")
	fmt.Fprintln(bw, line)
	fmt.Fprintf(bw, "Generated : %s\n", data.Timestamp.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(bw, "Run ID    : %s\n\n", data.RunID)

	fmt.Fprintln(bw, "DISCARD SUMMARY")
	fmt.Fprintln(bw, rule)
	fmt.Fprintf(bw, "Read-level discarded     : %d\n", data.ReadDiscarded)
	fmt.Fprintf(bw, "Cleaning-level discarded : %d\n", len(data.Rejections))
	fmt.Fprintf(bw, "Validation-level invalid : %d\n\n", data.Summary.Invalid)

	if len(data.Rejections) > 0 {
		fmt.Fprintln(bw, "Discarded Records:")
		for _, rej := range data.Rejections {
			fmt.Fprintf(bw, "[%s] %s\n", rej.Reason, rej.Line)
		}
		fmt.Fprintln(bw)
	}

	fmt.Fprintln(bw, "VALIDATION SUMMARY")
	fmt.Fprintln(bw, rule)
	fmt.Fprintf(bw, "Total Input          : %d\n", data.Summary.TotalInput)
	fmt.Fprintf(bw, "Invalid Transactions : %d\n", data.Summary.Invalid)
	fmt.Fprintf(bw, "Filtered by Region   : %d\n", data.Summary.FilteredByRegion)
	fmt.Fprintf(bw, "Filtered by Amount   : %d\n", data.Summary.FilteredByAmount)
	fmt.Fprintf(bw, "Final Count          : %d\n\n", data.Summary.FinalCount)

	fmt.Fprintln(bw, "REVENUE SUMMARY")
	fmt.Fprintln(bw, rule)
	fmt.Fprintf(bw, "Total Revenue : %s%.2f\n\n", rupee, data.TotalRevenue)

	fmt.Fprintln(bw, "REGION-WISE SALES")
	fmt.Fprintln(bw, rule)
	for _, r := range data.Regions {
		fmt.Fprintf(bw, "%s: %s%.2f | Transactions: %d | Contribution: %.2f%%\n",
			r.Region, rupee, r.TotalSales, r.TransactionCount, r.Percentage)
	}
	fmt.Fprintln(bw)

	fmt.Fprintln(bw, "TOP SELLING PRODUCTS")
	fmt.Fprintln(bw, rule)
	for _, p := range data.TopProducts {
		fmt.Fprintf(bw, "%s | Qty: %d | Revenue: %s%.2f\n", p.Name, p.TotalQuantity, rupee, p.TotalRevenue)
	}
	fmt.Fprintln(bw)

	fmt.Fprintln(bw, "PEAK SALES DAY")
	fmt.Fprintln(bw, rule)
	if data.PeakDay.Date != "" {
		fmt.Fprintf(bw, "Date: %s | Revenue: %s%.2f | Transactions: %d\n\n",
			data.PeakDay.Date, rupee, data.PeakDay.Revenue, data.PeakDay.TransactionCount)
	} else {
		fmt.Fprintln(bw, "No sales data available.")
		fmt.Fprintln(bw)
	}

	fmt.Fprintln(bw, "LOW PERFORMING PRODUCTS")
	fmt.Fprintln(bw, rule)
	if len(data.LowProducts) == 0 {
		fmt.Fprintln(bw, "None.")
	}
	for _, p := range data.LowProducts {
		fmt.Fprintf(bw, "%s | Qty: %d | Revenue: %s%.2f\n", p.Name, p.TotalQuantity, rupee, p.TotalRevenue)
	}
	fmt.Fprintln(bw)

	fmt.Fprintln(bw, "CUSTOMER ANALYSIS")
	fmt.Fprintln(bw, rule)
	for _, c := range data.Customers {
		fmt.Fprintf(bw, "%s: Spent %s%.2f | Orders: %d | Avg: %s%.2f | Products: %s\n",
			c.CustomerID, rupee, c.TotalSpent, c.PurchaseCount, rupee, c.AvgOrderValue,
			strings.Join(c.ProductsBought, ", "))
	}
	fmt.Fprintln(bw)

	fmt.Fprintln(bw, "DAILY SALES TREND")
	fmt.Fprintln(bw, rule)
	for _, d := range data.DailyTrend {
		fmt.Fprintf(bw, "%s: %s%.2f | Transactions: %d | Unique Customers: %d\n",
			d.Date, rupee, d.Revenue, d.TransactionCount, d.UniqueCustomers)
	}
	fmt.Fprintln(bw)

	fmt.Fprintln(bw, "API ENRICHMENT SUMMARY")
	fmt.Fprintln(bw, rule)
	fmt.Fprintf(bw, "Matched Transactions : %d\n", data.MatchedCount)
	fmt.Fprintf(bw, "Total Transactions   : %d\n", len(data.Enriched))
	fmt.Fprintf(bw, "Coverage             : %.1f%%\n", data.Coverage())

	return bw.Flush()
}

// SaveTextReport writes the text report to a file, replacing any previous
// content.
func SaveTextReport(path string, data *ReportData) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}
	defer f.Close()

	if err := WriteTextReport(f, data); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
