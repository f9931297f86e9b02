// =============================================================================
// Sales Analytics System - XLSX Workbook Export
// =============================================================================
//
// Optional export of the run as an Excel workbook: one sheet for the
// enriched transactions and one per aggregate. Each sheet has a header row
// followed by data rows; cells keep their native types so spreadsheet
// consumers can sort and sum them.
//
// =============================================================================

package report

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// SaveWorkbook writes the run as an XLSX workbook at path.
func SaveWorkbook(path string, data *ReportData) error {
	f := excelize.NewFile()
	defer f.Close()

	// The default sheet becomes the transactions sheet.
	if err := f.SetSheetName("Sheet1", "Transactions"); err != nil {
		return fmt.Errorf("failed to rename default sheet: %w", err)
	}

	if err := writeTransactionsSheet(f, data); err != nil {
		return err
	}
	if err := writeRegionsSheet(f, data); err != nil {
		return err
	}
	if err := writeProductsSheet(f, data); err != nil {
		return err
	}
	if err := writeCustomersSheet(f, data); err != nil {
		return err
	}
	if err := writeDailySheet(f, data); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

// writeRow writes one row of values starting at column A.
func writeRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return fmt.Errorf("failed to compute cell name: %w", err)
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("failed to write row %d on %s: %w", row, sheet, err)
	}
	return nil
}

func writeTransactionsSheet(f *excelize.File, data *ReportData) error {
	const sheet = "Transactions"

	header := []interface{}{
		"TransactionID", "Date", "ProductID", "ProductName", "Quantity",
		"UnitPrice", "CustomerID", "Region", "API_Category", "API_Brand",
		"API_Rating", "API_Match",
	}
	if err := writeRow(f, sheet, 1, header); err != nil {
		return err
	}

	for i, e := range data.Enriched {
		var category, brand interface{}
		var rating interface{}
		if e.APICategory != nil {
			category = *e.APICategory
		}
		if e.APIBrand != nil {
			brand = *e.APIBrand
		}
		if e.APIRating != nil {
			rating = *e.APIRating
		}

		row := []interface{}{
			e.TransactionID, e.Date, e.ProductID, e.ProductName, e.Quantity,
			e.UnitPrice, e.CustomerID, e.Region, category, brand, rating,
			e.APIMatch,
		}
		if err := writeRow(f, sheet, i+2, row); err != nil {
			return err
		}
	}
	return nil
}

func writeRegionsSheet(f *excelize.File, data *ReportData) error {
	const sheet = "Regions"
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("failed to create sheet %s: %w", sheet, err)
	}

	if err := writeRow(f, sheet, 1, []interface{}{"Region", "TotalSales", "TransactionCount", "Percentage"}); err != nil {
		return err
	}
	for i, r := range data.Regions {
		if err := writeRow(f, sheet, i+2, []interface{}{r.Region, r.TotalSales, r.TransactionCount, r.Percentage}); err != nil {
			return err
		}
	}
	return nil
}

func writeProductsSheet(f *excelize.File, data *ReportData) error {
	const sheet = "Products"
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("failed to create sheet %s: %w", sheet, err)
	}

	if err := writeRow(f, sheet, 1, []interface{}{"Ranking", "ProductName", "TotalQuantity", "TotalRevenue"}); err != nil {
		return err
	}

	row := 2
	for _, p := range data.TopProducts {
		if err := writeRow(f, sheet, row, []interface{}{"top", p.Name, p.TotalQuantity, p.TotalRevenue}); err != nil {
			return err
		}
		row++
	}
	for _, p := range data.LowProducts {
		if err := writeRow(f, sheet, row, []interface{}{"low", p.Name, p.TotalQuantity, p.TotalRevenue}); err != nil {
			return err
		}
		row++
	}
	return nil
}

func writeCustomersSheet(f *excelize.File, data *ReportData) error {
	const sheet = "Customers"
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("failed to create sheet %s: %w", sheet, err)
	}

	if err := writeRow(f, sheet, 1, []interface{}{"CustomerID", "TotalSpent", "PurchaseCount", "AvgOrderValue", "ProductsBought"}); err != nil {
		return err
	}
	for i, c := range data.Customers {
		row := []interface{}{
			c.CustomerID, c.TotalSpent, c.PurchaseCount, c.AvgOrderValue,
			strings.Join(c.ProductsBought, ", "),
		}
		if err := writeRow(f, sheet, i+2, row); err != nil {
			return err
		}
	}
	return nil
}

func writeDailySheet(f *excelize.File, data *ReportData) error {
	const sheet = "Daily Trend"
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("failed to create sheet %s: %w", sheet, err)
	}

	if err := writeRow(f, sheet, 1, []interface{}{"Date", "Revenue", "TransactionCount", "UniqueCustomers"}); err != nil {
		return err
	}
	for i, d := range data.DailyTrend {
		if err := writeRow(f, sheet, i+2, []interface{}{d.Date, d.Revenue, d.TransactionCount, d.UniqueCustomers}); err != nil {
			return err
		}
	}
	return nil
}
