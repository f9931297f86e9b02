// =============================================================================
// Sales Analytics System - Enriched Data File
// =============================================================================
//
// The enriched data file is pipe-delimited: one header line, then one line
// per transaction. Absent optional fields serialize as empty strings; the
// match flag serializes as literal "True"/"False". ParseEnrichedLine is the
// exact inverse for the eight base fields, which is what the round-trip
// tests rely on.
//
// =============================================================================

package report

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/ashacherry/sales-analytics-system/internal/types"
)

// EnrichedHeader is the first line of the enriched data file.
const EnrichedHeader = "TransactionID|Date|ProductID|ProductName|Quantity|UnitPrice|CustomerID|Region|API_Category|API_Brand|API_Rating|API_Match"

const enrichedFieldCount = 12

// FormatEnrichedLine serializes one enriched transaction.
func FormatEnrichedLine(e types.EnrichedTransaction) string {
	category, brand, rating := "", "", ""
	if e.APICategory != nil {
		category = *e.APICategory
	}
	if e.APIBrand != nil {
		brand = *e.APIBrand
	}
	if e.APIRating != nil {
		rating = strconv.FormatFloat(*e.APIRating, 'f', -1, 64)
	}

	match := "False"
	if e.APIMatch {
		match = "True"
	}

	return strings.Join([]string{
		e.TransactionID,
		e.Date,
		e.ProductID,
		e.ProductName,
		strconv.Itoa(e.Quantity),
		strconv.FormatFloat(e.UnitPrice, 'f', -1, 64),
		e.CustomerID,
		e.Region,
		category,
		brand,
		rating,
		match,
	}, "|")
}

// ParseEnrichedLine parses one enriched data line back into a transaction.
// It recovers all eight base fields exactly as written.
func ParseEnrichedLine(line string) (types.EnrichedTransaction, error) {
	parts := strings.Split(line, "|")
	if len(parts) != enrichedFieldCount {
		return types.EnrichedTransaction{}, fmt.Errorf("expected %d fields, got %d", enrichedFieldCount, len(parts))
	}

	quantity, err := strconv.Atoi(parts[4])
	if err != nil {
		return types.EnrichedTransaction{}, fmt.Errorf("invalid quantity %q: %w", parts[4], err)
	}
	unitPrice, err := strconv.ParseFloat(parts[5], 64)
	if err != nil {
		return types.EnrichedTransaction{}, fmt.Errorf("invalid unit price %q: %w", parts[5], err)
	}

	e := types.EnrichedTransaction{
		Transaction: types.Transaction{
			TransactionID: parts[0],
			Date:          parts[1],
			ProductID:     parts[2],
			ProductName:   parts[3],
			Quantity:      quantity,
			UnitPrice:     unitPrice,
			CustomerID:    parts[6],
			Region:        parts[7],
		},
		APIMatch: parts[11] == "True",
	}

	if parts[8] != "" {
		category := parts[8]
		e.APICategory = &category
	}
	if parts[9] != "" {
		brand := parts[9]
		e.APIBrand = &brand
	}
	if parts[10] != "" {
		rating, err := strconv.ParseFloat(parts[10], 64)
		if err != nil {
			return types.EnrichedTransaction{}, fmt.Errorf("invalid rating %q: %w", parts[10], err)
		}
		e.APIRating = &rating
	}

	return e, nil
}

// WriteEnrichedData writes the header and all enriched transactions to w.
func WriteEnrichedData(w io.Writer, enriched []types.EnrichedTransaction) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, EnrichedHeader)
	for _, e := range enriched {
		fmt.Fprintln(bw, FormatEnrichedLine(e))
	}

	return bw.Flush()
}

// SaveEnrichedData writes the enriched data file, replacing any previous
// content.
func SaveEnrichedData(path string, enriched []types.EnrichedTransaction) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create enriched data file: %w", err)
	}
	defer f.Close()

	if err := WriteEnrichedData(f, enriched); err != nil {
		return fmt.Errorf("failed to write enriched data: %w", err)
	}
	return nil
}
