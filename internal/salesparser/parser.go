// =============================================================================
// Sales Analytics System - Record Parser
// =============================================================================
//
// This module turns one raw pipe-delimited line into a structured Transaction
// or rejects it with a reason. Rejection reasons fall into three categories:
//   - wrong field count
//   - numeric parse failure (quantity / unit price)
//   - format rule violation (ID prefix, empty field, non-positive number)
//
// The original raw line text is retained on every rejection so the caller
// can aggregate a verbatim discard report. The parser keeps no state; the
// caller owns all counting.
//
// =============================================================================

package salesparser

import (
	"strconv"
	"strings"

	"github.com/ashacherry/sales-analytics-system/internal/types"
)

// fieldCount is the exact number of pipe-delimited fields per record:
// TransactionID|Date|ProductID|ProductName|Quantity|UnitPrice|CustomerID|Region
const fieldCount = 8

// =============================================================================
// REJECTION TYPES
// =============================================================================

// RejectReason classifies why a raw line was discarded.
type RejectReason int

const (
	// ReasonFieldCount means the line did not split into exactly 8 fields.
	ReasonFieldCount RejectReason = iota

	// ReasonNumericParse means quantity or unit price failed to parse.
	ReasonNumericParse

	// ReasonFormatRule means a parsed field violated a format rule
	// (ID prefix, empty required field, non-positive number).
	ReasonFormatRule
)

// String returns the human-readable reason used in the discard report.
func (r RejectReason) String() string {
	switch r {
	case ReasonFieldCount:
		return "malformed field count"
	case ReasonNumericParse:
		return "numeric parse failure"
	case ReasonFormatRule:
		return "format rule violation"
	default:
		return "unknown"
	}
}

// Rejection records a discarded line together with its reason. Line is the
// original raw text, not a reconstructed or partial record.
type Rejection struct {
	Line   string
	Reason RejectReason
}

// =============================================================================
// PARSER FUNCTIONS
// =============================================================================

// ParseLine parses one raw line (already stripped of surrounding whitespace
// and guaranteed non-empty by the caller) into a Transaction. On failure it
// returns a non-nil Rejection and the zero Transaction.
func ParseLine(line string) (types.Transaction, *Rejection) {
	parts := strings.Split(line, "|")
	if len(parts) != fieldCount {
		return types.Transaction{}, &Rejection{Line: line, Reason: ReasonFieldCount}
	}

	// Commas inside the product name are display noise; normalize them to
	// spaces before trimming.
	productName := strings.TrimSpace(strings.ReplaceAll(parts[3], ",", " "))

	// Quantity and unit price may carry thousands-separator commas.
	quantity, err := strconv.Atoi(stripCommas(parts[4]))
	if err != nil {
		return types.Transaction{}, &Rejection{Line: line, Reason: ReasonNumericParse}
	}
	unitPrice, err := strconv.ParseFloat(stripCommas(parts[5]), 64)
	if err != nil {
		return types.Transaction{}, &Rejection{Line: line, Reason: ReasonNumericParse}
	}

	txn := types.Transaction{
		TransactionID: strings.TrimSpace(parts[0]),
		Date:          strings.TrimSpace(parts[1]),
		ProductID:     strings.TrimSpace(parts[2]),
		ProductName:   productName,
		Quantity:      quantity,
		UnitPrice:     unitPrice,
		CustomerID:    strings.TrimSpace(parts[6]),
		Region:        strings.TrimSpace(parts[7]),
	}

	// Format rules. Prefix checks for ProductID/CustomerID belong to the
	// validation gate; the parser only enforces what makes a line unreadable
	// as a record.
	switch {
	case !strings.HasPrefix(txn.TransactionID, "T"):
		return types.Transaction{}, &Rejection{Line: line, Reason: ReasonFormatRule}
	case txn.CustomerID == "" || txn.Region == "":
		return types.Transaction{}, &Rejection{Line: line, Reason: ReasonFormatRule}
	case txn.Quantity <= 0:
		return types.Transaction{}, &Rejection{Line: line, Reason: ReasonFormatRule}
	case txn.UnitPrice <= 0:
		return types.Transaction{}, &Rejection{Line: line, Reason: ReasonFormatRule}
	}

	return txn, nil
}

// ParseLines parses a batch of raw lines. It returns the parsed transactions
// and the rejections in input order. For any input,
// len(parsed) + len(rejected) equals the number of non-blank lines seen.
func ParseLines(lines []string) ([]types.Transaction, []Rejection) {
	parsed := make([]types.Transaction, 0, len(lines))
	var rejected []Rejection

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		txn, rej := ParseLine(line)
		if rej != nil {
			rejected = append(rejected, *rej)
			continue
		}
		parsed = append(parsed, txn)
	}

	return parsed, rejected
}

// stripCommas removes thousands-separator commas and surrounding whitespace
// from a numeric field.
func stripCommas(s string) string {
	return strings.TrimSpace(strings.ReplaceAll(s, ",", ""))
}
