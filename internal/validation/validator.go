// =============================================================================
// Sales Analytics System - Validation and Filtering
// =============================================================================
//
// This module partitions parsed transactions into valid/invalid by the fixed
// business gate, then applies optional region and amount filters with
// cumulative counts.
//
// VALIDATION STRATEGY:
//   The gate re-checks predicates the parser already enforced. That is
//   deliberate: the validator accepts transactions from any source, not just
//   the parser, and the gate is the single authority on what "valid" means.
//   A record failing several predicates at once still increments the
//   invalid counter exactly once.
//
// FILTER PIPELINE (fixed order, applied to the already-valid set):
//   1. region  - case-insensitive equality
//   2. amount  - inclusive bounds on quantity * unit_price; either bound
//                may be absent, meaning unbounded on that side
//
// =============================================================================

package validation

import (
	"sort"
	"strings"

	"github.com/ashacherry/sales-analytics-system/internal/types"
)

// =============================================================================
// FILTER TYPES
// =============================================================================

// Filters holds the optional filter parameters. A nil amount bound means
// unbounded on that side; an empty Region means no region filter.
type Filters struct {
	Region    string
	MinAmount *float64
	MaxAmount *float64
}

// Summary reports the cumulative effect of validation and filtering.
type Summary struct {
	TotalInput       int
	Invalid          int
	FilteredByRegion int
	FilteredByAmount int
	FinalCount       int
}

// Options describes the filterable shape of the valid set: the sorted
// distinct regions and the observed amount range. It is display data, not a
// gate. HasAmounts is false when the valid set is empty, in which case the
// range fields are meaningless and must not be shown.
type Options struct {
	Regions    []string
	MinAmount  float64
	MaxAmount  float64
	HasAmounts bool
}

// =============================================================================
// VALIDATION GATE
// =============================================================================

// isValid applies the five-predicate gate. All predicates must hold.
func isValid(t types.Transaction) bool {
	return t.Quantity > 0 &&
		t.UnitPrice > 0 &&
		strings.HasPrefix(t.TransactionID, "T") &&
		strings.HasPrefix(t.ProductID, "P") &&
		strings.HasPrefix(t.CustomerID, "C")
}

// Validate partitions transactions into the valid set and an invalid count.
// Input order is preserved.
func Validate(transactions []types.Transaction) ([]types.Transaction, int) {
	valid := make([]types.Transaction, 0, len(transactions))
	invalid := 0

	for _, t := range transactions {
		if !isValid(t) {
			invalid++
			continue
		}
		valid = append(valid, t)
	}

	return valid, invalid
}

// =============================================================================
// FILTER OPTIONS DISPLAY
// =============================================================================

// DescribeOptions computes the sorted distinct regions and min/max amount
// across the valid subset of the given transactions. An empty valid set
// yields HasAmounts=false rather than an error.
func DescribeOptions(transactions []types.Transaction) Options {
	valid, _ := Validate(transactions)

	seen := make(map[string]bool)
	var regions []string
	opts := Options{}

	for i, t := range valid {
		if !seen[t.Region] {
			seen[t.Region] = true
			regions = append(regions, t.Region)
		}

		amount := t.Amount()
		if i == 0 {
			opts.MinAmount = amount
			opts.MaxAmount = amount
			opts.HasAmounts = true
			continue
		}
		if amount < opts.MinAmount {
			opts.MinAmount = amount
		}
		if amount > opts.MaxAmount {
			opts.MaxAmount = amount
		}
	}

	sort.Strings(regions)
	opts.Regions = regions
	return opts
}

// =============================================================================
// MAIN ENTRY POINT
// =============================================================================

// Apply validates the transactions and applies the supplied filters in fixed
// order. It returns the filtered set, the invalid count, and a summary with
// cumulative counters.
func Apply(transactions []types.Transaction, filters Filters) ([]types.Transaction, int, Summary) {
	summary := Summary{TotalInput: len(transactions)}

	filtered, invalid := Validate(transactions)
	summary.Invalid = invalid

	if filters.Region != "" {
		before := len(filtered)
		kept := filtered[:0:0]
		for _, t := range filtered {
			if strings.EqualFold(t.Region, filters.Region) {
				kept = append(kept, t)
			}
		}
		filtered = kept
		summary.FilteredByRegion = before - len(filtered)
	}

	if filters.MinAmount != nil || filters.MaxAmount != nil {
		before := len(filtered)
		kept := filtered[:0:0]
		for _, t := range filtered {
			amount := t.Amount()
			if filters.MinAmount != nil && amount < *filters.MinAmount {
				continue
			}
			if filters.MaxAmount != nil && amount > *filters.MaxAmount {
				continue
			}
			kept = append(kept, t)
		}
		filtered = kept
		summary.FilteredByAmount = before - len(filtered)
	}

	summary.FinalCount = len(filtered)
	return filtered, invalid, summary
}
