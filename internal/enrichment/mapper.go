// =============================================================================
// Sales Analytics System - Enrichment Mapper
// =============================================================================
//
// This module joins transactions to catalog entries by the numeric identifier
// embedded in the transaction's product code ("P101" -> 101). A miss, an
// empty product code, or an unparseable identifier leaves the enrichment
// fields at their defaults; enrichment never fails a transaction.
//
// =============================================================================

package enrichment

import (
	"strconv"
	"strings"

	"github.com/ashacherry/sales-analytics-system/internal/types"
)

// Mapping builds a lookup keyed by catalog id. Catalog data is only read,
// never mutated.
func Mapping(entries []types.CatalogEntry) map[int]types.CatalogEntry {
	mapping := make(map[int]types.CatalogEntry, len(entries))
	for _, e := range entries {
		mapping[e.ID] = e
	}
	return mapping
}

// numericID extracts the concatenated digit characters of a product code and
// parses them as an integer. ok is false when the code contains no digits or
// the digit string does not fit an int.
func numericID(productID string) (int, bool) {
	var digits strings.Builder
	for _, r := range productID {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	if digits.Len() == 0 {
		return 0, false
	}

	id, err := strconv.Atoi(digits.String())
	if err != nil {
		return 0, false
	}
	return id, true
}

// Enrich produces an enriched transaction for every input transaction. On a
// catalog hit the API fields are populated and APIMatch is set; otherwise the
// transaction is carried through with defaults. Enriching the same input with
// the same catalog always yields identical results.
func Enrich(transactions []types.Transaction, mapping map[int]types.CatalogEntry) []types.EnrichedTransaction {
	enriched := make([]types.EnrichedTransaction, 0, len(transactions))

	for _, t := range transactions {
		e := types.EnrichedTransaction{Transaction: t}

		if id, ok := numericID(t.ProductID); ok {
			if entry, found := mapping[id]; found {
				category := entry.Category
				brand := entry.Brand
				rating := entry.Rating

				e.APICategory = &category
				e.APIBrand = &brand
				e.APIRating = &rating
				e.APIMatch = true
			}
		}

		enriched = append(enriched, e)
	}

	return enriched
}

// MatchCount returns how many enriched transactions carry a catalog match.
func MatchCount(enriched []types.EnrichedTransaction) int {
	count := 0
	for _, e := range enriched {
		if e.APIMatch {
			count++
		}
	}
	return count
}
