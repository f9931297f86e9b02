// =============================================================================
// Sales Analytics System - Shared Types
// =============================================================================
//
// This package contains shared types used across multiple modules to avoid
// import cycles. Types defined here are used by:
//   - salesparser
//   - validation
//   - analytics
//   - enrichment
//   - report
//
// =============================================================================

package types

// =============================================================================
// TRANSACTION TYPES
// =============================================================================

// Transaction is one sales record parsed from the pipe-delimited input file.
// A Transaction is immutable once parsed; enrichment produces a derived
// EnrichedTransaction rather than mutating the original.
type Transaction struct {
	// TransactionID is the record identifier. Valid IDs start with "T".
	TransactionID string

	// Date is the transaction date in YYYY-MM-DD form. It is kept as text
	// and compared lexicographically, which orders correctly for this format.
	Date string

	// ProductID is the product identifier. Valid IDs start with "P" and
	// carry an embedded numeric identifier (e.g. "P101" -> 101) used for
	// catalog enrichment.
	ProductID string

	// ProductName is the display name of the product. Commas are replaced
	// with spaces at parse time.
	ProductName string

	// Quantity is the number of units sold. Valid quantities are > 0.
	Quantity int

	// UnitPrice is the price per unit. Valid prices are > 0.
	UnitPrice float64

	// CustomerID is the customer identifier. Valid IDs start with "C".
	CustomerID string

	// Region is the sales region. Never empty on a valid record.
	Region string
}

// Amount returns the monetary value of the transaction. It is derived,
// never stored.
func (t Transaction) Amount() float64 {
	return float64(t.Quantity) * t.UnitPrice
}

// EnrichedTransaction is a Transaction plus the optional attributes joined
// from the external product catalog. The API fields are nil unless APIMatch
// is true.
type EnrichedTransaction struct {
	Transaction

	APICategory *string
	APIBrand    *string
	APIRating   *float64

	// APIMatch is true iff a catalog entry was joined to this transaction.
	APIMatch bool
}

// =============================================================================
// CATALOG TYPES
// =============================================================================

// CatalogEntry is one product record supplied by the external catalog
// provider. Entries are read-only input to the enrichment mapper.
type CatalogEntry struct {
	ID       int     `json:"id"`
	Title    string  `json:"title"`
	Category string  `json:"category"`
	Brand    string  `json:"brand"`
	Rating   float64 `json:"rating"`
}
