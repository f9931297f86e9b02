package validation

import (
	"reflect"
	"testing"

	"github.com/ashacherry/sales-analytics-system/internal/types"
)

// txn builds a valid transaction with sensible defaults for tests.
func txn(id, productID, customerID, region string, qty int, price float64) types.Transaction {
	return types.Transaction{
		TransactionID: id,
		Date:          "2024-01-05",
		ProductID:     productID,
		ProductName:   "Widget",
		Quantity:      qty,
		UnitPrice:     price,
		CustomerID:    customerID,
		Region:        region,
	}
}

func floatPtr(v float64) *float64 { return &v }

func TestValidate_Gate(t *testing.T) {
	tests := []struct {
		name  string
		input types.Transaction
		valid bool
	}{
		{"all predicates hold", txn("T001", "P101", "C001", "North", 2, 500), true},
		{"zero quantity", txn("T002", "P101", "C001", "North", 0, 500), false},
		{"zero price", txn("T003", "P101", "C001", "North", 2, 0), false},
		{"bad transaction prefix", txn("X004", "P101", "C001", "North", 2, 500), false},
		{"bad product prefix", txn("T005", "X101", "C001", "North", 2, 500), false},
		{"bad customer prefix", txn("T006", "P101", "X001", "North", 2, 500), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			valid, invalid := Validate([]types.Transaction{tt.input})
			if tt.valid && (len(valid) != 1 || invalid != 0) {
				t.Errorf("Validate() = %d valid, %d invalid; want 1 valid", len(valid), invalid)
			}
			if !tt.valid && (len(valid) != 0 || invalid != 1) {
				t.Errorf("Validate() = %d valid, %d invalid; want 1 invalid", len(valid), invalid)
			}
		})
	}
}

// A record failing several predicates at once still counts as one invalid.
func TestValidate_NoDoubleCounting(t *testing.T) {
	bad := txn("X001", "X101", "X001", "North", 0, 0)

	_, invalid := Validate([]types.Transaction{bad})
	if invalid != 1 {
		t.Errorf("invalid = %d, want exactly 1 for a multiply-failing record", invalid)
	}
}

func TestDescribeOptions(t *testing.T) {
	transactions := []types.Transaction{
		txn("T001", "P101", "C001", "South", 2, 500),  // amount 1000
		txn("T002", "P102", "C002", "North", 1, 250),  // amount 250
		txn("T003", "P103", "C003", "South", 4, 1000), // amount 4000
		txn("X004", "P104", "C004", "Ignored", 1, 1),  // invalid, excluded
	}

	opts := DescribeOptions(transactions)

	if !reflect.DeepEqual(opts.Regions, []string{"North", "South"}) {
		t.Errorf("Regions = %v, want sorted distinct [North South]", opts.Regions)
	}
	if !opts.HasAmounts {
		t.Fatal("HasAmounts = false, want true")
	}
	if opts.MinAmount != 250 || opts.MaxAmount != 4000 {
		t.Errorf("amount range = %v - %v, want 250 - 4000", opts.MinAmount, opts.MaxAmount)
	}
}

func TestDescribeOptions_EmptyValidSet(t *testing.T) {
	opts := DescribeOptions(nil)
	if opts.HasAmounts {
		t.Error("HasAmounts = true for empty input, want false")
	}
	if len(opts.Regions) != 0 {
		t.Errorf("Regions = %v, want empty", opts.Regions)
	}
}

func TestApply_NoFilters(t *testing.T) {
	transactions := []types.Transaction{
		txn("T001", "P101", "C001", "North", 2, 500),
		txn("X002", "P102", "C002", "South", 1, 250),
	}

	filtered, invalid, summary := Apply(transactions, Filters{})

	if len(filtered) != 1 || invalid != 1 {
		t.Errorf("filtered = %d, invalid = %d; want 1, 1", len(filtered), invalid)
	}
	want := Summary{TotalInput: 2, Invalid: 1, FinalCount: 1}
	if summary != want {
		t.Errorf("summary = %+v, want %+v", summary, want)
	}
}

func TestApply_RegionFilterCaseInsensitive(t *testing.T) {
	transactions := []types.Transaction{
		txn("T001", "P101", "C001", "North", 2, 500),
		txn("T002", "P102", "C002", "South", 1, 250),
		txn("T003", "P103", "C003", "NORTH", 1, 100),
	}

	filtered, _, summary := Apply(transactions, Filters{Region: "north"})

	if len(filtered) != 2 {
		t.Fatalf("filtered = %d, want 2", len(filtered))
	}
	if summary.FilteredByRegion != 1 {
		t.Errorf("FilteredByRegion = %d, want 1", summary.FilteredByRegion)
	}
}

func TestApply_AmountFilter(t *testing.T) {
	transactions := []types.Transaction{
		txn("T001", "P101", "C001", "North", 1, 100),  // 100
		txn("T002", "P102", "C002", "North", 1, 500),  // 500
		txn("T003", "P103", "C003", "North", 1, 1000), // 1000
	}

	tests := []struct {
		name    string
		filters Filters
		wantIDs []string
	}{
		{
			name:    "min only",
			filters: Filters{MinAmount: floatPtr(500)},
			wantIDs: []string{"T002", "T003"},
		},
		{
			name:    "max only",
			filters: Filters{MaxAmount: floatPtr(500)},
			wantIDs: []string{"T001", "T002"},
		},
		{
			name:    "both bounds inclusive",
			filters: Filters{MinAmount: floatPtr(100), MaxAmount: floatPtr(1000)},
			wantIDs: []string{"T001", "T002", "T003"},
		},
		{
			name:    "empty window",
			filters: Filters{MinAmount: floatPtr(600), MaxAmount: floatPtr(900)},
			wantIDs: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filtered, _, summary := Apply(transactions, tt.filters)

			var ids []string
			for _, f := range filtered {
				ids = append(ids, f.TransactionID)
			}
			if !reflect.DeepEqual(ids, tt.wantIDs) {
				t.Errorf("kept = %v, want %v", ids, tt.wantIDs)
			}
			if summary.FilteredByAmount != len(transactions)-len(tt.wantIDs) {
				t.Errorf("FilteredByAmount = %d, want %d", summary.FilteredByAmount, len(transactions)-len(tt.wantIDs))
			}
		})
	}
}

// Region filtering runs before amount filtering; the amount counter only
// sees what survived the region filter.
func TestApply_FilterOrder(t *testing.T) {
	transactions := []types.Transaction{
		txn("T001", "P101", "C001", "North", 1, 100),
		txn("T002", "P102", "C002", "South", 1, 100),
		txn("T003", "P103", "C003", "North", 1, 5000),
	}

	filtered, _, summary := Apply(transactions, Filters{
		Region:    "North",
		MaxAmount: floatPtr(1000),
	})

	if len(filtered) != 1 || filtered[0].TransactionID != "T001" {
		t.Fatalf("filtered = %v, want only T001", filtered)
	}
	if summary.FilteredByRegion != 1 {
		t.Errorf("FilteredByRegion = %d, want 1", summary.FilteredByRegion)
	}
	if summary.FilteredByAmount != 1 {
		t.Errorf("FilteredByAmount = %d, want 1 (T002 already removed by region)", summary.FilteredByAmount)
	}
}
