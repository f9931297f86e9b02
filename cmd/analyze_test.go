package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/ashacherry/sales-analytics-system/internal/validation"
)

func testOptions() validation.Options {
	return validation.Options{
		Regions:    []string{"East", "North", "South"},
		MinAmount:  250,
		MaxAmount:  100000,
		HasAmounts: true,
	}
}

func TestPromptFilters_Declined(t *testing.T) {
	in := strings.NewReader("n\n")
	var out bytes.Buffer

	filters, err := promptFilters(in, &out, testOptions())
	if err != nil {
		t.Fatalf("promptFilters() error: %v", err)
	}
	if filters.Region != "" || filters.MinAmount != nil || filters.MaxAmount != nil {
		t.Errorf("filters = %+v, want all unset", filters)
	}
}

func TestPromptFilters_AllValues(t *testing.T) {
	in := strings.NewReader("y\nNorth\n500\n2000\n")
	var out bytes.Buffer

	filters, err := promptFilters(in, &out, testOptions())
	if err != nil {
		t.Fatalf("promptFilters() error: %v", err)
	}

	if filters.Region != "North" {
		t.Errorf("Region = %q, want North", filters.Region)
	}
	if filters.MinAmount == nil || *filters.MinAmount != 500 {
		t.Errorf("MinAmount = %v, want 500", filters.MinAmount)
	}
	if filters.MaxAmount == nil || *filters.MaxAmount != 2000 {
		t.Errorf("MaxAmount = %v, want 2000", filters.MaxAmount)
	}

	// The prompt shows the filterable shape of the data.
	shown := out.String()
	if !strings.Contains(shown, "Available regions: East, North, South") {
		t.Errorf("prompt missing region list:\n%s", shown)
	}
	if !strings.Contains(shown, "Amount range: 250.00 - 100000.00") {
		t.Errorf("prompt missing amount range:\n%s", shown)
	}
}

func TestPromptFilters_EmptyAnswersSkipFilters(t *testing.T) {
	in := strings.NewReader("yes\n\n\n\n")
	var out bytes.Buffer

	filters, err := promptFilters(in, &out, testOptions())
	if err != nil {
		t.Fatalf("promptFilters() error: %v", err)
	}
	if filters.Region != "" || filters.MinAmount != nil || filters.MaxAmount != nil {
		t.Errorf("filters = %+v, want all unset on empty answers", filters)
	}
}

func TestPromptFilters_InvalidAmount(t *testing.T) {
	in := strings.NewReader("y\nNorth\nlots\n")
	var out bytes.Buffer

	if _, err := promptFilters(in, &out, testOptions()); err == nil {
		t.Error("promptFilters() accepted a non-numeric amount, want error")
	}
}

func TestPromptFilters_EOFDeclines(t *testing.T) {
	in := strings.NewReader("")
	var out bytes.Buffer

	filters, err := promptFilters(in, &out, testOptions())
	if err != nil {
		t.Fatalf("promptFilters() error: %v", err)
	}
	if filters.Region != "" || filters.MinAmount != nil {
		t.Errorf("filters = %+v, want unset on EOF", filters)
	}
}
