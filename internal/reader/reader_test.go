package reader

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

// writeDataFile writes raw bytes to a temp file and returns its path.
func writeDataFile(t *testing.T, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sales_data.txt")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("writing test file: %v", err)
	}
	return path
}

func TestReadLines(t *testing.T) {
	content := "TransactionID|Date|ProductID|ProductName|Quantity|UnitPrice|CustomerID|Region\n" +
		"T001|2024-01-05|P101|Laptop|2|50000|C001|North\n" +
		"\n" +
		"T002|2024-01-06|P102|Mouse|3|500|C002|South\n" +
		"   \n"

	lines, discarded, err := ReadLines(writeDataFile(t, []byte(content)))
	if err != nil {
		t.Fatalf("ReadLines() error: %v", err)
	}

	want := []string{
		"T001|2024-01-05|P101|Laptop|2|50000|C001|North",
		"T002|2024-01-06|P102|Mouse|3|500|C002|South",
	}
	if !reflect.DeepEqual(lines, want) {
		t.Errorf("lines = %v, want %v", lines, want)
	}
	if discarded != 2 {
		t.Errorf("discarded = %d, want 2 blank lines", discarded)
	}
}

func TestReadLines_CRLF(t *testing.T) {
	content := "header\r\nT001|2024-01-05|P101|Laptop|2|50000|C001|North\r\n"

	lines, _, err := ReadLines(writeDataFile(t, []byte(content)))
	if err != nil {
		t.Fatalf("ReadLines() error: %v", err)
	}
	if len(lines) != 1 || lines[0] != "T001|2024-01-05|P101|Laptop|2|50000|C001|North" {
		t.Errorf("lines = %v, want CRLF endings stripped", lines)
	}
}

func TestReadLines_HeaderOnly(t *testing.T) {
	lines, discarded, err := ReadLines(writeDataFile(t, []byte("header\n")))
	if err != nil {
		t.Fatalf("ReadLines() error: %v", err)
	}
	if len(lines) != 0 || discarded != 0 {
		t.Errorf("lines = %v, discarded = %d; want nothing", lines, discarded)
	}
}

func TestReadLines_NotFound(t *testing.T) {
	_, _, err := ReadLines(filepath.Join(t.TempDir(), "missing.txt"))
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}

func TestReadLines_Latin1Fallback(t *testing.T) {
	// 0xE9 is 'é' in ISO-8859-1 and invalid as a standalone UTF-8 byte.
	content := []byte("header\nT001|2024-01-05|P101|Caf\xe9 Set|2|500|C001|North\n")

	lines, _, err := ReadLines(writeDataFile(t, content))
	if err != nil {
		t.Fatalf("ReadLines() error: %v", err)
	}
	if len(lines) != 1 {
		t.Fatalf("lines = %d, want 1", len(lines))
	}
	if lines[0] != "T001|2024-01-05|P101|Café Set|2|500|C001|North" {
		t.Errorf("line = %q, want latin-1 decoded text", lines[0])
	}
}

func TestDecode_UTF8Passthrough(t *testing.T) {
	text, err := decode([]byte("plain utf-8 with ₹ glyph"))
	if err != nil {
		t.Fatalf("decode() error: %v", err)
	}
	if text != "plain utf-8 with ₹ glyph" {
		t.Errorf("decode() = %q, want input unchanged", text)
	}
}

func TestSplitLines(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty", "", nil},
		{"single newline", "\n", nil},
		{"trailing newline", "a\nb\n", []string{"a", "b"}},
		{"no trailing newline", "a\nb", []string{"a", "b"}},
		{"crlf", "a\r\nb\r\n", []string{"a", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := splitLines(tt.input); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("splitLines(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
