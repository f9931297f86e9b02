// =============================================================================
// Sales Analytics System - Line Source
// =============================================================================
//
// This module reads the raw sales data file and yields decoded text lines.
// It handles:
//   - Encoding fallback: UTF-8 first, then ISO-8859-1 (latin-1), then
//     Windows-1252, via golang.org/x/text decoders
//   - Header removal (the first line is always the column header)
//   - Blank line removal, with a count of how many were dropped
//
// Failure modes are kept distinct so the caller can report them separately:
// a missing file wraps ErrNotFound, an undecodable file wraps ErrEncoding.
//
// =============================================================================

package reader

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// ErrNotFound is returned when the sales data file does not exist.
var ErrNotFound = errors.New("sales data file not found")

// ErrEncoding is returned when no supported encoding can decode the file.
var ErrEncoding = errors.New("unable to read file with supported encodings")

// fallbackEncodings are tried in order after a UTF-8 validity check fails.
var fallbackEncodings = []encoding.Encoding{
	charmap.ISO8859_1,
	charmap.Windows1252,
}

// ReadLines reads the sales data file and returns the data lines plus the
// number of lines discarded at read level (blank lines; the header line is
// excluded from all counts).
func ReadLines(path string) ([]string, int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, 0, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, 0, fmt.Errorf("failed to read sales data: %w", err)
	}

	text, err := decode(data)
	if err != nil {
		return nil, 0, err
	}

	rawLines := splitLines(text)
	if len(rawLines) == 0 {
		return nil, 0, nil
	}

	// Skip the header line, then drop blank lines.
	lines := make([]string, 0, len(rawLines)-1)
	for _, line := range rawLines[1:] {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}

	discarded := len(rawLines) - 1 - len(lines)
	return lines, discarded, nil
}

// decode converts raw file bytes to a UTF-8 string, trying UTF-8 first and
// then the fallback single-byte encodings.
func decode(data []byte) (string, error) {
	if utf8.Valid(data) {
		return string(data), nil
	}

	for _, enc := range fallbackEncodings {
		decoded, _, err := transform.Bytes(enc.NewDecoder(), data)
		if err != nil {
			continue
		}
		if utf8.Valid(decoded) {
			return string(decoded), nil
		}
	}

	return "", ErrEncoding
}

// splitLines splits on newlines, tolerating both "\n" and "\r\n" endings.
// A trailing newline does not produce a final empty line.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}
