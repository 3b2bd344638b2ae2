package core

import "strings"

// HeaderIndex maps column names to their position in a header row.
// When a name repeats, the last position wins.
type HeaderIndex map[string]int

// MakeHeaderIndex creates a HeaderIndex from a header row.
// This should be called once per file, then reused for all rows.
func MakeHeaderIndex(header []string) HeaderIndex {
	idx := make(HeaderIndex, len(header))
	for i, h := range header {
		idx[h] = i
	}
	return idx
}

// Has reports whether the header carries the column.
func (h HeaderIndex) Has(column string) bool {
	_, ok := h[column]
	return ok
}

// MissingColumns returns the required columns absent from the header,
// in the order they were requested.
func (h HeaderIndex) MissingColumns(required []string) []string {
	var missing []string
	for _, col := range required {
		if !h.Has(col) {
			missing = append(missing, col)
		}
	}
	return missing
}

// ResolveRateColumn picks the rate column for a file. When the header carries
// several candidates the first one in header order is used.
func ResolveRateColumn(header []string, candidates []string) (RateColumn, bool) {
	for _, col := range header {
		for _, c := range candidates {
			if col == c {
				return RateColumn(col), true
			}
		}
	}
	return "", false
}

// splitLine strips surrounding whitespace from a raw line and splits it on Separator.
func splitLine(line string) []string {
	return strings.Split(strings.TrimSpace(line), Separator)
}
