package core

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/cockroachdb/errors"
)

// Load reads a timesheet file and returns its valid records in file order.
//
// Only whole-file problems are returned as errors: a missing path yields a
// *NotFoundError and a header without the required or rate columns yields a
// *SchemaError. Bad rows are skipped, with a message on opts.Diagnostics when
// the row is malformed or cannot be parsed.
func Load(path string, opts LoadOptions) ([]Record, error) {
	res, err := LoadFile(path, opts)
	if err != nil {
		return nil, err
	}
	return res.Records, nil
}

// LoadFile is Load with per-file counters.
func LoadFile(path string, opts LoadOptions) (*FileResult, error) {
	opts = opts.withDefaults()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &NotFoundError{Path: path}
		}
		return nil, errors.Wrapf(err, "read %s", path)
	}
	if !utf8.Valid(data) {
		return nil, errors.Newf("file %s is not valid UTF-8", path)
	}

	res := &FileResult{Path: path}

	lines := splitLines(string(data))
	if len(lines) == 0 {
		return res, nil
	}

	header := splitLine(lines[0])
	headerIdx := MakeHeaderIndex(header)

	if missing := headerIdx.MissingColumns(opts.RequiredColumns); len(missing) > 0 {
		return nil, &SchemaError{Path: path, Missing: missing}
	}

	rate, ok := ResolveRateColumn(header, opts.RateColumns)
	if !ok {
		return nil, &SchemaError{Path: path, Rate: opts.RateColumns}
	}
	res.RateColumn = rate

	rows := make([]RawRow, 0, len(lines)-1)
	for i, line := range lines[1:] {
		// Line 1 is the header.
		lineNum := i + 2

		parts := splitLine(line)
		if len(parts) != len(header) {
			res.Malformed++
			fmt.Fprintf(opts.Diagnostics, "skipping line %d in %s: column count does not match header\n", lineNum, path)
			continue
		}

		values := make(map[string]string, len(header))
		for j, col := range header {
			values[col] = parts[j]
		}
		rows = append(rows, RawRow{Line: lineNum, Values: values})
	}

	res.Records, res.Invalid, res.Rejected = formRecords(rows, rate, opts.Diagnostics)
	return res, nil
}

// splitLines breaks file content into lines. "\r\n", "\r" and "\n" all end a
// line. A trailing newline does not start another line, so empty content
// yields no lines at all.
func splitLines(content string) []string {
	if content == "" {
		return nil
	}
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")
	lines := strings.Split(content, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
