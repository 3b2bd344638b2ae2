package core

// records.go converts zipped rows into validated Records.
//
// Conversion happens in two steps:
//  1. Parsing: the name, department, hours and rate cells are extracted and the
//     numeric ones parsed. A missing cell or a non-numeric value is reported
//     to the diagnostics writer with the row's line number.
//  2. Validation: the parsed fields are checked against the record invariants
//     (non-empty name and department, non-negative finite hours and rate).
//     Rows that fail here are dropped without a message.

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
)

// ErrInvalidRecord marks a row that parsed but broke a record invariant.
var ErrInvalidRecord = errors.New("invalid record")

var validate = validator.New(validator.WithRequiredStructEnabled())

// recordFields holds parsed cells while they are checked against the record invariants.
type recordFields struct {
	Name       string  `validate:"required"`
	Department string  `validate:"required"`
	Hours      float64 `validate:"gte=0"`
	Rate       float64 `validate:"gte=0"`
}

// NewRecord validates the fields and builds a Record with its payout.
// The name and department are trimmed before validation.
func NewRecord(name, department string, hours, rate float64) (Record, error) {
	f := recordFields{
		Name:       strings.TrimSpace(name),
		Department: strings.TrimSpace(department),
		Hours:      hours,
		Rate:       rate,
	}
	if err := validate.Struct(f); err != nil {
		return Record{}, errors.Mark(errors.Wrap(err, "record"), ErrInvalidRecord)
	}
	if math.IsInf(hours, 0) || math.IsInf(rate, 0) {
		return Record{}, errors.Mark(errors.New("record: hours and rate must be finite"), ErrInvalidRecord)
	}
	return Record{
		name:       f.Name,
		department: f.Department,
		hours:      hours,
		rate:       rate,
		payout:     hours * rate,
	}, nil
}

// RowResult is the outcome of converting one RawRow.
type RowResult struct {
	Line   int
	Record Record
	Err    error // nil when Record is valid
}

// Parsed reports whether the row got past parsing, regardless of validation.
func (r RowResult) Parsed() bool {
	return r.Err == nil || errors.Is(r.Err, ErrInvalidRecord)
}

// ConvertRow turns a single RawRow into a Record using the file's rate column.
func ConvertRow(row RawRow, rate RateColumn) RowResult {
	res := RowResult{Line: row.Line}

	name, ok := row.Values[ColumnName]
	if !ok {
		res.Err = errors.Newf("missing column %q", ColumnName)
		return res
	}
	dept, ok := row.Values[ColumnDepartment]
	if !ok {
		res.Err = errors.Newf("missing column %q", ColumnDepartment)
		return res
	}
	hours, err := parseNumber(row.Values, ColumnHours)
	if err != nil {
		res.Err = err
		return res
	}
	rateVal, err := parseNumber(row.Values, rate.String())
	if err != nil {
		res.Err = err
		return res
	}

	res.Record, res.Err = NewRecord(name, dept, hours, rateVal)
	return res
}

// FormRecords converts rows into Records, skipping the ones that cannot be
// parsed (with a message on diag) and the ones that break a record invariant.
func FormRecords(rows []RawRow, rate RateColumn, diag io.Writer) []Record {
	records, _, _ := formRecords(rows, rate, diag)
	return records
}

func formRecords(rows []RawRow, rate RateColumn, diag io.Writer) (records []Record, invalid, rejected int) {
	if diag == nil {
		diag = io.Discard
	}
	for _, row := range rows {
		res := ConvertRow(row, rate)
		switch {
		case res.Err == nil:
			records = append(records, res.Record)
		case res.Parsed():
			rejected++
		default:
			invalid++
			fmt.Fprintf(diag, "line %d contains invalid data, skipping\n", res.Line)
		}
	}
	return records, invalid, rejected
}

// parseNumber reads a decimal float cell, tolerating surrounding whitespace.
// Hexadecimal literals such as 0x1p4 are refused.
func parseNumber(values map[string]string, column string) (float64, error) {
	raw, ok := values[column]
	if !ok {
		return 0, errors.Newf("missing column %q", column)
	}
	raw = strings.TrimSpace(raw)
	if strings.ContainsAny(raw, "xX") {
		return 0, errors.Newf("invalid number for %q: %q is not decimal", column, raw)
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid number for %q", column)
	}
	return v, nil
}
