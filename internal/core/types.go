// Package core provides the record loading logic for timesheet files.
// This package has no CLI dependencies and can be used by any frontend.
package core

import "io"

// Separator is the field delimiter used by every timesheet file.
const Separator = ","

// DefaultRequiredColumns are the columns every timesheet header must carry.
var DefaultRequiredColumns = []string{"id", "email", "name", "department", "hours_worked"}

// DefaultRateColumns are the accepted names for the rate-bearing column.
var DefaultRateColumns = []string{"hourly_rate", "rate", "salary"}

// Column names read during row conversion.
const (
	ColumnName       = "name"
	ColumnDepartment = "department"
	ColumnHours      = "hours_worked"
)

// RateColumn is the rate-bearing column resolved once per file.
type RateColumn string

// String returns the header name of the column.
func (c RateColumn) String() string { return string(c) }

// RawRow is a data line zipped with the header, before validation.
type RawRow struct {
	Line   int               // 1-based line in the source file
	Values map[string]string // header column -> raw cell
}

// Record is a validated timesheet row ready for aggregation.
// Records are built only by NewRecord and never change afterwards.
type Record struct {
	name       string
	department string
	hours      float64
	rate       float64
	payout     float64
}

func (r Record) Name() string       { return r.name }
func (r Record) Department() string { return r.department }
func (r Record) Hours() float64     { return r.hours }
func (r Record) Rate() float64      { return r.rate }

// Payout is hours multiplied by rate.
func (r Record) Payout() float64 { return r.payout }

// LoadOptions configures a single Load call.
type LoadOptions struct {
	RequiredColumns []string  // defaults to DefaultRequiredColumns
	RateColumns     []string  // defaults to DefaultRateColumns
	Diagnostics     io.Writer // receives skipped-row messages; nil discards them
}

func (o LoadOptions) withDefaults() LoadOptions {
	if len(o.RequiredColumns) == 0 {
		o.RequiredColumns = DefaultRequiredColumns
	}
	if len(o.RateColumns) == 0 {
		o.RateColumns = DefaultRateColumns
	}
	if o.Diagnostics == nil {
		o.Diagnostics = io.Discard
	}
	return o
}

// FileResult is the outcome of loading one file.
type FileResult struct {
	Path       string
	RateColumn RateColumn
	Records    []Record
	Malformed  int // lines dropped for a field-count mismatch
	Invalid    int // rows that failed to parse
	Rejected   int // rows that parsed but broke a record invariant
}

// MeanPayout returns the average payout of the accepted records, or 0.
func (f *FileResult) MeanPayout() float64 {
	if len(f.Records) == 0 {
		return 0
	}
	var sum float64
	for _, r := range f.Records {
		sum += r.payout
	}
	return sum / float64(len(f.Records))
}

// MaxHours returns the largest hours value among accepted records, or 0.
func (f *FileResult) MaxHours() float64 {
	var longest float64
	for i, r := range f.Records {
		if i == 0 || r.hours > longest {
			longest = r.hours
		}
	}
	return longest
}
