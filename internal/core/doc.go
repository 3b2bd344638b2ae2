// Package core provides the record loading logic for timesheet files.
//
// A timesheet file is UTF-8 text with a comma separated header on its first
// line. The header must carry the required columns
// (id, email, name, department, hours_worked) and at least one rate column
// (hourly_rate, rate or salary by default).
//
// # Loading
//
// [Load] reads a whole file into memory and turns it into [Record] values:
//
//  1. The header is split and checked; a missing column is a [SchemaError].
//  2. The rate column is resolved once, in header order ([ResolveRateColumn]).
//  3. Each data line whose field count matches the header becomes a [RawRow].
//  4. [FormRecords] parses and validates the rows, dropping the bad ones.
//
// # Error Handling
//
// Whole-file problems are returned as typed errors that also match the
// sentinels [ErrNotFound] and [ErrSchema] with errors.Is. Row problems never
// surface as errors; the row is dropped and, for malformed or unparseable
// rows, a line-numbered message is written to [LoadOptions.Diagnostics].
package core
