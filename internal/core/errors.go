package core

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
)

// Sentinels matched with errors.Is by callers that only care about the category.
var (
	ErrNotFound = errors.New("file not found")
	ErrSchema   = errors.New("invalid header")
)

// NotFoundError is returned by Load when the input path does not exist.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("file not found: %s", e.Path)
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// SchemaError is returned by Load when a file header lacks a required column
// or carries none of the accepted rate columns.
type SchemaError struct {
	Path    string
	Missing []string // required columns absent from the header
	Rate    []string // rate candidates, set when no rate column was found
}

func (e *SchemaError) Error() string {
	if len(e.Missing) > 0 {
		return fmt.Sprintf("missing required columns %s in file %s",
			strings.Join(e.Missing, ", "), e.Path)
	}
	return fmt.Sprintf("missing rate column (one of %s) in file %s",
		strings.Join(e.Rate, ", "), e.Path)
}

func (e *SchemaError) Unwrap() error { return ErrSchema }
