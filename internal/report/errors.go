package report

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
)

// ErrUnsupportedReport matches every UnsupportedReportError.
var ErrUnsupportedReport = errors.New("unsupported report")

// UnsupportedReportError is returned when a kind outside the registry is requested.
type UnsupportedReportError struct {
	Kind      Kind
	Supported []string
}

func (e *UnsupportedReportError) Error() string {
	return fmt.Sprintf("report type %q is not implemented, choose one of: %s",
		e.Kind, strings.Join(e.Supported, ", "))
}

func (e *UnsupportedReportError) Unwrap() error { return ErrUnsupportedReport }
