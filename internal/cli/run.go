// Package cli wires the record loader and the report generator behind the
// command line.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/JonMunkholm/timesheet/internal/core"
	"github.com/JonMunkholm/timesheet/internal/logging"
	"github.com/JonMunkholm/timesheet/internal/report"
	"github.com/cockroachdb/errors"
)

// Options configures a single run.
type Options struct {
	Files           []string
	Report          report.Kind
	Summary         bool // log per-file counters at info level instead of debug
	RequiredColumns []string
	RateColumns     []string
	Stdout          io.Writer // report and skipped-row messages
	Stderr          io.Writer // skipped-file messages
}

// Run loads every file in order, merges their records and renders the report.
//
// A file that is missing or has a bad header is reported on Stderr and
// skipped. Only an unsupported report kind or a failed write aborts the run,
// and the kind is checked before any file is read.
func Run(ctx context.Context, opts Options) error {
	if _, ok := report.Get(opts.Report); !ok {
		return &report.UnsupportedReportError{Kind: opts.Report, Supported: report.Kinds()}
	}

	loadOpts := core.LoadOptions{
		RequiredColumns: opts.RequiredColumns,
		RateColumns:     opts.RateColumns,
		Diagnostics:     opts.Stdout,
	}

	var records []core.Record
	for _, path := range opts.Files {
		fileLogger := logging.WithFields(ctx, "file", path)
		res, err := core.LoadFile(path, loadOpts)
		if err != nil {
			fmt.Fprintf(opts.Stderr, "error processing file %s: %v\n", path, err)
			fileLogger.Debug("file skipped", "not_found", errors.Is(err, core.ErrNotFound), "error", err)
			continue
		}
		logFileResult(ctx, fileLogger, res, opts.Summary)
		records = append(records, res.Records...)
	}

	logging.FromContext(ctx).Debug("rendering report", "report", opts.Report, "records", len(records))
	return report.Generate(opts.Stdout, opts.Report, records)
}

func logFileResult(ctx context.Context, logger *slog.Logger, res *core.FileResult, summary bool) {
	level := slog.LevelDebug
	if summary {
		level = slog.LevelInfo
	}
	logger.Log(ctx, level, "file loaded",
		"rate_column", res.RateColumn.String(),
		"records", len(res.Records),
		"malformed", res.Malformed,
		"invalid", res.Invalid,
		"rejected", res.Rejected,
		"mean_payout", res.MeanPayout(),
		"max_hours", res.MaxHours(),
	)
}
