package cli

import (
	"fmt"
	"strings"

	"github.com/JonMunkholm/timesheet/internal/config"
	"github.com/JonMunkholm/timesheet/internal/logging"
	"github.com/JonMunkholm/timesheet/internal/report"
	"github.com/spf13/cobra"
)

// NewRootCommand builds the timesheet command for the given configuration.
func NewRootCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "timesheet [flags] FILE...",
		Short: "Build department reports from employee timesheet CSV files",
		Long: `timesheet reads one or more comma separated timesheet files and prints a
department level report.

Every file needs the columns id, email, name, department and hours_worked
plus one rate column (hourly_rate, rate or salary). Rows with a wrong column
count, unparseable numbers, empty names or negative values are skipped.

Examples:
  timesheet data1.csv data2.csv --report payout
  timesheet data1.csv --report mean_rate_department`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, _ := cmd.Flags().GetString("report")
			summary, _ := cmd.Flags().GetBool("summary")

			level := cfg.Logging.Level
			if summary && (strings.EqualFold(level, "warn") || strings.EqualFold(level, "error")) {
				level = "info"
			}
			logging.Setup(level, cfg.Logging.Format, cmd.ErrOrStderr())

			ctx, _ := logging.WithRunID(cmd.Context())
			logging.FromContext(ctx).Debug("run started", "files", len(args), "report", kind, "config", cfg.String())

			return Run(ctx, Options{
				Files:           args,
				Report:          report.Kind(kind),
				Summary:         summary,
				RequiredColumns: cfg.Columns.Required,
				RateColumns:     cfg.Columns.Rate,
				Stdout:          cmd.OutOrStdout(),
				Stderr:          cmd.ErrOrStderr(),
			})
		},
	}

	cmd.Flags().StringP("report", "r", "", "report type: "+strings.Join(report.Kinds(), " | "))
	cmd.Flags().Bool("summary", false, "log per-file counters (records, skipped rows, mean payout, max hours)")
	_ = cmd.MarkFlagRequired("report")

	cmd.AddCommand(newReportsCommand())
	return cmd
}

// newReportsCommand lists the registered report kinds.
func newReportsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "reports",
		Short: "List the available report types",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, def := range report.All() {
				fmt.Fprintf(cmd.OutOrStdout(), "%-22s %s\n", def.Kind, def.Description)
			}
		},
	}
}
