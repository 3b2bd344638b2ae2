package report

import (
	"fmt"
	"io"

	"github.com/JonMunkholm/timesheet/internal/core"
)

// KindMeanRateDepartment shows the average rate of each department.
const KindMeanRateDepartment Kind = "mean_rate_department"

// departmentWidth is the fixed width of the department column.
const departmentWidth = 10

func init() {
	Register(Definition{
		Kind:        KindMeanRateDepartment,
		Description: "mean hourly rate per department",
		Render:      renderMeanRate,
	})
}

func renderMeanRate(w io.Writer, records []core.Record) error {
	if _, err := io.WriteString(w, "\nDepartment\tMean Rate\n----------\t---------\n"); err != nil {
		return err
	}
	for pair := departments(records).Oldest(); pair != nil; pair = pair.Next() {
		if _, err := fmt.Fprintf(w, "%s\t%.2f\n", pad(pair.Key, departmentWidth), meanRate(pair.Value)); err != nil {
			return err
		}
	}
	return nil
}

// meanRate returns the arithmetic mean of the rates, or 0 for no records.
func meanRate(recs []core.Record) float64 {
	if len(recs) == 0 {
		return 0
	}
	var sum float64
	for _, r := range recs {
		sum += r.Rate()
	}
	return sum / float64(len(recs))
}
