package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/JonMunkholm/timesheet/internal/core"
)

// KindPayout lists every employee's payout, one table per department.
const KindPayout Kind = "payout"

func init() {
	Register(Definition{
		Kind:        KindPayout,
		Description: "total payout per employee, grouped by department",
		Render:      renderPayout,
	})
}

// payoutColumn describes one column of a department block.
type payoutColumn struct {
	header  string
	measure func(core.Record) string // value used to size the column
	render  func(core.Record) string // value printed in the cell
}

// Numeric columns are sized by their truncated integer part, not the rounded one.
var payoutColumns = []payoutColumn{
	{
		header:  "name",
		measure: core.Record.Name,
		render:  core.Record.Name,
	},
	{
		header:  "hours",
		measure: func(r core.Record) string { return truncated(r.Hours()) },
		render:  func(r core.Record) string { return formatNumber(r.Hours()) },
	},
	{
		header:  "rate",
		measure: func(r core.Record) string { return truncated(r.Rate()) },
		render:  func(r core.Record) string { return formatNumber(r.Rate()) },
	},
	{
		header:  "payout",
		measure: func(r core.Record) string { return truncated(r.Payout()) },
		render:  func(r core.Record) string { return "$" + truncated(r.Payout()) },
	},
}

func renderPayout(w io.Writer, records []core.Record) error {
	for pair := departments(records).Oldest(); pair != nil; pair = pair.Next() {
		if err := writeDepartmentBlock(w, pair.Key, pair.Value); err != nil {
			return err
		}
	}
	return nil
}

// writeDepartmentBlock writes the department name and its table.
func writeDepartmentBlock(w io.Writer, dept string, recs []core.Record) error {
	widths := make([]int, len(payoutColumns))
	for i, col := range payoutColumns {
		widths[i] = width(col.header)
		for _, r := range recs {
			if n := width(col.measure(r)); n > widths[i] {
				widths[i] = n
			}
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "\n%s\n", dept)

	cells := make([]string, len(payoutColumns))
	for i, col := range payoutColumns {
		cells[i] = pad(col.header, widths[i])
	}
	b.WriteString(strings.Join(cells, "\t") + "\n")

	for i := range payoutColumns {
		cells[i] = strings.Repeat("-", widths[i])
	}
	b.WriteString(strings.Join(cells, "\t") + "\n")

	for _, r := range recs {
		for i, col := range payoutColumns {
			cells[i] = pad(col.render(r), widths[i])
		}
		b.WriteString(strings.Join(cells, "\t") + "\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}
