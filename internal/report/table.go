package report

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/javiermolinar/timeclock/internal/timewin"
)

// WriteTable renders rows as a bordered text table.
func WriteTable(w io.Writer, rows []Row, layout string) error {
	if layout == "" {
		layout = timewin.FormatHHMM
	}
	if len(rows) == 0 {
		_, err := fmt.Fprintln(w, "No punches in range.")
		return err
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("DAY", "SHIFT", "WINDOW", "IN", "IN STATUS", "OUT", "OUT STATUS", "WORKED")

	for _, r := range rows {
		t.Row(
			r.Day.Format("Mon 2006-01-02"),
			r.Shift.Name,
			r.Shift.Start+"-"+r.Shift.End,
			formatClock(r.CheckIn, layout),
			StatusLabel(r.Result.CheckIn),
			formatClock(r.CheckOut, layout),
			StatusLabel(r.Result.CheckOut),
			formatWorked(r),
		)
	}

	_, err := fmt.Fprintln(w, t.String())
	return err
}

func formatWorked(r Row) string {
	d := r.Worked()
	if d == 0 {
		return "-"
	}
	return FormatDelta(int(d.Minutes()))
}
