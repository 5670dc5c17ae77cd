package ui

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/timeclock/internal/dateutil"
	"github.com/javiermolinar/timeclock/internal/report"
	"github.com/javiermolinar/timeclock/internal/schedule"
)

func (a *App) reportCmd() *cobra.Command {
	var (
		from string
		to   string
		xlsx string
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Show punctuality for a date range",
		Long: `Show check-ins and check-outs per shift and day, classified against the
shift they belong to. Defaults to the current week (Monday to Sunday).

Examples:
  timeclock report
  timeclock report --from=last-monday --to=yesterday
  timeclock report --from=2025-03-01 --to=2025-03-31 --xlsx=march.xlsx`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			now := a.now()
			r, err := dateutil.ParseRange(from, to, now)
			if err != nil {
				return err
			}

			repo, err := a.repository()
			if err != nil {
				return err
			}

			rows, err := report.Build(context.Background(), repo, r.Start, r.End, a.evaluator())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			layout := a.config.Schedule.TimeFormat
			fmt.Fprintf(out, "%s %s to %s\n", formatHeader("Attendance"),
				r.Start.Format("2006-01-02"), r.End.Format("2006-01-02"))
			if err := report.WriteTable(out, rows, layout); err != nil {
				return err
			}
			if missing := a.missingWorkdays(r, rows, now); len(missing) > 0 {
				fmt.Fprintf(out, "%s %s\n", formatWarn("Workdays without punches:"), strings.Join(missing, ", "))
			}

			if xlsx == "" {
				return nil
			}

			f, err := os.Create(xlsx)
			if err != nil {
				return fmt.Errorf("creating %s: %w", xlsx, err)
			}
			if err := report.WriteExcel(f, rows, layout); err != nil {
				_ = f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}
			a.logger.Info().Str("path", xlsx).Int("rows", len(rows)).Msg("report exported")
			fmt.Fprintf(out, "Exported %d row(s) to %s\n", len(rows), xlsx)
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "First day (default: Monday of this week)")
	cmd.Flags().StringVar(&to, "to", "", "Last day (default: today when --from is set)")
	cmd.Flags().StringVar(&xlsx, "xlsx", "", "Also export the report to this .xlsx file")

	return cmd
}

// missingWorkdays lists the configured workdays in r, up to today, that have
// no report row.
func (a *App) missingWorkdays(r *dateutil.DateRange, rows []report.Row, now time.Time) []string {
	seen := make(map[string]bool, len(rows))
	for _, row := range rows {
		seen[row.Day.Format("2006-01-02")] = true
	}

	today := dateutil.TruncateToDay(now)
	var missing []string
	for _, d := range r.Days() {
		if d.After(today) {
			break
		}
		if !a.config.IsWorkday(string(schedule.WeekdayOf(d))) || seen[d.Format("2006-01-02")] {
			continue
		}
		missing = append(missing, d.Format("Mon 01-02"))
	}
	return missing
}
