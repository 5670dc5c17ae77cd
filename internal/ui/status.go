package ui

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/timeclock/internal/attendance"
	"github.com/javiermolinar/timeclock/internal/dateutil"
)

func (a *App) statusCmd() *cobra.Command {
	var (
		date  string
		clock string
	)

	cmd := &cobra.Command{
		Use:   "status <shift-id>",
		Short: "Show a shift's live state and punctuality",
		Long: `Show where a shift stands right now.

The badge is OPEN well before the shift, WARNING inside the warning window
(or while a checked-in shift runs), and OUT OF TIME once it is too late.

Examples:
  timeclock status 1
  timeclock status 2 --date=yesterday
  timeclock status 1 --now=08:30`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			shiftID, err := parseShiftID(args[0])
			if err != nil {
				return err
			}

			now := a.now()
			if clock != "" {
				now, err = dateutil.AtClock(dateutil.TruncateToDay(now), clock, a.config.Schedule.TimeFormat)
				if err != nil {
					return err
				}
			}

			repo, err := a.repository()
			if err != nil {
				return err
			}

			ctx := context.Background()
			sh, err := repo.GetShift(ctx, shiftID)
			if err != nil {
				return err
			}

			layout := a.config.Schedule.TimeFormat
			day := attendance.AnchorDay(sh, now, layout)
			if date != "" {
				if day, err = dateutil.ParseRelativeDate(date, now); err != nil {
					return err
				}
			}

			punches, err := repo.ListPunches(ctx, day, day)
			if err != nil {
				return fmt.Errorf("listing punches: %w", err)
			}

			snap := a.evaluator().Snapshot(sh, day, punches, now)
			if snap.Window == nil {
				return fmt.Errorf("shift #%d %s-%s does not match the %s time format",
					sh.ID, sh.Start, sh.End, layout)
			}

			start, end := snap.Window.Format(layout)
			overnight := ""
			if snap.Window.IsOverNight {
				overnight = formatWarn(" (overnight)")
			}

			stdout := cmd.OutOrStdout()
			fmt.Fprintf(stdout, "%s  %s\n", formatHeader(fmt.Sprintf("#%d %s", sh.ID, sh.Name)), renderBadge(snap.State, a.noColor))
			fmt.Fprintln(stdout, separator(50))
			fmt.Fprintf(stdout, "%s %s (%s)\n", formatMuted("Day:      "), day.Format("2006-01-02"), day.Weekday())
			fmt.Fprintf(stdout, "%s %s-%s%s\n", formatMuted("Window:   "), start, end, overnight)
			fmt.Fprintf(stdout, "%s %s  %s\n", formatMuted("Check-in: "), clockOrDash(snap.CheckIn, layout), formatStatus(snap.Result.CheckIn))
			fmt.Fprintf(stdout, "%s %s  %s\n", formatMuted("Check-out:"), clockOrDash(snap.CheckOut, layout), formatStatus(snap.Result.CheckOut))

			if !a.config.IsWorkday(day.Weekday().String()) {
				fmt.Fprintln(stdout, formatMuted("Not a configured workday."))
			}
			if !sh.IsAvailable {
				fmt.Fprintln(stdout, formatMuted("This shift is marked unavailable."))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Shift day: YYYY-MM-DD, today, yesterday, monday, last-friday")
	cmd.Flags().StringVar(&clock, "now", "", "Evaluate as if it were this time of day")

	return cmd
}
