package ui

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/timeclock/internal/attendance"
	"github.com/javiermolinar/timeclock/internal/dateutil"
	"github.com/javiermolinar/timeclock/internal/schedule"
	"github.com/javiermolinar/timeclock/internal/timewin"
)

func (a *App) punchCmd() *cobra.Command {
	var (
		clock string
		date  string
	)

	cmd := &cobra.Command{
		Use:   "punch <in|out> <shift-id>",
		Short: "Record a check-in or check-out",
		Long: `Record a check-in or check-out against a shift and report whether it
was on time.

Without --date, a punch made before an overnight shift from the previous
day has ended belongs to that previous day.

Examples:
  timeclock punch in 1
  timeclock punch out 1 --at=17:05
  timeclock punch out 2 --date=yesterday --at=06:00`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := attendance.ParsePunchKind(args[0])
			if err != nil {
				return err
			}
			shiftID, err := parseShiftID(args[1])
			if err != nil {
				return err
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

			day, at, err := a.punchTime(sh, date, clock)
			if err != nil {
				return err
			}

			w := a.shiftWindow(sh, day)
			if w == nil {
				return fmt.Errorf("shift #%d %s-%s does not match the %s time format",
					sh.ID, sh.Start, sh.End, a.config.Schedule.TimeFormat)
			}

			last, err := repo.LastPunch(ctx, sh.ID, day)
			if err != nil && !errors.Is(err, attendance.ErrPunchNotFound) {
				return err
			}
			checkedIn := attendance.IsCheckedIn(last)
			switch {
			case kind == attendance.PunchIn && checkedIn:
				return fmt.Errorf("already checked in to %s on %s", sh.Name, day.Format("2006-01-02"))
			case kind == attendance.PunchOut && !checkedIn:
				return fmt.Errorf("not checked in to %s on %s", sh.Name, day.Format("2006-01-02"))
			}

			p := attendance.NewPunch(sh.ID, kind, day, at)
			p.CreatedAt = a.now()
			if err := repo.RecordPunch(ctx, p); err != nil {
				return fmt.Errorf("recording punch: %w", err)
			}

			out := cmd.OutOrStdout()
			if !sh.IsAvailable {
				fmt.Fprintln(out, formatWarn("Note: this shift is marked unavailable."))
			}

			stamp := at.Format("2006-01-02 " + a.config.Schedule.TimeFormat)
			if kind == attendance.PunchIn {
				result := attendance.ClassifyWindow(&at, nil, w)
				fmt.Fprintf(out, "Checked in to #%d %s at %s: %s\n", sh.ID, sh.Name, stamp, formatStatus(result.CheckIn))
			} else {
				result := attendance.ClassifyWindow(nil, &at, w)
				fmt.Fprintf(out, "Checked out of #%d %s at %s: %s\n", sh.ID, sh.Name, stamp, formatStatus(result.CheckOut))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&clock, "at", "", "Punch time of day (default: now)")
	cmd.Flags().StringVar(&date, "date", "", "Shift day: YYYY-MM-DD, today, yesterday, monday, last-friday")

	return cmd
}

func parseShiftID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid shift ID: %s", s)
	}
	return id, nil
}

// shiftWindow resolves sh on day with the configured layout.
func (a *App) shiftWindow(sh *schedule.Shift, day time.Time) *timewin.Window {
	return timewin.Resolve(sh.Start, sh.End, day, timewin.WithLayout(a.config.Schedule.TimeFormat))
}

// punchTime returns the shift day a punch belongs to and its timestamp.
func (a *App) punchTime(sh *schedule.Shift, date, clock string) (day, at time.Time, err error) {
	now := a.now()
	layout := a.config.Schedule.TimeFormat

	if date != "" {
		day, err = dateutil.ParseRelativeDate(date, now)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		if clock == "" {
			return day, now, nil
		}
		at, err = a.placeClock(sh, day, clock)
		return day, at, err
	}

	at = now
	if clock != "" {
		at, err = dateutil.AtClock(dateutil.TruncateToDay(now), clock, layout)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
	}
	return attendance.AnchorDay(sh, at, layout), at, nil
}

// placeClock puts a time of day on day or, for overnight shifts, on the
// following day when that lands closer to the shift.
func (a *App) placeClock(sh *schedule.Shift, day time.Time, clock string) (time.Time, error) {
	at, err := dateutil.AtClock(day, clock, a.config.Schedule.TimeFormat)
	if err != nil {
		return time.Time{}, err
	}

	w := a.shiftWindow(sh, day)
	if w == nil || !w.IsOverNight {
		return at, nil
	}
	next := at.AddDate(0, 0, 1)
	if distance(next, w) < distance(at, w) {
		return next, nil
	}
	return at, nil
}

// distance is how far t falls outside w; zero inside it.
func distance(t time.Time, w *timewin.Window) time.Duration {
	switch {
	case w.Contains(t):
		return 0
	case t.Before(w.Start):
		return w.Start.Sub(t)
	default:
		return t.Sub(w.End)
	}
}
