package ui

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/timeclock/internal/dateutil"
	"github.com/javiermolinar/timeclock/internal/report"
	"github.com/javiermolinar/timeclock/internal/timewin"
)

func (a *App) resolveCmd() *cobra.Command {
	var date string
	var yesterday bool

	cmd := &cobra.Command{
		Use:   "resolve START END",
		Short: "Anchor a time-of-day pair to a date",
		Long: `Resolve a start/end pair into concrete timestamps.

When END is earlier than START the window is overnight and ends on the
following day. Equal times do not form a window.

Examples:
  timeclock resolve 09:00 17:00
  timeclock resolve 22:00 06:00 --date 2025-03-12
  timeclock resolve 22:00 06:00 --yesterday`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			layout := a.config.Schedule.TimeFormat
			day, err := dateutil.ParseRelativeDate(date, a.now())
			if err != nil {
				return err
			}

			w := timewin.Resolve(args[0], args[1], day,
				timewin.WithToday(!yesterday), timewin.WithLayout(layout))
			if w == nil {
				return fmt.Errorf("%q-%q is not a window: times must match %s and differ", args[0], args[1], layout)
			}

			out := cmd.OutOrStdout()
			stamp := "2006-01-02 " + layout
			overnight := ""
			if w.IsOverNight {
				overnight = formatWarn(" (overnight)")
			}
			fmt.Fprintf(out, "%s %s\n", formatMuted("Start:   "), w.Start.Format(stamp))
			fmt.Fprintf(out, "%s %s%s\n", formatMuted("End:     "), w.End.Format(stamp), overnight)
			fmt.Fprintf(out, "%s %s\n", formatMuted("Duration:"), report.FormatDelta(int(w.Duration().Minutes())))
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Base date: YYYY-MM-DD, today, yesterday, monday, last-friday")
	cmd.Flags().BoolVar(&yesterday, "yesterday", false, "Anchor to the day before the base date")
	return cmd
}

func (a *App) overlapCmd() *cobra.Command {
	var contain bool

	cmd := &cobra.Command{
		Use:   "overlap A_START A_END B_START B_END",
		Short: "Check whether two windows overlap",
		Long: `Check whether window A overlaps window B.

Touching windows (one ends exactly when the other starts) do not overlap.
With --contain, checks instead whether A lies within B and reports the
start and end sides separately.

Examples:
  timeclock overlap 09:00 12:00 11:00 13:00
  timeclock overlap 02:00 02:30 22:00 06:00 --contain`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			layout := a.config.Schedule.TimeFormat
			out := cmd.OutOrStdout()

			for i := 0; i < 4; i += 2 {
				if timewin.Resolve(args[i], args[i+1], a.now(), timewin.WithLayout(layout)) == nil {
					return fmt.Errorf("%q-%q is not a window: times must match %s and differ", args[i], args[i+1], layout)
				}
			}

			if contain {
				startOK, endOK, _ := timewin.Containment(args[0], args[1], args[2], args[3], layout)
				fmt.Fprintf(out, "Contained: %s\n", yesNo(timewin.ContainedWithin(args[0], args[1], args[2], args[3], layout)))
				fmt.Fprintf(out, "  start:   %s\n", sideLabel(startOK, "starts before the window"))
				fmt.Fprintf(out, "  end:     %s\n", sideLabel(endOK, "ends after the window"))
				return nil
			}

			overlaps := timewin.Overlaps(args[0], args[1], args[2], args[3], layout)
			fmt.Fprintf(out, "Overlap: %s\n", yesNo(overlaps))
			if overlaps {
				minutes := timewin.OverlapMinutes(args[0], args[1], args[2], args[3], layout)
				fmt.Fprintf(out, "Shared:  %s\n", report.FormatDelta(minutes))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&contain, "contain", false, "Check that A is contained in B")
	return cmd
}

func yesNo(b bool) string {
	if b {
		return formatOnTime("yes")
	}
	return formatOffTime("no")
}

func sideLabel(ok bool, failure string) string {
	if ok {
		return formatOnTime("ok")
	}
	return formatOffTime(failure)
}
