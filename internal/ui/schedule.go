package ui

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/timeclock/internal/report"
	"github.com/javiermolinar/timeclock/internal/schedule"
	"github.com/javiermolinar/timeclock/internal/timewin"
)

func (a *App) scheduleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Create and inspect weekly schedules",
	}

	cmd.AddCommand(a.scheduleInitCmd())
	cmd.AddCommand(a.scheduleShowCmd())
	return cmd
}

func (a *App) scheduleInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init <file>",
		Short: "Write a Monday-to-Friday template schedule",
		Long: `Write a template schedule: 09:00-17:00 on weekdays with a lunch break,
weekends closed. The format follows the file extension.

Example:
  timeclock schedule init ~/.config/timeclock/week.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}

			if err := schedule.Save(path, schedule.Example()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Schedule written to %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing file")
	return cmd
}

func (a *App) scheduleShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [file]",
		Short: "Print a weekly schedule",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := a.schedulePath(args)
			if err != nil {
				return err
			}

			s, err := schedule.Load(path)
			if err != nil {
				return err
			}

			printSchedule(cmd.OutOrStdout(), s, a.config.Schedule.TimeFormat, a.now())
			return nil
		},
	}
}

// printSchedule prints each weekday's working hours and breaks. Durations are
// resolved against base so overnight ranges are measured across midnight.
func printSchedule(w io.Writer, s *schedule.WeeklySchedule, layout string, base time.Time) {
	duration := func(start, end string) string {
		win := timewin.Resolve(start, end, base, timewin.WithLayout(layout))
		if win == nil {
			return formatOffTime("invalid")
		}
		return report.FormatDelta(int(win.Duration().Minutes()))
	}

	for _, d := range schedule.Weekdays {
		day, ok := s.Day(d)
		title := formatHeader(fmt.Sprintf("%-10s", capitalize(string(d))))
		switch {
		case !ok:
			fmt.Fprintf(w, "%s %s\n", title, formatOffTime("missing"))
			continue
		case !day.WorkingHour.IsAvailable:
			fmt.Fprintf(w, "%s %s\n", title, formatMuted("closed"))
		default:
			wh := day.WorkingHour
			overnight := ""
			if wh.IsOverNight {
				overnight = formatWarn(" (overnight)")
			}
			fmt.Fprintf(w, "%s %s-%s  %s%s\n", title, wh.Start, wh.End, duration(wh.Start, wh.End), overnight)
		}

		for _, b := range day.Breaks {
			printBreak(w, b.Name, b, duration)
		}

		keys := make([]string, 0, len(day.SpecificBreaks))
		for k := range day.SpecificBreaks {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		for _, k := range keys {
			printBreak(w, k, day.SpecificBreaks[k], duration)
		}
	}
}

func printBreak(w io.Writer, name string, b schedule.Break, duration func(start, end string) string) {
	if name == "" {
		name = "break"
	}
	disabled := ""
	if !b.Available() {
		disabled = formatMuted(" [disabled]")
	}
	fmt.Fprintf(w, "           %s %-12s %s-%s  %s%s\n",
		formatMuted("·"), name, b.Start, b.End, duration(b.Start, b.End), disabled)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
