package ui

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/timeclock/internal/schedule"
	"github.com/javiermolinar/timeclock/internal/timewin"
)

func (a *App) shiftCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shift",
		Short: "Manage shifts",
	}

	cmd.AddCommand(a.shiftAddCmd())
	cmd.AddCommand(a.shiftListCmd())
	return cmd
}

func (a *App) shiftAddCmd() *cobra.Command {
	var (
		start       string
		end         string
		overnight   bool
		overtime    int
		unavailable bool
	)

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a new shift",
		Long: `Add a new shift.

The overnight flag is derived from the times unless --overnight is given,
in which case it must agree with them.

Examples:
  timeclock shift add morning --start=09:00 --end=17:00
  timeclock shift add night --start=22:00 --end=06:00 --allowed-overtime=30`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("overnight") {
				derived, ok := timewin.IsOverNight(start, end, a.config.Schedule.TimeFormat)
				if !ok {
					return fmt.Errorf("%s-%s is not a valid shift: times must match %s and differ",
						start, end, a.config.Schedule.TimeFormat)
				}
				overnight = derived
			}

			repo, err := a.repository()
			if err != nil {
				return err
			}

			sh := &schedule.Shift{
				Name:            args[0],
				Start:           start,
				End:             end,
				IsOverNight:     overnight,
				IsAvailable:     !unavailable,
				AllowedOverTime: overtime,
			}
			if err := repo.CreateShift(context.Background(), sh); err != nil {
				return fmt.Errorf("creating shift: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created shift #%d: %s %s-%s\n", sh.ID, sh.Name, sh.Start, sh.End)
			return nil
		},
	}

	cmd.Flags().StringVar(&start, "start", "", "Start time (required)")
	cmd.Flags().StringVar(&end, "end", "", "End time (required)")
	cmd.Flags().BoolVar(&overnight, "overnight", false, "Mark the shift as ending the next day")
	cmd.Flags().IntVar(&overtime, "allowed-overtime", 0, "Allowed overtime in minutes")
	cmd.Flags().BoolVar(&unavailable, "unavailable", false, "Create the shift disabled")

	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")

	return cmd
}

func (a *App) shiftListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List shifts",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			repo, err := a.repository()
			if err != nil {
				return err
			}

			shifts, err := repo.ListShifts(context.Background())
			if err != nil {
				return fmt.Errorf("listing shifts: %w", err)
			}

			out := cmd.OutOrStdout()
			if len(shifts) == 0 {
				fmt.Fprintln(out, "No shifts yet. Add one with: timeclock shift add")
				return nil
			}

			fmt.Fprintln(out, formatHeader("Shifts"))
			fmt.Fprintln(out, separator(60))
			for _, sh := range shifts {
				printShiftRow(out, sh, a.config.Schedule.TimeFormat)
			}
			return nil
		},
	}
}
