package ui

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/timeclock/internal/schedule"
)

func (a *App) validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [file]",
		Short: "Validate a weekly schedule file",
		Long: `Validate a weekly schedule (.toml, .yaml or .json).

Every problem is reported, not only the first one. Without a file
argument the schedule.file from the config is used.

Example:
  timeclock validate week.toml`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := a.schedulePath(args)
			if err != nil {
				return err
			}

			s, err := schedule.Load(path)
			if err != nil {
				return err
			}

			result := schedule.NewValidator(a.config.Schedule.TimeFormat).Check(*s)
			out := cmd.OutOrStdout()
			if result.Valid {
				fmt.Fprintln(out, formatOnTime("Schedule is valid."))
				return nil
			}

			a.logger.Debug().Str("path", path).Int("errors", len(result.Errors)).Msg("schedule rejected")
			fmt.Fprint(out, result.FormatErrors())
			return fmt.Errorf("%s: %d validation error(s)", path, len(result.Errors))
		},
	}
}

// schedulePath returns the schedule file named on the command line, falling
// back to the configured one.
func (a *App) schedulePath(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if a.config.Schedule.File == "" {
		return "", errors.New("no schedule file given and schedule.file is not configured")
	}
	return a.config.Schedule.File, nil
}
