package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/javiermolinar/timeclock/internal/tui"
)

func (a *App) boardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "board",
		Short: "Open the live shift board",
		Long: `Open a full-screen board listing every shift with its live state,
refreshed every second. Select a shift and press p to punch in or out.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			repo, err := a.repository()
			if err != nil {
				return err
			}

			opts := []tui.Option{tui.WithClock(a.now)}
			if a.noColor {
				opts = append(opts, tui.WithNoColor())
			}

			a.logger.Debug().Msg("board started")
			p := tea.NewProgram(tui.New(repo, a.evaluator(), opts...), tea.WithAltScreen())
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("running board: %w", err)
			}
			return nil
		},
	}
}
