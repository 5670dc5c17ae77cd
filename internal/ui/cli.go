package ui

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/javiermolinar/timeclock/internal/attendance"
	"github.com/javiermolinar/timeclock/internal/config"
	"github.com/javiermolinar/timeclock/internal/db"
	"github.com/javiermolinar/timeclock/internal/logging"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// App holds the CLI application state.
type App struct {
	repo     attendance.Repository
	config   *config.Config
	logger   zerolog.Logger
	closeLog func() error
	now      func() time.Time
	root     *cobra.Command
	debug    bool // Enable debug logging
	noColor  bool
}

// Option configures an App.
type Option func(*App)

// WithRepository makes the App use repo instead of opening the configured database.
func WithRepository(repo attendance.Repository) Option {
	return func(a *App) {
		a.repo = repo
	}
}

// WithClock overrides the current time.
func WithClock(now func() time.Time) Option {
	return func(a *App) {
		a.now = now
	}
}

// NewApp creates a new CLI application with the given config.
func NewApp(cfg *config.Config, opts ...Option) *App {
	a := &App{
		config:   cfg,
		logger:   zerolog.Nop(),
		closeLog: func() error { return nil },
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}

	a.root = &cobra.Command{
		Use:   "timeclock",
		Short: "A CLI tool for shift attendance",
		Long: `Timeclock records check-ins and check-outs against shifts.

It resolves shift windows (including overnight ones), validates weekly
schedules, tells you whether you are on time, and exports reports.`,
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			if a.noColor {
				DisableColor()
			}
			logger, closeLog, err := logging.New(a.config.Log, a.debug, os.Stderr)
			if err != nil {
				return err
			}
			a.logger, a.closeLog = logger, closeLog
			return nil
		},
	}

	// Add global flags
	a.root.PersistentFlags().BoolVar(&a.debug, "debug", false, "Enable debug logging (logs to the configured log file)")
	a.root.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "Disable color output")

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.configCmd())
	a.root.AddCommand(a.resolveCmd())
	a.root.AddCommand(a.overlapCmd())
	a.root.AddCommand(a.validateCmd())
	a.root.AddCommand(a.scheduleCmd())
	a.root.AddCommand(a.shiftCmd())
	a.root.AddCommand(a.punchCmd())
	a.root.AddCommand(a.statusCmd())
	a.root.AddCommand(a.reportCmd())
	a.root.AddCommand(a.boardCmd())

	return a
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "timeclock %s (commit: %s)\n", Version, Commit)
		},
	}
}

// repository opens the configured database on first use.
func (a *App) repository() (attendance.Repository, error) {
	if a.repo != nil {
		return a.repo, nil
	}

	repo, err := db.New(a.config.Storage.DBPath,
		db.WithLogger(a.logger),
		db.WithTimeFormat(a.config.Schedule.TimeFormat),
	)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	a.repo = repo
	return repo, nil
}

func (a *App) evaluator() *attendance.Evaluator {
	return attendance.NewEvaluator(
		attendance.WithWarningWindow(a.config.WarningWindow()),
		attendance.WithTimeFormat(a.config.Schedule.TimeFormat),
	)
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.root.Execute()
}

// Close releases the database and the debug log.
func (a *App) Close() error {
	var errs []error
	if a.repo != nil {
		errs = append(errs, a.repo.Close())
	}
	errs = append(errs, a.closeLog())
	return errors.Join(errs...)
}
