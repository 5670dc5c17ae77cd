// Package logging builds the zerolog logger shared by the CLI and storage layers.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"github.com/javiermolinar/timeclock/internal/config"
)

// New returns a console logger on w at the configured level.
// With debug set, entries are written as JSON at debug level to cfg.File
// instead, and the returned close function closes that file.
func New(cfg config.LogConfig, debug bool, w io.Writer) (zerolog.Logger, func() error, error) {
	noop := func() error { return nil }

	if !debug {
		level, err := zerolog.ParseLevel(cfg.Level)
		if err != nil {
			return zerolog.Nop(), noop, fmt.Errorf("parsing log level: %w", err)
		}
		output := zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
		return zerolog.New(output).Level(level).With().Timestamp().Logger(), noop, nil
	}

	if err := os.MkdirAll(filepath.Dir(cfg.File), 0o755); err != nil {
		return zerolog.Nop(), noop, fmt.Errorf("creating debug log directory: %w", err)
	}
	f, err := os.Create(cfg.File)
	if err != nil {
		return zerolog.Nop(), noop, fmt.Errorf("creating debug log: %w", err)
	}

	logger := zerolog.New(f).Level(zerolog.DebugLevel).With().Timestamp().Logger()
	logger.Debug().Str("log_file", cfg.File).Msg("debug start")

	return logger, func() error {
		logger.Debug().Msg("debug end")
		return f.Close()
	}, nil
}
