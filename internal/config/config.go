// Package config handles configuration loading from files, defaults, and environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog"

	"github.com/javiermolinar/timeclock/internal/schedule"
	"github.com/javiermolinar/timeclock/internal/timewin"
)

// Config holds the application configuration.
type Config struct {
	Schedule ScheduleConfig `toml:"schedule"`
	Storage  StorageConfig  `toml:"storage"`
	Log      LogConfig      `toml:"log"`
}

// ScheduleConfig holds shift evaluation settings.
type ScheduleConfig struct {
	File           string   `toml:"file"`            // weekly schedule file (.toml, .yaml, .json)
	TimeFormat     string   `toml:"time_format"`     // "15:04" or "15:04:05"
	WarningMinutes int      `toml:"warning_minutes"` // pre-shift warning window
	Workdays       []string `toml:"workdays"`        // e.g., ["monday", "tuesday", ...]
}

// StorageConfig holds database settings.
type StorageConfig struct {
	DBPath string `toml:"db_path"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `toml:"level"` // zerolog level name
	File  string `toml:"file"`  // debug log destination
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Schedule: ScheduleConfig{
			File:           "",
			TimeFormat:     timewin.FormatHHMM,
			WarningMinutes: 60,
			Workdays:       []string{"monday", "tuesday", "wednesday", "thursday", "friday"},
		},
		Storage: StorageConfig{
			DBPath: defaultDBPath(),
		},
		Log: LogConfig{
			Level: "warn",
			File:  defaultLogPath(),
		},
	}
}

// defaultDBPath returns the default database path.
func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "timeclock.db"
	}
	return filepath.Join(home, ".local", "share", "timeclock", "timeclock.db")
}

func defaultLogPath() string {
	return filepath.Join(os.TempDir(), "timeclock-debug.log")
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".config", "timeclock", "config.toml")
}

// Load loads configuration from the default path, merging with defaults and env vars.
func Load() (*Config, error) {
	return LoadFrom(DefaultConfigPath())
}

// LoadEnvFile loads KEY=VALUE pairs from a dotenv file into the process
// environment. Variables already set are not overwritten and a missing file
// is not an error.
func LoadEnvFile(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("loading env file: %w", err)
	}
	return nil
}

// LoadFrom loads configuration from the specified path.
// It starts with defaults, overlays file config if it exists, then applies env overrides.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	// Try to load from file (not an error if it doesn't exist)
	if err := loadFromFile(path, cfg); err != nil {
		return nil, err
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}

	cfg.Storage.DBPath = expandPath(cfg.Storage.DBPath)
	cfg.Schedule.File = expandPath(cfg.Schedule.File)
	cfg.Log.File = expandPath(cfg.Log.File)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// loadFromFile loads config from a file if it exists.
func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // File doesn't exist, use defaults
		}
		return fmt.Errorf("reading config file: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to the config.
// Environment variables take precedence over file config.
func applyEnvOverrides(cfg *Config) error {
	// Schedule overrides
	if v := os.Getenv("TIMECLOCK_SCHEDULE_FILE"); v != "" {
		cfg.Schedule.File = v
	}
	if v := os.Getenv("TIMECLOCK_TIME_FORMAT"); v != "" {
		cfg.Schedule.TimeFormat = v
	}
	if v := os.Getenv("TIMECLOCK_WARNING_MINUTES"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("TIMECLOCK_WARNING_MINUTES must be an integer, got %q", v)
		}
		cfg.Schedule.WarningMinutes = n
	}
	if v := os.Getenv("TIMECLOCK_WORKDAYS"); v != "" {
		cfg.Schedule.Workdays = strings.Split(v, ",")
	}

	// Storage overrides
	if v := os.Getenv("TIMECLOCK_DB_PATH"); v != "" {
		cfg.Storage.DBPath = v
	}

	// Log overrides
	if v := os.Getenv("TIMECLOCK_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("TIMECLOCK_LOG_FILE"); v != "" {
		cfg.Log.File = v
	}

	return nil
}

// expandPath expands ~ to the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	switch c.Schedule.TimeFormat {
	case timewin.FormatHHMM, timewin.FormatHHMMSS:
	default:
		return fmt.Errorf("time_format must be %q or %q, got %q",
			timewin.FormatHHMM, timewin.FormatHHMMSS, c.Schedule.TimeFormat)
	}
	if c.Schedule.WarningMinutes < 0 {
		return errors.New("warning_minutes must not be negative")
	}

	for _, day := range c.Schedule.Workdays {
		if _, err := schedule.ParseWeekday(day); err != nil {
			return fmt.Errorf("invalid workday: %s", day)
		}
	}

	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.Log.Level, err)
	}

	if c.Storage.DBPath == "" {
		return errors.New("db_path must be set")
	}
	return nil
}

// WarningWindow returns the pre-shift warning window as a duration.
func (c *Config) WarningWindow() time.Duration {
	return time.Duration(c.Schedule.WarningMinutes) * time.Minute
}

// IsWorkday returns true if the given weekday name is a configured workday.
func (c *Config) IsWorkday(weekday string) bool {
	weekday = strings.ToLower(weekday)
	for _, d := range c.Schedule.Workdays {
		if strings.ToLower(d) == weekday {
			return true
		}
	}
	return false
}

// Save writes the configuration to the default path.
func (c *Config) Save() error {
	return c.SaveTo(DefaultConfigPath())
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
