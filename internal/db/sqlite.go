// Package db provides SQLite storage implementation.
package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	_ "modernc.org/sqlite" // SQLite driver

	"github.com/javiermolinar/timeclock/internal/attendance"
	"github.com/javiermolinar/timeclock/internal/schedule"
)

// timestampLayout is fixed width so stored punch times sort chronologically.
const timestampLayout = "2006-01-02T15:04:05.000000000Z07:00"

// SQLite implements attendance.Repository using SQLite.
type SQLite struct {
	db        *sql.DB
	logger    zerolog.Logger
	validator *schedule.Validator
}

var _ attendance.Repository = (*SQLite)(nil)

// Option configures a SQLite repository.
type Option func(*SQLite)

// WithLogger sets the logger used for storage events.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *SQLite) {
		s.logger = logger
	}
}

// WithTimeFormat sets the time-of-day layout shifts are validated with.
func WithTimeFormat(layout string) Option {
	return func(s *SQLite) {
		s.validator = schedule.NewValidator(layout)
	}
}

// New creates a new SQLite repository and runs migrations.
func New(path string, opts ...Option) (*SQLite, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("creating database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	s := &SQLite{
		db:        db,
		logger:    zerolog.Nop(),
		validator: schedule.NewValidator(""),
	}
	for _, opt := range opts {
		opt(s)
	}

	if err := s.migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	s.logger.Debug().Str("path", path).Msg("database initialized")
	return s, nil
}

// CreateShift adds a new shift to the repository.
// Returns attendance.ErrInvalidShift if the shift does not resolve or its
// overnight flag disagrees with its times.
func (s *SQLite) CreateShift(ctx context.Context, sh *schedule.Shift) error {
	sh.Name = strings.TrimSpace(sh.Name)
	if sh.Name == "" {
		return fmt.Errorf("%w: name is required", attendance.ErrInvalidShift)
	}
	if sh.AllowedOverTime < 0 {
		return fmt.Errorf("%w: allowed over time must not be negative", attendance.ErrInvalidShift)
	}
	if errs := s.validator.ValidateShift(*sh); len(errs) > 0 {
		return fmt.Errorf("%w: %s", attendance.ErrInvalidShift, errs[0])
	}

	query := `
		INSERT INTO shifts (
			name, start_time, end_time, is_over_night, is_available, allowed_over_time, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	result, err := s.db.ExecContext(ctx, query,
		sh.Name,
		sh.Start,
		sh.End,
		sh.IsOverNight,
		sh.IsAvailable,
		sh.AllowedOverTime,
		time.Now().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting shift: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("getting last insert id: %w", err)
	}
	sh.ID = id

	s.logger.Debug().Int64("shift_id", id).Str("name", sh.Name).Msg("shift created")
	return nil
}

// GetShift retrieves a shift by ID.
func (s *SQLite) GetShift(ctx context.Context, id int64) (*schedule.Shift, error) {
	query := `
		SELECT id, name, start_time, end_time, is_over_night, is_available, allowed_over_time
		FROM shifts
		WHERE id = ?
	`

	var sh schedule.Shift
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&sh.ID,
		&sh.Name,
		&sh.Start,
		&sh.End,
		&sh.IsOverNight,
		&sh.IsAvailable,
		&sh.AllowedOverTime,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: #%d", attendance.ErrShiftNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("querying shift: %w", err)
	}

	return &sh, nil
}

// ListShifts returns every shift ordered by ID.
func (s *SQLite) ListShifts(ctx context.Context) ([]*schedule.Shift, error) {
	query := `
		SELECT id, name, start_time, end_time, is_over_night, is_available, allowed_over_time
		FROM shifts
		ORDER BY id
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying shifts: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var shifts []*schedule.Shift
	for rows.Next() {
		var sh schedule.Shift
		err := rows.Scan(
			&sh.ID,
			&sh.Name,
			&sh.Start,
			&sh.End,
			&sh.IsOverNight,
			&sh.IsAvailable,
			&sh.AllowedOverTime,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning shift: %w", err)
		}
		shifts = append(shifts, &sh)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating shifts: %w", err)
	}

	return shifts, nil
}

// RecordPunch stores a punch against an existing shift.
func (s *SQLite) RecordPunch(ctx context.Context, p *attendance.Punch) error {
	if _, err := attendance.ParsePunchKind(string(p.Kind)); err != nil {
		return err
	}
	if _, err := s.GetShift(ctx, p.ShiftID); err != nil {
		return err
	}

	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}

	query := `
		INSERT INTO punches (id, shift_id, kind, day, at, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		p.ID,
		p.ShiftID,
		p.Kind,
		p.Day.Format("2006-01-02"),
		p.At.UTC().Format(timestampLayout),
		p.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting punch: %w", err)
	}

	s.logger.Debug().
		Str("punch_id", p.ID).
		Int64("shift_id", p.ShiftID).
		Str("kind", string(p.Kind)).
		Time("at", p.At).
		Msg("punch recorded")
	return nil
}

// ListPunches returns the punches whose day is within the range (inclusive).
func (s *SQLite) ListPunches(ctx context.Context, from, to time.Time) ([]*attendance.Punch, error) {
	query := `
		SELECT id, shift_id, kind, day, at, created_at
		FROM punches
		WHERE day >= ? AND day <= ?
		ORDER BY day, at
	`

	rows, err := s.db.QueryContext(ctx, query, from.Format("2006-01-02"), to.Format("2006-01-02"))
	if err != nil {
		return nil, fmt.Errorf("querying punches: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var punches []*attendance.Punch
	for rows.Next() {
		p, err := scanPunch(rows)
		if err != nil {
			return nil, err
		}
		punches = append(punches, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating punches: %w", err)
	}

	return punches, nil
}

// LastPunch returns the most recent punch for a shift on a day.
func (s *SQLite) LastPunch(ctx context.Context, shiftID int64, day time.Time) (*attendance.Punch, error) {
	query := `
		SELECT id, shift_id, kind, day, at, created_at
		FROM punches
		WHERE shift_id = ? AND day = ?
		ORDER BY at DESC
		LIMIT 1
	`

	p, err := scanPunch(s.db.QueryRowContext(ctx, query, shiftID, day.Format("2006-01-02")))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, attendance.ErrPunchNotFound
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

// Close releases database resources.
func (s *SQLite) Close() error {
	return s.db.Close()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanPunch(row scanner) (*attendance.Punch, error) {
	var (
		p         attendance.Punch
		day       string
		at        string
		createdAt string
	)

	if err := row.Scan(&p.ID, &p.ShiftID, &p.Kind, &day, &at, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning punch: %w", err)
	}

	var err error
	p.Day, err = parseDate(day)
	if err != nil {
		return nil, fmt.Errorf("parsing punch day: %w", err)
	}

	p.At, err = time.Parse(timestampLayout, at)
	if err != nil {
		return nil, fmt.Errorf("parsing punch time: %w", err)
	}
	p.At = p.At.Local()

	p.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parsing created at: %w", err)
	}

	return &p, nil
}

// parseDate parses a date string in various formats SQLite might return.
// Date-only values (midnight) are parsed in local timezone to match time.Now() behavior.
func parseDate(s string) (time.Time, error) {
	// Date-only format: use local timezone (midnight local, not UTC)
	if t, err := time.ParseInLocation("2006-01-02", s, time.Local); err == nil {
		return t, nil
	}

	// SQLite returns DATE columns as "2006-01-02T00:00:00Z" - extract date and parse as local
	if len(s) == 20 && s[10] == 'T' && s[19] == 'Z' {
		dateOnly := s[:10]
		if t, err := time.ParseInLocation("2006-01-02", dateOnly, time.Local); err == nil {
			return t, nil
		}
	}

	// Formats with actual time components (not midnight placeholders)
	formats := []string{
		"2006-01-02T15:04:05Z",
		"2006-01-02 15:04:05",
		time.RFC3339,
	}
	for _, f := range formats {
		if t, err := time.Parse(f, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date format: %s", s)
}
