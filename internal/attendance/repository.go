package attendance

import (
	"context"
	"errors"
	"time"

	"github.com/javiermolinar/timeclock/internal/schedule"
)

// Sentinel errors returned by Repository implementations.
var (
	ErrShiftNotFound    = errors.New("shift not found")
	ErrPunchNotFound    = errors.New("punch not found")
	ErrInvalidShift     = errors.New("invalid shift")
	ErrInvalidPunchKind = errors.New("punch kind must be 'in' or 'out'")
)

// Repository defines the storage interface for shifts and punches.
type Repository interface {
	// CreateShift stores a new shift and sets its ID.
	// Returns ErrInvalidShift if the times do not resolve or the overnight
	// flag disagrees with them.
	CreateShift(ctx context.Context, sh *schedule.Shift) error

	// GetShift retrieves a shift by ID.
	GetShift(ctx context.Context, id int64) (*schedule.Shift, error)

	// ListShifts returns every shift ordered by ID.
	ListShifts(ctx context.Context) ([]*schedule.Shift, error)

	// RecordPunch stores a punch. An empty ID is filled in.
	RecordPunch(ctx context.Context, p *Punch) error

	// ListPunches returns the punches whose Day is within the range (inclusive),
	// ordered by day, then time.
	ListPunches(ctx context.Context, from, to time.Time) ([]*Punch, error)

	// LastPunch returns the most recent punch for a shift on a day.
	// Returns ErrPunchNotFound if there is none.
	LastPunch(ctx context.Context, shiftID int64, day time.Time) (*Punch, error)

	// Close releases any resources held by the repository.
	Close() error
}
