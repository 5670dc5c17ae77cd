package attendance

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// PunchKind is the direction of a punch.
type PunchKind string

const (
	PunchIn  PunchKind = "in"
	PunchOut PunchKind = "out"
)

// ParsePunchKind parses "in" or "out".
func ParsePunchKind(s string) (PunchKind, error) {
	switch k := PunchKind(s); k {
	case PunchIn, PunchOut:
		return k, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidPunchKind, s)
	}
}

// Punch is a raw check-in or check-out against a shift.
// Day is the date the shift is anchored to, which differs from At's date for
// the morning half of an overnight shift.
type Punch struct {
	ID        string
	ShiftID   int64
	Kind      PunchKind
	Day       time.Time
	At        time.Time
	CreatedAt time.Time
}

// NewPunch creates a punch with a fresh ID.
// CreatedAt is left for the caller or the repository to fill.
func NewPunch(shiftID int64, kind PunchKind, day, at time.Time) *Punch {
	return &Punch{
		ID:      uuid.NewString(),
		ShiftID: shiftID,
		Kind:    kind,
		Day:     day,
		At:      at,
	}
}

// Pair picks the first check-in and the last check-out from a day's punches
// for one shift. Either may be nil.
func Pair(punches []*Punch) (checkIn, checkOut *time.Time) {
	for _, p := range punches {
		at := p.At
		switch p.Kind {
		case PunchIn:
			if checkIn == nil || at.Before(*checkIn) {
				checkIn = &at
			}
		case PunchOut:
			if checkOut == nil || at.After(*checkOut) {
				checkOut = &at
			}
		}
	}
	return checkIn, checkOut
}

// IsCheckedIn reports whether the latest punch is a check-in.
func IsCheckedIn(last *Punch) bool {
	return last != nil && last.Kind == PunchIn
}
