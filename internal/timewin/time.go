// Package timewin turns wall-clock "HH:MM" pairs into concrete, comparable
// instants and answers overlap and containment questions about them.
//
// Every function in this package is pure: "now" and the base day are always
// supplied by the caller and nothing reads the system clock.
package timewin

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Supported time-of-day layouts.
const (
	FormatHHMM   = "15:04"
	FormatHHMMSS = "15:04:05"
)

// ErrInvalidTimeFormat is returned when a time of day does not strictly match its layout.
var ErrInvalidTimeFormat = errors.New("time must match the configured time-of-day format")

// ParseTimeOfDay parses s strictly against layout.
// The value must parse and re-format to exactly s, so "8:00" and
// "08:00 " are rejected for FormatHHMM and "24:00" fails to parse.
func ParseTimeOfDay(s, layout string) (time.Time, error) {
	if layout == "" {
		layout = FormatHHMM
	}
	t, err := time.Parse(layout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}
	if t.Format(layout) != s {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}
	return t, nil
}

// IsValidTimeOfDay reports whether s strictly matches layout.
func IsValidTimeOfDay(s, layout string) bool {
	_, err := ParseTimeOfDay(s, layout)
	return err == nil
}

// HasSeconds reports whether layout carries a seconds component.
func HasSeconds(layout string) bool {
	return strings.Contains(layout, "05")
}

// MinutesPerDay is the number of minutes between two midnights.
const MinutesPerDay = 24 * 60

// TimeToMinutes converts a time of day to minutes since midnight.
// Seconds are dropped.
func TimeToMinutes(s, layout string) (int, error) {
	t, err := ParseTimeOfDay(s, layout)
	if err != nil {
		return 0, err
	}
	return t.Hour()*60 + t.Minute(), nil
}

// MinutesToTime converts minutes since midnight to "HH:MM".
// Values outside a day wrap around midnight, so 1470 is "00:30".
func MinutesToTime(m int) string {
	m %= MinutesPerDay
	if m < 0 {
		m += MinutesPerDay
	}
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}
