// Package dateutil provides date parsing and validation utilities.
package dateutil

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/javiermolinar/timeclock/internal/timewin"
)

// Validation errors.
var (
	ErrInvalidDateFormat  = errors.New("date must be in YYYY-MM-DD format")
	ErrEndDateBeforeStart = errors.New("end date must be on or after start date")
	ErrDateInFuture       = errors.New("date is in the future")
)

// weekdayMap maps weekday names to time.Weekday values.
var weekdayMap = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// DateRange represents a validated date range.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// ParseRange resolves a --from/--to pair with ParseRelativeDate.
// Both empty means the week containing relativeTo. An empty from defaults to
// the Monday of to's week; an empty to defaults to relativeTo's day.
// Returns ErrEndDateBeforeStart if the range is inverted.
func ParseRange(from, to string, relativeTo time.Time) (*DateRange, error) {
	if from == "" && to == "" {
		monday, sunday := WeekRange(relativeTo)
		return &DateRange{Start: monday, End: sunday}, nil
	}

	end, err := ParseRelativeDate(to, relativeTo)
	if err != nil {
		return nil, err
	}

	var start time.Time
	if from == "" {
		start, _ = WeekRange(end)
	} else {
		start, err = ParseRelativeDate(from, relativeTo)
		if err != nil {
			return nil, err
		}
	}

	if end.Before(start) {
		return nil, ErrEndDateBeforeStart
	}

	return &DateRange{Start: start, End: end}, nil
}

// Days returns every day in the range, inclusive.
func (r DateRange) Days() []time.Time {
	var days []time.Time
	for d := r.Start; !d.After(r.End); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// WeekRange returns the Monday and Sunday of the ISO week containing t.
func WeekRange(t time.Time) (monday, sunday time.Time) {
	t = TruncateToDay(t)
	weekday := int(t.Weekday())
	if weekday == 0 {
		weekday = 7 // Sunday becomes day 7 in ISO week
	}
	monday = t.AddDate(0, 0, -(weekday - 1))
	sunday = monday.AddDate(0, 0, 6)
	return monday, sunday
}

// TruncateToDay returns t with time set to midnight.
func TruncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// ParseRelativeDate parses a date string that can be:
//   - Empty string or "today": returns relativeTo date
//   - Absolute date: "2025-01-15" (YYYY-MM-DD)
//   - Keywords: "yesterday", "last-week"
//   - Weekday names: "monday" through "sunday" (most recent, today included)
//   - Last prefixed: "last-monday" through "last-sunday" (strictly before today)
//
// All inputs are case-insensitive. Punches are recorded after the fact, so
// every form looks backwards.
// Returns ErrDateInFuture if the resulting date is after relativeTo (truncated to day).
// Returns ErrInvalidDateFormat for unrecognized input.
func ParseRelativeDate(s string, relativeTo time.Time) (time.Time, error) {
	today := TruncateToDay(relativeTo)
	input := strings.ToLower(strings.TrimSpace(s))

	switch input {
	case "", "today":
		return today, nil
	case "yesterday":
		return today.AddDate(0, 0, -1), nil
	case "last-week":
		return today.AddDate(0, 0, -7), nil
	}

	if strings.HasPrefix(input, "last-") {
		if target, ok := weekdayMap[strings.TrimPrefix(input, "last-")]; ok {
			return previousWeekday(today.AddDate(0, 0, -1), target), nil
		}
		return time.Time{}, ErrInvalidDateFormat
	}

	if target, ok := weekdayMap[input]; ok {
		return previousWeekday(today, target), nil
	}

	result, err := time.ParseInLocation("2006-01-02", input, today.Location())
	if err != nil {
		return time.Time{}, ErrInvalidDateFormat
	}
	if result.After(today) {
		return time.Time{}, ErrDateInFuture
	}

	return result, nil
}

// previousWeekday returns the latest day on or before from that falls on target.
func previousWeekday(from time.Time, target time.Weekday) time.Time {
	daysBack := int(from.Weekday()) - int(target)
	if daysBack < 0 {
		daysBack += 7
	}
	return from.AddDate(0, 0, -daysBack)
}

// AtClock places a time of day on day, e.g. "08:55" on 2025-01-15.
// The clock must match layout exactly.
func AtClock(day time.Time, clock, layout string) (time.Time, error) {
	tod, err := timewin.ParseTimeOfDay(clock, layout)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing time %q: %w", clock, err)
	}
	return time.Date(day.Year(), day.Month(), day.Day(),
		tod.Hour(), tod.Minute(), tod.Second(), 0, day.Location()), nil
}
