// Package attendance classifies check-ins and check-outs against a shift and
// reports a shift's live state relative to a caller-supplied "now".
package attendance

import (
	"math"
	"time"

	"github.com/javiermolinar/timeclock/internal/timewin"
)

// MessageKey identifies a punctuality message. Rendering is left to the caller.
type MessageKey string

const (
	KeyCheckedInOnTime  MessageKey = "checked_in_on_time"
	KeyLate             MessageKey = "late"
	KeyCheckedOutOnTime MessageKey = "checked_out_on_time"
	KeyEarly            MessageKey = "early"
)

// Status is the classification of a single check-in or check-out.
// DeltaMinutes is only set when IsOnTime is false.
type Status struct {
	MessageKey   MessageKey
	IsOnTime     bool
	DeltaMinutes int
}

// Breakdown splits the delta into hours and minutes for display.
func (s Status) Breakdown() HoursMinutes {
	return Breakdown(s.DeltaMinutes)
}

// Result holds the check-in and check-out classifications.
// A nil field means the timestamp was not supplied or the shift did not resolve.
type Result struct {
	CheckIn  *Status
	CheckOut *Status
}

// ShiftTimes is the start/end pair a punch is classified against.
type ShiftTimes struct {
	Start string
	End   string
}

// HoursMinutes is an absolute minute count split into hours and minutes.
type HoursMinutes struct {
	Hours   int
	Minutes int
}

// Breakdown converts a minute count to hours and minutes, ignoring its sign.
func Breakdown(minutes int) HoursMinutes {
	if minutes < 0 {
		minutes = -minutes
	}
	return HoursMinutes{Hours: minutes / 60, Minutes: minutes % 60}
}

// Classify evaluates checkIn and checkOut against the shift anchored to baseDay
// using the default layout.
func Classify(checkIn, checkOut *time.Time, shift ShiftTimes, baseDay time.Time, isToday bool) Result {
	return NewEvaluator().Classify(checkIn, checkOut, shift, baseDay, isToday)
}

// Classify evaluates checkIn and checkOut against the shift anchored to baseDay.
// Arriving exactly at the start and leaving exactly at the end are on time.
func (e *Evaluator) Classify(checkIn, checkOut *time.Time, shift ShiftTimes, baseDay time.Time, isToday bool) Result {
	w := timewin.Resolve(shift.Start, shift.End, baseDay,
		timewin.WithToday(isToday), timewin.WithLayout(e.layout))
	if w == nil {
		return Result{}
	}
	return ClassifyWindow(checkIn, checkOut, w)
}

// ClassifyWindow evaluates checkIn and checkOut against an already resolved window.
func ClassifyWindow(checkIn, checkOut *time.Time, w *timewin.Window) Result {
	var r Result
	if w == nil {
		return r
	}

	if checkIn != nil {
		if !checkIn.After(w.Start) {
			r.CheckIn = &Status{MessageKey: KeyCheckedInOnTime, IsOnTime: true}
		} else {
			r.CheckIn = &Status{
				MessageKey:   KeyLate,
				DeltaMinutes: roundMinutes(checkIn.Sub(w.Start)),
			}
		}
	}

	if checkOut != nil {
		if !checkOut.Before(w.End) {
			r.CheckOut = &Status{MessageKey: KeyCheckedOutOnTime, IsOnTime: true}
		} else {
			r.CheckOut = &Status{
				MessageKey:   KeyEarly,
				DeltaMinutes: roundMinutes(w.End.Sub(*checkOut)),
			}
		}
	}

	return r
}

func roundMinutes(d time.Duration) int {
	return int(math.Round(d.Minutes()))
}
