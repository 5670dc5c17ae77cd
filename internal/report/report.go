// Package report pairs stored punches with their shifts and classifies them.
package report

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/javiermolinar/timeclock/internal/attendance"
	"github.com/javiermolinar/timeclock/internal/schedule"
)

// Source is the subset of attendance.Repository a report reads from.
type Source interface {
	ListShifts(ctx context.Context) ([]*schedule.Shift, error)
	ListPunches(ctx context.Context, from, to time.Time) ([]*attendance.Punch, error)
}

// Row is one shift worked on one day.
type Row struct {
	Day      time.Time
	Shift    schedule.Shift
	CheckIn  *time.Time
	CheckOut *time.Time
	Result   attendance.Result
}

// Worked returns the time between check-in and check-out, or zero when
// either is missing.
func (r Row) Worked() time.Duration {
	if r.CheckIn == nil || r.CheckOut == nil || r.CheckOut.Before(*r.CheckIn) {
		return 0
	}
	return r.CheckOut.Sub(*r.CheckIn)
}

type rowKey struct {
	day     string
	shiftID int64
}

// Build returns one row per shift and day that has punches in [from, to],
// ordered by day and then shift ID. Each row is classified against its shift
// anchored to the punch day.
func Build(ctx context.Context, src Source, from, to time.Time, e *attendance.Evaluator) ([]Row, error) {
	if e == nil {
		e = attendance.NewEvaluator()
	}

	shifts, err := src.ListShifts(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing shifts: %w", err)
	}
	byID := make(map[int64]*schedule.Shift, len(shifts))
	for _, sh := range shifts {
		byID[sh.ID] = sh
	}

	punches, err := src.ListPunches(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("listing punches: %w", err)
	}

	groups := make(map[rowKey][]*attendance.Punch)
	days := make(map[rowKey]time.Time)
	var keys []rowKey
	for _, p := range punches {
		if _, ok := byID[p.ShiftID]; !ok {
			return nil, fmt.Errorf("%w: punch %s references #%d", attendance.ErrShiftNotFound, p.ID, p.ShiftID)
		}
		k := rowKey{day: p.Day.Format("2006-01-02"), shiftID: p.ShiftID}
		if _, seen := groups[k]; !seen {
			keys = append(keys, k)
			days[k] = p.Day
		}
		groups[k] = append(groups[k], p)
	}

	slices.SortFunc(keys, func(a, b rowKey) int {
		if c := cmp.Compare(a.day, b.day); c != 0 {
			return c
		}
		return cmp.Compare(a.shiftID, b.shiftID)
	})

	rows := make([]Row, 0, len(keys))
	for _, k := range keys {
		sh := byID[k.shiftID]
		in, out := attendance.Pair(groups[k])
		shiftTimes := attendance.ShiftTimes{Start: sh.Start, End: sh.End}
		rows = append(rows, Row{
			Day:      days[k],
			Shift:    *sh,
			CheckIn:  in,
			CheckOut: out,
			Result:   e.Classify(in, out, shiftTimes, days[k], true),
		})
	}

	return rows, nil
}

// StatusLabel renders a classification for display: "on time", "late 15m",
// "early 1h05m", or "-" when there is nothing to classify.
func StatusLabel(s *attendance.Status) string {
	if s == nil {
		return "-"
	}
	if s.IsOnTime {
		return "on time"
	}
	return fmt.Sprintf("%s %s", s.MessageKey, FormatDelta(s.DeltaMinutes))
}

// FormatDelta renders a minute count as "45m" or "1h05m".
func FormatDelta(minutes int) string {
	hm := attendance.Breakdown(minutes)
	if hm.Hours == 0 {
		return fmt.Sprintf("%dm", hm.Minutes)
	}
	return fmt.Sprintf("%dh%02dm", hm.Hours, hm.Minutes)
}

func formatClock(t *time.Time, layout string) string {
	if t == nil {
		return "-"
	}
	return t.Format(layout)
}
