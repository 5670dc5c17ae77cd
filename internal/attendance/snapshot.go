package attendance

import (
	"time"

	"github.com/javiermolinar/timeclock/internal/schedule"
	"github.com/javiermolinar/timeclock/internal/timewin"
)

// Snapshot is where one shift stands at a given moment.
type Snapshot struct {
	Shift     *schedule.Shift
	Day       time.Time
	Window    *timewin.Window // nil when the shift does not resolve
	CheckIn   *time.Time
	CheckOut  *time.Time
	Result    Result
	CheckedIn bool
	State     State
}

// AnchorDay returns the day whose occurrence of sh the instant t belongs to.
// While an overnight shift that started the previous day is still running,
// allowed overtime included, that is the previous day; otherwise t's own day.
func AnchorDay(sh *schedule.Shift, t time.Time, layout string) time.Time {
	today := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	prev := timewin.Resolve(sh.Start, sh.End, t, timewin.WithToday(false), timewin.WithLayout(layout))
	if prev != nil && prev.IsOverNight {
		end := prev.End.Add(time.Duration(sh.AllowedOverTime) * time.Minute)
		if t.Before(end) {
			return today.AddDate(0, 0, -1)
		}
	}
	return today
}

// Snapshot classifies the punches recorded for sh on day and reports its live
// state at now. Punches for other shifts or days are ignored. While checked
// in, earlier check-outs are not classified.
func (e *Evaluator) Snapshot(sh *schedule.Shift, day time.Time, punches []*Punch, now time.Time) Snapshot {
	s := Snapshot{
		Shift:  sh,
		Day:    day,
		Window: timewin.Resolve(sh.Start, sh.End, day, timewin.WithLayout(e.layout)),
	}

	var (
		own  []*Punch
		last *Punch
	)
	key := day.Format("2006-01-02")
	for _, p := range punches {
		if p.ShiftID != sh.ID || p.Day.Format("2006-01-02") != key {
			continue
		}
		own = append(own, p)
		if last == nil || !p.At.Before(last.At) {
			last = p
		}
	}

	s.CheckIn, s.CheckOut = Pair(own)
	s.CheckedIn = IsCheckedIn(last)
	if s.CheckedIn {
		// Back in after stepping out: the shift has not ended yet.
		s.CheckOut = nil
	}
	s.Result = ClassifyWindow(s.CheckIn, s.CheckOut, s.Window)
	s.State = e.ActiveShiftState(now, s.Window, s.CheckedIn)
	return s
}
