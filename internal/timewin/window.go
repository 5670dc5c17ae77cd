package timewin

import "time"

// Window is a time-of-day pair anchored to a calendar day.
// End is always strictly after Start; when the end time of day is earlier
// than the start, End falls on the following day and IsOverNight is set.
type Window struct {
	Start       time.Time
	End         time.Time
	IsOverNight bool
}

type resolveOptions struct {
	isToday bool
	layout  string
}

// Option configures Resolve.
type Option func(*resolveOptions)

// WithToday anchors the window to the base day when true (the default)
// and to the day before it when false.
func WithToday(isToday bool) Option {
	return func(o *resolveOptions) {
		o.isToday = isToday
	}
}

// WithLayout sets the time-of-day layout. Defaults to FormatHHMM.
func WithLayout(layout string) Option {
	return func(o *resolveOptions) {
		if layout != "" {
			o.layout = layout
		}
	}
}

// Resolve anchors start and end to baseDay.
// It returns nil when either value does not parse strictly or when both
// describe the same time of day, since a zero-length window is not representable.
func Resolve(start, end string, baseDay time.Time, opts ...Option) *Window {
	o := resolveOptions{isToday: true, layout: FormatHHMM}
	for _, opt := range opts {
		opt(&o)
	}

	s, err := ParseTimeOfDay(start, o.layout)
	if err != nil {
		return nil
	}
	e, err := ParseTimeOfDay(end, o.layout)
	if err != nil {
		return nil
	}
	if s.Equal(e) {
		return nil
	}

	base := truncateToDay(baseDay)
	if !o.isToday {
		base = base.AddDate(0, 0, -1)
	}

	w := &Window{
		Start: at(base, s, o.layout),
		End:   at(base, e, o.layout),
	}
	if w.End.Before(w.Start) {
		w.IsOverNight = true
		w.End = w.End.AddDate(0, 0, 1)
	}
	return w
}

// IsOverNight reports whether the pair wraps past midnight.
// ok is false when the pair does not resolve.
func IsOverNight(start, end, layout string) (overnight, ok bool) {
	w := Resolve(start, end, referenceDay, WithLayout(layout))
	if w == nil {
		return false, false
	}
	return w.IsOverNight, true
}

// Duration returns the length of the window.
func (w *Window) Duration() time.Duration {
	return w.End.Sub(w.Start)
}

// Contains reports whether t falls in [Start, End).
func (w *Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.End)
}

// Format renders the window back to time-of-day strings.
func (w *Window) Format(layout string) (start, end string) {
	if layout == "" {
		layout = FormatHHMM
	}
	return w.Start.Format(layout), w.End.Format(layout)
}

// Shift returns a copy of the window moved by days whole days.
func (w *Window) Shift(days int) *Window {
	return &Window{
		Start:       w.Start.AddDate(0, 0, days),
		End:         w.End.AddDate(0, 0, days),
		IsOverNight: w.IsOverNight,
	}
}

func at(base, tod time.Time, layout string) time.Time {
	sec := 0
	if HasSeconds(layout) {
		sec = tod.Second()
	}
	return time.Date(base.Year(), base.Month(), base.Day(), tod.Hour(), tod.Minute(), sec, 0, base.Location())
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
