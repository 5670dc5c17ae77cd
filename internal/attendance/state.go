package attendance

import (
	"time"

	"github.com/javiermolinar/timeclock/internal/timewin"
)

// State is the live badge state of a shift.
type State string

const (
	StateOpen      State = "open"
	StateWarning   State = "warning"
	StateOutOfTime State = "out_of_time"
)

// DefaultWarningWindow is how long before a shift starts the warning state begins.
const DefaultWarningWindow = 60 * time.Minute

// Evaluator carries the layout and warning window used for evaluation.
// The zero value is not usable; construct it with NewEvaluator.
type Evaluator struct {
	layout        string
	warningWindow time.Duration
}

// EvaluatorOption configures an Evaluator.
type EvaluatorOption func(*Evaluator)

// WithWarningWindow sets the pre-shift warning window. Negative values are ignored.
func WithWarningWindow(d time.Duration) EvaluatorOption {
	return func(e *Evaluator) {
		if d >= 0 {
			e.warningWindow = d
		}
	}
}

// WithTimeFormat sets the time-of-day layout used to resolve shifts.
func WithTimeFormat(layout string) EvaluatorOption {
	return func(e *Evaluator) {
		if layout != "" {
			e.layout = layout
		}
	}
}

// NewEvaluator returns an Evaluator with the default layout and warning window.
func NewEvaluator(opts ...EvaluatorOption) *Evaluator {
	e := &Evaluator{
		layout:        timewin.FormatHHMM,
		warningWindow: DefaultWarningWindow,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// WarningWindow returns the configured warning window.
func (e *Evaluator) WarningWindow() time.Duration {
	return e.warningWindow
}

// Layout returns the configured time-of-day layout.
func (e *Evaluator) Layout() string {
	return e.layout
}

// PreShiftState reports the approach to a shift that has not started yet:
// open until the warning window, warning inside it, and out_of_time once
// the shift has started.
func (e *Evaluator) PreShiftState(now time.Time, shift *timewin.Window) State {
	if shift == nil {
		return StateOutOfTime
	}
	switch {
	case !now.Before(shift.Start):
		return StateOutOfTime
	case !now.Before(shift.Start.Add(-e.warningWindow)):
		return StateWarning
	default:
		return StateOpen
	}
}

// ActiveShiftState reports the state of a shift the employee may already be
// working. Before a check-in it is the pre-shift state. After a check-in it
// is open before the start, warning while the shift runs and out_of_time once
// the shift has ended.
func (e *Evaluator) ActiveShiftState(now time.Time, shift *timewin.Window, isCheckedIn bool) State {
	if !isCheckedIn {
		return e.PreShiftState(now, shift)
	}
	if shift == nil {
		return StateOutOfTime
	}
	switch {
	case now.Before(shift.Start):
		return StateOpen
	case now.Before(shift.End):
		return StateWarning
	default:
		return StateOutOfTime
	}
}

// PreShiftState evaluates with the default warning window.
func PreShiftState(now time.Time, shift *timewin.Window) State {
	return NewEvaluator().PreShiftState(now, shift)
}

// ActiveShiftState evaluates with the default warning window.
func ActiveShiftState(now time.Time, shift *timewin.Window, isCheckedIn bool) State {
	return NewEvaluator().ActiveShiftState(now, shift, isCheckedIn)
}
