package schedule

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/javiermolinar/timeclock/internal/timewin"
)

// Path segments used by FieldError.
const (
	CategoryWorkingHour    = "working_hour"
	CategoryBreaks         = "breaks"
	CategorySpecificBreaks = "specific_breaks"
	CategoryShift          = "shift"

	FieldStart       = "start"
	FieldEnd         = "end"
	FieldIsOverNight = "is_over_night"
)

// Message keys reported in FieldError.MessageKey.
const (
	KeyBreakStartsBeforeWorkingHours = "break_starts_before_working_hours"
	KeyBreakEndsAfterWorkingHours    = "break_ends_after_working_hours"
	KeyOverNightMismatch             = "overnight_flag_mismatch"
	KeyInvalidTimeRange              = "invalid_time_range"
	KeyRequired                      = "required"
	KeyInvalidFormat                 = "invalid_format"
	KeyInvalidValue                  = "invalid_value"
	KeyMissingWeekday                = "missing_weekday"
)

// FieldError addresses a single problem in a schedule.
// Path is [weekday, category, key or index, field]; working-hour and shift
// errors omit the key segment.
type FieldError struct {
	Path       []string
	MessageKey string
}

// Field returns the last path segment.
func (e FieldError) Field() string {
	if len(e.Path) == 0 {
		return ""
	}
	return e.Path[len(e.Path)-1]
}

// String returns a formatted error message.
func (e FieldError) String() string {
	return fmt.Sprintf("%s: %s", strings.Join(e.Path, "."), e.MessageKey)
}

// ValidationResult contains the result of validating a schedule.
type ValidationResult struct {
	Valid  bool         // True if the schedule has no errors
	Errors []FieldError // List of validation errors (empty if Valid is true)
}

// FormatErrors returns a formatted string of all validation errors.
func (r ValidationResult) FormatErrors() string {
	if len(r.Errors) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("The schedule has these errors:\n")
	for _, e := range r.Errors {
		fmt.Fprintf(&b, "- %s\n", e.String())
	}
	return b.String()
}

// Validator checks schedules and shifts against the time-window engine.
type Validator struct {
	layout string
	shape  *validator.Validate
}

// NewValidator creates a Validator for the given time-of-day layout.
// An empty layout means timewin.FormatHHMM.
func NewValidator(layout string) *Validator {
	if layout == "" {
		layout = timewin.FormatHHMM
	}
	v := &Validator{layout: layout}
	v.shape = newShapeValidator(layout)
	return v
}

// Validate checks every weekday of s with the default layout.
func Validate(s WeeklySchedule) []FieldError {
	return NewValidator("").Validate(s)
}

// ValidateShift checks a shift with the default layout.
func ValidateShift(sh Shift) []FieldError {
	return NewValidator("").ValidateShift(sh)
}

// Check runs the shape checks and the engine checks and collects both.
func (v *Validator) Check(s WeeklySchedule) ValidationResult {
	errs := v.CheckShape(s)
	errs = append(errs, v.Validate(s)...)
	return ValidationResult{Valid: len(errs) == 0, Errors: errs}
}

// Validate checks overnight-flag consistency of every record and that every
// break of an available day lies within that day's working hours.
// It never stops at the first problem.
func (v *Validator) Validate(s WeeklySchedule) []FieldError {
	var errs []FieldError

	for _, d := range Weekdays {
		day, ok := s.Days[d]
		if !ok {
			errs = append(errs, FieldError{Path: []string{string(d)}, MessageKey: KeyMissingWeekday})
			continue
		}
		errs = append(errs, v.validateDay(d, day)...)
	}

	return errs
}

func (v *Validator) validateDay(d Weekday, day Day) []FieldError {
	var errs []FieldError
	wh := day.WorkingHour

	whPath := []string{string(d), CategoryWorkingHour}
	whResolves := false
	if wh.IsAvailable || wh.Start != "" || wh.End != "" {
		var e []FieldError
		e, whResolves = v.checkOverNight(whPath, wh.Start, wh.End, wh.IsOverNight)
		errs = append(errs, e...)
	}

	checkBreak := func(category, key string, b Break) {
		path := []string{string(d), category, key}
		e, resolves := v.checkOverNight(path, b.Start, b.End, b.IsOverNight)
		errs = append(errs, e...)

		// Breaks on a closed day are not checked for containment.
		if !wh.IsAvailable || !whResolves || !resolves {
			return
		}

		startOK, endOK, _ := timewin.Containment(b.Start, b.End, wh.Start, wh.End, v.layout)
		if !startOK {
			errs = append(errs, FieldError{Path: with(path, FieldStart), MessageKey: KeyBreakStartsBeforeWorkingHours})
		}
		if !endOK {
			errs = append(errs, FieldError{Path: with(path, FieldEnd), MessageKey: KeyBreakEndsAfterWorkingHours})
		}
	}

	for i, b := range day.Breaks {
		checkBreak(CategoryBreaks, strconv.Itoa(i), b)
	}

	keys := make([]string, 0, len(day.SpecificBreaks))
	for k := range day.SpecificBreaks {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		checkBreak(CategorySpecificBreaks, k, day.SpecificBreaks[k])
	}

	return errs
}

// ValidateShift checks that the shift resolves and that its stored overnight
// flag matches its times.
func (v *Validator) ValidateShift(sh Shift) []FieldError {
	errs, _ := v.checkOverNight([]string{CategoryShift, sh.Name}, sh.Start, sh.End, sh.IsOverNight)
	return errs
}

// checkOverNight reports an invalid range or an overnight flag that disagrees
// with the resolved times. resolves is true when the pair forms a window.
func (v *Validator) checkOverNight(path []string, start, end string, stored bool) (errs []FieldError, resolves bool) {
	derived, ok := timewin.IsOverNight(start, end, v.layout)
	if !ok {
		return []FieldError{{Path: with(path, FieldEnd), MessageKey: KeyInvalidTimeRange}}, false
	}
	if derived != stored {
		return []FieldError{{Path: with(path, FieldIsOverNight), MessageKey: KeyOverNightMismatch}}, true
	}
	return nil, true
}

func with(path []string, field string) []string {
	out := make([]string, 0, len(path)+1)
	out = append(out, path...)
	return append(out, field)
}
