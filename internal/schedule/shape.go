package schedule

import (
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/javiermolinar/timeclock/internal/timewin"
)

func newShapeValidator(layout string) *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report file keys rather than Go field names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	err := v.RegisterValidation("timeofday", func(fl validator.FieldLevel) bool {
		return timewin.IsValidTimeOfDay(fl.Field().String(), layout)
	})
	if err != nil {
		panic(fmt.Sprintf("registering timeofday validation: %v", err))
	}

	return v
}

// CheckShape reports missing fields, malformed times and unknown weekday keys.
// These are the problems a form layer surfaces before any range checks.
func (v *Validator) CheckShape(s WeeklySchedule) []FieldError {
	var errs []FieldError

	for d := range s.Days {
		if _, err := ParseWeekday(string(d)); err != nil || string(d) != strings.ToLower(string(d)) {
			errs = append(errs, FieldError{Path: []string{string(d)}, MessageKey: KeyInvalidValue})
		}
	}

	err := v.shape.Struct(s)
	var verrs validator.ValidationErrors
	switch {
	case err == nil:
	case errors.As(err, &verrs):
		for _, e := range verrs {
			errs = append(errs, FieldError{
				Path:       namespacePath(e.Namespace()),
				MessageKey: shapeKey(e.Tag()),
			})
		}
	default:
		errs = append(errs, FieldError{MessageKey: KeyInvalidValue})
	}

	slices.SortStableFunc(errs, func(a, b FieldError) int {
		if c := weekdayIndex(a.Path) - weekdayIndex(b.Path); c != 0 {
			return c
		}
		return strings.Compare(strings.Join(a.Path, "."), strings.Join(b.Path, "."))
	})
	return errs
}

// namespacePath turns "WeeklySchedule.days[monday].breaks[0].start" into
// [monday breaks 0 start].
func namespacePath(ns string) []string {
	parts := strings.Split(ns, ".")
	if len(parts) > 0 {
		parts = parts[1:]
	}

	var path []string
	for _, p := range parts {
		name, key, found := strings.Cut(p, "[")
		if !found {
			path = append(path, p)
			continue
		}
		key = strings.TrimSuffix(key, "]")
		if name != "days" {
			path = append(path, name)
		}
		path = append(path, key)
	}
	return path
}

func shapeKey(tag string) string {
	switch tag {
	case "required", "required_if":
		return KeyRequired
	case "timeofday":
		return KeyInvalidFormat
	default:
		return KeyInvalidValue
	}
}

func weekdayIndex(path []string) int {
	if len(path) == 0 {
		return len(Weekdays)
	}
	if i := slices.Index(Weekdays, Weekday(path[0])); i >= 0 {
		return i
	}
	return len(Weekdays)
}
