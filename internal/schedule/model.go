// Package schedule defines the weekly working-hours model and validates it
// against the time-window engine.
package schedule

import (
	"fmt"
	"strings"
	"time"
)

// Weekday is the key of a day in a WeeklySchedule.
type Weekday string

const (
	Monday    Weekday = "monday"
	Tuesday   Weekday = "tuesday"
	Wednesday Weekday = "wednesday"
	Thursday  Weekday = "thursday"
	Friday    Weekday = "friday"
	Saturday  Weekday = "saturday"
	Sunday    Weekday = "sunday"
)

// Weekdays lists every key of a WeeklySchedule in display order.
var Weekdays = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// WeekdayOf returns the schedule key for a date.
func WeekdayOf(t time.Time) Weekday {
	return Weekday(strings.ToLower(t.Weekday().String()))
}

// ParseWeekday parses a case-insensitive weekday name.
func ParseWeekday(s string) (Weekday, error) {
	d := Weekday(strings.ToLower(strings.TrimSpace(s)))
	for _, w := range Weekdays {
		if w == d {
			return d, nil
		}
	}
	return "", fmt.Errorf("invalid weekday: %q", s)
}

// WorkingHour is a workplace's opening window for one weekday.
// IsOverNight must agree with what Start and End resolve to.
type WorkingHour struct {
	Start       string `toml:"start" yaml:"start" json:"start" validate:"required_if=IsAvailable true,omitempty,timeofday"`
	End         string `toml:"end" yaml:"end" json:"end" validate:"required_if=IsAvailable true,omitempty,timeofday"`
	IsOverNight bool   `toml:"is_over_night" yaml:"is_over_night" json:"is_over_night"`
	IsAvailable bool   `toml:"is_available" yaml:"is_available" json:"is_available"`
}

// Break is a recurring break inside a day's working hours.
// Duration is informational and is not checked against Start and End.
type Break struct {
	Name        string `toml:"name" yaml:"name" json:"name"`
	Start       string `toml:"start" yaml:"start" json:"start" validate:"required,timeofday"`
	End         string `toml:"end" yaml:"end" json:"end" validate:"required,timeofday"`
	Duration    int    `toml:"duration" yaml:"duration" json:"duration" validate:"gte=0"`
	IsOverNight bool   `toml:"is_over_night" yaml:"is_over_night" json:"is_over_night"`
	IsAvailable *bool  `toml:"is_available,omitempty" yaml:"is_available,omitempty" json:"is_available,omitempty"`
}

// Available reports whether the break is enabled. Unset means enabled.
func (b Break) Available() bool {
	return b.IsAvailable == nil || *b.IsAvailable
}

// SpecificBreak is a named, one-off break. It has the same shape as Break.
type SpecificBreak = Break

// Day holds a weekday's working hours and breaks.
type Day struct {
	WorkingHour    WorkingHour              `toml:"working_hour" yaml:"working_hour" json:"working_hour"`
	Breaks         []Break                  `toml:"breaks" yaml:"breaks" json:"breaks" validate:"dive"`
	SpecificBreaks map[string]SpecificBreak `toml:"specific_breaks" yaml:"specific_breaks" json:"specific_breaks" validate:"dive"`
}

// WeeklySchedule maps each of the seven weekdays to its Day.
type WeeklySchedule struct {
	Days map[Weekday]Day `toml:"days" yaml:"days" json:"days" validate:"dive"`
}

// NewWeeklySchedule returns a schedule with all seven weekdays present and closed.
func NewWeeklySchedule() *WeeklySchedule {
	s := &WeeklySchedule{Days: make(map[Weekday]Day, len(Weekdays))}
	for _, d := range Weekdays {
		s.Days[d] = Day{SpecificBreaks: map[string]SpecificBreak{}}
	}
	return s
}

// Day returns the configuration for d and whether it is present.
func (s *WeeklySchedule) Day(d Weekday) (Day, bool) {
	day, ok := s.Days[d]
	return day, ok
}

// Shift is a scheduled working period for an employee.
// IsOverNight must agree with what Start and End resolve to.
type Shift struct {
	ID              int64  `toml:"id" yaml:"id" json:"id"`
	Name            string `toml:"name" yaml:"name" json:"name"`
	Start           string `toml:"start" yaml:"start" json:"start"`
	End             string `toml:"end" yaml:"end" json:"end"`
	IsOverNight     bool   `toml:"is_over_night" yaml:"is_over_night" json:"is_over_night"`
	IsAvailable     bool   `toml:"is_available" yaml:"is_available" json:"is_available"`
	AllowedOverTime int    `toml:"allowed_over_time" yaml:"allowed_over_time" json:"allowed_over_time"` // minutes
}
