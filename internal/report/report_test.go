package report

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/javiermolinar/timeclock/internal/attendance"
	"github.com/javiermolinar/timeclock/internal/schedule"
)

type fakeSource struct {
	shifts  []*schedule.Shift
	punches []*attendance.Punch
	err     error
}

func (f *fakeSource) ListShifts(ctx context.Context) ([]*schedule.Shift, error) {
	return f.shifts, f.err
}

func (f *fakeSource) ListPunches(ctx context.Context, from, to time.Time) ([]*attendance.Punch, error) {
	var out []*attendance.Punch
	for _, p := range f.punches {
		if !p.Day.Before(from) && !p.Day.After(to) {
			out = append(out, p)
		}
	}
	return out, f.err
}

var (
	mon = time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	tue = mon.AddDate(0, 0, 1)

	dayShift   = &schedule.Shift{ID: 1, Name: "day", Start: "09:00", End: "17:00", IsAvailable: true}
	nightShift = &schedule.Shift{ID: 2, Name: "night", Start: "22:00", End: "06:00", IsOverNight: true, IsAvailable: true}
)

func clock(day time.Time, hour, minute int) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, day.Location())
}

func punch(shift *schedule.Shift, kind attendance.PunchKind, day, at time.Time) *attendance.Punch {
	return attendance.NewPunch(shift.ID, kind, day, at)
}

func sampleSource() *fakeSource {
	return &fakeSource{
		shifts: []*schedule.Shift{dayShift, nightShift},
		punches: []*attendance.Punch{
			punch(nightShift, attendance.PunchIn, mon, clock(mon, 22, 10)),
			punch(nightShift, attendance.PunchOut, mon, clock(tue, 6, 0)),
			punch(dayShift, attendance.PunchIn, mon, clock(mon, 8, 55)),
			punch(dayShift, attendance.PunchOut, mon, clock(mon, 16, 15)),
			punch(dayShift, attendance.PunchIn, tue, clock(tue, 9, 0)),
		},
	}
}

func TestBuild(t *testing.T) {
	rows, err := Build(context.Background(), sampleSource(), mon, tue, nil)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}

	// Monday day shift: on time in, 45 minutes early out.
	r := rows[0]
	if r.Shift.Name != "day" || !r.Day.Equal(mon) {
		t.Fatalf("row 0 = %s on %s", r.Shift.Name, r.Day)
	}
	if !r.Result.CheckIn.IsOnTime {
		t.Errorf("expected on-time check-in, got %+v", r.Result.CheckIn)
	}
	if r.Result.CheckOut.MessageKey != attendance.KeyEarly || r.Result.CheckOut.DeltaMinutes != 45 {
		t.Errorf("expected 45 minutes early, got %+v", r.Result.CheckOut)
	}
	if r.Worked() != 7*time.Hour+20*time.Minute {
		t.Errorf("Worked = %v", r.Worked())
	}

	// Monday night shift crosses into Tuesday.
	r = rows[1]
	if r.Shift.Name != "night" {
		t.Fatalf("row 1 = %s", r.Shift.Name)
	}
	if r.Result.CheckIn.MessageKey != attendance.KeyLate || r.Result.CheckIn.DeltaMinutes != 10 {
		t.Errorf("expected 10 minutes late, got %+v", r.Result.CheckIn)
	}
	if !r.Result.CheckOut.IsOnTime {
		t.Errorf("expected on-time check-out, got %+v", r.Result.CheckOut)
	}

	// Tuesday day shift has no check-out yet.
	r = rows[2]
	if !r.Day.Equal(tue) || r.CheckOut != nil || r.Result.CheckOut != nil {
		t.Errorf("unexpected open row %+v", r)
	}
	if r.Worked() != 0 {
		t.Errorf("open row should have no worked time, got %v", r.Worked())
	}
}

func TestBuild_UnknownShift(t *testing.T) {
	src := sampleSource()
	src.punches = append(src.punches, &attendance.Punch{ID: "x", ShiftID: 99, Kind: attendance.PunchIn, Day: mon, At: mon})

	_, err := Build(context.Background(), src, mon, tue, nil)
	if !errors.Is(err, attendance.ErrShiftNotFound) {
		t.Errorf("expected ErrShiftNotFound, got %v", err)
	}
}

func TestBuild_SourceError(t *testing.T) {
	src := &fakeSource{err: errors.New("disk gone")}
	if _, err := Build(context.Background(), src, mon, tue, nil); err == nil {
		t.Error("expected error from source")
	}
}

func TestStatusLabel(t *testing.T) {
	tests := []struct {
		status *attendance.Status
		want   string
	}{
		{nil, "-"},
		{&attendance.Status{MessageKey: attendance.KeyCheckedInOnTime, IsOnTime: true}, "on time"},
		{&attendance.Status{MessageKey: attendance.KeyLate, DeltaMinutes: 15}, "late 15m"},
		{&attendance.Status{MessageKey: attendance.KeyEarly, DeltaMinutes: 65}, "early 1h05m"},
	}

	for _, tt := range tests {
		if got := StatusLabel(tt.status); got != tt.want {
			t.Errorf("StatusLabel(%+v) = %q, want %q", tt.status, got, tt.want)
		}
	}
}

func TestWriteTable(t *testing.T) {
	rows, err := Build(context.Background(), sampleSource(), mon, tue, nil)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	var buf bytes.Buffer
	if err := WriteTable(&buf, rows, ""); err != nil {
		t.Fatalf("WriteTable failed: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"SHIFT", "night", "22:00-06:00", "late 10m", "early 45m", "7h20m"} {
		if !strings.Contains(out, want) {
			t.Errorf("table missing %q:\n%s", want, out)
		}
	}
}

func TestWriteTable_Empty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteTable(&buf, nil, ""); err != nil {
		t.Fatalf("WriteTable failed: %v", err)
	}
	if !strings.Contains(buf.String(), "No punches") {
		t.Errorf("unexpected output %q", buf.String())
	}
}

func TestWriteExcel(t *testing.T) {
	rows, err := Build(context.Background(), sampleSource(), mon, tue, nil)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	var buf bytes.Buffer
	if err := WriteExcel(&buf, rows, ""); err != nil {
		t.Fatalf("WriteExcel failed: %v", err)
	}

	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("reading workbook: %v", err)
	}
	defer func() { _ = f.Close() }()

	got, err := f.GetRows(SheetName)
	if err != nil {
		t.Fatalf("GetRows failed: %v", err)
	}
	if len(got) != len(rows)+1 {
		t.Fatalf("expected %d rows including header, got %d", len(rows)+1, len(got))
	}
	if got[0][0] != "Day" || got[0][2] != "Shift" {
		t.Errorf("unexpected header %v", got[0])
	}
	if got[2][2] != "night" || got[2][7] != "late 10m" || got[2][8] != "10" {
		t.Errorf("unexpected night row %v", got[2])
	}
}
