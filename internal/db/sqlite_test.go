package db

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/javiermolinar/timeclock/internal/attendance"
	"github.com/javiermolinar/timeclock/internal/schedule"
)

func newTestRepo(t *testing.T, opts ...Option) *SQLite {
	t.Helper()

	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	repo, err := New(dbPath, opts...)
	if err != nil {
		t.Fatalf("failed to create test repo: %v", err)
	}

	t.Cleanup(func() {
		_ = repo.Close()
	})

	return repo
}

func createShift(t *testing.T, repo *SQLite, name, start, end string, overnight bool) *schedule.Shift {
	t.Helper()

	sh := &schedule.Shift{Name: name, Start: start, End: end, IsOverNight: overnight, IsAvailable: true}
	if err := repo.CreateShift(context.Background(), sh); err != nil {
		t.Fatalf("CreateShift failed: %v", err)
	}
	return sh
}

func localClock(day time.Time, hour, minute int) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, time.Local)
}

func TestNew_CreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "timeclock.db")

	repo, err := New(path)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	_ = repo.Close()
}

func TestNew_NotADatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.db")
	junk := strings.Repeat("plain text, not a database\n", 64)
	if err := os.WriteFile(path, []byte(junk), 0o644); err != nil {
		t.Fatalf("writing file: %v", err)
	}

	repo, err := New(path)
	if err == nil {
		_ = repo.Close()
		t.Fatal("expected New to fail on a file that is not a database")
	}
}

func TestCreateShift(t *testing.T) {
	repo := newTestRepo(t)

	sh := createShift(t, repo, "day", "09:00", "17:00", false)
	if sh.ID == 0 {
		t.Error("expected ID to be set after insert")
	}

	got, err := repo.GetShift(context.Background(), sh.ID)
	if err != nil {
		t.Fatalf("GetShift failed: %v", err)
	}
	if *got != *sh {
		t.Errorf("GetShift = %+v, want %+v", got, sh)
	}
}

func TestCreateShift_Invalid(t *testing.T) {
	repo := newTestRepo(t)

	tests := []struct {
		name  string
		shift schedule.Shift
	}{
		{name: "missing name", shift: schedule.Shift{Start: "09:00", End: "17:00"}},
		{name: "overnight flag missing", shift: schedule.Shift{Name: "night", Start: "22:00", End: "06:00"}},
		{name: "overnight flag wrong", shift: schedule.Shift{Name: "day", Start: "09:00", End: "17:00", IsOverNight: true}},
		{name: "zero length", shift: schedule.Shift{Name: "none", Start: "09:00", End: "09:00"}},
		{name: "bad time", shift: schedule.Shift{Name: "bad", Start: "9:00", End: "17:00"}},
		{name: "negative overtime", shift: schedule.Shift{Name: "ot", Start: "09:00", End: "17:00", AllowedOverTime: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sh := tt.shift
			err := repo.CreateShift(context.Background(), &sh)
			if !errors.Is(err, attendance.ErrInvalidShift) {
				t.Errorf("expected ErrInvalidShift, got %v", err)
			}
		})
	}
}

func TestCreateShift_WithSeconds(t *testing.T) {
	repo := newTestRepo(t, WithTimeFormat("15:04:05"))

	sh := &schedule.Shift{Name: "precise", Start: "09:00:30", End: "17:00:00"}
	if err := repo.CreateShift(context.Background(), sh); err != nil {
		t.Fatalf("CreateShift failed: %v", err)
	}

	sh = &schedule.Shift{Name: "short", Start: "09:00", End: "17:00"}
	if err := repo.CreateShift(context.Background(), sh); !errors.Is(err, attendance.ErrInvalidShift) {
		t.Errorf("expected HH:MM times to be rejected with a seconds layout, got %v", err)
	}
}

func TestCreateShift_DuplicateName(t *testing.T) {
	repo := newTestRepo(t)
	createShift(t, repo, "day", "09:00", "17:00", false)

	err := repo.CreateShift(context.Background(), &schedule.Shift{Name: "day", Start: "08:00", End: "16:00"})
	if err == nil {
		t.Error("expected error for duplicate shift name")
	}
}

func TestGetShift_NotFound(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.GetShift(context.Background(), 999)
	if !errors.Is(err, attendance.ErrShiftNotFound) {
		t.Errorf("expected ErrShiftNotFound, got %v", err)
	}
}

func TestListShifts(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	shifts, err := repo.ListShifts(ctx)
	if err != nil {
		t.Fatalf("ListShifts failed: %v", err)
	}
	if len(shifts) != 0 {
		t.Fatalf("expected no shifts, got %d", len(shifts))
	}

	createShift(t, repo, "day", "09:00", "17:00", false)
	createShift(t, repo, "night", "22:00", "06:00", true)

	shifts, err = repo.ListShifts(ctx)
	if err != nil {
		t.Fatalf("ListShifts failed: %v", err)
	}
	if len(shifts) != 2 {
		t.Fatalf("expected 2 shifts, got %d", len(shifts))
	}
	if shifts[0].Name != "day" || shifts[1].Name != "night" || !shifts[1].IsOverNight {
		t.Errorf("unexpected shifts: %+v, %+v", shifts[0], shifts[1])
	}
}

func TestRecordPunch(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	day := time.Date(2025, 3, 12, 0, 0, 0, 0, time.Local)
	sh := createShift(t, repo, "day", "09:00", "17:00", false)

	in := attendance.NewPunch(sh.ID, attendance.PunchIn, day, localClock(day, 9, 5))
	if err := repo.RecordPunch(ctx, in); err != nil {
		t.Fatalf("RecordPunch failed: %v", err)
	}

	punches, err := repo.ListPunches(ctx, day, day)
	if err != nil {
		t.Fatalf("ListPunches failed: %v", err)
	}
	if len(punches) != 1 {
		t.Fatalf("expected 1 punch, got %d", len(punches))
	}

	got := punches[0]
	if got.ID != in.ID || got.ShiftID != sh.ID || got.Kind != attendance.PunchIn {
		t.Errorf("unexpected punch %+v", got)
	}
	if !got.At.Equal(in.At) {
		t.Errorf("At = %v, want %v", got.At, in.At)
	}
	if !got.Day.Equal(day) {
		t.Errorf("Day = %v, want %v", got.Day, day)
	}
}

func TestRecordPunch_FillsID(t *testing.T) {
	repo := newTestRepo(t)
	day := time.Date(2025, 3, 12, 0, 0, 0, 0, time.Local)
	sh := createShift(t, repo, "day", "09:00", "17:00", false)

	p := &attendance.Punch{ShiftID: sh.ID, Kind: attendance.PunchOut, Day: day, At: localClock(day, 17, 0)}
	if err := repo.RecordPunch(context.Background(), p); err != nil {
		t.Fatalf("RecordPunch failed: %v", err)
	}
	if p.ID == "" || p.CreatedAt.IsZero() {
		t.Errorf("expected ID and CreatedAt to be filled, got %+v", p)
	}
}

func TestRecordPunch_Errors(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	day := time.Date(2025, 3, 12, 0, 0, 0, 0, time.Local)
	sh := createShift(t, repo, "day", "09:00", "17:00", false)

	err := repo.RecordPunch(ctx, attendance.NewPunch(999, attendance.PunchIn, day, localClock(day, 9, 0)))
	if !errors.Is(err, attendance.ErrShiftNotFound) {
		t.Errorf("expected ErrShiftNotFound, got %v", err)
	}

	err = repo.RecordPunch(ctx, attendance.NewPunch(sh.ID, "lunch", day, localClock(day, 9, 0)))
	if !errors.Is(err, attendance.ErrInvalidPunchKind) {
		t.Errorf("expected ErrInvalidPunchKind, got %v", err)
	}
}

func TestListPunches_RangeAndOrder(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	sh := createShift(t, repo, "night", "22:00", "06:00", true)

	mon := time.Date(2025, 3, 10, 0, 0, 0, 0, time.Local)
	tue := mon.AddDate(0, 0, 1)
	wed := mon.AddDate(0, 0, 2)

	// Inserted out of order; the overnight check-out belongs to Monday.
	punches := []*attendance.Punch{
		attendance.NewPunch(sh.ID, attendance.PunchOut, mon, localClock(tue, 6, 0)),
		attendance.NewPunch(sh.ID, attendance.PunchIn, wed, localClock(wed, 22, 0)),
		attendance.NewPunch(sh.ID, attendance.PunchIn, mon, localClock(mon, 21, 55)),
		attendance.NewPunch(sh.ID, attendance.PunchIn, tue, localClock(tue, 22, 10)),
	}
	for _, p := range punches {
		if err := repo.RecordPunch(ctx, p); err != nil {
			t.Fatalf("RecordPunch failed: %v", err)
		}
	}

	got, err := repo.ListPunches(ctx, mon, tue)
	if err != nil {
		t.Fatalf("ListPunches failed: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 punches, got %d", len(got))
	}

	wantOrder := []string{punches[2].ID, punches[0].ID, punches[3].ID}
	for i, id := range wantOrder {
		if got[i].ID != id {
			t.Errorf("punch %d = %s (%s), want %s", i, got[i].ID, got[i].At, id)
		}
	}
}

func TestLastPunch(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	day := time.Date(2025, 3, 12, 0, 0, 0, 0, time.Local)
	sh := createShift(t, repo, "day", "09:00", "17:00", false)

	if _, err := repo.LastPunch(ctx, sh.ID, day); !errors.Is(err, attendance.ErrPunchNotFound) {
		t.Fatalf("expected ErrPunchNotFound, got %v", err)
	}

	in := attendance.NewPunch(sh.ID, attendance.PunchIn, day, localClock(day, 9, 0))
	out := attendance.NewPunch(sh.ID, attendance.PunchOut, day, localClock(day, 17, 0))
	for _, p := range []*attendance.Punch{out, in} {
		if err := repo.RecordPunch(ctx, p); err != nil {
			t.Fatalf("RecordPunch failed: %v", err)
		}
	}

	last, err := repo.LastPunch(ctx, sh.ID, day)
	if err != nil {
		t.Fatalf("LastPunch failed: %v", err)
	}
	if last.ID != out.ID {
		t.Errorf("LastPunch = %s, want the check-out %s", last.Kind, out.ID)
	}
	if attendance.IsCheckedIn(last) {
		t.Error("expected checked out after the last punch")
	}
}

func TestWithLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)

	repo := newTestRepo(t, WithLogger(logger))
	createShift(t, repo, "day", "09:00", "17:00", false)

	if !strings.Contains(buf.String(), "shift created") {
		t.Errorf("expected shift creation to be logged, got %q", buf.String())
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		input string
		want  time.Time
	}{
		{"2025-03-12", time.Date(2025, 3, 12, 0, 0, 0, 0, time.Local)},
		{"2025-03-12T00:00:00Z", time.Date(2025, 3, 12, 0, 0, 0, 0, time.Local)},
	}

	for _, tt := range tests {
		got, err := parseDate(tt.input)
		if err != nil {
			t.Errorf("parseDate(%q) error: %v", tt.input, err)
			continue
		}
		if !got.Equal(tt.want) {
			t.Errorf("parseDate(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}

	if _, err := parseDate("12/03/2025"); err == nil {
		t.Error("expected error for unrecognized format")
	}
}
