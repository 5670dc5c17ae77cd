package tui

import (
	"context"
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/timeclock/internal/attendance"
)

// boardLoadedMsg is sent when the shifts and their punches are loaded.
type boardLoadedMsg struct {
	snapshots []attendance.Snapshot
}

// punchRecordedMsg is sent after a punch is stored.
type punchRecordedMsg struct {
	punch *attendance.Punch
	shift string
}

// errMsg is sent when an error occurs.
type errMsg struct {
	err error
}

// tickMsg drives the live clock.
type tickMsg time.Time

// clearStatusMsg clears the status line.
type clearStatusMsg struct{}

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func clearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

// loadBoard snapshots every shift at now, each on its own anchor day.
func loadBoard(repo attendance.Repository, e *attendance.Evaluator, now time.Time) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		shifts, err := repo.ListShifts(ctx)
		if err != nil {
			return errMsg{err: fmt.Errorf("listing shifts: %w", err)}
		}

		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		punches, err := repo.ListPunches(ctx, today.AddDate(0, 0, -1), today)
		if err != nil {
			return errMsg{err: fmt.Errorf("listing punches: %w", err)}
		}

		snapshots := make([]attendance.Snapshot, 0, len(shifts))
		for _, sh := range shifts {
			day := attendance.AnchorDay(sh, now, e.Layout())
			snapshots = append(snapshots, e.Snapshot(sh, day, punches, now))
		}
		return boardLoadedMsg{snapshots: snapshots}
	}
}

// recordPunch stores the punch that follows the shift's current state:
// a check-out when checked in, a check-in otherwise.
func recordPunch(repo attendance.Repository, snap attendance.Snapshot, now time.Time) tea.Cmd {
	return func() tea.Msg {
		if !snap.Shift.IsAvailable {
			return errMsg{err: errors.New("shift is marked unavailable")}
		}

		kind := attendance.PunchIn
		if snap.CheckedIn {
			kind = attendance.PunchOut
		}

		p := attendance.NewPunch(snap.Shift.ID, kind, snap.Day, now)
		p.CreatedAt = now
		if err := repo.RecordPunch(context.Background(), p); err != nil {
			return errMsg{err: fmt.Errorf("recording punch: %w", err)}
		}
		return punchRecordedMsg{punch: p, shift: snap.Shift.Name}
	}
}
