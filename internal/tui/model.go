// Package tui provides the live shift board for timeclock.
package tui

import (
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/timeclock/internal/attendance"
	"github.com/javiermolinar/timeclock/internal/report"
)

// statusDuration is how long a status message stays visible.
const statusDuration = 3 * time.Second

// Model is the board's bubbletea model.
type Model struct {
	// Dependencies
	repo attendance.Repository
	eval *attendance.Evaluator
	now  func() time.Time
	copy func(string) error

	// State
	snapshots []attendance.Snapshot
	cursor    int
	clock     time.Time
	loading   bool
	status    string
	statusErr bool

	// Components
	keys   keyMap
	help   help.Model
	styles styles

	// Terminal dimensions
	width  int
	height int
}

// Option configures a Model.
type Option func(*Model)

// WithClock overrides the current time.
func WithClock(now func() time.Time) Option {
	return func(m *Model) {
		m.now = now
	}
}

// WithClipboard overrides how the selected status is copied.
func WithClipboard(copyFn func(string) error) Option {
	return func(m *Model) {
		m.copy = copyFn
	}
}

// WithNoColor renders the board without colors.
func WithNoColor() Option {
	return func(m *Model) {
		m.styles = plainStyles()
	}
}

// New creates a board over repo.
func New(repo attendance.Repository, e *attendance.Evaluator, opts ...Option) Model {
	m := Model{
		repo:    repo,
		eval:    e,
		now:     time.Now,
		copy:    clipboard.WriteAll,
		loading: true,
		keys:    defaultKeyMap(),
		help:    help.New(),
		styles:  defaultStyles(),
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.clock = m.now()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(loadBoard(m.repo, m.eval, m.clock), tick())
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tickMsg:
		m.clock = m.now()
		return m, tea.Batch(loadBoard(m.repo, m.eval, m.clock), tick())

	case boardLoadedMsg:
		m.snapshots = msg.snapshots
		m.loading = false
		if m.cursor >= len(m.snapshots) {
			m.cursor = max(len(m.snapshots)-1, 0)
		}
		return m, nil

	case punchRecordedMsg:
		verb := "Checked in to"
		if msg.punch.Kind == attendance.PunchOut {
			verb = "Checked out of"
		}
		var cmd tea.Cmd
		m, cmd = m.setStatus(fmt.Sprintf("%s %s at %s", verb, msg.shift, msg.punch.At.Format(m.eval.Layout())), false)
		return m, tea.Batch(cmd, loadBoard(m.repo, m.eval, m.now()))

	case errMsg:
		return m.setStatus(msg.err.Error(), true)

	case clearStatusMsg:
		m.status, m.statusErr = "", false
		return m, nil
	}

	return m, nil
}

func (m Model) setStatus(s string, isErr bool) (Model, tea.Cmd) {
	m.status, m.statusErr = s, isErr
	return m, clearStatusAfter(statusDuration)
}

func (m Model) selected() (attendance.Snapshot, bool) {
	if m.cursor < 0 || m.cursor >= len(m.snapshots) {
		return attendance.Snapshot{}, false
	}
	return m.snapshots[m.cursor], true
}

// summary renders a snapshot as a single plain-text line.
func (m Model) summary(s attendance.Snapshot) string {
	layout := m.eval.Layout()
	return fmt.Sprintf("%s %s: %s, in %s (%s), out %s (%s)",
		s.Day.Format("2006-01-02"), s.Shift.Name, stateLabel(s.State),
		clockOrDash(s.CheckIn, layout), report.StatusLabel(s.Result.CheckIn),
		clockOrDash(s.CheckOut, layout), report.StatusLabel(s.Result.CheckOut))
}

func clockOrDash(t *time.Time, layout string) string {
	if t == nil {
		return "-"
	}
	return t.Format(layout)
}
