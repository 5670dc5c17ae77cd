package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/javiermolinar/timeclock/internal/attendance"
	"github.com/javiermolinar/timeclock/internal/report"
)

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder
	layout := m.eval.Layout()

	b.WriteString(m.styles.Title.Render("timeclock"))
	b.WriteString("  ")
	b.WriteString(m.styles.Clock.Render(m.clock.Format("Mon 2006-01-02 " + layout)))
	b.WriteString("\n\n")

	switch {
	case m.loading && len(m.snapshots) == 0:
		b.WriteString(m.styles.Muted.Render("Loading shifts..."))
		b.WriteString("\n")
	case len(m.snapshots) == 0:
		b.WriteString(m.styles.Muted.Render("No shifts yet. Add one with: timeclock shift add"))
		b.WriteString("\n")
	default:
		for i, s := range m.snapshots {
			b.WriteString(m.fit(m.renderRow(s, i == m.cursor)))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	if m.status != "" {
		style := m.styles.Status
		if m.statusErr {
			style = m.styles.Error
		}
		b.WriteString(m.fit(style.Render(m.status)))
		b.WriteString("\n")
	}
	b.WriteString(m.help.View(m.keys))

	return b.String()
}

func (m Model) renderRow(s attendance.Snapshot, selected bool) string {
	layout := m.eval.Layout()

	cursor := "  "
	if selected {
		cursor = m.styles.Cursor.Render("> ")
	}

	window := fmt.Sprintf("%s-%s", s.Shift.Start, s.Shift.End)
	if s.Window != nil && s.Window.IsOverNight {
		window += "+1"
	}

	in := fmt.Sprintf("in %s %s", clockOrDash(s.CheckIn, layout), m.renderStatus(s.Result.CheckIn))
	out := fmt.Sprintf("out %s %s", clockOrDash(s.CheckOut, layout), m.renderStatus(s.Result.CheckOut))

	note := ""
	if !s.Shift.IsAvailable {
		note = m.styles.Muted.Render("  unavailable")
	}

	return fmt.Sprintf("%s%-14s %s %-14s %s  %s  %s%s",
		cursor,
		s.Shift.Name,
		s.Day.Format("Mon 01-02"),
		window,
		m.styles.badge(s.State),
		in,
		out,
		note,
	)
}

func (m Model) renderStatus(s *attendance.Status) string {
	label := report.StatusLabel(s)
	switch {
	case s == nil:
		return m.styles.Muted.Render(label)
	case s.IsOnTime:
		return m.styles.OnTime.Render(label)
	default:
		return m.styles.OffTime.Render(label)
	}
}

// fit truncates a styled line to the terminal width.
func (m Model) fit(line string) string {
	if m.width <= 0 {
		return line
	}
	return ansi.Truncate(line, m.width, "…")
}
