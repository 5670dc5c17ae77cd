package ui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/timeclock/internal/attendance"
	"github.com/javiermolinar/timeclock/internal/report"
	"github.com/javiermolinar/timeclock/internal/schedule"
	"github.com/javiermolinar/timeclock/internal/timewin"
)

var badgeBase = lipgloss.NewStyle().Bold(true).Padding(0, 1)

var stateBadges = map[attendance.State]lipgloss.Style{
	attendance.StateOpen:      badgeBase.Foreground(lipgloss.Color("0")).Background(lipgloss.Color("2")),
	attendance.StateWarning:   badgeBase.Foreground(lipgloss.Color("0")).Background(lipgloss.Color("3")),
	attendance.StateOutOfTime: badgeBase.Foreground(lipgloss.Color("15")).Background(lipgloss.Color("1")),
}

// stateLabel returns the upper-case label shown inside a state badge.
func stateLabel(s attendance.State) string {
	return strings.ToUpper(strings.ReplaceAll(string(s), "_", " "))
}

// renderBadge renders a live state as a colored badge, or as [LABEL] when
// color is disabled.
func renderBadge(s attendance.State, noColor bool) string {
	if noColor {
		return "[" + stateLabel(s) + "]"
	}
	style, ok := stateBadges[s]
	if !ok {
		style = badgeBase
	}
	return style.Render(stateLabel(s))
}

// formatStatus colors a punctuality label by outcome.
func formatStatus(s *attendance.Status) string {
	label := report.StatusLabel(s)
	switch {
	case s == nil:
		return formatMuted(label)
	case s.IsOnTime:
		return formatOnTime(label)
	default:
		return formatOffTime(label)
	}
}

// separator returns a horizontal rule sized to the terminal, capped at max.
func separator(max int) string {
	w := termWidth()
	if w > max {
		w = max
	}
	return strings.Repeat("─", w)
}

// printShiftRow prints a single shift with consistent formatting.
func printShiftRow(w io.Writer, sh *schedule.Shift, layout string) {
	overnight := ""
	if sh.IsOverNight {
		overnight = formatWarn(" (overnight)")
	}
	available := ""
	if !sh.IsAvailable {
		available = formatMuted(" [unavailable]")
	}
	overtime := ""
	if sh.AllowedOverTime > 0 {
		overtime = fmt.Sprintf("  +%dm overtime", sh.AllowedOverTime)
		if end, err := timewin.TimeToMinutes(sh.End, layout); err == nil {
			overtime += " (until " + timewin.MinutesToTime(end+sh.AllowedOverTime) + ")"
		}
		overtime = formatMuted(overtime)
	}
	fmt.Fprintf(w, "  #%-3d %-16s %s-%s%s%s%s\n",
		sh.ID, sh.Name, sh.Start, sh.End, overnight, available, overtime)
}

// clockOrDash formats t as a time of day, or "-" when t is nil.
func clockOrDash(t *time.Time, layout string) string {
	if t == nil {
		return "-"
	}
	return t.Format(layout)
}
