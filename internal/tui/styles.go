package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/timeclock/internal/attendance"
)

// styles holds every lipgloss style the board renders with.
type styles struct {
	Title    lipgloss.Style
	Clock    lipgloss.Style
	Cursor   lipgloss.Style
	Muted    lipgloss.Style
	OnTime   lipgloss.Style
	OffTime  lipgloss.Style
	Status   lipgloss.Style
	Error    lipgloss.Style
	Badges   map[attendance.State]lipgloss.Style
	plain    bool
}

func defaultStyles() styles {
	badge := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	return styles{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		Clock:    lipgloss.NewStyle().Bold(true),
		Cursor:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		Muted:    lipgloss.NewStyle().Faint(true),
		OnTime:   lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		OffTime:  lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
		Status:   lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
		Badges: map[attendance.State]lipgloss.Style{
			attendance.StateOpen:      badge.Foreground(lipgloss.Color("0")).Background(lipgloss.Color("2")),
			attendance.StateWarning:   badge.Foreground(lipgloss.Color("0")).Background(lipgloss.Color("3")),
			attendance.StateOutOfTime: badge.Foreground(lipgloss.Color("15")).Background(lipgloss.Color("1")),
		},
	}
}

func plainStyles() styles {
	plain := lipgloss.NewStyle()
	return styles{
		Title:    plain,
		Clock:    plain,
		Cursor:   plain,
		Muted:    plain,
		OnTime:   plain,
		OffTime:  plain,
		Status:   plain,
		Error:    plain,
		Badges:   map[attendance.State]lipgloss.Style{},
		plain:    true,
	}
}

func stateLabel(s attendance.State) string {
	return strings.ToUpper(strings.ReplaceAll(string(s), "_", " "))
}

// badge renders a state as a colored badge, or as [LABEL] without colors.
func (s styles) badge(state attendance.State) string {
	if s.plain {
		return "[" + stateLabel(state) + "]"
	}
	style, ok := s.Badges[state]
	if !ok {
		return "[" + stateLabel(state) + "]"
	}
	return style.Render(stateLabel(state))
}
