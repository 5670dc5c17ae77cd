package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	Punch   key.Binding
	Refresh key.Binding
	Copy    key.Binding
	Help    key.Binding
	Quit    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Punch:   key.NewBinding(key.WithKeys("p", "enter"), key.WithHelp("p", "punch in/out")),
		Refresh: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		Copy:    key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy status")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Punch, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Punch, k.Refresh, k.Copy},
		{k.Help, k.Quit},
	}
}

// handleKeyMsg handles keyboard input.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.snapshots)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Punch):
		snap, ok := m.selected()
		if !ok {
			return m, nil
		}
		return m, recordPunch(m.repo, snap, m.now())

	case key.Matches(msg, m.keys.Refresh):
		m.loading = true
		return m, loadBoard(m.repo, m.eval, m.now())

	case key.Matches(msg, m.keys.Copy):
		snap, ok := m.selected()
		if !ok {
			return m, nil
		}
		if err := m.copy(m.summary(snap)); err != nil {
			return m.setStatus(fmt.Sprintf("Copy failed: %v", err), true)
		}
		return m.setStatus("Status copied to clipboard", false)

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}

	return m, nil
}
