package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// cmdScheduler turns overlay timers into tea commands. The model drains it
// after every update so the timers run through the program loop.
type cmdScheduler struct {
	pending []tea.Cmd
}

func (s *cmdScheduler) After(d time.Duration, fn func()) {
	s.pending = append(s.pending, tea.Tick(d, func(time.Time) tea.Msg {
		return timerMsg{fn: fn}
	}))
}

func (s *cmdScheduler) drain() tea.Cmd {
	if len(s.pending) == 0 {
		return nil
	}
	cmd := tea.Batch(s.pending...)
	s.pending = nil
	return cmd
}
