package ui

import (
	"time"

	"literarylens/internal/eventbus"
)

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// tickMsg refreshes the audio position shown in the header
type tickMsg time.Time

// timerMsg completes an overlay transition on the UI goroutine
type timerMsg struct {
	fn func()
}

// helpPagerMsg contains the result of the help pager
type helpPagerMsg struct {
	err error
}

// clearStatusMsg removes the status message
type clearStatusMsg struct{}
