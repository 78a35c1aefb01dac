package overlay

import (
	"time"

	"literarylens/internal/domain"
)

// Control is a clickable element such as the trigger or the close button
type Control interface {
	OnActivate(fn func())
}

// Surface is the full-screen layer behind the search box
type Surface interface {
	SetVisible(visible bool)
	SetInteractive(interactive bool)
	// OnBackdrop registers fn for pointer activation outside the box
	OnBackdrop(fn func())
}

// Box is the panel holding the input and the results
type Box interface {
	SetVisible(visible bool)
}

// Input is the query text field
type Input interface {
	Focus()
	SetText(text string)
	OnInput(fn func(text string))
	// OnKey registers fn for key presses; fn reports whether it consumed the key
	OnKey(fn func(key Key) bool)
}

// Results is the rendered result list
type Results interface {
	Render(entries []domain.CatalogEntry)
	// ShowEmpty renders the "no results" placeholder
	ShowEmpty()
	Clear()
	Focus(index int)
	OnActivate(fn func(index int))
}

// Elements are the UI regions the controller drives. Every field is
// required; see New.
type Elements struct {
	Trigger Control
	Overlay Surface
	Box     Box
	Input   Input
	Close   Control
	Results Results
}

func (e Elements) complete() bool {
	return e.Trigger != nil && e.Overlay != nil && e.Box != nil &&
		e.Input != nil && e.Close != nil && e.Results != nil
}

// Scheduler runs fn once the transition started now has finished. Hosts
// deliver fn on the same goroutine as their input events.
type Scheduler interface {
	After(d time.Duration, fn func())
}

// SchedulerFunc adapts a function to Scheduler
type SchedulerFunc func(d time.Duration, fn func())

// After calls f
func (f SchedulerFunc) After(d time.Duration, fn func()) { f(d, fn) }

// Immediate completes every transition synchronously
var Immediate Scheduler = SchedulerFunc(func(_ time.Duration, fn func()) { fn() })

// Navigator receives the navigation request of an activated result
type Navigator func(kind, id string)
