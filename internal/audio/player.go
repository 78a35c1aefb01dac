package audio

import (
	"errors"
	"sync"
	"time"
)

var (
	// ErrPlaybackBlocked is returned by players that refuse unsolicited playback
	ErrPlaybackBlocked = errors.New("playback blocked until user interaction")
	// ErrNoPlayer is returned when no audio backend is available
	ErrNoPlayer = errors.New("no audio player available")
)

// Events receives playback progress of one handle. Players call these from
// their own goroutines, never from inside Open or Play.
type Events struct {
	Progress func(position time.Duration)
	Ended    func()
}

// OpenOptions describes a new handle
type OpenOptions struct {
	At     time.Duration
	Volume float64
	Events Events
}

// Handle is one in-progress playback
type Handle interface {
	// Play starts or resumes playback
	Play() error
	Pause()
	// Close stops playback and releases the handle
	Close()
	Position() time.Duration
}

// Player creates playback handles for a source
type Player interface {
	Open(source string, opts OpenOptions) (Handle, error)
}

// Gate wraps a player and blocks playback until Unlock is called, the way
// browsers block audio before the first user gesture.
type Gate struct {
	Player Player

	mu       sync.Mutex
	unlocked bool
}

// NewGate returns a locked gate around p
func NewGate(p Player) *Gate {
	return &Gate{Player: p}
}

// Unlock allows playback from now on
func (g *Gate) Unlock() {
	g.mu.Lock()
	g.unlocked = true
	g.mu.Unlock()
}

// Unlocked reports whether playback is allowed
func (g *Gate) Unlocked() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.unlocked
}

// Open fails with ErrPlaybackBlocked while the gate is locked
func (g *Gate) Open(source string, opts OpenOptions) (Handle, error) {
	if !g.Unlocked() {
		return nil, ErrPlaybackBlocked
	}
	if g.Player == nil {
		return nil, ErrNoPlayer
	}
	return g.Player.Open(source, opts)
}
