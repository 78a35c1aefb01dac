// Package audio manages the single ambient audio stream of a page
package audio

import (
	"fmt"
	"log"
	"sync"
	"time"

	"literarylens/internal/domain"
)

// DefaultVolume matches the quiet ambient level of the site
const DefaultVolume = 0.12

// InteractionSource reports user interactions (pointer, key, touch).
// Subscribe returns a function that removes the subscription.
type InteractionSource interface {
	Subscribe(fn func()) (unsubscribe func())
}

// Options configures a Session
type Options struct {
	Volume float64
	// Notify receives session events; it is called without the session lock held
	Notify func(domain.DomainEvent)
}

// Session owns at most one playback handle, the mute flag and the resume
// point of the last requested source.
type Session struct {
	mu     sync.Mutex
	player Player
	opts   Options

	active       Handle
	activeID     uint64
	nextID       uint64
	muted        bool
	lastSource   string
	lastPosition time.Duration
	started      bool
}

// NewSession creates a session playing through player
func NewSession(player Player, opts Options) *Session {
	if opts.Volume <= 0 || opts.Volume > 1 {
		opts.Volume = DefaultVolume
	}
	return &Session{player: player, opts: opts}
}

// Play starts source from the beginning, replacing any active handle.
// It does nothing while muted. Failures leave the recorded source and
// position untouched and are returned for logging only.
func (s *Session) Play(source string) error {
	s.mu.Lock()
	if s.muted {
		s.mu.Unlock()
		return nil
	}
	events, err := s.start(source, 0)
	s.mu.Unlock()

	s.notify(events...)
	return err
}

// ToggleMute flips the mute state and returns it. Muting pauses the active
// handle; unmuting resumes the last source at the recorded position.
func (s *Session) ToggleMute() bool {
	s.mu.Lock()
	s.muted = !s.muted
	muted := s.muted
	events := []domain.DomainEvent{domain.AudioMuteToggledEvent{Muted: muted}}

	if muted {
		if s.active != nil {
			s.active.Pause()
			s.lastPosition = s.active.Position()
		}
	} else if s.lastSource != "" {
		evs, err := s.start(s.lastSource, s.lastPosition)
		if err != nil {
			log.Printf("Audio: resume of %s failed: %v", s.lastSource, err)
		}
		events = append(events, evs...)
	}
	s.mu.Unlock()

	s.notify(events...)
	return muted
}

// Autostart tries to play source right away and, in case the attempt was
// blocked, retries once on the first user interaction. The interaction hook
// removes itself after firing whether or not playback then succeeds.
func (s *Session) Autostart(source string, interactions InteractionSource) {
	if err := s.Play(source); err != nil {
		log.Printf("Audio: autoplay of %s did not start: %v", source, err)
	}
	if interactions == nil {
		return
	}

	var (
		once        sync.Once
		mu          sync.Mutex
		unsubscribe func()
		fired       bool
	)
	remove := func() {
		mu.Lock()
		defer mu.Unlock()
		fired = true
		if unsubscribe != nil {
			unsubscribe()
			unsubscribe = nil
		}
	}

	unsub := interactions.Subscribe(func() {
		once.Do(func() {
			remove()
			if s.Started() {
				return
			}
			if err := s.Play(source); err != nil {
				log.Printf("Audio: playback after interaction failed: %v", err)
			}
		})
	})

	mu.Lock()
	if fired {
		mu.Unlock()
		unsub()
		return
	}
	unsubscribe = unsub
	mu.Unlock()
}

// Started reports whether any playback has ever started successfully
func (s *Session) Started() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.started
}

// Muted reports the mute state
func (s *Session) Muted() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.muted
}

// Snapshot returns a copy of the session state
func (s *Session) Snapshot() domain.AudioState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.AudioState{
		Muted:        s.muted,
		Active:       s.active != nil,
		LastSource:   s.lastSource,
		LastPosition: s.lastPosition.Seconds(),
	}
}

// Position returns the last recorded playback position
func (s *Session) Position() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastPosition
}

// Stop releases the active handle, keeping the resume point
func (s *Session) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.release()
}

// start must be called with s.mu held
func (s *Session) start(source string, at time.Duration) ([]domain.DomainEvent, error) {
	s.release()

	if s.player == nil {
		return nil, ErrNoPlayer
	}

	s.nextID++
	id := s.nextID
	h, err := s.player.Open(source, OpenOptions{
		At:     at,
		Volume: s.opts.Volume,
		Events: Events{
			Progress: func(pos time.Duration) { s.progress(id, pos) },
			Ended:    func() { s.ended(id) },
		},
	})
	if err != nil {
		return []domain.DomainEvent{domain.AudioFailedEvent{Source: source, Err: err}},
			fmt.Errorf("failed to open %s: %w", source, err)
	}
	if err := h.Play(); err != nil {
		h.Close()
		return []domain.DomainEvent{domain.AudioFailedEvent{Source: source, Err: err}},
			fmt.Errorf("failed to play %s: %w", source, err)
	}

	s.active = h
	s.activeID = id
	s.lastSource = source
	s.lastPosition = at
	s.started = true
	return []domain.DomainEvent{domain.AudioStartedEvent{Source: source, Position: at.Seconds()}}, nil
}

// release must be called with s.mu held
func (s *Session) release() {
	if s.active == nil {
		return
	}
	s.active.Close()
	s.active = nil
	s.activeID = 0
}

func (s *Session) progress(id uint64, pos time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if id != s.activeID || s.muted {
		return
	}
	s.lastPosition = pos
}

func (s *Session) ended(id uint64) {
	s.mu.Lock()
	if id != s.activeID {
		s.mu.Unlock()
		return
	}
	source := s.lastSource
	s.release()
	s.lastPosition = 0
	s.mu.Unlock()

	s.notify(domain.AudioStoppedEvent{Source: source})
}

func (s *Session) notify(events ...domain.DomainEvent) {
	if s.opts.Notify == nil {
		return
	}
	for _, e := range events {
		s.opts.Notify(e)
	}
}
