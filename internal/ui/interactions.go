package ui

import "sync"

// Interactions fans user activity out to one-shot listeners such as the
// audio autoplay fallback
type Interactions struct {
	mu     sync.Mutex
	nextID int
	subs   map[int]func()
}

// NewInteractions creates an empty interaction source
func NewInteractions() *Interactions {
	return &Interactions{subs: make(map[int]func())}
}

// Subscribe registers fn and returns a function removing it
func (i *Interactions) Subscribe(fn func()) func() {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.nextID++
	id := i.nextID
	i.subs[id] = fn
	return func() {
		i.mu.Lock()
		delete(i.subs, id)
		i.mu.Unlock()
	}
}

// Len returns the number of listeners
func (i *Interactions) Len() int {
	i.mu.Lock()
	defer i.mu.Unlock()
	return len(i.subs)
}

// Fire notifies every listener. Listeners may unsubscribe while running.
func (i *Interactions) Fire() {
	i.mu.Lock()
	fns := make([]func(), 0, len(i.subs))
	for _, fn := range i.subs {
		fns = append(fns, fn)
	}
	i.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}
