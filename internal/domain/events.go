package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventNavigationRequested EventType = "NavigationRequested"
	EventOverlayChanged      EventType = "OverlayChanged"
	EventAudioStarted        EventType = "AudioStarted"
	EventAudioStopped        EventType = "AudioStopped"
	EventAudioMuteToggled    EventType = "AudioMuteToggled"
	EventAudioFailed         EventType = "AudioFailed"
	EventCatalogLoaded       EventType = "CatalogLoaded"
	EventError               EventType = "Error"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// NavigationRequestedEvent is emitted when a search result is activated
type NavigationRequestedEvent struct {
	Kind string
	ID   string
}

func (e NavigationRequestedEvent) Type() EventType { return EventNavigationRequested }

// OverlayChangedEvent is emitted on every overlay state transition
type OverlayChangedEvent struct {
	From string
	To   string
}

func (e OverlayChangedEvent) Type() EventType { return EventOverlayChanged }

// AudioStartedEvent is emitted when a playback handle starts
type AudioStartedEvent struct {
	Source   string
	Position float64
}

func (e AudioStartedEvent) Type() EventType { return EventAudioStarted }

// AudioStoppedEvent is emitted when the active handle finishes naturally
type AudioStoppedEvent struct {
	Source string
}

func (e AudioStoppedEvent) Type() EventType { return EventAudioStopped }

// AudioMuteToggledEvent is emitted after the mute state flips
type AudioMuteToggledEvent struct {
	Muted bool
}

func (e AudioMuteToggledEvent) Type() EventType { return EventAudioMuteToggled }

// AudioFailedEvent is emitted when a playback attempt fails
type AudioFailedEvent struct {
	Source string
	Err    error
}

func (e AudioFailedEvent) Type() EventType { return EventAudioFailed }

// CatalogLoadedEvent is emitted once the catalog source has been read
type CatalogLoadedEvent struct {
	Source  string
	Entries int
}

func (e CatalogLoadedEvent) Type() EventType { return EventCatalogLoaded }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }
