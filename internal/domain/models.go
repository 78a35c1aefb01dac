package domain

// CatalogEntry is one displayed item of the catalog
type CatalogEntry struct {
	ID    string // opaque identifier, empty when the source has none
	Title string
}

// HasID reports whether the entry carries an identifier
func (e CatalogEntry) HasID() bool {
	return e.ID != ""
}

// NavigationKindDetail is the only navigation kind the overlay emits
const NavigationKindDetail = "detail"

// AudioState is a read-only copy of the audio session
type AudioState struct {
	Muted        bool
	Active       bool
	LastSource   string
	LastPosition float64 // seconds
}
