package page

// Element ids the site markup uses for the optional UI regions
const (
	IDSearchTrigger = "lens-search-btn"
	IDSearchOverlay = "lens-search-overlay"
	IDSearchBox     = "lens-search-box"
	IDSearchInput   = "lens-search-input"
	IDSearchClose   = "lens-search-close"
	IDSearchResults = "lens-search-results"
	IDAudioButton   = "audio-mute-btn"
)

// OverlayRegion holds the elements the search overlay needs. It only exists
// when every one of them is present.
type OverlayRegion struct {
	Trigger Element
	Overlay Element
	Box     Element
	Input   Element
	Close   Element
	Results Element
}

// Capabilities lists the optional regions found in a document. A nil field
// means the feature does not apply to this page.
type Capabilities struct {
	Overlay     *OverlayRegion
	AudioButton *Element
	BookCards   int
}

// Detect inspects the document once. A nil document has no capabilities.
func Detect(doc *Document) Capabilities {
	var caps Capabilities
	if doc == nil {
		return caps
	}

	ids := []string{IDSearchTrigger, IDSearchOverlay, IDSearchBox, IDSearchInput, IDSearchClose, IDSearchResults}
	found := make([]Element, 0, len(ids))
	for _, id := range ids {
		el, ok := doc.Element(id)
		if !ok {
			break
		}
		found = append(found, el)
	}
	if len(found) == len(ids) {
		caps.Overlay = &OverlayRegion{
			Trigger: found[0],
			Overlay: found[1],
			Box:     found[2],
			Input:   found[3],
			Close:   found[4],
			Results: found[5],
		}
	}

	if el, ok := doc.Element(IDAudioButton); ok {
		caps.AudioButton = &el
	}

	caps.BookCards = len(BookTitles(doc))
	return caps
}

// Missing returns the overlay element ids absent from doc, in lookup order
func Missing(doc *Document) []string {
	var missing []string
	for _, id := range []string{IDSearchTrigger, IDSearchOverlay, IDSearchBox, IDSearchInput, IDSearchClose, IDSearchResults} {
		if _, ok := doc.Element(id); !ok {
			missing = append(missing, id)
		}
	}
	return missing
}
