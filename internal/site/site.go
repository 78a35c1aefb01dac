// Package site ties one loaded page to the cores that serve it
package site

import (
	"fmt"
	"io/fs"
	"log"
	"sync"

	"literarylens/internal/audio"
	"literarylens/internal/catalog"
	"literarylens/internal/domain"
	"literarylens/internal/page"
	"literarylens/internal/search"
)

// Options configures Open
type Options struct {
	Index       string
	CatalogFile string
	Audio       AudioOptions
}

// AudioOptions configures the page's audio session
type AudioOptions struct {
	Enabled bool
	Source  string
	Volume  float64
	// Player may be nil; the session then logs every playback attempt as failed
	Player audio.Player
	Notify func(domain.DomainEvent)
}

// Site is a parsed page together with its catalog and optional features
type Site struct {
	doc     *page.Document
	caps    page.Capabilities
	catalog catalog.Source
	opts    Options

	audioOnce sync.Once
	session   *audio.Session
}

// Open parses the index document of fsys and detects what it offers
func Open(fsys fs.FS, opts Options) (*Site, error) {
	if opts.Index == "" {
		opts.Index = "index.html"
	}
	doc, err := page.Load(fsys, opts.Index)
	if err != nil {
		return nil, fmt.Errorf("failed to load page: %w", err)
	}
	return New(doc, catalog.Build(doc, fsys, opts.CatalogFile), opts), nil
}

// New wraps an already parsed document
func New(doc *page.Document, source catalog.Source, opts Options) *Site {
	if source == nil {
		source = catalog.Empty{}
	}
	s := &Site{
		doc:     doc,
		caps:    page.Detect(doc),
		catalog: source,
		opts:    opts,
	}
	if s.caps.Overlay == nil {
		log.Printf("Search overlay not available, missing %v", page.Missing(doc))
	}
	return s
}

// Document returns the parsed page
func (s *Site) Document() *page.Document { return s.doc }

// Capabilities returns the optional regions of the page
func (s *Site) Capabilities() page.Capabilities { return s.caps }

// Catalog returns the page's catalog source
func (s *Site) Catalog() catalog.Source { return s.catalog }

// Entries returns the current catalog entries
func (s *Site) Entries() []domain.CatalogEntry { return s.catalog.Entries() }

// Search matches query against the catalog. A limit <= 0 returns every match.
func (s *Site) Search(query string, limit int) []domain.CatalogEntry {
	return search.Limit(search.Match(query, s.catalog.Entries()), limit)
}

// Lookup finds a catalog entry by id
func (s *Site) Lookup(id string) (domain.CatalogEntry, bool) {
	if id == "" {
		return domain.CatalogEntry{}, false
	}
	for _, e := range s.catalog.Entries() {
		if e.ID == id {
			return e, true
		}
	}
	return domain.CatalogEntry{}, false
}

// AudioSource is the track the page plays on load
func (s *Site) AudioSource() string { return s.opts.Audio.Source }

// Audio returns the page's audio session, creating it on first use. Every
// caller gets the same session. It is nil when the page has no audio
// control or audio is disabled.
func (s *Site) Audio() *audio.Session {
	s.audioOnce.Do(func() {
		if s.caps.AudioButton == nil {
			log.Printf("No audio control on page, audio disabled")
			return
		}
		if !s.opts.Audio.Enabled {
			return
		}
		s.session = audio.NewSession(s.opts.Audio.Player, audio.Options{
			Volume: s.opts.Audio.Volume,
			Notify: s.opts.Audio.Notify,
		})
	})
	return s.session
}
