// Package catalog provides the read-only view over the displayed items
package catalog

import (
	"errors"
	"fmt"
	"io/fs"
	"log"

	"github.com/pelletier/go-toml/v2"

	"literarylens/internal/domain"
	"literarylens/internal/page"
)

// ErrNoSource is returned when a catalog source cannot be read
var ErrNoSource = errors.New("catalog source not available")

// Source yields the current catalog entries. Sources may be re-read on every
// query; callers must not mutate the returned slice.
type Source interface {
	Entries() []domain.CatalogEntry
	Name() string
}

// Static is an in-memory list supplied by the host
type Static []domain.CatalogEntry

// Entries returns the list
func (s Static) Entries() []domain.CatalogEntry { return s }

// Name identifies the source in logs
func (s Static) Name() string { return "list" }

// Markup reads book cards from a parsed page document
type Markup struct {
	doc *page.Document
}

// NewMarkup creates a markup source; a nil document yields no entries
func NewMarkup(doc *page.Document) *Markup {
	return &Markup{doc: doc}
}

// Entries returns the titles of the rendered book cards
func (m *Markup) Entries() []domain.CatalogEntry {
	titles := page.BookTitles(m.doc)
	entries := make([]domain.CatalogEntry, 0, len(titles))
	for _, t := range titles {
		entries = append(entries, domain.CatalogEntry{ID: t.ID, Title: t.Title})
	}
	return entries
}

// Name identifies the source in logs
func (m *Markup) Name() string { return "markup" }

// Fallback returns the entries of the first source that has any
type Fallback []Source

// Entries tries each source in order
func (f Fallback) Entries() []domain.CatalogEntry {
	for _, s := range f {
		if s == nil {
			continue
		}
		if entries := s.Entries(); len(entries) > 0 {
			return entries
		}
	}
	return nil
}

// Name identifies the source in logs
func (f Fallback) Name() string { return "fallback" }

// Empty is the catalog used when no source exists
type Empty struct{}

// Entries returns nothing
func (Empty) Entries() []domain.CatalogEntry { return nil }

// Name identifies the source in logs
func (Empty) Name() string { return "empty" }

// fileFormat is the layout of catalog.toml
type fileFormat struct {
	Books []struct {
		ID    any    `toml:"id"`
		Title string `toml:"title"`
	} `toml:"books"`
}

// LoadFile reads a TOML catalog:
//
//	[[books]]
//	id = 1
//	title = "Dune"
func LoadFile(fsys fs.FS, name string) (Static, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNoSource, name)
		}
		return nil, fmt.Errorf("failed to read catalog %s: %w", name, err)
	}

	var parsed fileFormat
	if err := toml.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse catalog %s: %w", name, err)
	}

	entries := make(Static, 0, len(parsed.Books))
	for _, b := range parsed.Books {
		if b.Title == "" {
			continue
		}
		id := ""
		if b.ID != nil {
			id = fmt.Sprint(b.ID)
		}
		entries = append(entries, domain.CatalogEntry{ID: id, Title: b.Title})
	}
	return entries, nil
}

// Build assembles the page's catalog: rendered markup first, then the list
// from the catalog file. A missing file is not an error.
func Build(doc *page.Document, fsys fs.FS, file string) Source {
	sources := Fallback{NewMarkup(doc)}
	if file != "" && fsys != nil {
		list, err := LoadFile(fsys, file)
		switch {
		case err == nil:
			sources = append(sources, list)
		case errors.Is(err, ErrNoSource):
			log.Printf("No catalog file %s, using markup only", file)
		default:
			log.Printf("Ignoring catalog file: %v", err)
		}
	}
	return sources
}
