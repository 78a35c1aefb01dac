// Package search implements the catalog matcher used by the search overlay
// and the HTTP search endpoint.
package search

import (
	"strings"

	"literarylens/internal/domain"
)

// Query holds the text typed by the user and its normalized form
type Query struct {
	Raw        string
	Normalized string
}

// NewQuery normalizes raw input
func NewQuery(raw string) Query {
	return Query{Raw: raw, Normalized: Normalize(raw)}
}

// Empty reports whether the normalized query has no text
func (q Query) Empty() bool {
	return q.Normalized == ""
}

// Normalize lowercases and trims the query
func Normalize(text string) string {
	return strings.ToLower(strings.TrimSpace(text))
}

// Match returns the entries whose title contains the normalized query,
// in catalog order. An empty query matches nothing.
func Match(query string, entries []domain.CatalogEntry) []domain.CatalogEntry {
	q := Normalize(query)
	if q == "" {
		return nil
	}

	var results []domain.CatalogEntry
	for _, entry := range entries {
		if strings.Contains(strings.ToLower(entry.Title), q) {
			results = append(results, entry)
		}
	}
	return results
}

// Limit truncates results to at most n entries; n <= 0 means no limit
func Limit(results []domain.CatalogEntry, n int) []domain.CatalogEntry {
	if n <= 0 || len(results) <= n {
		return results
	}
	return results[:n]
}
