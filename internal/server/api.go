package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"literarylens/internal/domain"
	"literarylens/internal/site"
)

// maxSearchLimit caps the number of results one search returns
const maxSearchLimit = 50

type bookItem struct {
	ID    string `json:"id,omitempty"`
	Title string `json:"title"`
}

type searchResponse struct {
	Query   string     `json:"query"`
	Results []bookItem `json:"results"`
}

type catalogResponse struct {
	Source string     `json:"source"`
	Books  []bookItem `json:"books"`
}

// registerAPI mounts the catalog endpoints under /api.
func registerAPI(r chi.Router, s *site.Site) {
	r.Route("/api", func(r chi.Router) {
		r.Get("/search", handleSearch(s))
		r.Get("/catalog", handleCatalog(s))
		r.Get("/catalog/{id}", handleBook(s))
	})
}

func handleSearch(s *site.Site) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		limit := maxSearchLimit
		if v := q.Get("limit"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n < 1 {
				writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid limit"})
				return
			}
			if n < limit {
				limit = n
			}
		}

		query := q.Get("q")
		writeJSON(w, http.StatusOK, searchResponse{
			Query:   query,
			Results: toItems(s.Search(query, limit)),
		})
	}
}

func handleCatalog(s *site.Site) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, catalogResponse{
			Source: s.Catalog().Name(),
			Books:  toItems(s.Entries()),
		})
	}
}

func handleBook(s *site.Site) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entry, ok := s.Lookup(chi.URLParam(r, "id"))
		if !ok {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "book not found"})
			return
		}
		writeJSON(w, http.StatusOK, bookItem{ID: entry.ID, Title: entry.Title})
	}
}

func toItems(entries []domain.CatalogEntry) []bookItem {
	items := make([]bookItem, 0, len(entries))
	for _, e := range entries {
		items = append(items, bookItem{ID: e.ID, Title: e.Title})
	}
	return items
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
