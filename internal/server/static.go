package server

import (
	"io/fs"
	"net/http"
	"path"
	"strings"
)

// staticHandler serves files from a tree. A request whose last path segment
// has no extension and matches no file gets the index document, so client
// side routes survive a reload.
type staticHandler struct {
	fsys  fs.FS
	index string
	files http.Handler
}

func newStaticHandler(fsys fs.FS, index string) *staticHandler {
	return &staticHandler{
		fsys:  fsys,
		index: index,
		files: http.FileServer(http.FS(fsys)),
	}
}

func (h *staticHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.fsys == nil {
		http.NotFound(w, r)
		return
	}

	name := strings.TrimPrefix(path.Clean("/"+r.URL.Path), "/")
	if name == "" || h.exists(name) {
		h.files.ServeHTTP(w, r)
		return
	}

	if isRoute(r.URL.Path) {
		http.ServeFileFS(w, r, h.fsys, h.index)
		return
	}
	http.NotFound(w, r)
}

func (h *staticHandler) exists(name string) bool {
	info, err := fs.Stat(h.fsys, name)
	if err != nil {
		return false
	}
	if !info.IsDir() {
		return true
	}
	_, err = fs.Stat(h.fsys, path.Join(name, "index.html"))
	return err == nil
}

// isRoute reports whether the last segment of p carries no '.'. A trailing
// slash leaves an empty last segment, so directory-like paths are routes.
func isRoute(p string) bool {
	last := p[strings.LastIndex(p, "/")+1:]
	return !strings.Contains(last, ".")
}
