// Package web holds the default LiteraryLens site served when no site root
// is configured
package web

import (
	"embed"
	"io/fs"
)

//go:embed site
var content embed.FS

// Site returns the embedded site tree rooted at its index.html
func Site() fs.FS {
	sub, err := fs.Sub(content, "site")
	if err != nil {
		panic(err)
	}
	return sub
}
