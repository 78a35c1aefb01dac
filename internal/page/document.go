// Package page parses the site's root document once at startup and detects
// which optional UI regions it carries.
package page

import (
	"fmt"
	"io"
	"io/fs"
	"strings"

	"golang.org/x/net/html"
)

// Document is a parsed HTML document indexed by element id
type Document struct {
	root *html.Node
	byID map[string]*html.Node
}

// Element is a read-only view of one element of the document
type Element struct {
	node *html.Node
}

// Parse reads an HTML document
func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse document: %w", err)
	}

	doc := &Document{root: root, byID: make(map[string]*html.Node)}
	doc.Walk(func(n *html.Node) bool {
		if id := attr(n, "id"); id != "" {
			// First element wins, as getElementById does
			if _, seen := doc.byID[id]; !seen {
				doc.byID[id] = n
			}
		}
		return true
	})
	return doc, nil
}

// Load parses the named file from fsys
func Load(fsys fs.FS, name string) (*Document, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", name, err)
	}
	defer f.Close()
	return Parse(f)
}

// Element returns the element with the given id
func (d *Document) Element(id string) (Element, bool) {
	if d == nil {
		return Element{}, false
	}
	n, ok := d.byID[id]
	return Element{node: n}, ok
}

// Walk visits every element node in document order. Returning false from
// visit skips the node's children.
func (d *Document) Walk(visit func(n *html.Node) bool) {
	if d == nil || d.root == nil {
		return
	}
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && !visit(n) {
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(d.root)
}

// ID returns the element's id attribute
func (e Element) ID() string {
	return attr(e.node, "id")
}

// Tag returns the lowercased tag name
func (e Element) Tag() string {
	if e.node == nil {
		return ""
	}
	return strings.ToLower(e.node.Data)
}

// Attr returns the named attribute or ""
func (e Element) Attr(name string) string {
	return attr(e.node, name)
}

// Text returns the trimmed text content of the element
func (e Element) Text() string {
	return TextContent(e.node)
}

// HasClass reports whether n lists class in its class attribute
func HasClass(n *html.Node, class string) bool {
	for _, c := range strings.Fields(attr(n, "class")) {
		if c == class {
			return true
		}
	}
	return false
}

// Attr returns the named attribute of n or ""
func Attr(n *html.Node, name string) string {
	return attr(n, name)
}

// TextContent concatenates all text below n with whitespace collapsed
func TextContent(n *html.Node) string {
	if n == nil {
		return ""
	}
	var b strings.Builder
	var collect func(*html.Node)
	collect = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			collect(c)
		}
	}
	collect(n)
	return strings.Join(strings.Fields(b.String()), " ")
}

func attr(n *html.Node, name string) string {
	if n == nil {
		return ""
	}
	for _, a := range n.Attr {
		if strings.EqualFold(a.Key, name) {
			return a.Val
		}
	}
	return ""
}
