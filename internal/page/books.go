package page

import (
	"strings"

	"golang.org/x/net/html"
)

// BookTitle is a title heading found inside a book card
type BookTitle struct {
	ID    string
	Title string
}

// BookTitles returns every h3 inside a .book-card element, in document
// order. The id comes from data-book-id on the heading, falling back to the
// enclosing card.
func BookTitles(doc *Document) []BookTitle {
	var titles []BookTitle
	if doc == nil {
		return titles
	}

	var walk func(n *html.Node, card *html.Node)
	walk = func(n *html.Node, card *html.Node) {
		if n.Type == html.ElementNode {
			if card == nil && HasClass(n, "book-card") {
				card = n
			} else if card != nil && strings.EqualFold(n.Data, "h3") {
				id := Attr(n, "data-book-id")
				if id == "" {
					id = Attr(card, "data-book-id")
				}
				titles = append(titles, BookTitle{ID: id, Title: TextContent(n)})
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c, card)
		}
	}
	walk(doc.root, nil)
	return titles
}
