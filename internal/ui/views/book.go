package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"literarylens/internal/domain"
)

// BookRenderer handles rendering of catalog entries
type BookRenderer struct {
	styles *Styles
}

// NewBookRenderer creates a new book renderer
func NewBookRenderer(styles *Styles) *BookRenderer {
	return &BookRenderer{
		styles: styles,
	}
}

// RenderBook renders one line of the catalog list
func (r *BookRenderer) RenderBook(entry domain.CatalogEntry, isSelected bool) string {
	cursor := "  "
	title := entry.Title
	if isSelected {
		cursor = "> "
		title = r.styles.Highlight.Render(title)
	}
	line := cursor + title
	if entry.HasID() {
		line += " " + r.styles.BookID.Render("#"+entry.ID)
	}
	if isSelected {
		return r.styles.SelectionBg.Render(line)
	}
	return line
}

// RenderResult renders one search result
func (r *BookRenderer) RenderResult(entry domain.CatalogEntry, isFocused bool) string {
	if isFocused {
		return r.styles.SelectionBg.Render(r.styles.Highlight.Render("> " + entry.Title))
	}
	return "  " + entry.Title
}

// RenderDetail renders the detail view of a book
func (r *BookRenderer) RenderDetail(entry domain.CatalogEntry, index, total int) string {
	var info strings.Builder

	info.WriteString(lipgloss.NewStyle().Bold(true).Render(entry.Title))
	info.WriteString("\n\n")
	if entry.HasID() {
		info.WriteString(fmt.Sprintf("ID: %s\n", entry.ID))
	}
	if index >= 0 && total > 0 {
		info.WriteString(fmt.Sprintf("Book %d of %d\n", index+1, total))
	}
	info.WriteString("\n")
	info.WriteString(r.styles.Dim.Render("esc to go back"))

	return r.styles.DetailBox.Render(info.String())
}
