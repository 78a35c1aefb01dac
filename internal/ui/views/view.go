package views

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"literarylens/internal/domain"
)

// Screen selects the main content
type Screen int

const (
	ScreenCatalog Screen = iota
	ScreenDetail
)

// SearchState is what the search overlay shows
type SearchState struct {
	Visible    bool
	BoxVisible bool
	Input      string // rendered text input
	Results    []domain.CatalogEntry
	NoResults  bool
	Focused    int
}

// AudioStatus describes the audio control
type AudioStatus struct {
	State   domain.AudioState
	Blocked bool // waiting for the first interaction
}

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width          int
	Height         int
	Screen         Screen
	Entries        []domain.CatalogEntry
	SelectedIndex  int
	ViewportOffset int
	ViewportHeight int
	Detail         domain.CatalogEntry
	DetailIndex    int
	StatusMessage  string
	Audio          *AudioStatus // nil when the page has no audio control
	Search         SearchState
	HelpView       string
}

// Layout reports where interactive parts ended up on screen
type Layout struct {
	Search      Rect // zero unless the search box is visible
	CloseButton Rect
	FirstResult int // screen row of the first result
}

// Renderer handles all view rendering
type Renderer struct {
	styles      *Styles
	bookRender  *BookRenderer
	popupRender *PopupRenderer
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:      styles,
		bookRender:  NewBookRenderer(styles),
		popupRender: NewPopupRenderer(styles),
	}
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) (string, Layout) {
	content := &strings.Builder{}

	logo := r.styles.Title.Render("LiteraryLens")
	audio := r.renderAudio(state.Audio)
	if audio != "" {
		termWidth := state.Width
		if termWidth <= 0 {
			termWidth = 80
		}
		padding := termWidth - 4 - lipgloss.Width(logo) - lipgloss.Width(audio)
		if padding < 2 {
			padding = 2
		}
		content.WriteString(logo + strings.Repeat(" ", padding) + audio)
	} else {
		content.WriteString(logo)
	}
	content.WriteString("\n")

	switch state.Screen {
	case ScreenDetail:
		content.WriteString(r.bookRender.RenderDetail(state.Detail, state.DetailIndex, len(state.Entries)))
	default:
		if len(state.Entries) == 0 {
			content.WriteString(r.styles.Dim.Render("No books on this page."))
		} else {
			content.WriteString(r.renderBookList(state))
		}
	}

	footer := ""
	if state.StatusMessage != "" {
		footer = r.styles.Status.Render(state.StatusMessage) + "\n"
	}
	footer += r.styles.Help.Render(state.HelpView)

	// Push the footer to the bottom
	currentLines := strings.Count(content.String(), "\n") + 1
	availableLines := state.Height - 2
	if availableLines <= 0 {
		availableLines = 22
	}
	paddingNeeded := availableLines - currentLines - lipgloss.Height(footer)
	if paddingNeeded > 0 {
		content.WriteString(strings.Repeat("\n", paddingNeeded))
	}
	content.WriteString("\n")
	content.WriteString(footer)

	mainStyle := r.styles.Main.MaxHeight(state.Height)
	finalContent := mainStyle.Render(content.String())

	if !state.Search.Visible {
		return finalContent, Layout{}
	}
	return r.renderSearch(finalContent, state)
}

// renderBookList renders the visible window of the catalog
func (r *Renderer) renderBookList(state ViewState) string {
	end := len(state.Entries)
	if state.ViewportHeight > 0 && state.ViewportOffset+state.ViewportHeight < end {
		end = state.ViewportOffset + state.ViewportHeight
	}

	lines := make([]string, 0, end-state.ViewportOffset+2)
	if state.ViewportOffset > 0 {
		lines = append(lines, r.styles.Scroll.Render(fmt.Sprintf("↑ %d more", state.ViewportOffset)))
	}
	for i := state.ViewportOffset; i < end; i++ {
		lines = append(lines, r.bookRender.RenderBook(state.Entries[i], i == state.SelectedIndex))
	}
	if end < len(state.Entries) {
		lines = append(lines, r.styles.Scroll.Render(fmt.Sprintf("↓ %d more", len(state.Entries)-end)))
	}
	return strings.Join(lines, "\n")
}

// renderSearch draws the search overlay. While the box is hidden (opening
// or fading out) only the dimmed backdrop is shown.
func (r *Renderer) renderSearch(base string, state ViewState) (string, Layout) {
	if !state.Search.BoxVisible {
		return desaturateANSI(base), Layout{}
	}

	var b strings.Builder
	title := r.styles.SearchTitle.Render("Search books")
	closeLabel := r.styles.CloseButton.Render("[x]")
	innerWidth := r.styles.SearchBox.GetWidth() - r.styles.SearchBox.GetHorizontalPadding()
	gap := innerWidth - lipgloss.Width(title) - lipgloss.Width(closeLabel)
	if gap < 1 {
		gap = 1
	}
	b.WriteString(title + strings.Repeat(" ", gap) + closeLabel)
	b.WriteString("\n")
	b.WriteString(state.Search.Input)
	b.WriteString("\n")

	switch {
	case state.Search.NoResults:
		b.WriteString("\n")
		b.WriteString(r.styles.NoResults.Render("No results"))
	case len(state.Search.Results) > 0:
		for i, e := range state.Search.Results {
			b.WriteString("\n")
			b.WriteString(r.bookRender.RenderResult(e, i == state.Search.Focused))
		}
	}

	screen, area := r.popupRender.RenderPopupOverlay(base, b.String(), state.Height, state.Width, r.styles.SearchBox)

	// Border and padding put the content one row down and two columns in
	layout := Layout{
		Search:      area,
		CloseButton: Rect{X: area.X + area.W - 2 - lipgloss.Width(closeLabel), Y: area.Y + 1, W: lipgloss.Width(closeLabel), H: 1},
		FirstResult: area.Y + 3,
	}
	return screen, layout
}

// renderAudio renders the audio control label
func (r *Renderer) renderAudio(a *AudioStatus) string {
	if a == nil {
		return ""
	}
	switch {
	case a.State.Muted:
		return r.styles.AudioMuted.Render("♪ muted")
	case a.State.Active:
		pos := time.Duration(a.State.LastPosition * float64(time.Second)).Truncate(time.Second)
		return r.styles.AudioOn.Render(fmt.Sprintf("♪ playing %s", formatPosition(pos)))
	case a.Blocked:
		return r.styles.AudioIdle.Render("♪ press any key for sound")
	default:
		return r.styles.AudioIdle.Render("♪ off")
	}
}

func formatPosition(d time.Duration) string {
	m := int(d / time.Minute)
	s := int((d % time.Minute) / time.Second)
	return fmt.Sprintf("%d:%02d", m, s)
}
