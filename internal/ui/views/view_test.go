package views

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"literarylens/internal/domain"
)

var books = []domain.CatalogEntry{
	{ID: "1", Title: "Dune"},
	{ID: "2", Title: "Emma"},
	{Title: "Untitled"},
}

func TestRenderCatalog(t *testing.T) {
	out, layout := NewRenderer().Render(ViewState{
		Width:          80,
		Height:         24,
		Entries:        books,
		SelectedIndex:  1,
		ViewportHeight: 10,
		HelpView:       "q quit",
	})

	assert.Contains(t, out, "LiteraryLens")
	assert.Contains(t, out, "Dune")
	assert.Contains(t, out, "> Emma")
	assert.Contains(t, out, "#1")
	assert.Contains(t, out, "q quit")
	assert.Zero(t, layout.Search)
}

func TestRenderViewportScrolls(t *testing.T) {
	out, _ := NewRenderer().Render(ViewState{
		Width:          80,
		Height:         24,
		Entries:        books,
		SelectedIndex:  2,
		ViewportOffset: 1,
		ViewportHeight: 1,
	})

	assert.Contains(t, out, "↑ 1 more")
	assert.Contains(t, out, "↓ 1 more")
	assert.NotContains(t, out, "Dune")
}

func TestRenderDetail(t *testing.T) {
	out, _ := NewRenderer().Render(ViewState{
		Width:       80,
		Height:      24,
		Screen:      ScreenDetail,
		Entries:     books,
		Detail:      books[1],
		DetailIndex: 1,
	})

	assert.Contains(t, out, "Emma")
	assert.Contains(t, out, "ID: 2")
	assert.Contains(t, out, "Book 2 of 3")
}

func TestRenderAudioLabel(t *testing.T) {
	r := NewRenderer()
	assert.Empty(t, r.renderAudio(nil))
	assert.Contains(t, r.renderAudio(&AudioStatus{State: domain.AudioState{Muted: true}}), "muted")
	assert.Contains(t, r.renderAudio(&AudioStatus{State: domain.AudioState{Active: true, LastPosition: 75.4}}), "1:15")
	assert.Contains(t, r.renderAudio(&AudioStatus{Blocked: true}), "press any key")
	assert.Contains(t, r.renderAudio(&AudioStatus{}), "off")
}

func TestRenderSearchBox(t *testing.T) {
	out, layout := NewRenderer().Render(ViewState{
		Width:   100,
		Height:  30,
		Entries: books,
		Search: SearchState{
			Visible:    true,
			BoxVisible: true,
			Input:      "> du",
			Results:    books[:1],
			Focused:    0,
		},
	})

	assert.Contains(t, out, "Search books")
	assert.Contains(t, out, "[x]")
	assert.Contains(t, out, "> Dune")
	assert.Equal(t, 52, layout.Search.W)
	assert.Equal(t, layout.Search.Y+3, layout.FirstResult)
	assert.True(t, layout.Search.Contains(layout.CloseButton.X, layout.CloseButton.Y))

	lines := strings.Split(out, "\n")
	closeRow := ansiRE.ReplaceAllString(lines[layout.CloseButton.Y], "")
	assert.Equal(t, "[x]", string([]rune(closeRow)[layout.CloseButton.X:layout.CloseButton.X+3]))
}

func TestRenderSearchPlaceholder(t *testing.T) {
	out, _ := NewRenderer().Render(ViewState{
		Width:  100,
		Height: 30,
		Search: SearchState{Visible: true, BoxVisible: true, NoResults: true},
	})
	assert.Contains(t, out, "No results")
}

func TestRenderBackdropOnly(t *testing.T) {
	out, layout := NewRenderer().Render(ViewState{
		Width:   80,
		Height:  24,
		Entries: books,
		Search:  SearchState{Visible: true},
	})
	assert.NotContains(t, out, "Search books")
	assert.Zero(t, layout.Search)
	assert.Equal(t, out, ansiRE.ReplaceAllString(out, ""))
}

func TestRectContains(t *testing.T) {
	r := Rect{X: 2, Y: 3, W: 4, H: 2}
	assert.True(t, r.Contains(2, 3))
	assert.True(t, r.Contains(5, 4))
	assert.False(t, r.Contains(6, 4))
	assert.False(t, r.Contains(2, 5))
}

func TestPopupKeepsSize(t *testing.T) {
	pr := NewPopupRenderer(NewStyles())
	base := strings.Repeat(strings.Repeat(".", 40)+"\n", 9) + strings.Repeat(".", 40)
	out, area := pr.RenderPopupOverlay(base, "hi", 10, 40, lipgloss.NewStyle().Border(lipgloss.NormalBorder()))

	assert.Equal(t, Rect{X: 18, Y: 1, W: 4, H: 3}, area)
	assert.Equal(t, 10, lipgloss.Height(out))
	for _, line := range strings.Split(out, "\n") {
		assert.Equal(t, 40, lipgloss.Width(line))
	}
}
