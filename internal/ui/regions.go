package ui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"literarylens/internal/domain"
	"literarylens/internal/overlay"
)

// The overlay controller drives these terminal stand-ins for the page's
// search regions. The model feeds them keys and mouse clicks.

// control is a button: a key binding or a clickable label
type control struct {
	fn func()
}

func (c *control) OnActivate(fn func()) { c.fn = fn }

func (c *control) activate() {
	if c.fn != nil {
		c.fn()
	}
}

// surface is the dimmed layer behind the search box
type surface struct {
	visible     bool
	interactive bool
	backdrop    func()
	input       *queryInput
}

func (s *surface) SetVisible(v bool) { s.visible = v }

// SetInteractive routes keys to the input while the overlay is up, so text
// typed before the box settles reaches the controller
func (s *surface) SetInteractive(v bool) {
	s.interactive = v
	if s.input == nil {
		return
	}
	if v {
		s.input.model.Focus()
	} else {
		s.input.model.Blur()
	}
}

func (s *surface) OnBackdrop(fn func()) { s.backdrop = fn }

func (s *surface) click() {
	if s.interactive && s.backdrop != nil {
		s.backdrop()
	}
}

type searchBox struct {
	visible bool
}

func (b *searchBox) SetVisible(v bool) { b.visible = v }

// queryInput wraps a bubbles text input
type queryInput struct {
	model   textinput.Model
	onInput func(string)
	onKey   func(overlay.Key) bool
}

func newQueryInput() *queryInput {
	ti := textinput.New()
	ti.Placeholder = "Title..."
	ti.Prompt = "> "
	ti.CharLimit = 120
	ti.Width = 40
	return &queryInput{model: ti}
}

func (q *queryInput) Focus() { q.model.Focus() }

func (q *queryInput) SetText(text string) { q.model.SetValue(text) }

func (q *queryInput) OnInput(fn func(string)) { q.onInput = fn }

func (q *queryInput) OnKey(fn func(overlay.Key) bool) { q.onKey = fn }

// key offers a navigation key to the controller
func (q *queryInput) key(k overlay.Key) bool {
	return q.onKey != nil && q.onKey(k)
}

// update edits the text and reports a changed value as input
func (q *queryInput) update(msg tea.Msg) tea.Cmd {
	before := q.model.Value()
	var cmd tea.Cmd
	q.model, cmd = q.model.Update(msg)
	if value := q.model.Value(); value != before && q.onInput != nil {
		q.onInput(value)
	}
	return cmd
}

// resultList holds the rendered matches
type resultList struct {
	entries  []domain.CatalogEntry
	empty    bool
	focused  int
	activate func(int)
}

func newResultList() *resultList {
	return &resultList{focused: -1}
}

func (r *resultList) Render(entries []domain.CatalogEntry) {
	r.entries = entries
	r.empty = false
	r.focused = -1
}

func (r *resultList) ShowEmpty() {
	r.entries = nil
	r.empty = true
	r.focused = -1
}

func (r *resultList) Clear() {
	r.entries = nil
	r.empty = false
	r.focused = -1
}

func (r *resultList) Focus(index int) { r.focused = index }

func (r *resultList) OnActivate(fn func(int)) { r.activate = fn }

func (r *resultList) click(index int) {
	if r.activate != nil && index >= 0 && index < len(r.entries) {
		r.activate(index)
	}
}

// searchRegions groups the regions handed to the controller
type searchRegions struct {
	trigger  *control
	closeBtn *control
	surface  *surface
	box      *searchBox
	input    *queryInput
	results  *resultList
}

func newSearchRegions() *searchRegions {
	input := newQueryInput()
	return &searchRegions{
		trigger:  &control{},
		closeBtn: &control{},
		surface:  &surface{input: input},
		box:      &searchBox{},
		input:    input,
		results:  newResultList(),
	}
}

func (r *searchRegions) elements() overlay.Elements {
	return overlay.Elements{
		Trigger: r.trigger,
		Overlay: r.surface,
		Box:     r.box,
		Input:   r.input,
		Close:   r.closeBtn,
		Results: r.results,
	}
}
