package ui

import (
	"fmt"
	"log"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"literarylens/internal/audio"
	"literarylens/internal/domain"
	"literarylens/internal/eventbus"
	"literarylens/internal/overlay"
	"literarylens/internal/site"
	"literarylens/internal/ui/views"
)

// statusRefresh is how often the header re-reads the audio position
const statusRefresh = 500 * time.Millisecond

// Options configures the UI model
type Options struct {
	SettleDelay time.Duration
	FadeDelay   time.Duration
	// Gate blocks audio until the first key press; nil plays right away
	Gate *audio.Gate
}

// Model represents the UI state
type Model struct {
	bus          eventbus.EventBus
	site         *site.Site
	session      *audio.Session // nil when the page has no audio
	gate         *audio.Gate
	interactions *Interactions

	width    int
	height   int
	keys     keyMap
	help     help.Model
	renderer *views.Renderer
	helpText *HelpRenderer
	layout   views.Layout

	screen         views.Screen
	entries        []domain.CatalogEntry
	selectedIndex  int
	viewportOffset int
	viewportHeight int
	detail         domain.CatalogEntry
	statusMessage  string

	// Search overlay; nil when the page lacks any of its regions
	overlay *overlay.Controller
	regions *searchRegions
	sched   *cmdScheduler
}

// NewModel creates a new UI model for a loaded site
func NewModel(bus eventbus.EventBus, s *site.Site, opts Options) *Model {
	m := &Model{
		bus:            bus,
		site:           s,
		session:        s.Audio(),
		gate:           opts.Gate,
		interactions:   NewInteractions(),
		keys:           newKeyMap(),
		help:           help.New(),
		renderer:       views.NewRenderer(),
		helpText:       NewHelpRenderer(),
		entries:        s.Entries(),
		viewportHeight: 20, // Will be updated on first WindowSizeMsg
		sched:          &cmdScheduler{},
	}

	if s.Capabilities().Overlay != nil {
		regions := newSearchRegions()
		ctrl, ok := overlay.New(regions.elements(), overlay.Options{
			Catalog:     s.Catalog(),
			Navigate:    m.navigate,
			Scheduler:   m.sched,
			SettleDelay: opts.SettleDelay,
			FadeDelay:   opts.FadeDelay,
			OnChange:    m.overlayChanged,
		})
		if ok {
			m.overlay = ctrl
			m.regions = regions
		}
	}

	bus.Publish(domain.CatalogLoadedEvent{Source: s.Catalog().Name(), Entries: len(m.entries)})
	return m
}

// Interactions returns the source of user interaction notifications
func (m *Model) Interactions() *Interactions {
	return m.interactions
}

// Init starts the audio session and the header refresh
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.autostart(), tick())
}

func tick() tea.Cmd {
	return tea.Tick(statusRefresh, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// autostart runs off the UI goroutine since starting a player may block
func (m *Model) autostart() tea.Cmd {
	if m.session == nil {
		return nil
	}
	session, source, interactions := m.session, m.site.AudioSource(), m.interactions
	return func() tea.Msg {
		session.Autostart(source, interactions)
		return nil
	}
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.updateViewportHeight()
		return m, nil

	case timerMsg:
		msg.fn()
		return m, m.sched.drain()

	case tickMsg:
		return m, tick()

	case clearStatusMsg:
		m.statusMessage = ""
		return m, nil

	case helpPagerMsg:
		if msg.err != nil {
			// Pager failed: log only; do not surface in status bar
			log.Printf("Help pager failed: %v", msg.err)
		}
		return m, nil

	case EventMsg:
		return m, m.handleEvent(msg.Event)

	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		cmds := []tea.Cmd{m.interact()}
		m.handleClick(msg.X, msg.Y)
		cmds = append(cmds, m.sched.drain())
		return m, tea.Batch(cmds...)

	case tea.KeyMsg:
		cmds := []tea.Cmd{m.interact()}
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.searchActive() {
			cmds = append(cmds, m.handleSearchKey(msg))
		} else {
			cmds = append(cmds, m.handleKey(msg))
		}
		cmds = append(cmds, m.sched.drain())
		return m, tea.Batch(cmds...)
	}

	return m, nil
}

// interact unlocks audio and notifies interaction listeners
func (m *Model) interact() tea.Cmd {
	locked := m.gate != nil && !m.gate.Unlocked()
	if !locked && m.interactions.Len() == 0 {
		return nil
	}
	gate, interactions := m.gate, m.interactions
	return func() tea.Msg {
		if gate != nil {
			gate.Unlock()
		}
		interactions.Fire()
		return nil
	}
}

// searchActive reports whether keys belong to the search overlay
func (m *Model) searchActive() bool {
	return m.overlay != nil && m.regions.surface.interactive
}

func (m *Model) handleSearchKey(msg tea.KeyMsg) tea.Cmd {
	var k overlay.Key
	switch msg.String() {
	case "esc":
		k = overlay.KeyEscape
	case "up":
		k = overlay.KeyArrowUp
	case "down":
		k = overlay.KeyArrowDown
	case "enter":
		k = overlay.KeyEnter
	}
	if k != "" && m.regions.input.key(k) {
		return nil
	}
	return m.regions.input.update(msg)
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit

	case key.Matches(msg, m.keys.Help):
		content := m.helpText.RenderHelpContent(m.session != nil, m.overlay != nil)
		return showHelpInPager(content)

	case key.Matches(msg, m.keys.Search):
		if m.overlay == nil {
			return m.setStatus("Search is not available on this page")
		}
		m.regions.trigger.activate()
		return nil

	case key.Matches(msg, m.keys.Mute):
		if m.session == nil {
			return nil
		}
		m.session.ToggleMute()
		return nil
	}

	if m.screen == views.ScreenDetail {
		if key.Matches(msg, m.keys.Back) {
			m.screen = views.ScreenCatalog
		}
		return nil
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		if m.selectedIndex > 0 {
			m.selectedIndex--
			m.ensureSelectedVisible()
		}
	case key.Matches(msg, m.keys.Down):
		if m.selectedIndex < len(m.entries)-1 {
			m.selectedIndex++
			m.ensureSelectedVisible()
		}
	case key.Matches(msg, m.keys.Open):
		if m.selectedIndex >= len(m.entries) {
			return nil
		}
		entry := m.entries[m.selectedIndex]
		if !entry.HasID() {
			return m.setStatus(fmt.Sprintf("%q has no detail page", entry.Title))
		}
		m.navigate(domain.NavigationKindDetail, entry.ID)
	}
	return nil
}

// handleClick routes a left click while the search box is up
func (m *Model) handleClick(x, y int) {
	if !m.searchActive() {
		return
	}
	if !m.layout.Search.Contains(x, y) {
		m.regions.surface.click()
		return
	}
	if m.layout.CloseButton.Contains(x, y) {
		m.regions.closeBtn.activate()
		return
	}
	if y >= m.layout.FirstResult {
		m.regions.results.click(y - m.layout.FirstResult)
	}
}

// handleEvent processes domain events forwarded from the bus
func (m *Model) handleEvent(event eventbus.DomainEvent) tea.Cmd {
	switch e := event.(type) {
	case domain.NavigationRequestedEvent:
		if e.Kind != domain.NavigationKindDetail {
			return nil
		}
		m.showDetail(e.ID)
	case domain.AudioFailedEvent:
		log.Printf("Audio failed for %s: %v", e.Source, e.Err)
	case domain.ErrorEvent:
		return m.setStatus(e.Message)
	}
	return nil
}

// navigate publishes a navigation request; the detail view opens when it
// comes back through the bus
func (m *Model) navigate(kind, id string) {
	m.bus.Publish(domain.NavigationRequestedEvent{Kind: kind, ID: id})
}

func (m *Model) overlayChanged(from, to overlay.State) {
	m.bus.Publish(domain.OverlayChangedEvent{From: from.String(), To: to.String()})
}

func (m *Model) showDetail(id string) {
	entry, ok := m.site.Lookup(id)
	if !ok {
		m.statusMessage = fmt.Sprintf("Book %s not found", id)
		return
	}
	m.detail = entry
	m.screen = views.ScreenDetail
	for i, e := range m.entries {
		if e.ID == id {
			m.selectedIndex = i
			m.ensureSelectedVisible()
			break
		}
	}
}

func (m *Model) setStatus(message string) tea.Cmd {
	m.statusMessage = message
	return tea.Tick(3*time.Second, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

// updateViewportHeight calculates the available height for the book list
func (m *Model) updateViewportHeight() {
	// Account for title (2 lines), status (2 lines), help (1 line), and padding
	reservedLines := 8
	m.viewportHeight = m.height - reservedLines
	if m.viewportHeight < 1 {
		m.viewportHeight = 1
	}
	m.ensureSelectedVisible()
}

func (m *Model) ensureSelectedVisible() {
	if m.selectedIndex < m.viewportOffset {
		m.viewportOffset = m.selectedIndex
	}
	if m.selectedIndex >= m.viewportOffset+m.viewportHeight {
		m.viewportOffset = m.selectedIndex - m.viewportHeight + 1
	}
	if m.viewportOffset < 0 {
		m.viewportOffset = 0
	}
}

// View renders the UI
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	state := views.ViewState{
		Width:          m.width,
		Height:         m.height,
		Screen:         m.screen,
		Entries:        m.entries,
		SelectedIndex:  m.selectedIndex,
		ViewportOffset: m.viewportOffset,
		ViewportHeight: m.viewportHeight,
		Detail:         m.detail,
		DetailIndex:    m.selectedIndex,
		StatusMessage:  m.statusMessage,
		HelpView:       m.help.View(m.keys),
	}

	if m.session != nil {
		state.Audio = &views.AudioStatus{
			State:   m.session.Snapshot(),
			Blocked: m.gate != nil && !m.gate.Unlocked() && !m.session.Started(),
		}
	}

	if m.overlay != nil && m.regions.surface.visible {
		state.Search = views.SearchState{
			Visible:    true,
			BoxVisible: m.regions.box.visible,
			Input:      m.regions.input.model.View(),
			Results:    m.regions.results.entries,
			NoResults:  m.regions.results.empty,
			Focused:    m.regions.results.focused,
		}
	}

	view, layout := m.renderer.Render(state)
	m.layout = layout
	return view
}
