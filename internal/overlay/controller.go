// Package overlay implements the search overlay: its open/close lifecycle,
// live filtering of the catalog and keyboard navigation of the results.
package overlay

import (
	"log"
	"time"

	"literarylens/internal/catalog"
	"literarylens/internal/domain"
	"literarylens/internal/search"
)

// Default transition delays
const (
	DefaultSettleDelay = 40 * time.Millisecond
	DefaultFadeDelay   = 300 * time.Millisecond
)

// Options configures a Controller
type Options struct {
	Catalog     catalog.Source
	Matcher     func(query string, entries []domain.CatalogEntry) []domain.CatalogEntry
	Navigate    Navigator
	Scheduler   Scheduler
	SettleDelay time.Duration
	FadeDelay   time.Duration
	// OnChange is called after every state transition
	OnChange func(from, to State)
}

// Controller owns the overlay state. All methods must be called from the
// host's event goroutine.
type Controller struct {
	els   Elements
	opts  Options
	state State

	// gen identifies the current transition; completions carrying an older
	// value are ignored
	gen uint64

	query   search.Query
	pending bool // input received while opening, rendered on settle
	results []domain.CatalogEntry
	focused int
}

// New attaches a controller to the given regions. When any region is
// missing it attaches nothing and returns false.
func New(els Elements, opts Options) (*Controller, bool) {
	if !els.complete() {
		log.Printf("Search overlay not available on this page")
		return nil, false
	}

	if opts.Catalog == nil {
		opts.Catalog = catalog.Empty{}
	}
	if opts.Matcher == nil {
		opts.Matcher = search.Match
	}
	if opts.Scheduler == nil {
		opts.Scheduler = Immediate
	}
	if opts.SettleDelay <= 0 {
		opts.SettleDelay = DefaultSettleDelay
	}
	if opts.FadeDelay <= 0 {
		opts.FadeDelay = DefaultFadeDelay
	}

	c := &Controller{els: els, opts: opts, state: Closed, focused: -1}

	els.Trigger.OnActivate(c.Open)
	els.Close.OnActivate(c.Close)
	els.Overlay.OnBackdrop(c.Close)
	els.Input.OnInput(c.OnInput)
	els.Input.OnKey(c.OnKey)
	els.Results.OnActivate(c.ActivateIndex)

	return c, true
}

// State returns the current lifecycle state
func (c *Controller) State() State {
	return c.state
}

// Query returns the last query typed in this session
func (c *Controller) Query() search.Query {
	return c.query
}

// Results returns the rendered matches
func (c *Controller) Results() []domain.CatalogEntry {
	return c.results
}

// Focused returns the focused result index, or -1 when the input has focus
func (c *Controller) Focused() int {
	return c.focused
}

// Open shows the overlay. It is a no-op unless the overlay is closed.
func (c *Controller) Open() {
	if c.state != Closed {
		return
	}
	gen := c.transition(Opening)
	c.els.Overlay.SetVisible(true)
	c.els.Overlay.SetInteractive(true)

	c.opts.Scheduler.After(c.opts.SettleDelay, func() {
		if c.gen != gen || c.state != Opening {
			return
		}
		c.transition(Open)
		c.els.Box.SetVisible(true)
		c.els.Input.Focus()
		if c.pending {
			c.pending = false
			c.render()
		}
	})
}

// Close hides the overlay. It is a no-op unless the overlay is opening or open.
func (c *Controller) Close() {
	if c.state != Open && c.state != Opening {
		return
	}
	gen := c.transition(Closing)
	c.els.Box.SetVisible(false)

	c.opts.Scheduler.After(c.opts.FadeDelay, func() {
		if c.gen != gen || c.state != Closing {
			return
		}
		c.transition(Closed)
		c.els.Overlay.SetVisible(false)
		c.els.Overlay.SetInteractive(false)
		c.els.Input.SetText("")
		c.els.Results.Clear()
		c.query = search.Query{}
		c.pending = false
		c.results = nil
		c.focused = -1
	})
}

// OnInput filters the catalog with text. Input is ignored while closed or
// closing; while opening it is held until the overlay has settled.
func (c *Controller) OnInput(text string) {
	if c.state == Closed || c.state == Closing {
		return
	}
	c.query = search.NewQuery(text)
	if c.state == Opening {
		c.pending = true
		return
	}
	c.render()
}

func (c *Controller) render() {
	c.focused = -1
	if c.query.Empty() {
		c.results = nil
		c.els.Results.Clear()
		return
	}

	c.results = c.opts.Matcher(c.query.Normalized, c.opts.Catalog.Entries())
	if len(c.results) == 0 {
		c.els.Results.ShowEmpty()
		return
	}
	c.els.Results.Render(c.results)
}

// OnKey handles a key press and reports whether it was consumed
func (c *Controller) OnKey(key Key) bool {
	if c.state == Closed {
		return false
	}

	switch key {
	case KeyEscape:
		c.Close()
		return true
	case KeyArrowDown:
		return c.moveFocus(1)
	case KeyArrowUp:
		return c.moveFocus(-1)
	case KeyEnter:
		if c.focused < 0 {
			return false
		}
		c.ActivateIndex(c.focused)
		return true
	}
	return false
}

// moveFocus steps through the results with wraparound. With nothing
// focused, down goes to the first result and up to the last.
func (c *Controller) moveFocus(step int) bool {
	n := len(c.results)
	if n == 0 || c.state != Open {
		return false
	}

	switch {
	case c.focused < 0 && step > 0:
		c.focused = 0
	case c.focused < 0:
		c.focused = n - 1
	default:
		c.focused = (c.focused + step + n) % n
	}
	c.els.Results.Focus(c.focused)
	return true
}

// ActivateIndex activates the rendered result at index
func (c *Controller) ActivateIndex(index int) {
	if index < 0 || index >= len(c.results) {
		return
	}
	c.Activate(c.results[index])
}

// Activate closes the overlay and asks the host to show entry
func (c *Controller) Activate(entry domain.CatalogEntry) {
	if c.state != Open && c.state != Opening {
		return
	}
	c.Close()

	if c.opts.Navigate == nil || !entry.HasID() {
		return
	}
	c.opts.Navigate(domain.NavigationKindDetail, entry.ID)
}

func (c *Controller) transition(to State) uint64 {
	from := c.state
	if !canTransition(from, to) {
		// Unreachable through the public methods
		log.Printf("Overlay: refusing transition %s -> %s", from, to)
		return c.gen
	}
	c.state = to
	c.gen++
	if c.opts.OnChange != nil {
		c.opts.OnChange(from, to)
	}
	return c.gen
}
