package page

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fullPage = `<!doctype html><html><body>
<button id="lens-search-btn">Search</button>
<div id="lens-search-overlay"><div id="lens-search-box">
  <input id="lens-search-input"><button id="lens-search-close">x</button>
  <ul id="lens-search-results"></ul>
</div></div>
<button id="audio-mute-btn"></button>
<div class="book-card" data-book-id="1"><h3>Dune</h3></div>
</body></html>`

func TestDetectAllRegions(t *testing.T) {
	doc, err := Parse(strings.NewReader(fullPage))
	require.NoError(t, err)

	caps := Detect(doc)
	require.NotNil(t, caps.Overlay)
	assert.Equal(t, IDSearchInput, caps.Overlay.Input.ID())
	assert.Equal(t, "input", caps.Overlay.Input.Tag())
	require.NotNil(t, caps.AudioButton)
	assert.Equal(t, 1, caps.BookCards)
	assert.Empty(t, Missing(doc))
}

func TestDetectMissingOverlayElement(t *testing.T) {
	src := strings.Replace(fullPage, `<button id="lens-search-close">x</button>`, "", 1)
	doc, err := Parse(strings.NewReader(src))
	require.NoError(t, err)

	caps := Detect(doc)
	assert.Nil(t, caps.Overlay)
	assert.NotNil(t, caps.AudioButton)
	assert.Equal(t, []string{IDSearchClose}, Missing(doc))
}

func TestDetectNilDocument(t *testing.T) {
	caps := Detect(nil)
	assert.Nil(t, caps.Overlay)
	assert.Nil(t, caps.AudioButton)
	assert.Zero(t, caps.BookCards)
}

func TestElementText(t *testing.T) {
	doc, err := Parse(strings.NewReader(`<p id="x">  Hello <b>big</b>
	world </p><p id="x">second</p>`))
	require.NoError(t, err)

	el, ok := doc.Element("x")
	require.True(t, ok)
	assert.Equal(t, "Hello big world", el.Text())

	_, ok = doc.Element("nope")
	assert.False(t, ok)
}
