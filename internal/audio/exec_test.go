//go:build unix

package audio

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewExecPlayerMissingBinary(t *testing.T) {
	_, err := NewExecPlayer([]string{"literarylens-no-such-player"}, "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoPlayer))
}

func TestExecHandleArgs(t *testing.T) {
	p := &ExecPlayer{Command: DefaultCommand, BaseDir: "/srv/site"}
	h, err := p.Open("audio/a.mp3", OpenOptions{At: 1500 * time.Millisecond, Volume: 0.12})
	require.NoError(t, err)

	args := h.(*execHandle).args()
	assert.Equal(t, []string{
		"ffplay", "-nodisp", "-autoexit", "-loglevel", "quiet",
		"-volume", "12", "-ss", "1.500", "/srv/site/audio/a.mp3",
	}, args)

	h, err = p.Open("https://example.com/a.mp3", OpenOptions{})
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/a.mp3", h.(*execHandle).source)

	_, err = p.Open("", OpenOptions{})
	assert.Error(t, err)
}

func TestExecHandlePauseKeepsPosition(t *testing.T) {
	p, err := NewExecPlayer([]string{"sleep", "30"}, "")
	require.NoError(t, err)

	h, err := p.Open("ignored", OpenOptions{At: 2 * time.Second})
	require.NoError(t, err)
	defer h.Close()

	assert.Equal(t, 2*time.Second, h.Position())
	require.NoError(t, h.Play())
	time.Sleep(50 * time.Millisecond)

	h.Pause()
	paused := h.Position()
	assert.Greater(t, paused, 2*time.Second)
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, paused, h.Position(), "position is frozen while paused")

	require.NoError(t, h.Play())
	time.Sleep(20 * time.Millisecond)
	assert.Greater(t, h.Position(), paused)
}

func TestExecHandleReportsNaturalEnd(t *testing.T) {
	p, err := NewExecPlayer([]string{"true"}, "")
	require.NoError(t, err)

	ended := make(chan struct{}, 1)
	h, err := p.Open("ignored", OpenOptions{Events: Events{Ended: func() { ended <- struct{}{} }}})
	require.NoError(t, err)
	require.NoError(t, h.Play())

	select {
	case <-ended:
	case <-time.After(2 * time.Second):
		t.Fatal("ended was not reported")
	}
	assert.Zero(t, h.Position())
}

func TestExecHandleCloseDoesNotReportEnd(t *testing.T) {
	p, err := NewExecPlayer([]string{"sleep", "30"}, "")
	require.NoError(t, err)

	ended := make(chan struct{}, 1)
	h, err := p.Open("ignored", OpenOptions{Events: Events{Ended: func() { ended <- struct{}{} }}})
	require.NoError(t, err)
	require.NoError(t, h.Play())
	h.Close()

	select {
	case <-ended:
		t.Fatal("closing a handle is not a natural end")
	case <-time.After(200 * time.Millisecond):
	}
	assert.Error(t, h.Play())
}
