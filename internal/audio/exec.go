package audio

import (
	"fmt"
	"log"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"
)

// DefaultCommand plays a file with ffplay without opening a window
var DefaultCommand = []string{
	"ffplay", "-nodisp", "-autoexit", "-loglevel", "quiet",
	"-volume", "{volume100}", "-ss", "{start}", "{source}",
}

// progressInterval is how often a running handle reports its position
const progressInterval = 250 * time.Millisecond

// ExecPlayer plays sources through an external decoder process. Command
// arguments may contain {source}, {start} (seconds), {volume} (0-1) and
// {volume100} (0-100).
type ExecPlayer struct {
	Command []string
	// BaseDir resolves relative sources
	BaseDir string
}

// NewExecPlayer checks that the command exists. A missing binary yields
// ErrNoPlayer so the caller can run without audio.
func NewExecPlayer(command []string, baseDir string) (*ExecPlayer, error) {
	if len(command) == 0 {
		command = DefaultCommand
	}
	if _, err := exec.LookPath(command[0]); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrNoPlayer, command[0], err)
	}
	return &ExecPlayer{Command: command, BaseDir: baseDir}, nil
}

// Open prepares a handle; the process starts on Play
func (p *ExecPlayer) Open(source string, opts OpenOptions) (Handle, error) {
	if source == "" {
		return nil, fmt.Errorf("empty audio source")
	}
	if p.BaseDir != "" && !filepath.IsAbs(source) && !strings.Contains(source, "://") {
		source = filepath.Join(p.BaseDir, source)
	}
	return &execHandle{
		command: p.Command,
		source:  source,
		volume:  opts.Volume,
		offset:  opts.At,
		events:  opts.Events,
	}, nil
}

// execHandle pauses by stopping the process and resumes by starting a new
// one at the recorded offset
type execHandle struct {
	command []string
	source  string
	volume  float64
	events  Events

	mu        sync.Mutex
	cmd       *exec.Cmd
	offset    time.Duration // position when the current process started
	startedAt time.Time
	running   bool
	closed    bool
	run       uint64 // increments per process so stale exits are ignored
	stop      chan struct{}
}

func (h *execHandle) Play() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return fmt.Errorf("handle closed")
	}
	if h.running {
		return nil
	}

	args := h.args()
	cmd := exec.Command(args[0], args[1:]...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start %s: %w", args[0], err)
	}

	h.cmd = cmd
	h.startedAt = time.Now()
	h.running = true
	h.run++
	h.stop = make(chan struct{})

	go h.report(h.run, h.stop)
	go h.wait(h.run, cmd)
	return nil
}

func (h *execHandle) Pause() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.halt()
}

func (h *execHandle) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.halt()
	h.closed = true
}

func (h *execHandle) Position() time.Duration {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.position()
}

// position must be called with h.mu held
func (h *execHandle) position() time.Duration {
	if !h.running {
		return h.offset
	}
	return h.offset + time.Since(h.startedAt)
}

// halt must be called with h.mu held
func (h *execHandle) halt() {
	if !h.running {
		return
	}
	h.offset = h.position()
	h.running = false
	close(h.stop)
	if h.cmd != nil && h.cmd.Process != nil {
		if err := h.cmd.Process.Kill(); err != nil {
			log.Printf("Audio: failed to stop player: %v", err)
		}
	}
}

func (h *execHandle) report(run uint64, stop <-chan struct{}) {
	ticker := time.NewTicker(progressInterval)
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			h.mu.Lock()
			if h.run != run || !h.running {
				h.mu.Unlock()
				return
			}
			pos := h.position()
			h.mu.Unlock()
			if h.events.Progress != nil {
				h.events.Progress(pos)
			}
		}
	}
}

func (h *execHandle) wait(run uint64, cmd *exec.Cmd) {
	err := cmd.Wait()

	h.mu.Lock()
	natural := h.run == run && h.running
	if natural {
		h.running = false
		h.offset = 0
		close(h.stop)
	}
	h.mu.Unlock()

	if !natural {
		return
	}
	if err != nil {
		log.Printf("Audio: player exited: %v", err)
	}
	if h.events.Ended != nil {
		h.events.Ended()
	}
}

func (h *execHandle) args() []string {
	r := strings.NewReplacer(
		"{source}", h.source,
		"{start}", strconv.FormatFloat(h.offset.Seconds(), 'f', 3, 64),
		"{volume}", strconv.FormatFloat(h.volume, 'f', 2, 64),
		"{volume100}", strconv.Itoa(int(h.volume*100+0.5)),
	)
	args := make([]string, len(h.command))
	for i, a := range h.command {
		args[i] = r.Replace(a)
	}
	return args
}
