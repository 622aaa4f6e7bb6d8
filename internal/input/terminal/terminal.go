// Package terminal hosts shortcut engines in a terminal.
//
// Terminal reads key presses through tcell, converts them to key.Event
// values and dispatches them to a surface.Surface. Work that must touch
// engines (init, destroy, reload) is queued with Do so it runs on the same
// goroutine as event dispatch.
package terminal

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/hotkeys/internal/input/surface"
	"github.com/dshills/hotkeys/internal/logging"
)

// ErrNotRunning indicates Do was called on a terminal that is shut down.
var ErrNotRunning = errors.New("terminal not running")

// maxLines is how many status lines are kept on screen.
const maxLines = 200

// Terminal reads keys from a tcell screen.
type Terminal struct {
	screen  tcell.Screen
	surface *surface.Surface
	logger  *logging.Logger

	mu       sync.Mutex
	lines    []string
	header   string
	finiOnce sync.Once
	closed   bool
}

// Option configures a Terminal.
type Option func(*Terminal)

// WithLogger sets the terminal logger.
func WithLogger(l *logging.Logger) Option {
	return func(t *Terminal) {
		if l != nil {
			t.logger = l
		}
	}
}

// WithHeader sets the first line drawn on screen.
func WithHeader(text string) Option {
	return func(t *Terminal) {
		t.header = text
	}
}

// New creates a terminal on the process's controlling tty.
func New(s *surface.Surface, opts ...Option) (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("creating screen: %w", err)
	}
	return NewWithScreen(screen, s, opts...), nil
}

// NewWithScreen creates a terminal on an existing screen, such as a
// tcell.SimulationScreen.
func NewWithScreen(screen tcell.Screen, s *surface.Surface, opts ...Option) *Terminal {
	t := &Terminal{
		screen:  screen,
		surface: s,
		logger:  logging.Nop,
	}
	for _, opt := range opts {
		opt(t)
	}
	t.logger = t.logger.WithComponent("terminal")
	return t
}

// Init initializes the screen. Must be called before Run.
func (t *Terminal) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.screen.Init(); err != nil {
		return fmt.Errorf("initializing screen: %w", err)
	}
	t.redrawLocked()
	return nil
}

// Shutdown restores the terminal. Safe to call more than once.
func (t *Terminal) Shutdown() {
	t.finiOnce.Do(func() {
		t.mu.Lock()
		t.closed = true
		t.mu.Unlock()
		t.screen.Fini()
	})
}

// Surface returns the surface key events are dispatched to.
func (t *Terminal) Surface() *surface.Surface {
	return t.surface
}

// Run dispatches key events until ctx is done or the screen is finalized.
func (t *Terminal) Run(ctx context.Context) error {
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			t.Shutdown()
		case <-done:
		}
	}()

	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return ctx.Err()
		}

		switch e := ev.(type) {
		case *tcell.EventKey:
			if ke, ok := ConvertKey(e); ok {
				t.surface.Dispatch(ke)
			}
		case *tcell.EventInterrupt:
			if fn, ok := e.Data().(func()); ok {
				fn()
			}
		case *tcell.EventResize:
			t.mu.Lock()
			t.screen.Sync()
			t.redrawLocked()
			t.mu.Unlock()
		}
	}
}

// Do queues fn to run on the Run goroutine.
func (t *Terminal) Do(fn func()) error {
	t.mu.Lock()
	closed := t.closed
	t.mu.Unlock()
	if closed {
		return ErrNotRunning
	}
	if err := t.screen.PostEvent(tcell.NewEventInterrupt(fn)); err != nil {
		return fmt.Errorf("queueing work: %w", err)
	}
	return nil
}

// Println appends a status line and redraws the screen.
func (t *Terminal) Println(line string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.lines = append(t.lines, line)
	if len(t.lines) > maxLines {
		t.lines = t.lines[len(t.lines)-maxLines:]
	}
	if !t.closed {
		t.redrawLocked()
	}
}

// SetHeader replaces the header line.
func (t *Terminal) SetHeader(text string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.header = text
	if !t.closed {
		t.redrawLocked()
	}
}

// Header returns the header line.
func (t *Terminal) Header() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.header
}

// Lines returns a copy of the status lines.
func (t *Terminal) Lines() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]string, len(t.lines))
	copy(out, t.lines)
	return out
}

func (t *Terminal) redrawLocked() {
	t.screen.Clear()
	_, height := t.screen.Size()

	row := 0
	if t.header != "" {
		t.drawLine(row, t.header, tcell.StyleDefault.Bold(true))
		row += 2
	}

	visible := t.lines
	if room := height - row; room >= 0 && len(visible) > room {
		visible = visible[len(visible)-room:]
	}
	for _, line := range visible {
		t.drawLine(row, line, tcell.StyleDefault)
		row++
	}
	t.screen.Show()
}

func (t *Terminal) drawLine(row int, text string, style tcell.Style) {
	col := 0
	for _, r := range text {
		t.screen.SetContent(col, row, r, nil, style)
		col++
	}
}
