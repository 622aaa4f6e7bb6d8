package app

import (
	"slices"
	"sync"
	"sync/atomic"

	"github.com/dshills/hotkeys/internal/hotkeys"
	"github.com/dshills/hotkeys/internal/input/surface"
)

// Shortcut is the host side of one engine. The combination is fixed at
// construction; the disabled flag and click handler may change at any time
// and are read by the engine on every event.
type Shortcut struct {
	keys   []string
	target hotkeys.Target

	disabled atomic.Bool

	mu      sync.RWMutex
	onClick func()
}

var _ hotkeys.Adapter = (*Shortcut)(nil)

// ShortcutOption configures a Shortcut.
type ShortcutOption func(*Shortcut)

// WithTarget sets the listener target. Defaults to surface.Body().
func WithTarget(t hotkeys.Target) ShortcutOption {
	return func(s *Shortcut) {
		s.target = t
	}
}

// WithOnClick sets the click handler.
func WithOnClick(fn func()) ShortcutOption {
	return func(s *Shortcut) {
		s.onClick = fn
	}
}

// WithDisabled sets the initial disabled flag.
func WithDisabled(disabled bool) ShortcutOption {
	return func(s *Shortcut) {
		s.disabled.Store(disabled)
	}
}

// NewShortcut creates a shortcut declaring keys.
func NewShortcut(keys []string, opts ...ShortcutOption) *Shortcut {
	s := &Shortcut{keys: slices.Clone(keys)}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ListenerTarget implements hotkeys.Adapter.
func (s *Shortcut) ListenerTarget() hotkeys.Target {
	if s.target == nil {
		return surface.Body()
	}
	return s.target
}

// HotKeys implements hotkeys.Adapter.
func (s *Shortcut) HotKeys() []string {
	return slices.Clone(s.keys)
}

// Disabled implements hotkeys.Adapter.
func (s *Shortcut) Disabled() bool {
	return s.disabled.Load()
}

// SetDisabled switches matching on or off.
func (s *Shortcut) SetDisabled(disabled bool) {
	s.disabled.Store(disabled)
}

// SetOnClick replaces the click handler. A nil handler makes clicks no-ops.
func (s *Shortcut) SetOnClick(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onClick = fn
}

// NotifyClick implements hotkeys.Adapter.
func (s *Shortcut) NotifyClick() {
	s.mu.RLock()
	fn := s.onClick
	s.mu.RUnlock()
	if fn != nil {
		fn()
	}
}
