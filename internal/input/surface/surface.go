// Package surface provides an in-process key-down event target.
//
// A Surface plays the role of the document body for shortcut engines: hosts
// feed it key-down events through Dispatch and it forwards each event to
// every registered listener, synchronously and in registration order.
package surface

import (
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/dshills/hotkeys/internal/input/key"
)

type listener struct {
	id string
	fn func(ev *key.Event)
}

// Stats holds dispatch counters.
type Stats struct {
	Dispatched uint64
	Listeners  int
}

// Surface delivers key-down events to registered listeners.
//
// Registration and removal are safe for concurrent use. Dispatch takes a
// snapshot of the listener list, so a listener removed during a dispatch
// still sees the event in flight but none after it.
type Surface struct {
	mu        sync.RWMutex
	listeners []listener

	observers  []func(ev *key.Event)
	dispatched atomic.Uint64
}

// Option configures a Surface.
type Option func(*Surface)

// WithObserver adds a function called with every dispatched event after the
// listeners have run.
func WithObserver(fn func(ev *key.Event)) Option {
	return func(s *Surface) {
		if fn != nil {
			s.observers = append(s.observers, fn)
		}
	}
}

// New creates an empty surface.
func New(opts ...Option) *Surface {
	s := &Surface{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// AddKeyDownListener registers fn and returns its registration id.
func (s *Surface) AddKeyDownListener(fn func(ev *key.Event)) string {
	id := uuid.New().String()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, listener{id: id, fn: fn})
	return id
}

// RemoveKeyDownListener removes the listener with the given id.
// Unknown ids are ignored.
func (s *Surface) RemoveKeyDownListener(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, l := range s.listeners {
		if l.id == id {
			s.listeners = append(s.listeners[:i:i], s.listeners[i+1:]...)
			return
		}
	}
}

// Dispatch delivers ev to every listener and reports whether any of them
// suppressed its default action.
func (s *Surface) Dispatch(ev *key.Event) bool {
	s.mu.RLock()
	snapshot := make([]listener, len(s.listeners))
	copy(snapshot, s.listeners)
	s.mu.RUnlock()

	for _, l := range snapshot {
		l.fn(ev)
	}
	s.dispatched.Add(1)

	for _, obs := range s.observers {
		obs(ev)
	}
	return ev.DefaultPrevented()
}

// Len returns the number of registered listeners.
func (s *Surface) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.listeners)
}

// Stats returns the dispatch counters.
func (s *Surface) Stats() Stats {
	return Stats{
		Dispatched: s.dispatched.Load(),
		Listeners:  s.Len(),
	}
}

var (
	bodyOnce sync.Once
	body     *Surface
)

// Body returns the process-wide default surface.
func Body() *Surface {
	bodyOnce.Do(func() {
		body = New()
	})
	return body
}
