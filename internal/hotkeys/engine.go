package hotkeys

import (
	"github.com/dshills/hotkeys/internal/input/key"
	"github.com/dshills/hotkeys/internal/logging"
)

// State is the engine lifecycle state.
type State int

const (
	// StateInactive means no listener is attached.
	StateInactive State = iota
	// StateActive means the key-down listener is attached.
	StateActive
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateInactive:
		return "inactive"
	case StateActive:
		return "active"
	default:
		return "unknown"
	}
}

// Engine recognizes one combination on one target.
type Engine struct {
	adapter Adapter
	logger  *logging.Logger

	combo      Combination
	target     Target
	listenerID string
	state      State

	// initErr is kept after a failed validation; the engine cannot be retried.
	initErr error
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger used for lifecycle messages.
func WithLogger(l *logging.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// New creates an inactive engine reading host state through adapter.
func New(adapter Adapter, opts ...Option) *Engine {
	e := &Engine{
		adapter: adapter,
		logger:  logging.Nop,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.logger = e.logger.WithComponent("hotkeys")
	return e
}

// Init validates the adapter's combination and attaches the key-down
// listener. On a validation error nothing is attached and the same error is
// returned by every later call.
func (e *Engine) Init() error {
	if e.initErr != nil {
		return e.initErr
	}
	if e.state == StateActive {
		return ErrActive
	}

	combo, err := Validate(e.adapter.HotKeys())
	if err != nil {
		e.initErr = err
		return err
	}

	target := e.adapter.ListenerTarget()
	if target == nil {
		return ErrNoTarget
	}

	e.combo = combo
	e.target = target
	e.listenerID = target.AddKeyDownListener(e.HandleKeyDown)
	e.state = StateActive

	e.logger.Debug("listener attached", "hotkeys", combo.String(), "listener", e.listenerID)
	return nil
}

// HandleKeyDown evaluates one key-down. On a full match it suppresses the
// event's default action and then notifies the adapter. Any other outcome
// has no effect.
func (e *Engine) HandleKeyDown(ev *key.Event) {
	if e.state != StateActive {
		return
	}
	if e.adapter.Disabled() {
		return
	}
	if !e.combo.Matches(ev) {
		return
	}
	ev.PreventDefault()
	e.adapter.NotifyClick()
}

// Destroy detaches the listener. It does nothing on an inactive engine.
func (e *Engine) Destroy() {
	if e.state != StateActive {
		return
	}
	e.target.RemoveKeyDownListener(e.listenerID)
	e.logger.Debug("listener detached", "hotkeys", e.combo.String(), "listener", e.listenerID)

	e.target = nil
	e.listenerID = ""
	e.state = StateInactive
}

// State returns the lifecycle state.
func (e *Engine) State() State {
	return e.state
}

// Combination returns the validated combination. It is the zero value until
// Init succeeds.
func (e *Engine) Combination() Combination {
	return e.combo
}
