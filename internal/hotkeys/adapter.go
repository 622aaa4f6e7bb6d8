package hotkeys

import "github.com/dshills/hotkeys/internal/input/key"

// Target is the surface the engine observes.
type Target interface {
	// AddKeyDownListener registers fn and returns an id for removal.
	AddKeyDownListener(fn func(ev *key.Event)) string

	// RemoveKeyDownListener removes the listener registered under id.
	RemoveKeyDownListener(id string)
}

// Adapter is the boundary through which the engine reads host state and
// reports matches.
type Adapter interface {
	// ListenerTarget returns the surface to observe.
	ListenerTarget() Target

	// HotKeys returns the declared combination as key names.
	HotKeys() []string

	// Disabled reports whether matching is currently switched off.
	Disabled() bool

	// NotifyClick is invoked once per matching key-down.
	NotifyClick()
}

// AdapterFuncs is an Adapter built from function fields.
// A nil DisabledFunc means never disabled; a nil NotifyClickFunc is a no-op.
type AdapterFuncs struct {
	ListenerTargetFunc func() Target
	HotKeysFunc        func() []string
	DisabledFunc       func() bool
	NotifyClickFunc    func()
}

// ListenerTarget implements Adapter.
func (a AdapterFuncs) ListenerTarget() Target {
	if a.ListenerTargetFunc == nil {
		return nil
	}
	return a.ListenerTargetFunc()
}

// HotKeys implements Adapter.
func (a AdapterFuncs) HotKeys() []string {
	if a.HotKeysFunc == nil {
		return nil
	}
	return a.HotKeysFunc()
}

// Disabled implements Adapter.
func (a AdapterFuncs) Disabled() bool {
	if a.DisabledFunc == nil {
		return false
	}
	return a.DisabledFunc()
}

// NotifyClick implements Adapter.
func (a AdapterFuncs) NotifyClick() {
	if a.NotifyClickFunc != nil {
		a.NotifyClickFunc()
	}
}
