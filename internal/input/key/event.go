package key

import (
	"fmt"
	"time"
)

// Event is a single key-down delivered by a host surface.
// Listeners receive a pointer so they can suppress the default action.
type Event struct {
	// Code is the physical key pressed.
	Code Code

	// Modifiers contains the modifier keys held during the press.
	Modifiers Modifier

	// Timestamp is when the event occurred.
	Timestamp time.Time

	defaultPrevented bool
}

// NewEvent creates a key-down event with the current timestamp.
func NewEvent(code Code, mods Modifier) *Event {
	return &Event{
		Code:      code,
		Modifiers: mods,
		Timestamp: time.Now(),
	}
}

// MetaKey reports whether Meta was held.
func (e *Event) MetaKey() bool { return e.Modifiers.HasMeta() }

// ShiftKey reports whether Shift was held.
func (e *Event) ShiftKey() bool { return e.Modifiers.HasShift() }

// AltKey reports whether Alt was held.
func (e *Event) AltKey() bool { return e.Modifiers.HasAlt() }

// CtrlKey reports whether Control was held.
func (e *Event) CtrlKey() bool { return e.Modifiers.HasCtrl() }

// PreventDefault marks the event so the host skips its default handling.
func (e *Event) PreventDefault() {
	e.defaultPrevented = true
}

// DefaultPrevented reports whether a listener called PreventDefault.
func (e *Event) DefaultPrevented() bool {
	return e.defaultPrevented
}

// String returns a representation like "Ctrl+Shift+KeyK".
func (e *Event) String() string {
	if e.Modifiers.IsEmpty() {
		return e.Code.String()
	}
	return e.Modifiers.String() + "+" + e.Code.String()
}

// GoString implements fmt.GoStringer for debugging.
func (e *Event) GoString() string {
	return fmt.Sprintf("Event{Code: %s, Modifiers: %s, DefaultPrevented: %v}",
		e.Code.String(), e.Modifiers.String(), e.defaultPrevented)
}
