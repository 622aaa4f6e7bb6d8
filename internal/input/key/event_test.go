package key

import (
	"testing"
)

func TestNewEvent(t *testing.T) {
	e := NewEvent("KeyK", ModCtrl)
	if e.Code != "KeyK" {
		t.Errorf("NewEvent code = %v, want KeyK", e.Code)
	}
	if e.Modifiers != ModCtrl {
		t.Errorf("NewEvent modifiers = %v, want ModCtrl", e.Modifiers)
	}
	if e.Timestamp.IsZero() {
		t.Error("NewEvent should set a timestamp")
	}
	if e.DefaultPrevented() {
		t.Error("new event should not be default-prevented")
	}
}

func TestEventModifierFlags(t *testing.T) {
	e := NewEvent("KeyA", ModMeta|ModAlt)
	if !e.MetaKey() || !e.AltKey() {
		t.Error("MetaKey/AltKey should be true")
	}
	if e.ShiftKey() || e.CtrlKey() {
		t.Error("ShiftKey/CtrlKey should be false")
	}
}

func TestEventPreventDefault(t *testing.T) {
	e := NewEvent(CodeEnter, ModNone)
	e.PreventDefault()
	if !e.DefaultPrevented() {
		t.Error("PreventDefault should mark the event")
	}
	e.PreventDefault()
	if !e.DefaultPrevented() {
		t.Error("PreventDefault should be idempotent")
	}
}

func TestEventString(t *testing.T) {
	tests := []struct {
		event *Event
		want  string
	}{
		{NewEvent("KeyA", ModNone), "KeyA"},
		{NewEvent("KeyS", ModCtrl), "Ctrl+KeyS"},
		{NewEvent("KeyF", ModCtrl|ModAlt), "Ctrl+Alt+KeyF"},
		{NewEvent(CodeEnter, ModShift), "Shift+Enter"},
		{NewEvent(CodeNone, ModNone), "None"},
	}

	for _, tt := range tests {
		if got := tt.event.String(); got != tt.want {
			t.Errorf("Event.String() = %q, want %q", got, tt.want)
		}
	}
}
