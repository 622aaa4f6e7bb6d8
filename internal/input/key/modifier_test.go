package key

import (
	"testing"
)

func TestModifierHas(t *testing.T) {
	tests := []struct {
		mod    Modifier
		check  Modifier
		expect bool
	}{
		{ModNone, ModCtrl, false},
		{ModCtrl, ModCtrl, true},
		{ModCtrl | ModAlt, ModCtrl, true},
		{ModCtrl | ModAlt, ModAlt, true},
		{ModCtrl | ModAlt, ModShift, false},
		{ModCtrl | ModAlt | ModShift | ModMeta, ModMeta, true},
	}

	for _, tt := range tests {
		if got := tt.mod.Has(tt.check); got != tt.expect {
			t.Errorf("Modifier(%d).Has(%d) = %v, want %v", tt.mod, tt.check, got, tt.expect)
		}
	}
}

func TestModifiersFromFlags(t *testing.T) {
	tests := []struct {
		meta, shift, alt, control bool
		want                      Modifier
	}{
		{false, false, false, false, ModNone},
		{true, false, false, false, ModMeta},
		{false, true, false, false, ModShift},
		{false, false, true, false, ModAlt},
		{false, false, false, true, ModCtrl},
		{true, true, true, true, ModMeta | ModShift | ModAlt | ModCtrl},
	}

	for _, tt := range tests {
		if got := Modifiers(tt.meta, tt.shift, tt.alt, tt.control); got != tt.want {
			t.Errorf("Modifiers(%v, %v, %v, %v) = %v, want %v",
				tt.meta, tt.shift, tt.alt, tt.control, got, tt.want)
		}
	}
}

func TestModifierWith(t *testing.T) {
	mod := ModNone
	mod = mod.With(ModCtrl)
	if !mod.HasCtrl() {
		t.Error("With(ModCtrl) should set Ctrl")
	}

	mod = mod.With(ModAlt)
	if !mod.HasCtrl() || !mod.HasAlt() {
		t.Error("With(ModAlt) should keep Ctrl and add Alt")
	}
}

func TestModifierWithout(t *testing.T) {
	mod := ModCtrl | ModAlt | ModShift
	mod = mod.Without(ModAlt)
	if mod.HasAlt() {
		t.Error("Without(ModAlt) should remove Alt")
	}
	if !mod.HasCtrl() || !mod.HasShift() {
		t.Error("Without(ModAlt) should keep Ctrl and Shift")
	}
}

func TestModifierString(t *testing.T) {
	tests := []struct {
		mod  Modifier
		want string
	}{
		{ModNone, ""},
		{ModCtrl, "Ctrl"},
		{ModAlt, "Alt"},
		{ModShift, "Shift"},
		{ModMeta, "Meta"},
		{ModCtrl | ModAlt, "Ctrl+Alt"},
		{ModCtrl | ModShift, "Ctrl+Shift"},
		{ModCtrl | ModAlt | ModShift | ModMeta, "Meta+Ctrl+Alt+Shift"},
	}

	for _, tt := range tests {
		if got := tt.mod.String(); got != tt.want {
			t.Errorf("Modifier(%d).String() = %q, want %q", tt.mod, got, tt.want)
		}
	}
}

func TestModifierFromName(t *testing.T) {
	tests := []struct {
		name string
		want Modifier
	}{
		{"meta", ModMeta},
		{"shift", ModShift},
		{"alt", ModAlt},
		{"control", ModCtrl},
		{"CONTROL", ModCtrl},
		{"ctrl", ModNone},
		{"k", ModNone},
	}

	for _, tt := range tests {
		if got := ModifierFromName(tt.name); got != tt.want {
			t.Errorf("ModifierFromName(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}
