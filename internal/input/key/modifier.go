package key

import "strings"

// Modifier is a snapshot of the four modifier keys.
// The same type describes the modifiers a combination requires and the
// modifiers held during an event, so an exact match is a single comparison.
type Modifier uint8

const (
	// ModNone indicates no modifiers.
	ModNone Modifier = 0

	// ModShift indicates the Shift key.
	ModShift Modifier = 1 << iota

	// ModCtrl indicates the Control key.
	ModCtrl

	// ModAlt indicates the Alt key (Option on macOS).
	ModAlt

	// ModMeta indicates the Meta key (Cmd on macOS, Win on Windows).
	ModMeta
)

// Modifiers builds a snapshot from the four held flags.
func Modifiers(meta, shift, alt, control bool) Modifier {
	var m Modifier
	if meta {
		m |= ModMeta
	}
	if shift {
		m |= ModShift
	}
	if alt {
		m |= ModAlt
	}
	if control {
		m |= ModCtrl
	}
	return m
}

// Has returns true if m contains the specified modifier.
func (m Modifier) Has(mod Modifier) bool {
	return m&mod != 0
}

// HasShift returns true if Shift is pressed.
func (m Modifier) HasShift() bool {
	return m.Has(ModShift)
}

// HasCtrl returns true if Control is pressed.
func (m Modifier) HasCtrl() bool {
	return m.Has(ModCtrl)
}

// HasAlt returns true if Alt is pressed.
func (m Modifier) HasAlt() bool {
	return m.Has(ModAlt)
}

// HasMeta returns true if Meta is pressed.
func (m Modifier) HasMeta() bool {
	return m.Has(ModMeta)
}

// With returns a new Modifier with the specified modifier added.
func (m Modifier) With(mod Modifier) Modifier {
	return m | mod
}

// Without returns a new Modifier with the specified modifier removed.
func (m Modifier) Without(mod Modifier) Modifier {
	return m &^ mod
}

// IsEmpty returns true if no modifiers are set.
func (m Modifier) IsEmpty() bool {
	return m == ModNone
}

// String returns a human-readable representation like "Ctrl+Alt".
func (m Modifier) String() string {
	if m == ModNone {
		return ""
	}

	var parts []string
	if m.HasMeta() {
		parts = append(parts, "Meta")
	}
	if m.HasCtrl() {
		parts = append(parts, "Ctrl")
	}
	if m.HasAlt() {
		parts = append(parts, "Alt")
	}
	if m.HasShift() {
		parts = append(parts, "Shift")
	}
	return strings.Join(parts, "+")
}

// ModifierFromName returns the Modifier for one of the four modifier names
// (case-insensitive). Returns ModNone for any other name.
func ModifierFromName(name string) Modifier {
	switch strings.ToLower(name) {
	case NameMeta:
		return ModMeta
	case NameShift:
		return ModShift
	case NameAlt:
		return ModAlt
	case NameControl:
		return ModCtrl
	}
	return ModNone
}

// modifierAliases maps the spellings accepted by ParseCombination to the
// canonical modifier names.
var modifierAliases = map[string]string{
	"ctrl":    NameControl,
	"control": NameControl,
	"alt":     NameAlt,
	"option":  NameAlt,
	"opt":     NameAlt,
	"shift":   NameShift,
	"meta":    NameMeta,
	"cmd":     NameMeta,
	"command": NameMeta,
	"win":     NameMeta,
	"super":   NameMeta,
}
