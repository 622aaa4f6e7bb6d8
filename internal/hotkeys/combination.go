package hotkeys

import (
	"strings"

	"github.com/dshills/hotkeys/internal/input/key"
)

// Combination is a validated shortcut: the modifiers it requires and the
// code of its single common key. Build one with Validate.
type Combination struct {
	names    []string
	required key.Modifier
	common   string
	code     key.Code
}

// Validate checks a declared combination and returns its snapshot.
//
// Names are compared case-insensitively. Every entry must be a recognized
// key name, otherwise the result wraps ErrUnknownKey. Exactly one entry must
// be a common (non-modifier) key, otherwise the result wraps
// ErrMalformedCombination. Unknown names are reported before the count is
// checked.
func Validate(keys []string) (Combination, error) {
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = strings.ToLower(k)
	}

	for _, name := range names {
		if !key.IsKnown(name) {
			return Combination{}, &CombinationError{Keys: names, Key: name, Err: ErrUnknownKey}
		}
	}

	c := Combination{names: names}
	commons := 0
	for _, name := range names {
		if mod := key.ModifierFromName(name); mod != key.ModNone {
			c.required = c.required.With(mod)
			continue
		}
		commons++
		c.common = name
		c.code = key.CodeOf(name)
	}
	if commons != 1 {
		return Combination{}, &CombinationError{Keys: names, Common: commons, Err: ErrMalformedCombination}
	}
	return c, nil
}

// MustValidate is like Validate but panics on error.
func MustValidate(keys ...string) Combination {
	c, err := Validate(keys)
	if err != nil {
		panic(err)
	}
	return c
}

// Names returns the normalized key names in declaration order.
func (c Combination) Names() []string {
	out := make([]string, len(c.names))
	copy(out, c.names)
	return out
}

// Required returns the modifiers that must be held.
func (c Combination) Required() key.Modifier {
	return c.required
}

// CommonKey returns the name of the common key.
func (c Combination) CommonKey() string {
	return c.common
}

// Code returns the code of the common key.
func (c Combination) Code() key.Code {
	return c.code
}

// IsZero reports whether c is the zero Combination.
func (c Combination) IsZero() bool {
	return c.code == key.CodeNone
}

// Matches reports whether ev presses the common key with exactly the
// required modifiers held.
func (c Combination) Matches(ev *key.Event) bool {
	if c.IsZero() || ev == nil {
		return false
	}
	return ev.Modifiers == c.required && ev.Code == c.code
}

// String returns the names joined with "+", e.g. "control+k".
func (c Combination) String() string {
	return strings.Join(c.names, "+")
}
