// Package key provides the key vocabulary shared by the shortcut engine and
// its hosts.
//
// This package defines the fundamental types for representing keyboard input:
//
//   - Code: A physical key position in the platform key-code space
//   - Modifier: A snapshot of the four modifier keys (Meta, Shift, Alt, Control)
//   - Event: A single key-down carrying a Code and the held modifiers
//
// # Key Names
//
// Combinations are declared with lower-case key names. Common keys map to a
// Code through CodeOf:
//
//   - Letters and digits: "a" -> KeyA, "7" -> Digit7
//   - Named keys: "enter", "escape", "tab", "space", "arrowup", "f5"
//   - Punctuation: "-", "=", "[", "]", ";", "'", ",", ".", "/", "`", "\"
//
// The modifier names "meta", "shift", "alt" and "control" are recognized
// names too, but they have no Code; they are tracked through Modifier.
//
// # Text Form
//
// ParseCombination accepts the "Control+Shift+K" form used in configuration
// and on the command line and returns the equivalent list of key names.
package key
