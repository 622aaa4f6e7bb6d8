package key

import (
	"sort"
	"strings"
)

// Code identifies a physical key position.
// Values follow the UI Events KeyboardEvent.code naming ("KeyA", "Digit1",
// "Enter"), so they do not change with the keyboard layout.
type Code string

// CodeNone is returned for names that have no physical code.
const CodeNone Code = ""

// Modifier key names.
const (
	NameMeta    = "meta"
	NameShift   = "shift"
	NameAlt     = "alt"
	NameControl = "control"
)

// String returns the code value.
func (c Code) String() string {
	if c == CodeNone {
		return "None"
	}
	return string(c)
}

// IsLetter returns true for the KeyA..KeyZ codes.
func (c Code) IsLetter() bool {
	return len(c) == 4 && strings.HasPrefix(string(c), "Key") && c[3] >= 'A' && c[3] <= 'Z'
}

// IsDigit returns true for the Digit0..Digit9 codes.
func (c Code) IsDigit() bool {
	return len(c) == 6 && strings.HasPrefix(string(c), "Digit") && c[5] >= '0' && c[5] <= '9'
}

// IsFunctionKey returns true for the F1..F12 codes.
func (c Code) IsFunctionKey() bool {
	for i := 1; i <= 12; i++ {
		if c == functionCode(i) {
			return true
		}
	}
	return false
}

// IsArrowKey returns true for the arrow key codes.
func (c Code) IsArrowKey() bool {
	return c == CodeArrowUp || c == CodeArrowDown || c == CodeArrowLeft || c == CodeArrowRight
}

// Named codes used outside the vocabulary table.
const (
	CodeEnter      Code = "Enter"
	CodeEscape     Code = "Escape"
	CodeTab        Code = "Tab"
	CodeBackspace  Code = "Backspace"
	CodeSpace      Code = "Space"
	CodeDelete     Code = "Delete"
	CodeInsert     Code = "Insert"
	CodeHome       Code = "Home"
	CodeEnd        Code = "End"
	CodePageUp     Code = "PageUp"
	CodePageDown   Code = "PageDown"
	CodeArrowUp    Code = "ArrowUp"
	CodeArrowDown  Code = "ArrowDown"
	CodeArrowLeft  Code = "ArrowLeft"
	CodeArrowRight Code = "ArrowRight"
	CodeCapsLock   Code = "CapsLock"
)

// LetterCode returns the code for an ASCII letter, or CodeNone.
func LetterCode(r rune) Code {
	switch {
	case r >= 'a' && r <= 'z':
		return Code("Key" + string(r-'a'+'A'))
	case r >= 'A' && r <= 'Z':
		return Code("Key" + string(r))
	}
	return CodeNone
}

// DigitCode returns the code for an ASCII digit, or CodeNone.
func DigitCode(r rune) Code {
	if r >= '0' && r <= '9' {
		return Code("Digit" + string(r))
	}
	return CodeNone
}

func functionCode(n int) Code {
	if n >= 10 {
		return Code("F1" + string(rune('0'+n-10)))
	}
	return Code("F" + string(rune('0'+n)))
}

// FunctionCode returns the code for F1..F12, or CodeNone.
func FunctionCode(n int) Code {
	if n < 1 || n > 12 {
		return CodeNone
	}
	return functionCode(n)
}

// codeTable maps common key names (lowercase) to codes.
var codeTable = buildCodeTable()

func buildCodeTable() map[string]Code {
	t := map[string]Code{
		"enter":      CodeEnter,
		"escape":     CodeEscape,
		"tab":        CodeTab,
		"backspace":  CodeBackspace,
		"space":      CodeSpace,
		"delete":     CodeDelete,
		"insert":     CodeInsert,
		"home":       CodeHome,
		"end":        CodeEnd,
		"pageup":     CodePageUp,
		"pagedown":   CodePageDown,
		"arrowup":    CodeArrowUp,
		"arrowdown":  CodeArrowDown,
		"arrowleft":  CodeArrowLeft,
		"arrowright": CodeArrowRight,
		"capslock":   CodeCapsLock,
		"-":          "Minus",
		"=":          "Equal",
		"[":          "BracketLeft",
		"]":          "BracketRight",
		"\\":         "Backslash",
		";":          "Semicolon",
		"'":          "Quote",
		",":          "Comma",
		".":          "Period",
		"/":          "Slash",
		"`":          "Backquote",
	}
	for r := 'a'; r <= 'z'; r++ {
		t[string(r)] = LetterCode(r)
	}
	for r := '0'; r <= '9'; r++ {
		t[string(r)] = DigitCode(r)
	}
	for i := 1; i <= 12; i++ {
		t["f"+strings.TrimPrefix(string(functionCode(i)), "F")] = functionCode(i)
	}
	return t
}

// CodeOf returns the Code for a common key name (case-insensitive).
// Returns CodeNone for modifier names and names outside the vocabulary.
func CodeOf(name string) Code {
	if c, ok := codeTable[strings.ToLower(name)]; ok {
		return c
	}
	return CodeNone
}

// IsModifierName reports whether name is one of the four modifier names.
func IsModifierName(name string) bool {
	return ModifierFromName(name) != ModNone
}

// IsKnown reports whether name is a recognized key name: a modifier or a
// common key in the vocabulary.
func IsKnown(name string) bool {
	name = strings.ToLower(name)
	if IsModifierName(name) {
		return true
	}
	_, ok := codeTable[name]
	return ok
}

// Names returns every recognized key name, sorted.
func Names() []string {
	names := make([]string, 0, len(codeTable)+4)
	names = append(names, NameMeta, NameShift, NameAlt, NameControl)
	for name := range codeTable {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
