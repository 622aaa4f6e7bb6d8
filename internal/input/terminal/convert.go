package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/dshills/hotkeys/internal/input/key"
)

// shiftedRunes maps characters produced with Shift on a US layout to the
// unshifted character printed on the same physical key.
var shiftedRunes = map[rune]rune{
	'!': '1', '@': '2', '#': '3', '$': '4', '%': '5',
	'^': '6', '&': '7', '*': '8', '(': '9', ')': '0',
	'_': '-', '+': '=', '{': '[', '}': ']', '|': '\\',
	':': ';', '"': '\'', '<': ',', '>': '.', '?': '/',
	'~': '`',
}

// convertMod converts tcell modifiers to a key.Modifier snapshot.
func convertMod(m tcell.ModMask) key.Modifier {
	var mods key.Modifier
	if m&tcell.ModShift != 0 {
		mods = mods.With(key.ModShift)
	}
	if m&tcell.ModCtrl != 0 {
		mods = mods.With(key.ModCtrl)
	}
	if m&tcell.ModAlt != 0 {
		mods = mods.With(key.ModAlt)
	}
	if m&tcell.ModMeta != 0 {
		mods = mods.With(key.ModMeta)
	}
	return mods
}

// runeCode returns the physical code for a typed character and whether the
// character implies Shift.
func runeCode(r rune) (key.Code, bool) {
	if r >= 'A' && r <= 'Z' {
		return key.LetterCode(r), true
	}
	if c := key.LetterCode(r); c != key.CodeNone {
		return c, false
	}
	if c := key.DigitCode(r); c != key.CodeNone {
		return c, false
	}
	if r == ' ' {
		return key.CodeSpace, false
	}
	if base, ok := shiftedRunes[r]; ok {
		return key.CodeOf(string(base)), true
	}
	return key.CodeOf(string(r)), false
}

// specialCode converts tcell special keys to codes.
func specialCode(k tcell.Key) key.Code {
	switch k {
	case tcell.KeyEnter:
		return key.CodeEnter
	case tcell.KeyTab, tcell.KeyBacktab:
		return key.CodeTab
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return key.CodeBackspace
	case tcell.KeyEscape:
		return key.CodeEscape
	case tcell.KeyDelete:
		return key.CodeDelete
	case tcell.KeyInsert:
		return key.CodeInsert
	case tcell.KeyHome:
		return key.CodeHome
	case tcell.KeyEnd:
		return key.CodeEnd
	case tcell.KeyPgUp:
		return key.CodePageUp
	case tcell.KeyPgDn:
		return key.CodePageDown
	case tcell.KeyUp:
		return key.CodeArrowUp
	case tcell.KeyDown:
		return key.CodeArrowDown
	case tcell.KeyLeft:
		return key.CodeArrowLeft
	case tcell.KeyRight:
		return key.CodeArrowRight
	}
	if k >= tcell.KeyF1 && k <= tcell.KeyF12 {
		return key.FunctionCode(int(k-tcell.KeyF1) + 1)
	}
	return key.CodeNone
}

// ConvertKey converts a tcell key event into a key-down event.
// The second result is false for keys with no physical code.
func ConvertKey(ev *tcell.EventKey) (*key.Event, bool) {
	mods := convertMod(ev.Modifiers())
	k := ev.Key()

	var code key.Code
	switch {
	case k == tcell.KeyRune:
		var shifted bool
		code, shifted = runeCode(ev.Rune())
		if shifted {
			mods = mods.With(key.ModShift)
		}
	case k == tcell.KeyBacktab:
		code = key.CodeTab
		mods = mods.With(key.ModShift)
	case specialCode(k) != key.CodeNone:
		code = specialCode(k)
	case k == tcell.KeyCtrlSpace:
		code = key.CodeSpace
		mods = mods.With(key.ModCtrl)
	case k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ:
		code = key.LetterCode(rune('a' + int(k-tcell.KeyCtrlA)))
		mods = mods.With(key.ModCtrl)
	}

	if code == key.CodeNone {
		return nil, false
	}
	ke := key.NewEvent(code, mods)
	ke.Timestamp = ev.When()
	return ke, true
}
