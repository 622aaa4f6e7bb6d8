package key

import (
	"sort"
	"testing"
)

func TestCodeOf(t *testing.T) {
	tests := []struct {
		name string
		want Code
	}{
		{"a", "KeyA"},
		{"A", "KeyA"},
		{"k", "KeyK"},
		{"z", "KeyZ"},
		{"0", "Digit0"},
		{"9", "Digit9"},
		{"enter", CodeEnter},
		{"Enter", CodeEnter},
		{"escape", CodeEscape},
		{"space", CodeSpace},
		{"arrowup", CodeArrowUp},
		{"f1", "F1"},
		{"F12", "F12"},
		{"-", "Minus"},
		{"/", "Slash"},
		{"`", "Backquote"},
		{"control", CodeNone},
		{"meta", CodeNone},
		{"hyper", CodeNone},
		{"", CodeNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CodeOf(tt.name); got != tt.want {
				t.Errorf("CodeOf(%q) = %q, want %q", tt.name, got, tt.want)
			}
		})
	}
}

func TestIsModifierName(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"meta", true},
		{"shift", true},
		{"alt", true},
		{"control", true},
		{"Control", true},
		{"ctrl", false},
		{"cmd", false},
		{"k", false},
	}

	for _, tt := range tests {
		if got := IsModifierName(tt.name); got != tt.want {
			t.Errorf("IsModifierName(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestIsKnown(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"k", true},
		{"K", true},
		{"shift", true},
		{"SHIFT", true},
		{"enter", true},
		{"f13", false},
		{"ctrl", false},
		{"plus", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsKnown(tt.name); got != tt.want {
			t.Errorf("IsKnown(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestNames(t *testing.T) {
	names := Names()
	if !sort.StringsAreSorted(names) {
		t.Error("Names() should be sorted")
	}

	seen := make(map[string]bool, len(names))
	for _, n := range names {
		if seen[n] {
			t.Errorf("Names() contains duplicate %q", n)
		}
		seen[n] = true
		if !IsKnown(n) {
			t.Errorf("Names() contains %q which IsKnown rejects", n)
		}
	}

	for _, want := range []string{"meta", "shift", "alt", "control", "a", "0", "f12", "enter"} {
		if !seen[want] {
			t.Errorf("Names() missing %q", want)
		}
	}
}

func TestCodeClassification(t *testing.T) {
	tests := []struct {
		code     Code
		letter   bool
		digit    bool
		function bool
		arrow    bool
	}{
		{"KeyA", true, false, false, false},
		{"KeyZ", true, false, false, false},
		{"Digit5", false, true, false, false},
		{"F1", false, false, true, false},
		{"F12", false, false, true, false},
		{CodeArrowLeft, false, false, false, true},
		{CodeEnter, false, false, false, false},
		{"Keyboard", false, false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.code.String(), func(t *testing.T) {
			if got := tt.code.IsLetter(); got != tt.letter {
				t.Errorf("IsLetter() = %v, want %v", got, tt.letter)
			}
			if got := tt.code.IsDigit(); got != tt.digit {
				t.Errorf("IsDigit() = %v, want %v", got, tt.digit)
			}
			if got := tt.code.IsFunctionKey(); got != tt.function {
				t.Errorf("IsFunctionKey() = %v, want %v", got, tt.function)
			}
			if got := tt.code.IsArrowKey(); got != tt.arrow {
				t.Errorf("IsArrowKey() = %v, want %v", got, tt.arrow)
			}
		})
	}
}

func TestLetterAndDigitCode(t *testing.T) {
	if got := LetterCode('q'); got != "KeyQ" {
		t.Errorf("LetterCode('q') = %q, want KeyQ", got)
	}
	if got := LetterCode('Q'); got != "KeyQ" {
		t.Errorf("LetterCode('Q') = %q, want KeyQ", got)
	}
	if got := LetterCode('1'); got != CodeNone {
		t.Errorf("LetterCode('1') = %q, want CodeNone", got)
	}
	if got := DigitCode('1'); got != "Digit1" {
		t.Errorf("DigitCode('1') = %q, want Digit1", got)
	}
	if got := DigitCode('x'); got != CodeNone {
		t.Errorf("DigitCode('x') = %q, want CodeNone", got)
	}
	if got := FunctionCode(10); got != "F10" {
		t.Errorf("FunctionCode(10) = %q, want F10", got)
	}
	if got := FunctionCode(13); got != CodeNone {
		t.Errorf("FunctionCode(13) = %q, want CodeNone", got)
	}
}
