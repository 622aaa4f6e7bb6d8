package key

import (
	"errors"
	"reflect"
	"testing"
)

func TestParseCombination(t *testing.T) {
	tests := []struct {
		spec string
		want []string
	}{
		{"k", []string{"k"}},
		{"Control+K", []string{"control", "k"}},
		{"Ctrl+Shift+P", []string{"control", "shift", "p"}},
		{"cmd + enter", []string{"meta", "enter"}},
		{"Option+Win+F5", []string{"alt", "meta", "f5"}},
		{"super+a", []string{"meta", "a"}},
		{"Hyper+X", []string{"hyper", "x"}},
	}

	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			got, err := ParseCombination(tt.spec)
			if err != nil {
				t.Fatalf("ParseCombination(%q) error = %v", tt.spec, err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseCombination(%q) = %v, want %v", tt.spec, got, tt.want)
			}
		})
	}
}

func TestParseCombinationErrors(t *testing.T) {
	tests := []struct {
		spec string
		want error
	}{
		{"", ErrEmptySpec},
		{"   ", ErrEmptySpec},
		{"Ctrl+", ErrInvalidSpec},
		{"+k", ErrInvalidSpec},
		{"Ctrl++K", ErrInvalidSpec},
	}

	for _, tt := range tests {
		_, err := ParseCombination(tt.spec)
		if !errors.Is(err, tt.want) {
			t.Errorf("ParseCombination(%q) error = %v, want %v", tt.spec, err, tt.want)
		}
	}
}

func TestMustParseCombinationPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustParseCombination should panic on invalid spec")
		}
	}()
	MustParseCombination("")
}
