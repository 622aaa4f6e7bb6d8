package key

import (
	"errors"
	"fmt"
	"strings"
)

// Parse errors
var (
	ErrEmptySpec   = errors.New("empty key specification")
	ErrInvalidSpec = errors.New("invalid key specification")
)

// ParseCombination parses the text form of a combination into key names.
//
// Parts are separated by "+" and are case-insensitive. Modifier aliases
// ("ctrl", "cmd", "option", "win", "super") become the canonical modifier
// names; every other part is lowered and returned as-is. The result is not
// checked against the vocabulary; that is the engine's job.
//
//	ParseCombination("Ctrl+Shift+K") // ["control", "shift", "k"]
func ParseCombination(spec string) ([]string, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return nil, ErrEmptySpec
	}

	parts := strings.Split(spec, "+")
	names := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.ToLower(strings.TrimSpace(p))
		if p == "" {
			return nil, fmt.Errorf("%w: empty part in %q", ErrInvalidSpec, spec)
		}
		if canonical, ok := modifierAliases[p]; ok {
			p = canonical
		}
		names = append(names, p)
	}
	return names, nil
}

// MustParseCombination parses a combination and panics on error.
// Use only for known-valid specs in initialization code.
func MustParseCombination(spec string) []string {
	names, err := ParseCombination(spec)
	if err != nil {
		panic("invalid key specification: " + spec + ": " + err.Error())
	}
	return names
}
