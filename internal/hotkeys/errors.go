package hotkeys

import (
	"errors"
	"fmt"
	"strings"
)

// Errors returned by combination validation and the engine lifecycle.
var (
	// ErrUnknownKey indicates a combination entry outside the key vocabulary.
	ErrUnknownKey = errors.New("unknown key")

	// ErrMalformedCombination indicates zero or more than one common key.
	ErrMalformedCombination = errors.New("hotkeys must have one common key and zero or more modifier keys")

	// ErrActive indicates Init was called on an engine that is already listening.
	ErrActive = errors.New("engine already active")

	// ErrNoTarget indicates the adapter returned no listener target.
	ErrNoTarget = errors.New("no listener target")
)

// CombinationError describes why a combination was rejected.
type CombinationError struct {
	// Keys is the combination as declared.
	Keys []string
	// Key is the offending entry for ErrUnknownKey; empty otherwise.
	Key string
	// Common is the number of common keys found.
	Common int
	// Err is ErrUnknownKey or ErrMalformedCombination.
	Err error
}

// Error implements the error interface.
func (e *CombinationError) Error() string {
	keys := strings.Join(e.Keys, "+")
	if errors.Is(e.Err, ErrUnknownKey) {
		return fmt.Sprintf("invalid hotkeys %q: %q is not a valid key", keys, e.Key)
	}
	return fmt.Sprintf("invalid hotkeys %q: %d common keys: %v", keys, e.Common, e.Err)
}

// Unwrap returns the underlying sentinel.
func (e *CombinationError) Unwrap() error {
	return e.Err
}

// IsUnknownKey reports whether err is an unknown-key validation failure.
func IsUnknownKey(err error) bool {
	return errors.Is(err, ErrUnknownKey)
}

// IsMalformed reports whether err is a common-key count failure.
func IsMalformed(err error) bool {
	return errors.Is(err, ErrMalformedCombination)
}
