// Package action provides the notification sinks run when a shortcut fires.
package action

import (
	"errors"
	"fmt"
	"io"
	"time"
)

// Notification describes one shortcut activation.
type Notification struct {
	// Keys is the combination that matched, e.g. "control+k".
	Keys string
	// Count is the number of activations so far, starting at 1.
	Count int
	// Time is when the activation happened.
	Time time.Time
}

// Sink receives shortcut activations.
type Sink interface {
	Notify(n Notification) error
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(n Notification) error

// Notify implements Sink.
func (f SinkFunc) Notify(n Notification) error {
	return f(n)
}

// Nop is a sink that does nothing.
var Nop Sink = SinkFunc(func(Notification) error { return nil })

// Message writes a fixed message per activation.
type Message struct {
	text  string
	write func(string)
}

// NewMessage creates a sink that passes text to write on every activation.
// An empty text falls back to the combination.
func NewMessage(text string, write func(string)) *Message {
	return &Message{text: text, write: write}
}

// NewMessageWriter creates a message sink writing lines to w.
func NewMessageWriter(text string, w io.Writer) *Message {
	return NewMessage(text, func(s string) {
		fmt.Fprintln(w, s)
	})
}

// Text returns the configured message.
func (m *Message) Text() string {
	return m.text
}

// Notify implements Sink.
func (m *Message) Notify(n Notification) error {
	if m.write == nil {
		return nil
	}
	text := m.text
	if text == "" {
		text = n.Keys
	}
	m.write(text)
	return nil
}

// Multi runs every sink in order. All sinks run even if one fails; the
// errors are joined.
type Multi []Sink

// Notify implements Sink.
func (m Multi) Notify(n Notification) error {
	var errs []error
	for _, s := range m {
		if s == nil {
			continue
		}
		if err := s.Notify(n); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
