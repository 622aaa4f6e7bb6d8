package action

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/hotkeys/internal/logging"
)

// DefaultScriptTimeout bounds a single script run.
const DefaultScriptTimeout = 2 * time.Second

// ErrScriptClosed is returned when notifying a closed script sink.
var ErrScriptClosed = errors.New("lua script closed")

// Script runs a Lua snippet on every activation.
//
// The snippet is compiled once. Each run sees a global table "hotkey" with
// fields keys, count and time, a log(msg) function, and a print function
// routed to the sink's output. Only the base, table, string and math
// libraries are opened.
//
// gopher-lua states are not goroutine-safe; Notify serializes runs.
type Script struct {
	mu      sync.Mutex
	L       *lua.LState
	fn      *lua.LFunction
	source  string
	timeout time.Duration
	output  func(string)
	logger  *logging.Logger
	closed  bool
}

// ScriptOption configures a Script.
type ScriptOption func(*Script)

// WithScriptTimeout sets the per-run timeout. Zero disables it.
func WithScriptTimeout(d time.Duration) ScriptOption {
	return func(s *Script) {
		s.timeout = d
	}
}

// WithScriptOutput sets where print writes.
func WithScriptOutput(fn func(string)) ScriptOption {
	return func(s *Script) {
		s.output = fn
	}
}

// WithScriptLogger sets the logger behind the log function.
func WithScriptLogger(l *logging.Logger) ScriptOption {
	return func(s *Script) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewScript compiles source into a sandboxed state.
func NewScript(source string, opts ...ScriptOption) (*Script, error) {
	s := &Script{
		source:  source,
		timeout: DefaultScriptTimeout,
		logger:  logging.Nop,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.WithComponent("lua")

	L := lua.NewState(lua.Options{
		SkipOpenLibs: true,
	})
	openSafeLibraries(L)
	s.L = L
	s.install()

	fn, err := L.LoadString(source)
	if err != nil {
		L.Close()
		return nil, fmt.Errorf("compile script: %w", err)
	}
	s.fn = fn
	return s, nil
}

func openSafeLibraries(L *lua.LState) {
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)

	// Base loaders reach the file system or compile arbitrary code.
	for _, name := range []string{"dofile", "loadfile", "load", "loadstring"} {
		L.SetGlobal(name, lua.LNil)
	}
}

func (s *Script) install() {
	s.L.SetGlobal("log", s.L.NewFunction(func(L *lua.LState) int {
		s.logger.Info(L.CheckString(1))
		return 0
	}))

	s.L.SetGlobal("print", s.L.NewFunction(func(L *lua.LState) int {
		top := L.GetTop()
		parts := make([]string, 0, top)
		for i := 1; i <= top; i++ {
			parts = append(parts, L.ToStringMeta(L.Get(i)).String())
		}
		if s.output != nil {
			s.output(strings.Join(parts, "\t"))
		}
		return 0
	}))
}

// Source returns the script text.
func (s *Script) Source() string {
	return s.source
}

// Notify implements Sink.
func (s *Script) Notify(n Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrScriptClosed
	}

	tbl := s.L.NewTable()
	tbl.RawSetString("keys", lua.LString(n.Keys))
	tbl.RawSetString("count", lua.LNumber(n.Count))
	tbl.RawSetString("time", lua.LNumber(n.Time.Unix()))
	s.L.SetGlobal("hotkey", tbl)

	if s.timeout > 0 {
		ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
		defer cancel()
		s.L.SetContext(ctx)
		defer s.L.RemoveContext()
	}

	s.L.Push(s.fn)
	err := s.L.PCall(0, lua.MultRet, nil)
	s.L.SetTop(0)
	if err != nil {
		return fmt.Errorf("run script: %w", err)
	}
	return nil
}

// Close releases the Lua state.
func (s *Script) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.closed = true
	s.L.Close()
}
