package app

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"slices"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/hotkeys/internal/config"
	"github.com/dshills/hotkeys/internal/hotkeys"
)

type harness struct {
	app    *Application
	screen tcell.SimulationScreen
	cancel context.CancelFunc
	errCh  chan error
}

func newHarness(t *testing.T, opts Options) *harness {
	t.Helper()

	screen := tcell.NewSimulationScreen("UTF-8")
	opts.Screen = screen
	opts.LogOutput = io.Discard

	app, err := New(opts)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return &harness{app: app, screen: screen}
}

func (h *harness) start(t *testing.T) {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	h.cancel = cancel
	h.errCh = make(chan error, 1)
	go func() { h.errCh <- h.app.Run(ctx) }()

	select {
	case <-h.app.Ready():
	case err := <-h.errCh:
		t.Fatalf("Run() returned early: %v", err)
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for Ready")
	}
	t.Cleanup(func() {
		cancel()
		select {
		case <-h.app.stopped:
		case <-time.After(3 * time.Second):
		}
	})
}

func (h *harness) wait(t *testing.T) error {
	t.Helper()
	select {
	case err := <-h.errCh:
		return err
	case <-time.After(3 * time.Second):
		t.Fatal("Run did not return")
		return nil
	}
}

// countLines counts status lines equal to text.
func (h *harness) countLines(text string) int {
	n := 0
	for _, l := range h.app.Terminal().Lines() {
		if l == text {
			n++
		}
	}
	return n
}

// waitLines polls until at least n status lines equal text.
func (h *harness) waitLines(t *testing.T, text string, n int) {
	t.Helper()
	deadline := time.Now().Add(3 * time.Second)
	for time.Now().Before(deadline) {
		if h.countLines(text) >= n {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("status lines %q: want %d of %q", h.app.Terminal().Lines(), n, text)
}

// counterValue sums every series of the named counter.
func counterValue(t *testing.T, app *Application, name string) float64 {
	t.Helper()
	families, err := app.Metrics().Registry().Gather()
	if err != nil {
		t.Fatalf("Gather() error = %v", err)
	}
	var total float64
	for _, f := range families {
		if f.GetName() != name {
			continue
		}
		for _, m := range f.GetMetric() {
			total += m.GetCounter().GetValue()
		}
	}
	return total
}

func testConfig() *config.Config {
	cfg := config.Default()
	cfg.Action.Message = "pressed"
	return cfg
}

func TestRun_FiresActionAndQuits(t *testing.T) {
	h := newHarness(t, Options{Config: testConfig()})
	h.start(t)

	h.screen.InjectKey(tcell.KeyRune, 'k', tcell.ModCtrl)
	h.screen.InjectKey(tcell.KeyRune, 'j', tcell.ModCtrl)
	h.screen.InjectKey(tcell.KeyRune, 'k', tcell.ModCtrl)
	h.waitLines(t, "pressed", 2)

	if n := h.countLines("pressed"); n != 2 {
		t.Errorf("activations = %d, want 2", n)
	}
	if got := counterValue(t, h.app, "hotkeys_notifications_total"); got != 2 {
		t.Errorf("hotkeys_notifications_total = %v, want 2", got)
	}
	if got := counterValue(t, h.app, "hotkeys_keydown_total"); got != 3 {
		t.Errorf("hotkeys_keydown_total = %v, want 3", got)
	}

	h.screen.InjectKey(tcell.KeyRune, 'c', tcell.ModCtrl)
	if err := h.wait(t); err != nil {
		t.Errorf("Run() error = %v, want nil", err)
	}
}

func TestRun_LuaAction(t *testing.T) {
	cfg := testConfig()
	cfg.Action.Script = `print("lua " .. hotkey.keys .. " " .. hotkey.count)`
	h := newHarness(t, Options{Config: cfg})
	h.start(t)

	h.screen.InjectKey(tcell.KeyRune, 'k', tcell.ModCtrl)
	h.waitLines(t, "lua control+k 1", 1)

	if n := h.countLines("pressed"); n != 1 {
		t.Errorf("message lines = %d, want 1", n)
	}
}

func TestRun_InvalidCombination(t *testing.T) {
	cfg := testConfig()
	cfg.HotKeys = []string{"control", "hyper"}
	h := newHarness(t, Options{Config: cfg})

	err := h.app.Run(context.Background())
	var initErr *InitError
	if !errors.As(err, &initErr) || initErr.Component != "hotkeys" {
		t.Fatalf("Run() error = %v, want hotkeys InitError", err)
	}
	if !errors.Is(err, hotkeys.ErrUnknownKey) {
		t.Errorf("Run() error = %v, want ErrUnknownKey", err)
	}
	if h.app.Surface().Len() != 0 {
		t.Errorf("listeners = %d, want 0", h.app.Surface().Len())
	}
}

func TestRun_Twice(t *testing.T) {
	h := newHarness(t, Options{Config: testConfig()})
	h.start(t)
	h.app.Stop()
	if err := h.wait(t); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if err := h.app.Run(context.Background()); !errors.Is(err, ErrAlreadyRunning) {
		t.Errorf("second Run() error = %v, want ErrAlreadyRunning", err)
	}
	if h.app.Surface().Len() != 0 {
		t.Errorf("listeners after Run = %d, want 0", h.app.Surface().Len())
	}
}

func TestNew_BadScript(t *testing.T) {
	cfg := testConfig()
	cfg.Action.Script = "not lua at all"
	_, err := New(Options{
		Config:    cfg,
		Screen:    tcell.NewSimulationScreen("UTF-8"),
		LogOutput: io.Discard,
	})
	var initErr *InitError
	if !errors.As(err, &initErr) || initErr.Component != "action" {
		t.Errorf("New() error = %v, want action InitError", err)
	}
}

func TestApply_NotRunning(t *testing.T) {
	h := newHarness(t, Options{Config: testConfig()})
	if err := h.app.Apply(testConfig()); !errors.Is(err, ErrNotRunning) {
		t.Errorf("Apply() error = %v, want ErrNotRunning", err)
	}
}

func TestApply_ChangesCombination(t *testing.T) {
	h := newHarness(t, Options{Config: testConfig()})
	h.start(t)

	cfg := testConfig()
	cfg.HotKeys = []string{"alt", "enter"}
	if err := h.app.Apply(cfg); err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if got := h.app.Config().HotKeys; !slices.Equal(got, cfg.HotKeys) {
		t.Errorf("Config().HotKeys = %v, want %v", got, cfg.HotKeys)
	}

	// The old combination is detached and the new one fires.
	h.screen.InjectKey(tcell.KeyRune, 'k', tcell.ModCtrl)
	h.screen.InjectKey(tcell.KeyEnter, 0, tcell.ModAlt)
	h.waitLines(t, "pressed", 1)
	if n := h.countLines("pressed"); n != 1 {
		t.Errorf("activations = %d, want 1", n)
	}
	// Main and quit engines only.
	if n := h.app.Surface().Len(); n != 2 {
		t.Errorf("listeners = %d, want 2", n)
	}
}

func TestApply_InvalidCombinationKeepsOldEngine(t *testing.T) {
	h := newHarness(t, Options{Config: testConfig()})
	h.start(t)

	cfg := testConfig()
	cfg.HotKeys = []string{"control", "hyper"}
	err := h.app.Apply(cfg)
	if !errors.Is(err, hotkeys.ErrUnknownKey) {
		t.Fatalf("Apply() error = %v, want ErrUnknownKey", err)
	}
	if got := h.app.Config().HotKeys; !slices.Equal(got, []string{"control", "k"}) {
		t.Errorf("Config().HotKeys = %v, want [control k]", got)
	}

	h.screen.InjectKey(tcell.KeyRune, 'k', tcell.ModCtrl)
	h.waitLines(t, "pressed", 1)

	if got := counterValue(t, h.app, "hotkeys_config_reloads_total"); got != 1 {
		t.Errorf("hotkeys_config_reloads_total = %v, want 1", got)
	}
}

func TestApply_DisabledIsLive(t *testing.T) {
	h := newHarness(t, Options{Config: testConfig()})
	h.start(t)

	cfg := testConfig()
	cfg.Disabled = true
	if err := h.app.Apply(cfg); err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	h.screen.InjectKey(tcell.KeyRune, 'k', tcell.ModCtrl)

	// Apply runs after the injected key on the event goroutine.
	cfg.Disabled = false
	if err := h.app.Apply(cfg); err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if n := h.countLines("pressed"); n != 0 {
		t.Errorf("activations while disabled = %d, want 0", n)
	}

	h.screen.InjectKey(tcell.KeyRune, 'k', tcell.ModCtrl)
	h.waitLines(t, "pressed", 1)
}

func TestApply_ActionIsLive(t *testing.T) {
	h := newHarness(t, Options{Config: testConfig()})
	h.start(t)

	cfg := testConfig()
	cfg.Action.Message = "changed"
	if err := h.app.Apply(cfg); err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	h.screen.InjectKey(tcell.KeyRune, 'k', tcell.ModCtrl)
	h.waitLines(t, "changed", 1)
	if n := h.countLines("pressed"); n != 0 {
		t.Errorf("old message lines = %d, want 0", n)
	}
}

func TestApply_ChangesQuit(t *testing.T) {
	h := newHarness(t, Options{Config: testConfig()})
	h.start(t)

	cfg := testConfig()
	cfg.Quit = []string{"escape"}
	if err := h.app.Apply(cfg); err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if h.app.Terminal().Header() != "hotkeys: control+k to trigger, escape to quit" {
		t.Errorf("Header() = %q", h.app.Terminal().Header())
	}

	h.screen.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)
	if err := h.wait(t); err != nil {
		t.Errorf("Run() error = %v, want nil", err)
	}
}

func TestReload_WatchesConfigFile(t *testing.T) {
	for _, env := range []string{config.EnvKeys, config.EnvDisabled, config.EnvLogLevel, config.EnvMetricsAddr} {
		t.Setenv(env, "")
		os.Unsetenv(env)
	}

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("hotkeys = [\"control\", \"k\"]\n"), 0644); err != nil {
		t.Fatal(err)
	}

	h := newHarness(t, Options{ConfigPath: path, WatchDebounce: 10 * time.Millisecond})
	h.start(t)

	data := "hotkeys = [\"alt\", \"enter\"]\n[action]\nmessage = \"reloaded\"\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	deadline := time.Now().Add(3 * time.Second)
	for !slices.Equal(h.app.Config().HotKeys, []string{"alt", "enter"}) {
		if time.Now().After(deadline) {
			t.Fatalf("Config().HotKeys = %v after file change", h.app.Config().HotKeys)
		}
		time.Sleep(10 * time.Millisecond)
	}

	h.screen.InjectKey(tcell.KeyEnter, 0, tcell.ModAlt)
	h.waitLines(t, "reloaded", 1)
}
