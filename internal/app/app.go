// Package app wires the shortcut host together: configuration, logging,
// the terminal key source, the shortcut engines, their actions and the
// metrics endpoint. It also applies configuration reloads.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/hotkeys/internal/action"
	"github.com/dshills/hotkeys/internal/config"
	"github.com/dshills/hotkeys/internal/config/watcher"
	"github.com/dshills/hotkeys/internal/hotkeys"
	"github.com/dshills/hotkeys/internal/input/surface"
	"github.com/dshills/hotkeys/internal/input/terminal"
	"github.com/dshills/hotkeys/internal/logging"
	"github.com/dshills/hotkeys/internal/metrics"
)

// Options configures the application.
type Options struct {
	// ConfigPath is the configuration file. When set, the file is watched
	// and reloaded on change.
	ConfigPath string

	// Config overrides loading. ConfigPath is still watched when set.
	Config *config.Config

	// Screen is the terminal screen. Defaults to the controlling tty.
	Screen tcell.Screen

	// LogOutput receives log records. Defaults to os.Stderr.
	LogOutput io.Writer

	// WatchDebounce overrides the config watcher debounce.
	WatchDebounce time.Duration
}

// binding is one shortcut and the engine observing it.
type binding struct {
	shortcut *Shortcut
	engine   *hotkeys.Engine
}

// Application runs shortcut engines on a terminal.
//
// Key dispatch, engine lifecycle, actions and reloads all run on the
// terminal's event goroutine.
type Application struct {
	opts Options

	mu     sync.Mutex
	cfg    *config.Config
	cancel context.CancelFunc

	logger  *logging.Logger
	metrics *metrics.Metrics
	surface *surface.Surface
	term    *terminal.Terminal

	// Owned by the event goroutine once Run starts.
	main   binding
	quit   binding
	sink   action.Sink
	script *action.Script
	count  int

	started atomic.Bool
	ready   chan struct{}
	stopped chan struct{}
}

// New creates an application and builds its components.
func New(opts Options) (*Application, error) {
	app := &Application{
		opts:    opts,
		ready:   make(chan struct{}),
		stopped: make(chan struct{}),
	}
	if err := app.bootstrap(); err != nil {
		return nil, err
	}
	return app, nil
}

// bootstrap initializes all components in dependency order.
func (app *Application) bootstrap() error {
	// 1. Config
	cfg := app.opts.Config
	if cfg == nil {
		loaded, err := config.Load(app.opts.ConfigPath)
		if err != nil {
			return &InitError{Component: "config", Err: err}
		}
		cfg = loaded
	} else {
		cfg = cfg.Clone()
	}
	app.cfg = cfg

	// 2. Logging
	out := app.opts.LogOutput
	if out == nil {
		out = os.Stderr
	}
	app.logger = logging.New(logging.Config{
		Level:  cfg.LogLevel(),
		Output: out,
		Prefix: "hotkeys",
		JSON:   cfg.Log.JSON,
	})

	// 3. Metrics and the key-down surface
	app.metrics = metrics.New()
	app.surface = surface.New(surface.WithObserver(app.metrics.ObserveKeyDown))

	// 4. Terminal
	termOpts := []terminal.Option{
		terminal.WithLogger(app.logger),
		terminal.WithHeader(header(cfg)),
	}
	if app.opts.Screen != nil {
		app.term = terminal.NewWithScreen(app.opts.Screen, app.surface, termOpts...)
	} else {
		term, err := terminal.New(app.surface, termOpts...)
		if err != nil {
			return &InitError{Component: "terminal", Err: err}
		}
		app.term = term
	}

	// 5. Action
	sink, script, err := app.buildSink(cfg.Action)
	if err != nil {
		return &InitError{Component: "action", Err: err}
	}
	app.sink, app.script = sink, script

	// 6. Shortcuts
	app.main = app.newBinding(cfg.HotKeys, cfg.Disabled, app.fire)
	app.quit = app.newBinding(cfg.Quit, false, app.Stop)
	return nil
}

func (app *Application) newBinding(keys []string, disabled bool, onClick func()) binding {
	sc := NewShortcut(keys,
		WithTarget(app.surface),
		WithOnClick(onClick),
		WithDisabled(disabled),
	)
	return binding{
		shortcut: sc,
		engine:   hotkeys.New(sc, hotkeys.WithLogger(app.logger)),
	}
}

func (app *Application) buildSink(ac config.ActionConfig) (action.Sink, *action.Script, error) {
	sinks := action.Multi{action.NewMessage(ac.Message, app.term.Println)}

	var script *action.Script
	if ac.Script != "" {
		s, err := action.NewScript(ac.Script,
			action.WithScriptOutput(app.term.Println),
			action.WithScriptLogger(app.logger),
		)
		if err != nil {
			return nil, nil, err
		}
		sinks = append(sinks, s)
		script = s
	}
	return app.metrics.WrapSink(sinks), script, nil
}

func header(cfg *config.Config) string {
	h := fmt.Sprintf("hotkeys: %s to trigger, %s to quit",
		strings.Join(cfg.HotKeys, "+"), strings.Join(cfg.Quit, "+"))
	if cfg.Disabled {
		h += " (disabled)"
	}
	return h
}

// Run initializes the engines and the terminal and dispatches keys until
// ctx is done or the quit shortcut fires. Run may be called once.
func (app *Application) Run(ctx context.Context) error {
	if !app.started.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	app.mu.Lock()
	app.cancel = cancel
	app.mu.Unlock()

	if err := app.main.engine.Init(); err != nil {
		return &InitError{Component: "hotkeys", Err: err}
	}
	defer func() { app.main.engine.Destroy() }()
	if err := app.quit.engine.Init(); err != nil {
		return &InitError{Component: "quit hotkeys", Err: err}
	}
	defer func() { app.quit.engine.Destroy() }()
	app.updateEngineGauge()

	if err := app.term.Init(); err != nil {
		return &InitError{Component: "terminal", Err: err}
	}
	defer app.term.Shutdown()
	defer app.closeScript()

	var wg sync.WaitGroup
	if addr := app.Config().Metrics.Addr; addr != "" {
		srv, err := app.metrics.Listen(addr)
		if err != nil {
			return &InitError{Component: "metrics", Err: err}
		}
		app.logger.Info("metrics listening", "addr", srv.Addr())
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := srv.Serve(ctx); err != nil {
				app.logger.Error("metrics server", "error", err)
			}
		}()
	}

	if app.opts.ConfigPath != "" {
		w, err := app.startWatcher(app.opts.ConfigPath)
		if err != nil {
			app.logger.Warn("config watch disabled", "path", app.opts.ConfigPath, "error", err)
		} else {
			defer w.Stop()
		}
	}

	app.logger.Info("running", "hotkeys", app.main.engine.Combination().String(),
		"quit", app.quit.engine.Combination().String())
	close(app.ready)

	err := app.term.Run(ctx)
	close(app.stopped)
	cancel()
	wg.Wait()
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// Ready is closed once Run has attached the engines and opened the screen.
func (app *Application) Ready() <-chan struct{} {
	return app.ready
}

// Stop ends Run. It is the quit shortcut's action.
func (app *Application) Stop() {
	app.mu.Lock()
	cancel := app.cancel
	app.mu.Unlock()
	if cancel != nil {
		cancel()
	}
}

// Config returns a copy of the active configuration.
func (app *Application) Config() *config.Config {
	app.mu.Lock()
	defer app.mu.Unlock()
	return app.cfg.Clone()
}

// Terminal returns the terminal host.
func (app *Application) Terminal() *terminal.Terminal {
	return app.term
}

// Metrics returns the metrics collector.
func (app *Application) Metrics() *metrics.Metrics {
	return app.metrics
}

// Surface returns the key-down surface the engines observe.
func (app *Application) Surface() *surface.Surface {
	return app.surface
}

// fire runs the action for one activation of the main shortcut.
func (app *Application) fire() {
	app.count++
	n := action.Notification{
		Keys:  app.main.engine.Combination().String(),
		Count: app.count,
		Time:  time.Now(),
	}
	if err := app.sink.Notify(n); err != nil {
		app.report("action failed", err)
	}
}

func (app *Application) report(msg string, err error) {
	app.logger.Error(msg, "error", err)
	app.term.Println(fmt.Sprintf("%s: %v", msg, err))
}

func (app *Application) closeScript() {
	if app.script != nil {
		app.script.Close()
		app.script = nil
	}
}

func (app *Application) updateEngineGauge() {
	n := 0
	for _, b := range []binding{app.main, app.quit} {
		if b.engine.State() == hotkeys.StateActive {
			n++
		}
	}
	app.metrics.SetEnginesActive(n)
}

func (app *Application) startWatcher(path string) (*watcher.Watcher, error) {
	opts := []watcher.Option{
		watcher.WithErrorHandler(func(err error) {
			app.logger.Warn("config watcher", "error", err)
		}),
	}
	if app.opts.WatchDebounce > 0 {
		opts = append(opts, watcher.WithDebounce(app.opts.WatchDebounce))
	}

	w, err := watcher.New(opts...)
	if err != nil {
		return nil, err
	}
	if err := w.Watch(path); err != nil {
		_ = w.Stop()
		return nil, err
	}

	w.OnChange(func(ev watcher.Event) {
		if ev.Op == watcher.OpRemove || ev.Op == watcher.OpRename {
			app.logger.Warn("config file moved away", "path", ev.Path, "op", ev.Op.String())
			return
		}
		app.logger.Info("config changed", "path", ev.Path, "op", ev.Op.String())
		_ = app.Reload()
	})
	return w, nil
}
