package app

import (
	"errors"
	"fmt"
	"slices"

	"github.com/dshills/hotkeys/internal/config"
)

// Reload loads the configuration file again and applies it.
func (app *Application) Reload() error {
	cfg, err := config.Load(app.opts.ConfigPath)
	if err != nil {
		app.metrics.RecordReload(err)
		app.report("reload failed", err)
		return err
	}
	return app.Apply(cfg)
}

// Apply applies cfg on the event goroutine and waits for the result.
//
// The disabled flag and the action take effect on the next key-down. A
// changed combination replaces its engine; if the new combination is
// invalid the old engine keeps running and the error is returned.
func (app *Application) Apply(cfg *config.Config) error {
	select {
	case <-app.ready:
	default:
		return ErrNotRunning
	}

	result := make(chan error, 1)
	if err := app.term.Do(func() { result <- app.apply(cfg.Clone()) }); err != nil {
		return ErrNotRunning
	}
	select {
	case err := <-result:
		return err
	case <-app.stopped:
		return ErrNotRunning
	}
}

func (app *Application) apply(cfg *config.Config) error {
	prev := app.Config()
	var errs []error

	app.logger.SetLevel(cfg.LogLevel())
	app.main.shortcut.SetDisabled(cfg.Disabled)

	if cfg.Action != prev.Action {
		sink, script, err := app.buildSink(cfg.Action)
		if err != nil {
			errs = append(errs, fmt.Errorf("action: %w", err))
			cfg.Action = prev.Action
		} else {
			app.closeScript()
			app.sink, app.script = sink, script
		}
	}

	if !cfg.SameHotKeys(prev) {
		next, err := app.rebind(app.main, cfg.HotKeys, app.fire)
		if err != nil {
			errs = append(errs, fmt.Errorf("hotkeys: %w", err))
			cfg.HotKeys = prev.HotKeys
		}
		app.main = next
	}
	if !slices.Equal(cfg.Quit, prev.Quit) {
		next, err := app.rebind(app.quit, cfg.Quit, app.Stop)
		if err != nil {
			errs = append(errs, fmt.Errorf("quit: %w", err))
			cfg.Quit = prev.Quit
		}
		app.quit = next
	}

	if cfg.Metrics.Addr != prev.Metrics.Addr {
		app.logger.Warn("metrics address change takes effect on restart", "addr", cfg.Metrics.Addr)
		cfg.Metrics.Addr = prev.Metrics.Addr
	}

	app.mu.Lock()
	app.cfg = cfg
	app.mu.Unlock()

	app.term.SetHeader(header(cfg))
	app.updateEngineGauge()

	err := errors.Join(errs...)
	app.metrics.RecordReload(err)
	if err != nil {
		app.report("reload", err)
	} else {
		app.logger.Info("configuration reloaded", "hotkeys", app.main.engine.Combination().String())
	}
	return err
}

// rebind attaches a new engine for keys and detaches old. On failure old is
// returned unchanged and stays attached.
func (app *Application) rebind(old binding, keys []string, onClick func()) (binding, error) {
	next := app.newBinding(keys, old.shortcut.Disabled(), onClick)
	if err := next.engine.Init(); err != nil {
		return old, err
	}
	old.engine.Destroy()
	return next, nil
}
