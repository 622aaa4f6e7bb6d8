// Package metrics exposes Prometheus counters for shortcut activity.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/dshills/hotkeys/internal/action"
	"github.com/dshills/hotkeys/internal/input/key"
)

// Config configures the metrics collector.
type Config struct {
	// Namespace is the metrics namespace (default: "hotkeys").
	Namespace string

	// Registry receives the collectors. Default: a fresh registry.
	Registry *prometheus.Registry
}

// Option configures the metrics collector.
type Option func(*Config)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) Option {
	return func(c *Config) {
		c.Namespace = namespace
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry *prometheus.Registry) Option {
	return func(c *Config) {
		c.Registry = registry
	}
}

// Metrics holds the shortcut counters.
type Metrics struct {
	registry *prometheus.Registry

	keyDowns           prometheus.Counter
	prevented          prometheus.Counter
	notifications      *prometheus.CounterVec
	notificationErrors *prometheus.CounterVec
	reloads            *prometheus.CounterVec
	enginesActive      prometheus.Gauge
}

// New registers the counters and returns the collector.
func New(opts ...Option) *Metrics {
	cfg := Config{Namespace: "hotkeys"}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Registry == nil {
		cfg.Registry = prometheus.NewRegistry()
	}
	factory := promauto.With(cfg.Registry)

	return &Metrics{
		registry: cfg.Registry,

		keyDowns: factory.NewCounter(prometheus.CounterOpts{
			Namespace: cfg.Namespace,
			Name:      "keydown_total",
			Help:      "Total number of key-down events dispatched to the surface",
		}),

		prevented: factory.NewCounter(prometheus.CounterOpts{
			Namespace: cfg.Namespace,
			Name:      "keydown_prevented_total",
			Help:      "Total number of key-down events whose default action was suppressed",
		}),

		notifications: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: cfg.Namespace,
			Name:      "notifications_total",
			Help:      "Total number of shortcut activations",
		}, []string{"keys"}),

		notificationErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: cfg.Namespace,
			Name:      "notification_errors_total",
			Help:      "Total number of failed shortcut actions",
		}, []string{"keys"}),

		reloads: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: cfg.Namespace,
			Name:      "config_reloads_total",
			Help:      "Total number of configuration reloads",
		}, []string{"result"}),

		enginesActive: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: cfg.Namespace,
			Name:      "engines_active",
			Help:      "Number of shortcut engines with an attached listener",
		}),
	}
}

// Registry returns the registry holding the collectors.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// ObserveKeyDown records one dispatched key-down. It has the signature of a
// surface observer.
func (m *Metrics) ObserveKeyDown(ev *key.Event) {
	m.keyDowns.Inc()
	if ev.DefaultPrevented() {
		m.prevented.Inc()
	}
}

// RecordNotification records one activation of keys and its outcome.
func (m *Metrics) RecordNotification(keys string, err error) {
	m.notifications.WithLabelValues(keys).Inc()
	if err != nil {
		m.notificationErrors.WithLabelValues(keys).Inc()
	}
}

// RecordReload records a configuration reload.
func (m *Metrics) RecordReload(err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.reloads.WithLabelValues(result).Inc()
}

// SetEnginesActive sets the number of active engines.
func (m *Metrics) SetEnginesActive(n int) {
	m.enginesActive.Set(float64(n))
}

// WrapSink returns a sink that records every notification passed to next.
func (m *Metrics) WrapSink(next action.Sink) action.Sink {
	return action.SinkFunc(func(n action.Notification) error {
		err := next.Notify(n)
		m.RecordNotification(n.Keys, err)
		return err
	})
}
