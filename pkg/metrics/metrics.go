// Package metrics exposes the engine's Prometheus instrumentation.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Config configures the engine metrics.
type Config struct {
	// Namespace is the metrics namespace (default: "brunhild").
	Namespace string

	// Subsystem is the metrics subsystem (default: "").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for render duration.
	// Default: prometheus.DefBuckets
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// Option configures the engine metrics.
type Option func(*Config)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) Option {
	return func(c *Config) {
		c.Namespace = namespace
	}
}

// WithSubsystem sets the metrics subsystem.
func WithSubsystem(subsystem string) Option {
	return func(c *Config) {
		c.Subsystem = subsystem
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) Option {
	return func(c *Config) {
		c.ConstLabels = labels
	}
}

// WithBuckets sets the render duration histogram buckets.
func WithBuckets(buckets []float64) Option {
	return func(c *Config) {
		c.Buckets = buckets
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) Option {
	return func(c *Config) {
		c.Registry = registry
	}
}

func defaultConfig() Config {
	return Config{
		Namespace: "brunhild",
		Buckets:   prometheus.DefBuckets,
		Registry:  prometheus.DefaultRegisterer,
	}
}

// Metrics holds the engine's Prometheus collectors.
type Metrics struct {
	// RenderCycles counts completed render cycles.
	RenderCycles prometheus.Counter

	// RenderDuration observes render cycle duration in seconds,
	// diff and flush included.
	RenderDuration prometheus.Histogram

	// PatchesTotal counts emitted patches by operation.
	PatchesTotal *prometheus.CounterVec

	// FlushSize observes the number of patches per flush, after
	// coalescing.
	FlushSize prometheus.Histogram

	// MissingTargets counts patches rejected by the host because their
	// target element no longer exists.
	MissingTargets prometheus.Counter

	// InternedStrings tracks the number of dynamically interned strings.
	InternedStrings prometheus.Gauge
}

// New creates and registers the engine metrics.
func New(opts ...Option) *Metrics {
	config := defaultConfig()
	for _, opt := range opts {
		opt(&config)
	}
	factory := promauto.With(config.Registry)

	return &Metrics{
		RenderCycles: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "render_cycles_total",
			Help:        "Total number of completed render cycles",
			ConstLabels: config.ConstLabels,
		}),

		RenderDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "render_duration_seconds",
			Help:        "Render cycle duration in seconds",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}),

		PatchesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "patches_total",
			Help:        "Total number of emitted patches by operation",
			ConstLabels: config.ConstLabels,
		}, []string{"op"}),

		FlushSize: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "flush_size_patches",
			Help:        "Number of patches applied per flush after coalescing",
			ConstLabels: config.ConstLabels,
			Buckets:     []float64{0, 1, 2, 5, 10, 25, 50, 100, 250},
		}),

		MissingTargets: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "missing_targets_total",
			Help:        "Total number of patches whose target element no longer exists",
			ConstLabels: config.ConstLabels,
		}),

		InternedStrings: factory.NewGauge(prometheus.GaugeOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "interned_strings",
			Help:        "Number of dynamically interned strings",
			ConstLabels: config.ConstLabels,
		}),
	}
}
