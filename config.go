package brunhild

import (
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/brunhild-dev/brunhild/pkg/bridge"
	"github.com/brunhild-dev/brunhild/pkg/events"
	"github.com/brunhild-dev/brunhild/pkg/metrics"
)

// defaultTracerName is the tracer used when none is supplied.
const defaultTracerName = "brunhild"

// Config is the engine configuration.
type Config struct {
	// Host is the document adapter patches are applied to. Required.
	Host bridge.Host

	// Binder is the host-side half of event delegation. If nil, event
	// registration succeeds but binds nothing; use this for headless
	// rendering where no events will ever arrive.
	Binder events.Binder

	// Logger is the structured logger for the engine.
	// If nil, slog.Default() is used.
	Logger *slog.Logger

	// Metrics enables Prometheus instrumentation of render cycles and
	// flushes. If nil, nothing is recorded.
	Metrics *metrics.Metrics

	// Tracer traces mount and render cycles. If nil, the global otel
	// tracer named "brunhild" is used; with no SDK installed that is a
	// no-op.
	Tracer trace.Tracer

	// DeferFlush keeps patches buffered across Render calls until an
	// explicit Flush. By default every Render flushes what it produced,
	// plus anything queued before it.
	DeferFlush bool
}

// noopBinder satisfies events.Binder for engines without a host-side
// event bridge.
type noopBinder struct{}

func (noopBinder) RegisterListener(string, string) error   { return nil }
func (noopBinder) UnregisterListener(string, string) error { return nil }

func (c Config) withDefaults() Config {
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
	if c.Binder == nil {
		c.Binder = noopBinder{}
	}
	if c.Tracer == nil {
		c.Tracer = otel.Tracer(defaultTracerName)
	}
	return c
}
