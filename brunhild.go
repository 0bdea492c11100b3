package brunhild

import (
	"context"
	stderrors "errors"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/brunhild-dev/brunhild/internal/errors"
	"github.com/brunhild-dev/brunhild/pkg/bridge"
	"github.com/brunhild-dev/brunhild/pkg/events"
	"github.com/brunhild-dev/brunhild/pkg/intern"
	"github.com/brunhild-dev/brunhild/pkg/metrics"
	"github.com/brunhild-dev/brunhild/pkg/vdom"
)

// Engine ties the pieces together: one interner, one identifier space,
// one committed tree, one host.
//
// The engine is single-threaded. Build trees, render, flush, and
// dispatch events from one goroutine; the engine takes no locks and
// detects no races. This mirrors its natural habitat, a cooperative
// event loop in front of a DOM-like document.
type Engine struct {
	in      *intern.Interner
	ids     *vdom.IDGenerator
	r       *vdom.Renderer
	d       *vdom.Differ
	applier *bridge.Applier
	events  *events.Registry

	committed *vdom.VNode

	log        *slog.Logger
	metrics    *metrics.Metrics
	tracer     trace.Tracer
	deferFlush bool
}

// New creates an Engine from cfg. cfg.Host is required.
func New(cfg Config) (*Engine, error) {
	if cfg.Host == nil {
		return nil, errors.Newf(errors.CategoryPatch, "engine requires a host")
	}
	cfg = cfg.withDefaults()

	in := intern.New()
	ids := &vdom.IDGenerator{}
	r := vdom.NewRenderer(in, ids)

	log := cfg.Logger.With("component", "engine")
	return &Engine{
		in:         in,
		ids:        ids,
		r:          r,
		d:          vdom.NewDiffer(r),
		applier:    bridge.NewApplier(cfg.Host, bridge.WithLogger(cfg.Logger)),
		events:     events.NewRegistry(cfg.Binder, events.WithLogger(cfg.Logger)),
		log:        log,
		metrics:    cfg.Metrics,
		tracer:     cfg.Tracer,
		deferFlush: cfg.DeferFlush,
	}, nil
}

// Element builds an element node through the engine's interner.
func (e *Engine) Element(tag string, attrs map[string]string, children ...*vdom.VNode) (*vdom.VNode, error) {
	return vdom.NewElement(e.in, tag, attrs, children...)
}

// MustElement is Element for statically known-good input.
func (e *Engine) MustElement(tag string, attrs map[string]string, children ...*vdom.VNode) *vdom.VNode {
	return vdom.MustElement(e.in, tag, attrs, children...)
}

// Text builds a text node.
func (e *Engine) Text(s string) *vdom.VNode {
	return vdom.NewText(s)
}

// Fragment groups children without a wrapping element.
func (e *Engine) Fragment(children ...*vdom.VNode) *vdom.VNode {
	return vdom.NewFragment(children...)
}

// Events returns the engine's event registry.
func (e *Engine) Events() *events.Registry {
	return e.events
}

// Committed returns the currently committed tree, nil before Mount.
func (e *Engine) Committed() *vdom.VNode {
	return e.committed
}

// Mount serializes root, commits it as the first tree, and returns the
// HTML for the caller to install in the host document. Mounting goes
// through the caller rather than the Host interface because initial
// placement is document-specific; every later change flows through
// patches.
func (e *Engine) Mount(ctx context.Context, root *vdom.VNode) (string, error) {
	_, span := e.tracer.Start(ctx, "brunhild.mount")
	defer span.End()

	if root == nil || root.Kind != vdom.KindElement {
		err := errors.Newf(errors.CategoryTree, "mount root must be an element")
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return "", err
	}
	html, err := e.r.Subtree(root)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return "", err
	}
	e.committed = root
	e.syncGauges()
	e.log.Debug("mounted", "root", vdom.FormatID(root.DOMID()), "bytes", len(html))
	return html, nil
}

// RenderHTML serializes the committed tree, e.g. to re-mount after the
// host document was torn down.
func (e *Engine) RenderHTML() (string, error) {
	if e.committed == nil {
		return "", errors.Newf(errors.CategoryPatch, "no committed tree")
	}
	return e.r.Subtree(e.committed)
}

// Render diffs root against the committed tree, queues the resulting
// patches, and unless the engine defers flushing, applies them to the
// host. root becomes the committed tree; the previous tree must not be
// reused afterwards.
func (e *Engine) Render(ctx context.Context, root *vdom.VNode) error {
	ctx, span := e.tracer.Start(ctx, "brunhild.render")
	defer span.End()

	if e.committed == nil {
		err := errors.Newf(errors.CategoryPatch, "render before mount")
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	start := time.Now()
	patches, err := e.d.Diff(e.committed, root)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	e.committed = root
	e.applier.Queue(patches...)

	span.SetAttributes(attribute.Int("brunhild.patches", len(patches)))
	if e.metrics != nil {
		e.metrics.RenderCycles.Inc()
		e.metrics.RenderDuration.Observe(time.Since(start).Seconds())
		for _, p := range patches {
			e.metrics.PatchesTotal.WithLabelValues(p.Op.String()).Inc()
		}
	}
	e.syncGauges()
	e.log.Debug("render cycle", "patches", len(patches))

	if e.deferFlush {
		return nil
	}
	if err := e.flush(ctx); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	return nil
}

// Flush applies all queued patches to the host. With DeferFlush set this
// is how buffered work reaches the document; otherwise Render calls it
// implicitly and Flush is only needed for patches queued out of band.
func (e *Engine) Flush(ctx context.Context) error {
	_, span := e.tracer.Start(ctx, "brunhild.flush")
	defer span.End()

	if err := e.flush(ctx); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	return nil
}

// Pending returns the number of patches queued and not yet flushed.
func (e *Engine) Pending() int {
	return e.applier.Pending()
}

func (e *Engine) flush(_ context.Context) error {
	size := e.applier.Pending()
	err := e.applier.Flush()
	if e.metrics != nil {
		e.metrics.FlushSize.Observe(float64(size))
		for _, missed := range unwrapAll(err) {
			if stderrors.Is(missed, bridge.ErrMissingTarget) {
				e.metrics.MissingTargets.Inc()
			}
		}
	}
	return err
}

func (e *Engine) syncGauges() {
	if e.metrics != nil {
		e.metrics.InternedStrings.Set(float64(e.in.Dynamic()))
	}
}

// unwrapAll flattens a joined error into its parts.
func unwrapAll(err error) []error {
	if err == nil {
		return nil
	}
	if multi, ok := err.(interface{ Unwrap() []error }); ok {
		return multi.Unwrap()
	}
	return []error{err}
}
