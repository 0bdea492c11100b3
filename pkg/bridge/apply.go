package bridge

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/brunhild-dev/brunhild/pkg/vdom"
)

// Applier owns the buffer in front of one Host and translates drained
// patches into host calls.
type Applier struct {
	host Host
	buf  Buffer
	log  *slog.Logger
}

// Option configures an Applier.
type Option func(*Applier)

// WithLogger sets the logger used for per-patch flush failures.
func WithLogger(l *slog.Logger) Option {
	return func(a *Applier) {
		a.log = l
	}
}

// NewApplier creates an Applier writing to host.
func NewApplier(host Host, opts ...Option) *Applier {
	a := &Applier{
		host: host,
		log:  slog.Default(),
	}
	for _, opt := range opts {
		opt(a)
	}
	a.log = a.log.With("component", "bridge")
	return a
}

// Queue buffers patches for the next Flush, coalescing against earlier
// queued patches.
func (a *Applier) Queue(patches ...vdom.Patch) {
	a.buf.PushAll(patches)
}

// Pending returns the number of patches awaiting Flush.
func (a *Applier) Pending() int {
	return a.buf.Len()
}

// Flush drains the buffer and applies every patch in order. Application
// is best-effort: a failing patch is logged and skipped, the rest still
// run, and the joined failures come back as one error. The buffer is
// empty afterwards either way.
func (a *Applier) Flush() error {
	var errs []error
	for _, p := range a.buf.Drain() {
		if err := a.apply(p); err != nil {
			a.log.Error("patch application failed",
				"op", p.Op.String(),
				"target", vdom.FormatID(p.ID),
				"error", err,
			)
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// apply dispatches one patch to the corresponding host primitive.
func (a *Applier) apply(p vdom.Patch) error {
	id := vdom.FormatID(p.ID)
	switch p.Op {
	case vdom.OpReplaceOuter:
		return a.host.SetOuterHTML(id, p.HTML)
	case vdom.OpReplaceInner:
		return a.host.SetInnerHTML(id, p.HTML)
	case vdom.OpAppend:
		return a.host.Append(id, p.HTML)
	case vdom.OpPrepend:
		return a.host.Prepend(id, p.HTML)
	case vdom.OpInsertBefore:
		return a.host.InsertBefore(id, p.HTML)
	case vdom.OpInsertAfter:
		return a.host.InsertAfter(id, p.HTML)
	case vdom.OpRemove:
		return a.host.Remove(id)
	case vdom.OpSetAttr:
		return a.host.SetAttr(id, p.Key, p.Val)
	case vdom.OpRemoveAttr:
		return a.host.RemoveAttr(id, p.Key)
	default:
		return fmt.Errorf("unknown patch op %d on %s", p.Op, id)
	}
}
