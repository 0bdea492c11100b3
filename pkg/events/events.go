package events

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/brunhild-dev/brunhild/internal/errors"
)

// Attrs is the attribute snapshot of the element an event fired on,
// captured host-side at dispatch time. Handlers must treat it as
// read-only; it is shared between handlers of the same dispatch.
type Attrs map[string]string

// Handler consumes one dispatched event.
type Handler func(Attrs)

// Binder is the host-side half of event delegation. The registry calls
// it exactly once per (event type, selector) pair going live, and once
// per pair going dead, regardless of how many handlers come and go in
// between.
type Binder interface {
	RegisterListener(eventType, selector string) error
	UnregisterListener(eventType, selector string) error
}

// ListenerID identifies one registered handler for later removal.
type ListenerID uint64

// ErrNoBinding is returned by Dispatch when no handler is registered for
// the incoming (event type, selector) pair. The host may race a dispatch
// against an unlisten, so callers typically log it and move on.
var ErrNoBinding = errors.New("BH004")

type pair struct {
	typ string
	sel string
}

type binding struct {
	id ListenerID
	fn Handler
}

// Registry fans dispatched events out to handlers, keyed by event type
// and CSS selector. Like the rest of the engine it is single-threaded;
// all registration and dispatch happens on the engine's goroutine.
type Registry struct {
	binder   Binder
	log      *slog.Logger
	next     ListenerID
	handlers map[pair][]binding
	byID     map[ListenerID]pair
}

// RegistryOption configures a Registry.
type RegistryOption func(*Registry)

// WithLogger sets the logger used for dispatch anomalies.
func WithLogger(l *slog.Logger) RegistryOption {
	return func(r *Registry) {
		r.log = l
	}
}

// NewRegistry creates a Registry bound to the given host-side binder.
func NewRegistry(binder Binder, opts ...RegistryOption) *Registry {
	r := &Registry{
		binder:   binder,
		log:      slog.Default(),
		handlers: make(map[pair][]binding),
		byID:     make(map[ListenerID]pair),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.log = r.log.With("component", "events")
	return r
}

// Listen registers fn for events of the given type on elements matching
// selector. The first handler for a pair binds a native listener through
// the Binder; further handlers for the same pair share it. On a binder
// failure nothing is registered.
func (r *Registry) Listen(eventType, selector string, fn Handler) (ListenerID, error) {
	p := pair{typ: eventType, sel: selector}
	if len(r.handlers[p]) == 0 {
		if err := r.binder.RegisterListener(eventType, selector); err != nil {
			return 0, fmt.Errorf("binding %s on %q: %w", eventType, selector, err)
		}
	}
	r.next++
	id := r.next
	r.handlers[p] = append(r.handlers[p], binding{id: id, fn: fn})
	r.byID[id] = p
	return id, nil
}

// Unlisten removes one handler. When the last handler of its pair goes,
// the native listener is unbound. Unknown ids are a no-op.
func (r *Registry) Unlisten(id ListenerID) error {
	p, ok := r.byID[id]
	if !ok {
		return nil
	}
	delete(r.byID, id)

	list := r.handlers[p]
	for i := range list {
		if list[i].id == id {
			list = append(list[:i], list[i+1:]...)
			break
		}
	}
	if len(list) > 0 {
		r.handlers[p] = list
		return nil
	}
	delete(r.handlers, p)
	if err := r.binder.UnregisterListener(p.typ, p.sel); err != nil {
		return fmt.Errorf("unbinding %s on %q: %w", p.typ, p.sel, err)
	}
	return nil
}

// UnlistenAll removes every handler for the pair and unbinds its native
// listener. A pair with no handlers is a no-op.
func (r *Registry) UnlistenAll(eventType, selector string) error {
	p := pair{typ: eventType, sel: selector}
	list, ok := r.handlers[p]
	if !ok {
		return nil
	}
	for _, b := range list {
		delete(r.byID, b.id)
	}
	delete(r.handlers, p)
	if err := r.binder.UnregisterListener(eventType, selector); err != nil {
		return fmt.Errorf("unbinding %s on %q: %w", eventType, selector, err)
	}
	return nil
}

// Dispatch routes one host event to every handler of its pair, in
// registration order. snapshot is the JSON-encoded attribute map of the
// matched element; nil or empty means no attributes. A pair with no
// handlers is logged and reported as ErrNoBinding but is otherwise
// harmless.
func (r *Registry) Dispatch(eventType, selector string, snapshot []byte) error {
	p := pair{typ: eventType, sel: selector}
	list, ok := r.handlers[p]
	if !ok {
		r.log.Warn("dispatch with no handlers",
			"event", eventType,
			"selector", selector,
		)
		return fmt.Errorf("dispatching %s on %q: %w", eventType, selector, ErrNoBinding)
	}

	attrs := Attrs{}
	if len(snapshot) > 0 {
		if err := json.Unmarshal(snapshot, &attrs); err != nil {
			return fmt.Errorf("decoding %s snapshot: %w", eventType, err)
		}
	}
	for _, b := range list {
		b.fn(attrs)
	}
	return nil
}

// Handlers returns the number of handlers registered for the pair.
func (r *Registry) Handlers(eventType, selector string) int {
	return len(r.handlers[pair{typ: eventType, sel: selector}])
}
