// Package events implements delegated event handling over a host
// boundary.
//
// Rather than attaching a callback to every interactive element, the
// host installs one native listener per (event type, selector) pair and
// forwards matching events with a JSON snapshot of the element's
// attributes. The Registry keeps the handler fan-out on this side of the
// boundary, so adding a tenth click handler costs nothing host-side.
package events
