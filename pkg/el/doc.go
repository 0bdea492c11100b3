// Package el is a terse builder DSL for node trees.
//
// A Builder wraps one interner and exposes a method per common HTML tag,
// each taking a loose argument list of attributes, children, and raw
// strings:
//
//	b := el.New(in)
//	tree := b.Div(el.Class("card"),
//		b.H1("Inbox"),
//		b.Ul(el.Range(items, func(it string, _ int) *vdom.VNode {
//			return b.Li(it)
//		})),
//		el.If(unread > 0, b.Span(el.Class("badge"), el.Textf("%d", unread))),
//	)
//
// The DSL favors panics over error returns: tree shape is static in
// practice, so a bad attribute key or argument type is a bug at the call
// site, not a runtime condition.
package el
