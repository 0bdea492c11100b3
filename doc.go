// Package brunhild is a minimal virtual DOM engine for hosts where
// crossing into the real document is expensive.
//
// The engine keeps a committed node tree, diffs each freshly built tree
// against it, and ships the difference as a short list of coarse patches
// addressed by engine-assigned id attributes. Strings are interned once
// and compared as integers from then on; event handling is delegated,
// one native listener per (event type, selector) pair.
//
// Typical use:
//
//	eng, err := brunhild.New(brunhild.Config{Host: host})
//	if err != nil { ... }
//	html, err := eng.Mount(ctx, eng.MustElement("div", nil, eng.Text("hello")))
//	// install html in the document, then per update:
//	err = eng.Render(ctx, nextTree)
//
// Subpackages hold the moving parts: pkg/intern (string interning),
// pkg/vdom (trees, serialization, diffing), pkg/bridge (patch transport,
// with an in-memory host under bridge/memdom), pkg/events (delegated
// events), and pkg/metrics (Prometheus collectors).
package brunhild
