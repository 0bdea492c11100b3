// Package vdom provides the node tree representation and the diff/patch
// engine.
//
// # Node Trees
//
// VNode describes a DOM subtree before materialization. Element nodes
// store their tag and attributes as interned handles, so whole-subtree
// comparison costs one integer comparison per attribute pair instead of a
// string comparison. Trees are built eagerly through an intern.Interner:
//
//	in := intern.New()
//	node, err := vdom.NewElement(in, "div", map[string]string{"class": "card"},
//	    vdom.NewText("hello"))
//
// The id attribute is reserved: element identifiers are managed
// internally, assigned lazily when a node is first serialized against the
// host, and rendered as id="bh-<n>".
//
// # Diffing
//
// Differ.Diff compares the committed tree against a freshly built one and
// returns an ordered []Patch. Replacements are deliberately coarse: an
// irreconcilable subtree becomes a single HTML string crossing the host
// boundary once, because the boundary crossing, not the DOM mutation, is
// the dominant cost. Child comparison is positional; there are no list
// keys.
package vdom
