package vdom

import "strconv"

// IDGenerator issues monotonically increasing element identifiers.
// Identifiers are never recycled; the first issued value is 1, so a zero
// domID always means "not yet materialized".
//
// Like the interner, the generator is single-threaded by design: one
// writer, the diff cycle itself, on a cooperative host.
type IDGenerator struct {
	counter uint64
}

// Next returns the next element identifier.
func (g *IDGenerator) Next() uint64 {
	g.counter++
	return g.counter
}

// Current returns the last issued identifier without advancing.
func (g *IDGenerator) Current() uint64 {
	return g.counter
}

// FormatID renders an element identifier the way it appears in the DOM,
// e.g. FormatID(7) == "bh-7".
func FormatID(id uint64) string {
	return "bh-" + strconv.FormatUint(id, 10)
}
