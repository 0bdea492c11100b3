// Package bridge carries patches across the boundary between the engine
// and a live document.
//
// The engine never manipulates a document directly. It emits patches,
// the Buffer coalesces them, and the Applier replays the survivors
// against a Host - the narrow interface a real document adapter
// implements. The bridge/memdom subpackage provides an in-process Host
// backed by a parsed HTML tree, used for tests and headless rendering.
package bridge
