package bridge

import (
	"github.com/brunhild-dev/brunhild/pkg/vdom"
)

// Buffer accumulates patches between flushes and coalesces ones made
// redundant by later arrivals, so a burst of renders within one flush
// window costs the host no more than its net effect.
//
// Coalescing is strictly per-target: a patch only ever displaces earlier
// patches naming the same identifier. Order among surviving patches is
// preserved.
type Buffer struct {
	queue []vdom.Patch
}

// Push appends p, first dropping any earlier queued patch it supersedes:
//
//   - ReplaceOuter and Remove destroy the target wholesale, so every
//     earlier patch on that identifier is dead.
//   - ReplaceInner destroys the target's contents but not the element,
//     so earlier content patches on that identifier are dead while its
//     attribute patches still apply.
func (b *Buffer) Push(p vdom.Patch) {
	switch p.Op {
	case vdom.OpReplaceOuter, vdom.OpRemove:
		b.drop(p.ID, func(vdom.Patch) bool { return true })
	case vdom.OpReplaceInner:
		b.drop(p.ID, func(q vdom.Patch) bool {
			return q.Op != vdom.OpSetAttr && q.Op != vdom.OpRemoveAttr
		})
	}
	b.queue = append(b.queue, p)
}

// PushAll pushes patches in order, coalescing each as it lands.
func (b *Buffer) PushAll(patches []vdom.Patch) {
	for _, p := range patches {
		b.Push(p)
	}
}

// Len returns the number of queued patches.
func (b *Buffer) Len() int {
	return len(b.queue)
}

// Drain returns the queued patches in order and resets the buffer.
func (b *Buffer) Drain() []vdom.Patch {
	q := b.queue
	b.queue = nil
	return q
}

// drop removes queued patches on id for which dead returns true,
// compacting in place.
func (b *Buffer) drop(id uint64, dead func(vdom.Patch) bool) {
	kept := b.queue[:0]
	for _, q := range b.queue {
		if q.ID == id && dead(q) {
			continue
		}
		kept = append(kept, q)
	}
	b.queue = kept
}
