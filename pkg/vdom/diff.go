package vdom

import (
	"github.com/brunhild-dev/brunhild/internal/errors"
)

// Differ compares a committed tree against a freshly built one and emits
// the patch list transforming the host DOM from the former to the latter.
//
// The comparison is positional: children are matched by index, never by
// key. Reordering a list therefore churns the whole affected suffix. This
// is a deliberate non-goal of the engine, not an oversight; the payoff is
// that comparison stays a single cheap pass with no key bookkeeping.
type Differ struct {
	r *Renderer
}

// NewDiffer creates a Differ that serializes replacement subtrees through
// the given renderer, sharing its interner and identifier generator.
func NewDiffer(r *Renderer) *Differ {
	return &Differ{r: r}
}

// Diff produces the ordered patch list turning the DOM reflecting old into
// one reflecting new. Patches are emitted depth-first and their order is
// significant: later patches may reference elements established by
// earlier ones.
//
// old must be a materialized element (the committed tree); new must be an
// element freshly built for this cycle. As a side effect new is
// materialized in place - matched elements inherit old identifiers,
// replacement subtrees are assigned fresh ones - so it can be committed as
// the next old tree. Diffing a tree structurally equal to old yields an
// empty patch list.
func (d *Differ) Diff(old, new *VNode) ([]Patch, error) {
	if old == nil || new == nil {
		return nil, errors.Newf(errors.CategoryPatch, "diff requires both trees, got old=%v new=%v", old, new)
	}
	if old.Kind != KindElement || new.Kind != KindElement {
		return nil, errors.Newf(errors.CategoryPatch, "diff roots must be elements, got %s against %s", old.Kind, new.Kind)
	}
	if old.domID == 0 {
		return nil, errors.Newf(errors.CategoryPatch, "committed tree was never materialized")
	}

	var patches []Patch
	if err := d.diffNode(old, new, &patches); err != nil {
		return nil, err
	}
	return patches, nil
}

// diffNode compares one materialized element against its replacement
// candidate of any kind.
func (d *Differ) diffNode(old, new *VNode, patches *[]Patch) error {
	if old.domID == 0 {
		return errors.Newf(errors.CategoryPatch, "unmaterialized element in committed tree")
	}

	// Structurally irreconcilable: one coarse outer replacement, no
	// descendant diffing. Crossing into the host is the dominant cost, so
	// a subtree is cheaper as one HTML string than as many fine patches.
	if new.Kind != KindElement || new.Tag != old.Tag {
		if new.Kind == KindElement {
			new.domID = old.domID // replacement root inherits the slot
		}
		html, err := d.r.Subtree(new)
		if err != nil {
			return err
		}
		*patches = append(*patches, Patch{Op: OpReplaceOuter, ID: old.domID, HTML: html})
		return nil
	}

	new.domID = old.domID

	if err := d.diffAttrs(old, new, patches); err != nil {
		return err
	}
	return d.diffChildren(old, new, patches)
}

// diffAttrs merges the two canonical attribute lists, emitting SetAttr for
// added or changed keys and RemoveAttr for removed ones.
func (d *Differ) diffAttrs(old, new *VNode, patches *[]Patch) error {
	in := d.r.in
	i, j := 0, 0
	for i < len(old.Attrs) && j < len(new.Attrs) {
		oa, na := old.Attrs[i], new.Attrs[j]
		if oa.Key == na.Key {
			if oa.Val != na.Val {
				key, err := in.Resolve(na.Key)
				if err != nil {
					return err
				}
				val, err := in.Resolve(na.Val)
				if err != nil {
					return err
				}
				*patches = append(*patches, Patch{Op: OpSetAttr, ID: old.domID, Key: key, Val: val})
			}
			i++
			j++
			continue
		}

		ok, err := in.Resolve(oa.Key)
		if err != nil {
			return err
		}
		nk, err := in.Resolve(na.Key)
		if err != nil {
			return err
		}
		if ok < nk {
			*patches = append(*patches, Patch{Op: OpRemoveAttr, ID: old.domID, Key: ok})
			i++
		} else {
			val, err := in.Resolve(na.Val)
			if err != nil {
				return err
			}
			*patches = append(*patches, Patch{Op: OpSetAttr, ID: old.domID, Key: nk, Val: val})
			j++
		}
	}
	for ; i < len(old.Attrs); i++ {
		key, err := in.Resolve(old.Attrs[i].Key)
		if err != nil {
			return err
		}
		*patches = append(*patches, Patch{Op: OpRemoveAttr, ID: old.domID, Key: key})
	}
	for ; j < len(new.Attrs); j++ {
		key, err := in.Resolve(new.Attrs[j].Key)
		if err != nil {
			return err
		}
		val, err := in.Resolve(new.Attrs[j].Val)
		if err != nil {
			return err
		}
		*patches = append(*patches, Patch{Op: OpSetAttr, ID: old.domID, Key: key, Val: val})
	}
	return nil
}

// diffChildren compares child sequences positionally, with fragments
// spliced inline on both sides.
//
// Text children carry no identifier of their own, so any change that would
// have to target one - content change, kind change, removal - falls back
// to replacing the parent's contents wholesale. The classification pass
// runs before any patch is emitted so a coarse fallback never strands
// already-emitted child patches.
func (d *Differ) diffChildren(old, new *VNode, patches *[]Patch) error {
	oldKids := flatten(old.Children)
	newKids := flatten(new.Children)

	n, m := len(oldKids), len(newKids)
	common := n
	if m < common {
		common = m
	}

	coarse := false
	for i := 0; i < common; i++ {
		o, w := oldKids[i], newKids[i]
		if o.Kind == KindText && !(w.Kind == KindText && w.Text == o.Text) {
			coarse = true
			break
		}
	}
	if !coarse && n > m {
		for _, o := range oldKids[m:] {
			if o.Kind != KindElement {
				coarse = true
				break
			}
		}
	}

	if coarse {
		html, err := d.r.Nodes(newKids)
		if err != nil {
			return err
		}
		*patches = append(*patches, Patch{Op: OpReplaceInner, ID: old.domID, HTML: html})
		return nil
	}

	for i := 0; i < common; i++ {
		o, w := oldKids[i], newKids[i]
		if o.Kind == KindText {
			// Same content, nothing to do; the coarse pass caught changes.
			continue
		}
		if err := d.diffNode(o, w, patches); err != nil {
			return err
		}
	}

	// New tail: each child rendered and appended in order, so a child's
	// identifier exists only after its insertion patch is issued.
	for _, w := range newKids[common:] {
		html, err := d.r.Subtree(w)
		if err != nil {
			return err
		}
		*patches = append(*patches, Patch{Op: OpAppend, ID: old.domID, HTML: html})
	}

	// Old tail: removed back to front, matching DOM removal order.
	for i := n - 1; i >= common; i-- {
		*patches = append(*patches, Patch{Op: OpRemove, ID: oldKids[i].domID})
	}
	return nil
}

// flatten splices fragment children inline. The common case has no
// fragments and returns the input slice untouched.
func flatten(children []*VNode) []*VNode {
	needed := false
	for _, c := range children {
		if c.Kind == KindFragment {
			needed = true
			break
		}
	}
	if !needed {
		return children
	}

	out := make([]*VNode, 0, len(children))
	for _, c := range children {
		if c.Kind == KindFragment {
			out = append(out, flatten(c.Children)...)
		} else {
			out = append(out, c)
		}
	}
	return out
}
