package vdom

import (
	"fmt"
	"sort"

	"github.com/brunhild-dev/brunhild/internal/errors"
	"github.com/brunhild-dev/brunhild/pkg/intern"
)

// ReservedAttr is the attribute name reserved for internal element
// addressing. It may never appear in a node's attribute set.
const ReservedAttr = "id"

// ErrReservedAttr is returned when an element is constructed with the
// reserved identifier attribute among its attributes.
var ErrReservedAttr = errors.New("BH002")

// VKind is the node type discriminator.
type VKind uint8

const (
	KindElement  VKind = iota // <div>, <button>, etc.
	KindText                  // Plain text node
	KindFragment              // Grouping without wrapper
)

// String returns the string representation of the VKind.
func (k VKind) String() string {
	switch k {
	case KindElement:
		return "Element"
	case KindText:
		return "Text"
	case KindFragment:
		return "Fragment"
	default:
		return "Unknown"
	}
}

// Attr is one attribute as a pair of interned handles. A Val of intern.None
// marks a valueless attribute (rendered as a bare name, e.g. "disabled").
type Attr struct {
	Key intern.Handle
	Val intern.Handle
}

// VNode is a virtual DOM node. Element nodes hold interned handles for
// their tag and attributes, so structural comparison is integer
// comparison; the strings themselves live in the interner the tree was
// built through.
type VNode struct {
	Kind     VKind
	Tag      intern.Handle // elements only
	Attrs    []Attr        // elements only; sorted by resolved key
	Children []*VNode      // elements and fragments
	Text     string        // text nodes only

	// domID links the node to a real DOM element. Zero until the node is
	// first materialized against the host, then stable for the node's
	// lifetime.
	domID uint64
}

// DOMID returns the element identifier assigned during materialization,
// or 0 if the node has not been materialized yet.
func (v *VNode) DOMID() uint64 {
	return v.domID
}

// NewElement constructs an element node, eagerly interning the tag and
// every attribute key and value. Construction never touches the host DOM.
//
// An empty attribute value produces a valueless attribute. The reserved
// identifier attribute is rejected with ErrReservedAttr for any value.
// Nil children are skipped, which keeps conditional construction terse.
func NewElement(in *intern.Interner, tag string, attrs map[string]string, children ...*VNode) (*VNode, error) {
	node := &VNode{
		Kind: KindElement,
		Tag:  in.Intern(tag),
	}

	if len(attrs) > 0 {
		keys := make([]string, 0, len(attrs))
		for k := range attrs {
			if k == ReservedAttr {
				return nil, fmt.Errorf("constructing <%s>: %w", tag, ErrReservedAttr)
			}
			keys = append(keys, k)
		}
		// Canonical order: attribute equality is order-insensitive.
		sort.Strings(keys)
		node.Attrs = make([]Attr, len(keys))
		for i, k := range keys {
			node.Attrs[i] = Attr{Key: in.Intern(k), Val: in.Intern(attrs[k])}
		}
	}

	for _, child := range children {
		if child != nil {
			node.Children = append(node.Children, child)
		}
	}
	return node, nil
}

// MustElement is NewElement for statically known attribute sets. It panics
// on a reserved attribute, which for literal trees is a build-time mistake.
func MustElement(in *intern.Interner, tag string, attrs map[string]string, children ...*VNode) *VNode {
	node, err := NewElement(in, tag, attrs, children...)
	if err != nil {
		panic(err)
	}
	return node
}

// NewText constructs a text node. Text content is not interned: it is
// typically unique per node and would only grow the dynamic table.
func NewText(content string) *VNode {
	return &VNode{
		Kind: KindText,
		Text: content,
	}
}

// NewFragment groups children without a wrapper element. A fragment has no
// DOM representation of its own; its children are spliced into the
// parent's position and it never receives an element identifier.
func NewFragment(children ...*VNode) *VNode {
	node := &VNode{Kind: KindFragment}
	for _, child := range children {
		if child != nil {
			node.Children = append(node.Children, child)
		}
	}
	return node
}

// Equal reports structural equality between two nodes built through the
// same interner. Elements compare by tag, attribute set (order-insensitive
// thanks to canonical ordering) and children (order-sensitive,
// recursively); text nodes compare by content; nodes of different kinds
// are never equal. Element identifiers do not participate.
func Equal(a, b *VNode) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case KindText:
		return a.Text == b.Text
	case KindElement:
		if a.Tag != b.Tag || len(a.Attrs) != len(b.Attrs) {
			return false
		}
		for i := range a.Attrs {
			if a.Attrs[i] != b.Attrs[i] {
				return false
			}
		}
	}
	if len(a.Children) != len(b.Children) {
		return false
	}
	for i := range a.Children {
		if !Equal(a.Children[i], b.Children[i]) {
			return false
		}
	}
	return true
}
