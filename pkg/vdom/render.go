package vdom

import (
	"io"
	"strings"

	"github.com/brunhild-dev/brunhild/pkg/intern"
)

// voidElements are elements that cannot have children.
var voidElements = map[string]bool{
	"area":   true,
	"base":   true,
	"br":     true,
	"col":    true,
	"embed":  true,
	"hr":     true,
	"img":    true,
	"input":  true,
	"link":   true,
	"meta":   true,
	"param":  true,
	"source": true,
	"track":  true,
	"wbr":    true,
}

// IsVoidElement returns true if the tag is a void element.
func IsVoidElement(tag string) bool {
	return voidElements[tag]
}

// Renderer serializes node subtrees to HTML, resolving handles through the
// interner the tree was built with.
//
// Serialization materializes elements: every element in the output that
// does not yet carry an identifier is assigned one and gets it written as
// its id attribute, so later patches can address it directly. This is the
// single channel through which domIDs come into existence.
type Renderer struct {
	in  *intern.Interner
	ids *IDGenerator
}

// NewRenderer creates a Renderer over the given interner and identifier
// generator. The generator must be shared with the diff engine so
// identifiers stay unique across the whole tree.
func NewRenderer(in *intern.Interner, ids *IDGenerator) *Renderer {
	return &Renderer{in: in, ids: ids}
}

// WriteSubtree serializes node into w. Identifier assignment happens
// exactly as in Subtree; nothing is written on error.
func (r *Renderer) WriteSubtree(w io.Writer, node *VNode) error {
	html, err := r.Subtree(node)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, html)
	return err
}

// Subtree serializes a single node and its descendants.
func (r *Renderer) Subtree(node *VNode) (string, error) {
	var b strings.Builder
	b.Grow(1 << 10)
	if err := r.writeNode(&b, node); err != nil {
		return "", err
	}
	return b.String(), nil
}

// Nodes serializes a sequence of sibling nodes, e.g. the contents written
// by a ReplaceInner patch.
func (r *Renderer) Nodes(nodes []*VNode) (string, error) {
	var b strings.Builder
	b.Grow(1 << 10)
	for _, n := range nodes {
		if err := r.writeNode(&b, n); err != nil {
			return "", err
		}
	}
	return b.String(), nil
}

func (r *Renderer) writeNode(b *strings.Builder, node *VNode) error {
	if node == nil {
		return nil
	}

	switch node.Kind {
	case KindText:
		b.WriteString(escapeHTML(node.Text))
		return nil

	case KindFragment:
		for _, child := range node.Children {
			if err := r.writeNode(b, child); err != nil {
				return err
			}
		}
		return nil
	}

	tag, err := r.in.Resolve(node.Tag)
	if err != nil {
		return err
	}
	if node.domID == 0 {
		node.domID = r.ids.Next()
	}

	b.WriteByte('<')
	b.WriteString(tag)
	b.WriteString(` id="`)
	b.WriteString(FormatID(node.domID))
	b.WriteByte('"')

	for _, attr := range node.Attrs {
		key, err := r.in.Resolve(attr.Key)
		if err != nil {
			return err
		}
		b.WriteByte(' ')
		b.WriteString(key)
		if attr.Val != intern.None {
			val, err := r.in.Resolve(attr.Val)
			if err != nil {
				return err
			}
			b.WriteString(`="`)
			b.WriteString(escapeAttr(val))
			b.WriteByte('"')
		}
	}
	b.WriteByte('>')

	if voidElements[tag] {
		return nil
	}

	for _, child := range node.Children {
		if err := r.writeNode(b, child); err != nil {
			return err
		}
	}

	b.WriteString("</")
	b.WriteString(tag)
	b.WriteByte('>')
	return nil
}
