// Package memdom implements bridge.Host on an in-process HTML tree.
//
// It exists for tests and headless rendering: patches applied here have
// the same observable effect as in a browser, and the resulting document
// can be serialized and compared structurally. It is not a production
// document adapter.
package memdom

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/brunhild-dev/brunhild/pkg/bridge"
	"github.com/brunhild-dev/brunhild/pkg/vdom"
)

// Doc is a mutable HTML document body. The zero value is not usable;
// construct with New.
type Doc struct {
	body *html.Node
}

// New returns an empty document.
func New() *Doc {
	return &Doc{
		body: &html.Node{
			Type:     html.ElementNode,
			DataAtom: atom.Body,
			Data:     "body",
		},
	}
}

// SetBody replaces the whole document body with the parsed markup. Used
// to install a mounted tree before patches start arriving.
func (d *Doc) SetBody(markup string) error {
	frag, err := d.parse(markup, d.body)
	if err != nil {
		return err
	}
	for c := d.body.FirstChild; c != nil; c = d.body.FirstChild {
		d.body.RemoveChild(c)
	}
	for _, f := range frag {
		d.body.AppendChild(f)
	}
	return nil
}

// Body returns the canonical serialization of the document body's
// contents. Attributes are emitted in sorted order, so two structurally
// equal documents serialize identically regardless of how their markup
// was written.
func (d *Doc) Body() string {
	var b strings.Builder
	for c := d.body.FirstChild; c != nil; c = c.NextSibling {
		canonical(&b, c)
	}
	return b.String()
}

// Canonical parses markup and re-serializes it in the same canonical form
// Body uses, for structural comparison against a Doc.
func Canonical(markup string) (string, error) {
	d := New()
	if err := d.SetBody(markup); err != nil {
		return "", err
	}
	return d.Body(), nil
}

func (d *Doc) SetOuterHTML(id, markup string) error {
	n, err := d.find(id)
	if err != nil {
		return err
	}
	frag, err := d.parse(markup, n.Parent)
	if err != nil {
		return err
	}
	for _, f := range frag {
		n.Parent.InsertBefore(f, n)
	}
	n.Parent.RemoveChild(n)
	return nil
}

func (d *Doc) SetInnerHTML(id, markup string) error {
	n, err := d.find(id)
	if err != nil {
		return err
	}
	frag, err := d.parse(markup, n)
	if err != nil {
		return err
	}
	for c := n.FirstChild; c != nil; c = n.FirstChild {
		n.RemoveChild(c)
	}
	for _, f := range frag {
		n.AppendChild(f)
	}
	return nil
}

func (d *Doc) Append(id, markup string) error {
	n, err := d.find(id)
	if err != nil {
		return err
	}
	frag, err := d.parse(markup, n)
	if err != nil {
		return err
	}
	for _, f := range frag {
		n.AppendChild(f)
	}
	return nil
}

func (d *Doc) Prepend(id, markup string) error {
	n, err := d.find(id)
	if err != nil {
		return err
	}
	frag, err := d.parse(markup, n)
	if err != nil {
		return err
	}
	first := n.FirstChild
	for _, f := range frag {
		if first != nil {
			n.InsertBefore(f, first)
		} else {
			n.AppendChild(f)
		}
	}
	return nil
}

func (d *Doc) InsertBefore(id, markup string) error {
	n, err := d.find(id)
	if err != nil {
		return err
	}
	frag, err := d.parse(markup, n.Parent)
	if err != nil {
		return err
	}
	for _, f := range frag {
		n.Parent.InsertBefore(f, n)
	}
	return nil
}

func (d *Doc) InsertAfter(id, markup string) error {
	n, err := d.find(id)
	if err != nil {
		return err
	}
	frag, err := d.parse(markup, n.Parent)
	if err != nil {
		return err
	}
	ref := n.NextSibling
	for _, f := range frag {
		if ref != nil {
			n.Parent.InsertBefore(f, ref)
		} else {
			n.Parent.AppendChild(f)
		}
	}
	return nil
}

func (d *Doc) Remove(id string) error {
	n, err := d.find(id)
	if err != nil {
		return err
	}
	n.Parent.RemoveChild(n)
	return nil
}

func (d *Doc) SetAttr(id, key, val string) error {
	n, err := d.find(id)
	if err != nil {
		return err
	}
	for i := range n.Attr {
		if n.Attr[i].Key == key {
			n.Attr[i].Val = val
			return nil
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
	return nil
}

func (d *Doc) RemoveAttr(id, key string) error {
	n, err := d.find(id)
	if err != nil {
		return err
	}
	for i := range n.Attr {
		if n.Attr[i].Key == key {
			n.Attr = append(n.Attr[:i], n.Attr[i+1:]...)
			return nil
		}
	}
	return nil
}

func (d *Doc) GetInnerHTML(id string) (string, error) {
	n, err := d.find(id)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		canonical(&b, c)
	}
	return b.String(), nil
}

func (d *Doc) find(id string) (*html.Node, error) {
	if n := findByID(d.body, id); n != nil {
		return n, nil
	}
	return nil, fmt.Errorf("memdom: no element with id %q: %w", id, bridge.ErrMissingTarget)
}

func findByID(n *html.Node, id string) *html.Node {
	if n.Type == html.ElementNode {
		for _, a := range n.Attr {
			if a.Key == "id" && a.Val == id {
				return n
			}
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findByID(c, id); found != nil {
			return found
		}
	}
	return nil
}

// parse parses markup as a fragment in the context of ctx, so
// context-sensitive elements like li and td survive parsing.
func (d *Doc) parse(markup string, ctx *html.Node) ([]*html.Node, error) {
	frag, err := html.ParseFragment(strings.NewReader(markup), ctx)
	if err != nil {
		return nil, fmt.Errorf("memdom: parsing fragment: %w", err)
	}
	return frag, nil
}

// canonical writes n with sorted attributes and escaped text. Valueless
// attributes come out as a bare name, matching how the engine serializes
// them.
func canonical(b *strings.Builder, n *html.Node) {
	switch n.Type {
	case html.TextNode:
		b.WriteString(html.EscapeString(n.Data))
	case html.ElementNode:
		attrs := make([]html.Attribute, len(n.Attr))
		copy(attrs, n.Attr)
		sort.Slice(attrs, func(i, j int) bool { return attrs[i].Key < attrs[j].Key })

		b.WriteByte('<')
		b.WriteString(n.Data)
		for _, a := range attrs {
			b.WriteByte(' ')
			b.WriteString(a.Key)
			if a.Val != "" {
				b.WriteString(`="`)
				b.WriteString(html.EscapeString(a.Val))
				b.WriteByte('"')
			}
		}
		b.WriteByte('>')
		if vdom.IsVoidElement(n.Data) {
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			canonical(b, c)
		}
		b.WriteString("</")
		b.WriteString(n.Data)
		b.WriteByte('>')
	}
}
