package vdom

import (
	"bytes"
	"strings"
	"testing"

	"github.com/brunhild-dev/brunhild/pkg/intern"
)

func newTestRenderer() (*intern.Interner, *Renderer) {
	in := intern.New()
	return in, NewRenderer(in, &IDGenerator{})
}

func TestRenderAssignsIdentifiers(t *testing.T) {
	in, r := newTestRenderer()
	node := MustElement(in, "div", nil, MustElement(in, "span", nil))

	html, err := r.Subtree(node)
	if err != nil {
		t.Fatalf("Subtree error: %v", err)
	}

	want := `<div id="bh-1"><span id="bh-2"></span></div>`
	if html != want {
		t.Errorf("Subtree = %q, want %q", html, want)
	}
	if node.DOMID() != 1 {
		t.Errorf("root DOMID = %d, want 1", node.DOMID())
	}
	if node.Children[0].DOMID() != 2 {
		t.Errorf("child DOMID = %d, want 2", node.Children[0].DOMID())
	}
}

func TestRenderKeepsExistingIdentifier(t *testing.T) {
	in, r := newTestRenderer()
	node := MustElement(in, "div", nil)
	node.domID = 9

	html, err := r.Subtree(node)
	if err != nil {
		t.Fatalf("Subtree error: %v", err)
	}
	if !strings.Contains(html, `id="bh-9"`) {
		t.Errorf("Subtree = %q, want id bh-9 preserved", html)
	}
}

func TestRenderAttributes(t *testing.T) {
	in, r := newTestRenderer()
	node := MustElement(in, "a", map[string]string{"href": "/x", "class": "link"})

	html, err := r.Subtree(node)
	if err != nil {
		t.Fatalf("Subtree error: %v", err)
	}
	// Canonical attribute order is alphabetical by key.
	want := `<a id="bh-1" class="link" href="/x"></a>`
	if html != want {
		t.Errorf("Subtree = %q, want %q", html, want)
	}
}

func TestRenderValuelessAttribute(t *testing.T) {
	in, r := newTestRenderer()
	node := MustElement(in, "input", map[string]string{"disabled": "", "type": "text"})

	html, err := r.Subtree(node)
	if err != nil {
		t.Fatalf("Subtree error: %v", err)
	}
	want := `<input id="bh-1" disabled type="text">`
	if html != want {
		t.Errorf("Subtree = %q, want %q", html, want)
	}
}

func TestRenderVoidElement(t *testing.T) {
	in, r := newTestRenderer()
	node := MustElement(in, "div", nil, MustElement(in, "br", nil))

	html, err := r.Subtree(node)
	if err != nil {
		t.Fatalf("Subtree error: %v", err)
	}
	want := `<div id="bh-1"><br id="bh-2"></div>`
	if html != want {
		t.Errorf("Subtree = %q, want %q", html, want)
	}
}

func TestRenderEscapesText(t *testing.T) {
	_, r := newTestRenderer()
	html, err := r.Subtree(NewText(`<script>alert("1")</script> & 'more'`))
	if err != nil {
		t.Fatalf("Subtree error: %v", err)
	}
	want := `&lt;script&gt;alert(&quot;1&quot;)&lt;/script&gt; &amp; &#39;more&#39;`
	if html != want {
		t.Errorf("Subtree = %q, want %q", html, want)
	}
}

func TestRenderEscapesAttrValues(t *testing.T) {
	in, r := newTestRenderer()
	node := MustElement(in, "div", map[string]string{"title": "a\"b\nc"})

	html, err := r.Subtree(node)
	if err != nil {
		t.Fatalf("Subtree error: %v", err)
	}
	want := `<div id="bh-1" title="a&quot;b&#10;c"></div>`
	if html != want {
		t.Errorf("Subtree = %q, want %q", html, want)
	}
}

func TestRenderFragmentSplices(t *testing.T) {
	in, r := newTestRenderer()
	frag := NewFragment(
		NewText("before"),
		MustElement(in, "em", nil),
	)
	node := MustElement(in, "p", nil, frag, NewText("after"))

	html, err := r.Subtree(node)
	if err != nil {
		t.Fatalf("Subtree error: %v", err)
	}
	want := `<p id="bh-1">before<em id="bh-2"></em>after</p>`
	if html != want {
		t.Errorf("Subtree = %q, want %q", html, want)
	}
	if frag.DOMID() != 0 {
		t.Errorf("fragment DOMID = %d, fragments never get identifiers", frag.DOMID())
	}
}

func TestRenderNodes(t *testing.T) {
	in, r := newTestRenderer()
	nodes := []*VNode{NewText("a"), MustElement(in, "b", nil)}

	html, err := r.Nodes(nodes)
	if err != nil {
		t.Fatalf("Nodes error: %v", err)
	}
	want := `a<b id="bh-1"></b>`
	if html != want {
		t.Errorf("Nodes = %q, want %q", html, want)
	}
}

func TestRenderForeignInternerFails(t *testing.T) {
	in, r := newTestRenderer()
	_ = in
	other := intern.New()
	node := MustElement(other, "my-custom-element", nil)

	if _, err := r.Subtree(node); err == nil {
		t.Error("expected error rendering a tree built through a different interner")
	}
}

func TestIsVoidElement(t *testing.T) {
	if !IsVoidElement("br") {
		t.Error("IsVoidElement(br) = false")
	}
	if IsVoidElement("div") {
		t.Error("IsVoidElement(div) = true")
	}
}

func TestWriteSubtree(t *testing.T) {
	in, r := newTestRenderer()
	node := MustElement(in, "p", nil, NewText("hi"))

	var buf bytes.Buffer
	if err := r.WriteSubtree(&buf, node); err != nil {
		t.Fatalf("WriteSubtree error: %v", err)
	}
	want := `<p id="bh-1">hi</p>`
	if got := buf.String(); got != want {
		t.Errorf("WriteSubtree wrote %q, want %q", got, want)
	}
}
