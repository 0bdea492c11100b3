package memdom

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/brunhild-dev/brunhild/pkg/bridge"
	"github.com/brunhild-dev/brunhild/pkg/intern"
	"github.com/brunhild-dev/brunhild/pkg/vdom"
)

func mustSetBody(t *testing.T, d *Doc, markup string) {
	t.Helper()
	if err := d.SetBody(markup); err != nil {
		t.Fatalf("SetBody error: %v", err)
	}
}

func TestHostPrimitives(t *testing.T) {
	tests := []struct {
		name string
		body string
		op   func(d *Doc) error
		want string
	}{
		{
			name: "set outer html",
			body: `<div id="bh-1"><span id="bh-2">old</span></div>`,
			op:   func(d *Doc) error { return d.SetOuterHTML("bh-2", `<em id="bh-2">new</em>`) },
			want: `<div id="bh-1"><em id="bh-2">new</em></div>`,
		},
		{
			name: "set inner html",
			body: `<div id="bh-1"><span id="bh-2">old</span></div>`,
			op:   func(d *Doc) error { return d.SetInnerHTML("bh-1", "just text") },
			want: `<div id="bh-1">just text</div>`,
		},
		{
			name: "append",
			body: `<ul id="bh-1"><li id="bh-2">a</li></ul>`,
			op:   func(d *Doc) error { return d.Append("bh-1", `<li id="bh-3">b</li>`) },
			want: `<ul id="bh-1"><li id="bh-2">a</li><li id="bh-3">b</li></ul>`,
		},
		{
			name: "prepend",
			body: `<ul id="bh-1"><li id="bh-2">a</li></ul>`,
			op:   func(d *Doc) error { return d.Prepend("bh-1", `<li id="bh-3">b</li>`) },
			want: `<ul id="bh-1"><li id="bh-3">b</li><li id="bh-2">a</li></ul>`,
		},
		{
			name: "prepend into empty",
			body: `<ul id="bh-1"></ul>`,
			op:   func(d *Doc) error { return d.Prepend("bh-1", `<li id="bh-2">a</li>`) },
			want: `<ul id="bh-1"><li id="bh-2">a</li></ul>`,
		},
		{
			name: "insert before",
			body: `<div id="bh-1"><p id="bh-2">b</p></div>`,
			op:   func(d *Doc) error { return d.InsertBefore("bh-2", `<p id="bh-3">a</p>`) },
			want: `<div id="bh-1"><p id="bh-3">a</p><p id="bh-2">b</p></div>`,
		},
		{
			name: "insert after",
			body: `<div id="bh-1"><p id="bh-2">a</p><p id="bh-3">c</p></div>`,
			op:   func(d *Doc) error { return d.InsertAfter("bh-2", `<p id="bh-4">b</p>`) },
			want: `<div id="bh-1"><p id="bh-2">a</p><p id="bh-4">b</p><p id="bh-3">c</p></div>`,
		},
		{
			name: "insert after last child",
			body: `<div id="bh-1"><p id="bh-2">a</p></div>`,
			op:   func(d *Doc) error { return d.InsertAfter("bh-2", `<p id="bh-3">b</p>`) },
			want: `<div id="bh-1"><p id="bh-2">a</p><p id="bh-3">b</p></div>`,
		},
		{
			name: "remove",
			body: `<div id="bh-1"><p id="bh-2">a</p><p id="bh-3">b</p></div>`,
			op:   func(d *Doc) error { return d.Remove("bh-2") },
			want: `<div id="bh-1"><p id="bh-3">b</p></div>`,
		},
		{
			name: "set attr new",
			body: `<div id="bh-1"></div>`,
			op:   func(d *Doc) error { return d.SetAttr("bh-1", "class", "card") },
			want: `<div class="card" id="bh-1"></div>`,
		},
		{
			name: "set attr overwrite",
			body: `<div class="old" id="bh-1"></div>`,
			op:   func(d *Doc) error { return d.SetAttr("bh-1", "class", "new") },
			want: `<div class="new" id="bh-1"></div>`,
		},
		{
			name: "set attr valueless",
			body: `<input id="bh-1" type="checkbox">`,
			op:   func(d *Doc) error { return d.SetAttr("bh-1", "checked", "") },
			want: `<input checked id="bh-1" type="checkbox">`,
		},
		{
			name: "remove attr",
			body: `<div class="x" id="bh-1" title="y"></div>`,
			op:   func(d *Doc) error { return d.RemoveAttr("bh-1", "title") },
			want: `<div class="x" id="bh-1"></div>`,
		},
		{
			name: "remove absent attr is noop",
			body: `<div id="bh-1"></div>`,
			op:   func(d *Doc) error { return d.RemoveAttr("bh-1", "title") },
			want: `<div id="bh-1"></div>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := New()
			mustSetBody(t, d, tt.body)
			if err := tt.op(d); err != nil {
				t.Fatalf("op error: %v", err)
			}
			want, err := Canonical(tt.want)
			if err != nil {
				t.Fatalf("Canonical error: %v", err)
			}
			if got := d.Body(); got != want {
				t.Errorf("Body() = %q, want %q", got, want)
			}
		})
	}
}

func TestMissingTarget(t *testing.T) {
	d := New()
	mustSetBody(t, d, `<div id="bh-1"></div>`)

	if err := d.Remove("bh-99"); !errors.Is(err, bridge.ErrMissingTarget) {
		t.Errorf("Remove unknown id = %v, want ErrMissingTarget", err)
	}
	if err := d.SetAttr("bh-99", "class", "x"); !errors.Is(err, bridge.ErrMissingTarget) {
		t.Errorf("SetAttr unknown id = %v, want ErrMissingTarget", err)
	}
}

func TestGetInnerHTML(t *testing.T) {
	d := New()
	mustSetBody(t, d, `<div id="bh-1">before<span id="bh-2">mid</span></div>`)

	got, err := d.GetInnerHTML("bh-1")
	if err != nil {
		t.Fatalf("GetInnerHTML error: %v", err)
	}
	want := `before<span id="bh-2">mid</span>`
	if got != want {
		t.Errorf("GetInnerHTML = %q, want %q", got, want)
	}

	if _, err := d.GetInnerHTML("bh-99"); !errors.Is(err, bridge.ErrMissingTarget) {
		t.Errorf("GetInnerHTML unknown id = %v, want ErrMissingTarget", err)
	}
}

func TestCanonicalNormalizesAttrOrder(t *testing.T) {
	a, err := Canonical(`<div title="t" class="c" id="bh-1"></div>`)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Canonical(`<div id="bh-1" class="c" title="t"></div>`)
	if err != nil {
		t.Fatal(err)
	}
	if a != b {
		t.Errorf("canonical forms differ: %q vs %q", a, b)
	}
}

// TestDiffApplyRoundTrip drives the full pipeline: mount an initial tree,
// rebuild it with edits, diff, apply the patches here, and check the
// document now matches a fresh render of the new tree.
func TestDiffApplyRoundTrip(t *testing.T) {
	in := intern.New()
	r := vdom.NewRenderer(in, &vdom.IDGenerator{})
	differ := vdom.NewDiffer(r)

	old := vdom.MustElement(in, "div", map[string]string{"class": "app"},
		vdom.MustElement(in, "h1", nil, vdom.NewText("Inbox")),
		vdom.MustElement(in, "ul", nil,
			vdom.MustElement(in, "li", map[string]string{"class": "unread"}, vdom.NewText("first")),
			vdom.MustElement(in, "li", nil, vdom.NewText("second")),
		),
	)
	mounted, err := r.Subtree(old)
	if err != nil {
		t.Fatalf("render error: %v", err)
	}

	doc := New()
	mustSetBody(t, doc, mounted)

	new := vdom.MustElement(in, "div", map[string]string{"class": "app", "title": "inbox"},
		vdom.MustElement(in, "h1", nil, vdom.NewText("Inbox")),
		vdom.MustElement(in, "ul", nil,
			vdom.MustElement(in, "li", nil, vdom.NewText("first")),
			vdom.MustElement(in, "li", nil, vdom.NewText("second")),
			vdom.MustElement(in, "li", map[string]string{"class": "unread"}, vdom.NewText("third")),
		),
	)
	patches, err := differ.Diff(old, new)
	if err != nil {
		t.Fatalf("Diff error: %v", err)
	}
	if len(patches) == 0 {
		t.Fatal("expected patches for a changed tree")
	}

	a := bridge.NewApplier(doc, bridge.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	a.Queue(patches...)
	if err := a.Flush(); err != nil {
		t.Fatalf("Flush error: %v", err)
	}

	rerendered, err := r.Subtree(new)
	if err != nil {
		t.Fatalf("re-render error: %v", err)
	}
	want, err := Canonical(rerendered)
	if err != nil {
		t.Fatalf("Canonical error: %v", err)
	}
	if got := doc.Body(); got != want {
		t.Errorf("document after patches = %q, want %q", got, want)
	}
}
