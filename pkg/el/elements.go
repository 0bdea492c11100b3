package el

import "github.com/brunhild-dev/brunhild/pkg/vdom"

func (b *Builder) Div(args ...any) *vdom.VNode     { return b.El("div", args...) }
func (b *Builder) Span(args ...any) *vdom.VNode    { return b.El("span", args...) }
func (b *Builder) P(args ...any) *vdom.VNode       { return b.El("p", args...) }
func (b *Builder) H1(args ...any) *vdom.VNode      { return b.El("h1", args...) }
func (b *Builder) H2(args ...any) *vdom.VNode      { return b.El("h2", args...) }
func (b *Builder) H3(args ...any) *vdom.VNode      { return b.El("h3", args...) }
func (b *Builder) Header(args ...any) *vdom.VNode  { return b.El("header", args...) }
func (b *Builder) Footer(args ...any) *vdom.VNode  { return b.El("footer", args...) }
func (b *Builder) Main(args ...any) *vdom.VNode    { return b.El("main", args...) }
func (b *Builder) Nav(args ...any) *vdom.VNode     { return b.El("nav", args...) }
func (b *Builder) Section(args ...any) *vdom.VNode { return b.El("section", args...) }
func (b *Builder) Article(args ...any) *vdom.VNode { return b.El("article", args...) }
func (b *Builder) Aside(args ...any) *vdom.VNode   { return b.El("aside", args...) }
func (b *Builder) Ul(args ...any) *vdom.VNode      { return b.El("ul", args...) }
func (b *Builder) Ol(args ...any) *vdom.VNode      { return b.El("ol", args...) }
func (b *Builder) Li(args ...any) *vdom.VNode      { return b.El("li", args...) }
func (b *Builder) Table(args ...any) *vdom.VNode   { return b.El("table", args...) }
func (b *Builder) Thead(args ...any) *vdom.VNode   { return b.El("thead", args...) }
func (b *Builder) Tbody(args ...any) *vdom.VNode   { return b.El("tbody", args...) }
func (b *Builder) Tr(args ...any) *vdom.VNode      { return b.El("tr", args...) }
func (b *Builder) Th(args ...any) *vdom.VNode      { return b.El("th", args...) }
func (b *Builder) Td(args ...any) *vdom.VNode      { return b.El("td", args...) }
func (b *Builder) Form(args ...any) *vdom.VNode    { return b.El("form", args...) }
func (b *Builder) Label(args ...any) *vdom.VNode   { return b.El("label", args...) }
func (b *Builder) Input(args ...any) *vdom.VNode   { return b.El("input", args...) }
func (b *Builder) Select(args ...any) *vdom.VNode  { return b.El("select", args...) }
func (b *Builder) Option(args ...any) *vdom.VNode  { return b.El("option", args...) }
func (b *Builder) Button(args ...any) *vdom.VNode  { return b.El("button", args...) }
func (b *Builder) A(args ...any) *vdom.VNode       { return b.El("a", args...) }
func (b *Builder) Img(args ...any) *vdom.VNode     { return b.El("img", args...) }
func (b *Builder) Br(args ...any) *vdom.VNode      { return b.El("br", args...) }
func (b *Builder) Hr(args ...any) *vdom.VNode      { return b.El("hr", args...) }
func (b *Builder) Em(args ...any) *vdom.VNode      { return b.El("em", args...) }
func (b *Builder) Strong(args ...any) *vdom.VNode  { return b.El("strong", args...) }
func (b *Builder) Code(args ...any) *vdom.VNode    { return b.El("code", args...) }
func (b *Builder) Pre(args ...any) *vdom.VNode     { return b.El("pre", args...) }
