package el

import (
	"fmt"

	"github.com/brunhild-dev/brunhild/pkg/intern"
	"github.com/brunhild-dev/brunhild/pkg/vdom"
)

// Attr is one attribute in builder form. An empty Value renders as a bare
// boolean-style attribute.
type Attr struct {
	Key   string
	Value string
}

// Builder constructs node trees through one interner. All trees meant for
// the same engine must come from a builder over that engine's interner.
type Builder struct {
	in *intern.Interner
}

// New creates a Builder over in.
func New(in *intern.Interner) *Builder {
	return &Builder{in: in}
}

// El builds an element from loosely typed arguments. Each argument may
// be: nil (skipped, for conditionals), Attr, []Attr, *vdom.VNode,
// []*vdom.VNode, or string (a text child). Anything else panics, as does
// the reserved "id" attribute key.
func (b *Builder) El(tag string, args ...any) *vdom.VNode {
	var attrs map[string]string
	var children []*vdom.VNode

	setAttr := func(a Attr) {
		if a.Key == "" {
			return
		}
		if attrs == nil {
			attrs = make(map[string]string)
		}
		attrs[a.Key] = a.Value
	}

	for _, arg := range args {
		switch v := arg.(type) {
		case nil:
			continue
		case Attr:
			setAttr(v)
		case []Attr:
			for _, a := range v {
				setAttr(a)
			}
		case *vdom.VNode:
			if v != nil {
				children = append(children, v)
			}
		case []*vdom.VNode:
			for _, c := range v {
				if c != nil {
					children = append(children, c)
				}
			}
		case string:
			children = append(children, vdom.NewText(v))
		default:
			panic(fmt.Sprintf("el: unsupported argument %T in <%s>", arg, tag))
		}
	}
	return vdom.MustElement(b.in, tag, attrs, children...)
}

// Text builds a text node.
func Text(content string) *vdom.VNode {
	return vdom.NewText(content)
}

// Textf builds a formatted text node.
func Textf(format string, args ...any) *vdom.VNode {
	return vdom.NewText(fmt.Sprintf(format, args...))
}

// Fragment groups children without a wrapping element.
func Fragment(children ...*vdom.VNode) *vdom.VNode {
	return vdom.NewFragment(children...)
}

// If returns node when condition holds, nil otherwise. A nil result is
// skipped by El.
func If(condition bool, node *vdom.VNode) *vdom.VNode {
	if condition {
		return node
	}
	return nil
}

// IfElse returns ifTrue when condition holds, ifFalse otherwise.
func IfElse(condition bool, ifTrue, ifFalse *vdom.VNode) *vdom.VNode {
	if condition {
		return ifTrue
	}
	return ifFalse
}

// Unless returns node when condition does not hold.
func Unless(condition bool, node *vdom.VNode) *vdom.VNode {
	return If(!condition, node)
}

// Range maps items to nodes.
func Range[T any](items []T, fn func(item T, index int) *vdom.VNode) []*vdom.VNode {
	nodes := make([]*vdom.VNode, 0, len(items))
	for i, item := range items {
		nodes = append(nodes, fn(item, i))
	}
	return nodes
}
