package markup

import (
	"fmt"
	"slices"
)

// Kind discriminates the node variants.
type Kind uint8

const (
	KindElement Kind = iota // tag + attributes + children
	KindText                // escaped text content
	KindRaw                 // verbatim, pre-rendered HTML
)

// Node is one node of a markup tree: an element, escaped text, or raw
// HTML. Nodes are plain values; every modifier returns a derived copy and
// never mutates the receiver, so a node held by one component cannot be
// changed through another. The zero value is an empty fragment.
type Node struct {
	kind     Kind
	tag      string
	attrs    Attrs
	children []Node
	text     string
}

// Element returns an element node wrapping the given children in order.
func Element(tag string, children ...Node) Node {
	return Node{kind: KindElement, tag: tag, children: slices.Clone(children)}
}

// Fragment groups children without a wrapping element. Rendering a
// fragment emits its children back to back, as if they were appended
// directly to the parent.
func Fragment(children ...Node) Node {
	return Node{kind: KindElement, children: slices.Clone(children)}
}

// Text returns a text node. Content is escaped during rendering.
func Text(s string) Node {
	return Node{kind: KindText, text: s}
}

// Textf returns a text node built with [fmt.Sprintf].
func Textf(format string, args ...any) Node {
	return Text(fmt.Sprintf(format, args...))
}

// Raw returns a node emitted verbatim, with no escaping. The caller is
// responsible for the safety of the content.
func Raw(html string) Node {
	return Node{kind: KindRaw, text: html}
}

// With returns a copy with the children appended after the existing ones.
// Text and raw nodes have no children and are returned unchanged.
func (n Node) With(children ...Node) Node {
	if n.kind != KindElement {
		return n
	}
	n.children = append(slices.Clone(n.children), children...)
	return n
}

// Attr returns a copy with the attribute key set to value.
func (n Node) Attr(key, value string) Node {
	n.attrs = n.attrs.Set(key, value)
	return n
}

// Flag returns a copy with the boolean attribute key present.
func (n Node) Flag(key string) Node {
	n.attrs = n.attrs.Flag(key)
	return n
}

// Class returns a copy with the classes appended.
func (n Node) Class(names ...string) Node {
	n.attrs = n.attrs.Class(names...)
	return n
}

// ID returns a copy with the element id replaced.
func (n Node) ID(id string) Node {
	n.attrs = n.attrs.ID(id)
	return n
}

// Style returns a copy with the inline style property set.
func (n Node) Style(name, value string) Node {
	n.attrs = n.attrs.Style(name, value)
	return n
}

// MergeAttrs returns a copy with the attribute set merged in, following
// the override rules of [Attrs.Merge].
func (n Node) MergeAttrs(a Attrs) Node {
	n.attrs = n.attrs.Merge(a)
	return n
}

// Kind returns the node variant.
func (n Node) Kind() Kind { return n.kind }

// Tag returns the element tag, or "" for fragments, text, and raw nodes.
func (n Node) Tag() string { return n.tag }

// Text returns the content of a text or raw node, or "" for elements.
func (n Node) Text() string { return n.text }

// Attrs returns the node's accumulated attribute set.
func (n Node) Attrs() Attrs { return n.attrs }

// AttrValue returns the rendered value of an attribute, including the
// managed id, class, and style attributes.
func (n Node) AttrValue(key string) (string, bool) {
	return n.attrs.Get(key)
}

// Classes returns the node's class names in append order.
func (n Node) Classes() []string { return n.attrs.Classes() }

// Children returns a copy of the child list in render order.
func (n Node) Children() []Node { return slices.Clone(n.children) }

// ChildCount returns the number of direct children.
func (n Node) ChildCount() int { return len(n.children) }
