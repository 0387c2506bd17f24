package htmlkit

import (
	"slices"

	"github.com/loseth/htmlkit/markup"
)

// Classes marking the parts of a rendered section.
const (
	itemClass   = "accordion-item"
	headerClass = "accordion-header"
	bodyClass   = "accordion-body"
)

// Section is a collapsible part of an accordion. AssignGroup returns a
// copy bound to the group identity and open-mode policy of one render
// call; the receiver is left untouched so a section value can sit in
// several accordions at once. Render composes the bound copy into markup.
type Section interface {
	markup.Renderer

	AssignGroup(group string, mode OpenMode) Section
}

// Item is the standard section: a titled disclosure with arbitrary body
// content. Like [Accordion] it is a plain value with copy-returning
// modifiers. The zero value renders an untitled, empty, closed section.
//
// Items render as native disclosure elements. Under [OpenIndividual] the
// group identity becomes the element's name attribute, which makes the
// browser close the other named sections when one opens; under [OpenAll]
// the attribute is omitted and sections toggle independently.
type Item struct {
	title string
	body  []markup.Node
	attrs markup.Attrs
	open  bool
	group string
	mode  OpenMode
}

// NewItem returns a section with the given header title and body content.
func NewItem(title string, body ...markup.Node) Item {
	return Item{title: title, body: slices.Clone(body)}
}

// Open returns a copy marked initially expanded or collapsed. Under
// [OpenIndividual] the browser still enforces exclusivity after load, so
// marking several items open is only stable under [OpenAll].
func (i Item) Open(open bool) Item {
	i.open = open
	return i
}

// Class returns a copy with extra classes appended to the section element.
func (i Item) Class(names ...string) Item {
	i.attrs = i.attrs.Class(names...)
	return i
}

// Body returns a copy with more nodes appended to the body content.
func (i Item) Body(nodes ...markup.Node) Item {
	i.body = append(slices.Clone(i.body), nodes...)
	return i
}

// AssignGroup implements [Section].
func (i Item) AssignGroup(group string, mode OpenMode) Section {
	i.group = group
	i.mode = mode
	return i
}

// Render composes the section: a details element holding the summary
// header and a body wrapper. Content nodes are embedded as given;
// escaping happens when the tree is written.
func (i Item) Render() markup.Node {
	header := markup.Element("summary", markup.Text(i.title)).
		Class(headerClass)
	body := markup.Element("div", i.body...).
		Class(bodyClass)

	node := markup.Element("details", header, body).
		Class(itemClass).
		MergeAttrs(i.attrs)
	if i.mode == OpenIndividual && i.group != "" {
		node = node.Attr("name", i.group)
	}
	if i.open {
		node = node.Flag("open")
	}
	return node
}
