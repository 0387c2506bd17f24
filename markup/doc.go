// Package markup models HTML as a tree of immutable value nodes.
//
// A [Node] is an element, escaped text, or raw HTML. Trees are built with
// the [Element], [Text], [Raw], and [Fragment] constructors and shaped
// with value modifiers such as [Node.With], [Node.Class], [Node.ID],
// [Node.Style], and [Node.Attr]. Every modifier returns a derived copy,
// so two components can hold the same subtree without observing each
// other's changes, which makes nodes safe to share across concurrent
// render pipelines.
//
//	card := markup.Element("div",
//		markup.Element("h2", markup.Text("Title")),
//		markup.Element("p", markup.Text("Body")),
//	).Class("card")
//
// # Attributes
//
// [Attrs] is the accumulated attribute set of a node: an id, ordered
// classes, ordered inline style properties, and any other attributes.
// Accumulation is additive: classes append without duplicates, while
// style properties and attributes overwrite per key but keep their first
// position. [Attrs.Merge] unions two sets with the same rules. Components
// accumulate an Attrs through their modifiers and apply it to their
// rendered node with [Node.MergeAttrs].
//
// # Rendering
//
// [Write] serializes a tree to compact HTML with deterministic attribute
// order (id, class, style, then insertion order). Text and attribute
// values are escaped; [Raw] content is trusted and emitted verbatim.
// [String] and [Node.String] are conveniences over Write.
//
// [Dump] renders an aligned outline of a tree for debugging and test
// failure output.
//
// # Components
//
// A component is anything implementing [Renderer]: it composes itself
// into a Node on demand. The package defines no components of its own;
// the htmlkit root package builds on this contract.
package markup
