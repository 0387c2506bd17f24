package htmlkit

import (
	"iter"
	"slices"

	"github.com/loseth/htmlkit/markup"
)

// containerClass marks the rendered container as an accordion.
const containerClass = "accordion"

// Accordion renders an ordered set of collapsible sections. It is a plain
// value: every modifier returns a configured copy and the original is
// never observed changing, so one declaration can be shared, specialized,
// and rendered from any number of goroutines.
//
// Rendering generates a fresh group identity, hands it to every section
// together with the open-mode policy, and emits a section container
// carrying the same identity. Identities are render-scoped: rendering the
// same value twice yields two independent groups.
type Accordion struct {
	items []Section
	mode  OpenMode
	attrs markup.Attrs
}

// New returns an accordion over the given sections in order. The section
// list is fixed at construction; an empty list is valid and renders an
// empty container. The default open-mode is [OpenIndividual].
func New(items ...Section) Accordion {
	return Accordion{items: slices.Clone(items)}
}

// Collect builds an accordion by mapping an arbitrary sequence into
// sections, preserving the sequence order. The sequence is consumed
// eagerly, once.
func Collect[T any](seq iter.Seq[T], content func(T) Section) Accordion {
	var items []Section
	for v := range seq {
		items = append(items, content(v))
	}
	return Accordion{items: items}
}

// OpenMode returns a copy with the open-mode policy replaced.
func (a Accordion) OpenMode(mode OpenMode) Accordion {
	a.mode = mode
	return a
}

// Style returns a copy with the variant's marker class appended. Variant
// classes accumulate like any other class; the stylesheet decides how
// conflicting markers resolve.
func (a Accordion) Style(s Style) Accordion {
	if class := s.class(); class != "" {
		a.attrs = a.attrs.Class(class)
	}
	return a
}

// Class returns a copy with extra classes appended to the container.
func (a Accordion) Class(names ...string) Accordion {
	a.attrs = a.attrs.Class(names...)
	return a
}

// Property returns a copy with one CSS custom property set on the
// container. The color modifiers build on it; it is also the escape hatch
// for stylesheet knobs the kit does not model.
func (a Accordion) Property(name, value string) Accordion {
	a.attrs = a.attrs.Style(name, value)
	return a
}

// HeaderBackground returns a copy with the section header backgrounds
// set. The closed color covers the base, hover, and active states; the
// optional open color covers the expanded header and defaults to the
// closed color.
func (a Accordion) HeaderBackground(closed Color, open ...Color) Accordion {
	return a.statePair(closed, open,
		PropHeaderBackground,
		PropHeaderHoverBackground,
		PropHeaderActiveBackground,
		PropHeaderOpenBackground,
	)
}

// HeaderForeground is the text-color analogue of [Accordion.HeaderBackground].
func (a Accordion) HeaderForeground(closed Color, open ...Color) Accordion {
	return a.statePair(closed, open,
		PropHeaderForeground,
		PropHeaderHoverForeground,
		PropHeaderActiveForeground,
		PropHeaderOpenForeground,
	)
}

// BorderColor returns a copy with the accordion border color set.
func (a Accordion) BorderColor(c Color) Accordion {
	return a.Property(PropBorderColor, c.Hex())
}

// statePair writes one closed/open color pair onto its four custom
// properties. When several open colors are passed the last one wins,
// matching the per-key overwrite rule of the attribute set.
func (a Accordion) statePair(closed Color, open []Color, base, hover, active, expanded string) Accordion {
	openColor := closed
	if len(open) > 0 {
		openColor = open[len(open)-1]
	}
	a.attrs = a.attrs.
		Style(base, closed.Hex()).
		Style(hover, closed.Hex()).
		Style(active, closed.Hex()).
		Style(expanded, openColor.Hex())
	return a
}

// Render composes the accordion into a markup node. It generates the
// group identity for this render call, adapts every section to it in
// order, wraps them in a section container, applies the accumulated
// attributes, and marks the container with the accordion class and the
// group identity as its id. The returned tree is not mutated afterwards.
func (a Accordion) Render() markup.Node {
	group := newGroupID()
	kids := make([]markup.Node, 0, len(a.items))
	for _, item := range a.items {
		kids = append(kids, item.AssignGroup(group, a.mode).Render())
	}
	return markup.Element("section", kids...).
		Class(containerClass).
		MergeAttrs(a.attrs).
		ID(group)
}
