// Package htmlkit builds HTML accordions declaratively.
//
// An [Accordion] is an immutable description of an ordered set of
// collapsible sections. Values are composed with copy-returning
// modifiers and turned into markup with Render; nothing is mutated in
// place, so descriptions can be shared, specialized per call site, and
// rendered concurrently:
//
//	acc := htmlkit.New(
//		htmlkit.NewItem("Shipping", markup.Text("3-5 business days.")),
//		htmlkit.NewItem("Returns", markup.Text("Within 30 days.")).Open(true),
//	)
//	html := markup.String(acc.Render())
//
// # Sections
//
// [Item] is the standard [Section]: a titled disclosure with arbitrary
// body content. Body nodes come from the [markup] package; [Markdown]
// converts CommonMark source into an embeddable node. Custom section
// types plug in by implementing [Section].
//
// # Open Modes
//
// [OpenIndividual] (the default) lets at most one section stay open:
// every rendered section carries the accordion's group identity as its
// name attribute and the browser closes the others when one opens.
// [OpenAll] omits the attribute so sections toggle independently. Use
// [ParseOpenMode] to convert a configuration string into an [OpenMode].
//
// # Group Identity
//
// Each call to [Accordion.Render] generates a fresh identity shared by
// the container and its sections. Identities are unique per render, so
// several accordions, or repeated renders of one value, never interfere
// on the same page.
//
// # Appearance
//
// [Style] variants mark the container for the stylesheet ([StyleBordered],
// [StyleFlush], [StylePlain]); [ParseStyle] converts configuration
// strings. Colors are set through CSS custom properties: the
// [Accordion.HeaderBackground], [Accordion.HeaderForeground], and
// [Accordion.BorderColor] modifiers cover the common knobs, and
// [Accordion.Property] sets any property directly. The theme subpackage
// loads named palettes from YAML and applies them to accordions.
//
// # Errors
//
// The package exports sentinel errors for programmatic handling:
//
//   - [ErrUnknownStyle] — unrecognized style name
//   - [ErrUnknownOpenMode] — unrecognized open-mode name
package htmlkit
