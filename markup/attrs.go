package markup

import "slices"

// StyleProp is a single inline CSS declaration, such as a custom property
// driving a component's theme.
type StyleProp struct {
	Name  string
	Value string
}

// Attr is a single HTML attribute. A flag attribute renders as a bare key
// with no value (open, hidden, disabled).
type Attr struct {
	Key   string
	Value string
	Flag  bool
}

// Attrs is an accumulated attribute set: an element id, ordered CSS
// classes, ordered inline style properties, and any other attributes.
//
// The zero value is empty and ready to use. Every method returns a derived
// copy and leaves the receiver untouched, so values can be freely aliased
// and passed between components. Accumulation is additive: classes append
// (duplicates are dropped), style properties and generic attributes keep
// their first position but the last written value wins.
//
// The id, class, and style attributes are managed through their dedicated
// methods; [Attrs.Set] stores any other attribute.
type Attrs struct {
	id      string
	classes []string
	styles  []StyleProp
	extras  []Attr
}

// ID returns a copy with the element id replaced.
func (a Attrs) ID(id string) Attrs {
	a.id = id
	return a
}

// Class returns a copy with the given classes appended. Empty names and
// names already present are dropped.
func (a Attrs) Class(names ...string) Attrs {
	a.classes = slices.Clone(a.classes)
	for _, name := range names {
		if name == "" || slices.Contains(a.classes, name) {
			continue
		}
		a.classes = append(a.classes, name)
	}
	return a
}

// Style returns a copy with the inline style property set. Writing a
// property that is already present overwrites its value in place; other
// properties keep their order.
func (a Attrs) Style(name, value string) Attrs {
	a.styles = slices.Clone(a.styles)
	for i, p := range a.styles {
		if p.Name == name {
			a.styles[i].Value = value
			return a
		}
	}
	a.styles = append(a.styles, StyleProp{Name: name, Value: value})
	return a
}

// Set returns a copy with the attribute key set to value. A previous value
// for the same key is overwritten in place.
func (a Attrs) Set(key, value string) Attrs {
	return a.put(Attr{Key: key, Value: value})
}

// Flag returns a copy with the boolean attribute key present. Flags render
// as a bare attribute name.
func (a Attrs) Flag(key string) Attrs {
	return a.put(Attr{Key: key, Flag: true})
}

func (a Attrs) put(attr Attr) Attrs {
	a.extras = slices.Clone(a.extras)
	for i, e := range a.extras {
		if e.Key == attr.Key {
			a.extras[i] = attr
			return a
		}
	}
	a.extras = append(a.extras, attr)
	return a
}

// Merge returns the union of a and b. Values from b win where both sets
// hold the same key: b's id replaces a's when set, b's classes append in
// order (duplicates dropped), and b's style properties and attributes
// overwrite matching entries from a.
func (a Attrs) Merge(b Attrs) Attrs {
	out := a
	if b.id != "" {
		out.id = b.id
	}
	out = out.Class(b.classes...)
	for _, p := range b.styles {
		out = out.Style(p.Name, p.Value)
	}
	for _, e := range b.extras {
		out = out.put(e)
	}
	return out
}

// Empty reports whether the set holds nothing to render.
func (a Attrs) Empty() bool {
	return a.id == "" && len(a.classes) == 0 && len(a.styles) == 0 && len(a.extras) == 0
}

// GetID returns the element id, or "" when unset.
func (a Attrs) GetID() string { return a.id }

// Classes returns the accumulated class names in append order.
func (a Attrs) Classes() []string { return slices.Clone(a.classes) }

// Styles returns the accumulated inline style properties in write order.
func (a Attrs) Styles() []StyleProp { return slices.Clone(a.styles) }

// Get returns the rendered value of any attribute, including the managed
// id, class, and style attributes, and reports whether it is present.
// Flag attributes are present with an empty value.
func (a Attrs) Get(key string) (string, bool) {
	switch key {
	case "id":
		return a.id, a.id != ""
	case "class":
		if len(a.classes) == 0 {
			return "", false
		}
		return joinClasses(a.classes), true
	case "style":
		if len(a.styles) == 0 {
			return "", false
		}
		return joinStyles(a.styles), true
	}
	for _, e := range a.extras {
		if e.Key == key {
			return e.Value, true
		}
	}
	return "", false
}
