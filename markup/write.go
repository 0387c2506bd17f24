package markup

import (
	"html"
	"io"
	"strings"
)

// Renderer is implemented by components that compose themselves into a
// markup node. The render stage is the only place a component's markup is
// realized; [Write] then serializes the resulting tree.
type Renderer interface {
	Render() Node
}

// voidElements have no content and no closing tag.
var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"param": true, "source": true, "track": true, "wbr": true,
}

// Write serializes nodes to w as compact HTML, in order. Text content and
// attribute values are escaped; [Raw] nodes are emitted verbatim. No
// whitespace is added between nodes, so rendered markup is insensitive to
// tree depth. Writer errors propagate unchanged.
func Write(w io.Writer, nodes ...Node) error {
	for _, n := range nodes {
		if err := writeNode(w, n); err != nil {
			return err
		}
	}
	return nil
}

// String renders nodes to a string. It is a convenience over [Write].
func String(nodes ...Node) string {
	var sb strings.Builder
	// strings.Builder never returns a write error.
	_ = Write(&sb, nodes...)
	return sb.String()
}

// String implements [fmt.Stringer] by rendering the node.
func (n Node) String() string {
	return String(n)
}

func writeNode(w io.Writer, n Node) error {
	switch n.kind {
	case KindText:
		if n.text == "" {
			return nil
		}
		_, err := io.WriteString(w, html.EscapeString(n.text))
		return err
	case KindRaw:
		_, err := io.WriteString(w, n.text)
		return err
	}

	// Fragments render children only; attributes on a fragment have no
	// element to land on and are dropped.
	if n.tag == "" {
		return Write(w, n.children...)
	}

	if _, err := io.WriteString(w, "<"+n.tag); err != nil {
		return err
	}
	if err := writeAttrs(w, n.attrs); err != nil {
		return err
	}
	if voidElements[n.tag] {
		_, err := io.WriteString(w, ">")
		return err
	}
	if _, err := io.WriteString(w, ">"); err != nil {
		return err
	}
	if err := Write(w, n.children...); err != nil {
		return err
	}
	_, err := io.WriteString(w, "</"+n.tag+">")
	return err
}

// writeAttrs emits the set in a fixed order: id, class, style, then the
// remaining attributes in insertion order. Deterministic order keeps
// rendered output stable across runs.
func writeAttrs(w io.Writer, a Attrs) error {
	if a.id != "" {
		if err := writeAttr(w, "id", a.id); err != nil {
			return err
		}
	}
	if len(a.classes) > 0 {
		if err := writeAttr(w, "class", joinClasses(a.classes)); err != nil {
			return err
		}
	}
	if len(a.styles) > 0 {
		if err := writeAttr(w, "style", joinStyles(a.styles)); err != nil {
			return err
		}
	}
	for _, e := range a.extras {
		if e.Key == "" {
			continue
		}
		if e.Flag {
			if _, err := io.WriteString(w, " "+e.Key); err != nil {
				return err
			}
			continue
		}
		if err := writeAttr(w, e.Key, e.Value); err != nil {
			return err
		}
	}
	return nil
}

func writeAttr(w io.Writer, key, value string) error {
	_, err := io.WriteString(w, " "+key+`="`+html.EscapeString(value)+`"`)
	return err
}

func joinClasses(classes []string) string {
	return strings.Join(classes, " ")
}

func joinStyles(styles []StyleProp) string {
	var sb strings.Builder
	for i, p := range styles {
		if i > 0 {
			sb.WriteString("; ")
		}
		sb.WriteString(p.Name)
		sb.WriteString(": ")
		sb.WriteString(p.Value)
	}
	return sb.String()
}
