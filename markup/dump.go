package markup

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// maxDumpText caps the display width of text content in an outline before
// it is truncated with "...".
const maxDumpText = 40

// Dump renders an indented outline of a node tree, one row per node, with
// attributes in a display-width-aligned column. It is meant for debug
// logging and test failure output, not for serving; use [Write] for that.
func Dump(n Node) string {
	var rows []dumpRow
	collectRows(&rows, n, 0)

	width := 0
	for _, r := range rows {
		if w := runewidth.StringWidth(r.label); w > width {
			width = w
		}
	}

	var sb strings.Builder
	for _, r := range rows {
		if r.attrs == "" {
			sb.WriteString(r.label)
		} else {
			sb.WriteString(padRight(r.label, width+2))
			sb.WriteString(r.attrs)
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

type dumpRow struct {
	label string
	attrs string
}

func collectRows(rows *[]dumpRow, n Node, depth int) {
	indent := strings.Repeat("  ", depth)
	switch n.kind {
	case KindText:
		if n.text == "" {
			return
		}
		*rows = append(*rows, dumpRow{label: indent + quoteTruncated(n.text)})
		return
	case KindRaw:
		*rows = append(*rows, dumpRow{label: indent + "raw " + quoteTruncated(n.text)})
		return
	}

	label := n.tag
	if label == "" {
		label = "fragment"
	}
	*rows = append(*rows, dumpRow{label: indent + label, attrs: attrsOutline(n.attrs)})
	for _, child := range n.children {
		collectRows(rows, child, depth+1)
	}
}

// attrsOutline renders the attribute set the way it would appear inside a
// tag, without the leading space.
func attrsOutline(a Attrs) string {
	if a.Empty() {
		return ""
	}
	var sb strings.Builder
	_ = writeAttrs(&sb, a)
	return strings.TrimPrefix(sb.String(), " ")
}

func quoteTruncated(s string) string {
	if runewidth.StringWidth(s) > maxDumpText {
		s = runewidth.Truncate(s, maxDumpText, "...")
	}
	return `"` + s + `"`
}

func padRight(s string, width int) string {
	pad := width - runewidth.StringWidth(s)
	if pad <= 0 {
		return s
	}
	return s + strings.Repeat(" ", pad)
}
