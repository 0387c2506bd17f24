package htmlkit

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"

	"github.com/loseth/htmlkit/markup"
)

// md is shared across calls; goldmark.Markdown is safe for concurrent use.
var md = goldmark.New()

// Markdown converts CommonMark source into a raw markup node, ready to be
// used as section body content. The produced HTML is embedded verbatim,
// so the source must be trusted.
func Markdown(source string) (markup.Node, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(source), &buf); err != nil {
		return markup.Node{}, fmt.Errorf("htmlkit: convert markdown: %w", err)
	}
	return markup.Raw(buf.String()), nil
}
