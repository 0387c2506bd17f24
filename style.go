package htmlkit

import (
	"errors"
	"fmt"
)

// ErrUnknownStyle reports a style name that ParseStyle does not recognize.
var ErrUnknownStyle = errors.New("unknown style")

// Style selects an accordion presentation variant. Applying a style
// appends its marker class; the stylesheet gives each marker its look.
type Style int

const (
	StyleBordered Style = iota // boxed sections with an outer border
	StyleFlush                 // edge-to-edge, no outer border or radius
	StylePlain                 // no borders or backgrounds at all
)

// String returns the style name, or "" for unknown values.
func (s Style) String() string {
	switch s {
	case StyleBordered:
		return "bordered"
	case StyleFlush:
		return "flush"
	case StylePlain:
		return "plain"
	default:
		return ""
	}
}

// class returns the marker class for the variant, or "" for unknown
// values, which add no class.
func (s Style) class() string {
	if name := s.String(); name != "" {
		return "accordion-" + name
	}
	return ""
}

// ParseStyle parses a style name as used in theme files and
// configuration: "bordered", "flush", or "plain".
func ParseStyle(s string) (Style, error) {
	switch s {
	case "bordered":
		return StyleBordered, nil
	case "flush":
		return StyleFlush, nil
	case "plain":
		return StylePlain, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownStyle, s)
}
