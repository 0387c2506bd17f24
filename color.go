package htmlkit

import "github.com/lucasb-eyer/go-colorful"

// Color is the color model consumed by the styling modifiers. It is
// go-colorful's RGB value type; colors serialize into markup as lowercase
// "#rrggbb" hex via its Hex method.
type Color = colorful.Color

// Hex parses a "#rrggbb" or "#rgb" color string.
func Hex(s string) (Color, error) {
	return colorful.Hex(s)
}

// MustHex is like [Hex] but panics on a malformed literal. Intended for
// color constants in page code.
func MustHex(s string) Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// CSS custom properties written by the styling modifiers and consumed by
// the accordion stylesheet. Closed-state modifiers write the base, hover,
// and active properties; the open-state value lands on the open property.
const (
	PropHeaderBackground       = "--accordion-header-bg"
	PropHeaderHoverBackground  = "--accordion-header-hover-bg"
	PropHeaderActiveBackground = "--accordion-header-active-bg"
	PropHeaderOpenBackground   = "--accordion-header-open-bg"

	PropHeaderForeground       = "--accordion-header-color"
	PropHeaderHoverForeground  = "--accordion-header-hover-color"
	PropHeaderActiveForeground = "--accordion-header-active-color"
	PropHeaderOpenForeground   = "--accordion-header-open-color"

	PropBorderColor = "--accordion-border-color"
)
