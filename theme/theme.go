// Package theme loads accordion styling from YAML documents, so palettes
// can live beside the content they style and be reused site-wide.
//
// A theme document names a palette and sets any subset of the accordion's
// appearance knobs:
//
//	name: ocean
//	style: flush
//	open-mode: all
//	header:
//	  background: "#0ea5e9"
//	  open-background: "#0369a1"
//	  foreground: "#ffffff"
//	border: "#bae6fd"
//
// [Parse] and [Load] decode and validate a document; [Theme.Apply] carries
// it onto an accordion. Fields absent from the document leave the
// accordion untouched.
package theme

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/loseth/htmlkit"
)

// ErrInvalidTheme reports a document that decoded but failed validation:
// a missing name, an unknown style or open-mode, or a malformed color.
var ErrInvalidTheme = errors.New("invalid theme")

// Theme is a named accordion palette. Optional fields are nil when the
// document leaves them out; [Theme.Apply] skips nil fields.
type Theme struct {
	Name string

	Style    *htmlkit.Style
	OpenMode *htmlkit.OpenMode

	HeaderBackground     *htmlkit.Color
	HeaderOpenBackground *htmlkit.Color
	HeaderForeground     *htmlkit.Color
	HeaderOpenForeground *htmlkit.Color
	Border               *htmlkit.Color
}

// doc is the YAML shape. Everything decodes as strings; Parse resolves
// them into typed fields during validation.
type doc struct {
	Name   string `yaml:"name"`
	Style  string `yaml:"style"`
	Mode   string `yaml:"open-mode"`
	Header struct {
		Background     string `yaml:"background"`
		OpenBackground string `yaml:"open-background"`
		Foreground     string `yaml:"foreground"`
		OpenForeground string `yaml:"open-foreground"`
	} `yaml:"header"`
	Border string `yaml:"border"`
}

// Parse decodes and validates a theme document.
func Parse(data []byte) (Theme, error) {
	var d doc
	if err := yaml.Unmarshal(data, &d); err != nil {
		return Theme{}, fmt.Errorf("%w: %v", ErrInvalidTheme, err)
	}
	if d.Name == "" {
		return Theme{}, fmt.Errorf("%w: missing name", ErrInvalidTheme)
	}

	t := Theme{Name: d.Name}
	if d.Style != "" {
		s, err := htmlkit.ParseStyle(d.Style)
		if err != nil {
			return Theme{}, fmt.Errorf("%w: style: %v", ErrInvalidTheme, err)
		}
		t.Style = &s
	}
	if d.Mode != "" {
		m, err := htmlkit.ParseOpenMode(d.Mode)
		if err != nil {
			return Theme{}, fmt.Errorf("%w: open-mode: %v", ErrInvalidTheme, err)
		}
		t.OpenMode = &m
	}

	// The open-state colors ride on their closed counterparts; alone they
	// have no modifier to land on.
	if d.Header.OpenBackground != "" && d.Header.Background == "" {
		return Theme{}, fmt.Errorf("%w: header.open-background requires header.background", ErrInvalidTheme)
	}
	if d.Header.OpenForeground != "" && d.Header.Foreground == "" {
		return Theme{}, fmt.Errorf("%w: header.open-foreground requires header.foreground", ErrInvalidTheme)
	}

	var err error
	if t.HeaderBackground, err = parseColor("header.background", d.Header.Background); err != nil {
		return Theme{}, err
	}
	if t.HeaderOpenBackground, err = parseColor("header.open-background", d.Header.OpenBackground); err != nil {
		return Theme{}, err
	}
	if t.HeaderForeground, err = parseColor("header.foreground", d.Header.Foreground); err != nil {
		return Theme{}, err
	}
	if t.HeaderOpenForeground, err = parseColor("header.open-foreground", d.Header.OpenForeground); err != nil {
		return Theme{}, err
	}
	if t.Border, err = parseColor("border", d.Border); err != nil {
		return Theme{}, err
	}
	return t, nil
}

// Load reads and parses the theme document at path.
func Load(path string) (Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Theme{}, fmt.Errorf("reading %s: %w", path, err)
	}
	t, err := Parse(data)
	if err != nil {
		return Theme{}, fmt.Errorf("theme %s: %w", path, err)
	}
	return t, nil
}

// Apply returns a copy of the accordion with the theme's set fields
// applied. The accordion value passed in is never modified, so one theme
// can restyle many accordions.
func (t Theme) Apply(acc htmlkit.Accordion) htmlkit.Accordion {
	if t.Style != nil {
		acc = acc.Style(*t.Style)
	}
	if t.OpenMode != nil {
		acc = acc.OpenMode(*t.OpenMode)
	}
	if t.HeaderBackground != nil {
		open := *t.HeaderBackground
		if t.HeaderOpenBackground != nil {
			open = *t.HeaderOpenBackground
		}
		acc = acc.HeaderBackground(*t.HeaderBackground, open)
	}
	if t.HeaderForeground != nil {
		open := *t.HeaderForeground
		if t.HeaderOpenForeground != nil {
			open = *t.HeaderOpenForeground
		}
		acc = acc.HeaderForeground(*t.HeaderForeground, open)
	}
	if t.Border != nil {
		acc = acc.BorderColor(*t.Border)
	}
	return acc
}

func parseColor(field, hex string) (*htmlkit.Color, error) {
	if hex == "" {
		return nil, nil
	}
	c, err := htmlkit.Hex(hex)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidTheme, field, err)
	}
	return &c, nil
}
