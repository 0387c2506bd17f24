package htmlkit

import (
	"errors"
	"fmt"
)

// ErrUnknownOpenMode reports an open-mode name that ParseOpenMode does not
// recognize.
var ErrUnknownOpenMode = errors.New("unknown open mode")

// OpenMode governs how sections of one accordion interact when opened.
type OpenMode int

const (
	// OpenIndividual lets at most one section stay open: opening a section
	// collapses its siblings. This is the default.
	OpenIndividual OpenMode = iota

	// OpenAll lets sections open and close independently.
	OpenAll
)

// String returns the open-mode name, or "" for unknown values.
func (m OpenMode) String() string {
	switch m {
	case OpenIndividual:
		return "individual"
	case OpenAll:
		return "all"
	default:
		return ""
	}
}

// ParseOpenMode parses an open-mode name as used in theme files and
// configuration: "individual" or "all".
func ParseOpenMode(s string) (OpenMode, error) {
	switch s {
	case "individual":
		return OpenIndividual, nil
	case "all":
		return OpenAll, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownOpenMode, s)
}
