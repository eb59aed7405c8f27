package ggchart

import (
	"errors"
	"fmt"
)

// Sentinel errors for the ggchart package.
var (
	// ErrNotInitialized is the panic value (wrapped) raised when a pane is
	// rendered or asked for coordinates before Init bound it to a chart.
	ErrNotInitialized = errors.New("ggchart: pane not initialized")

	// ErrEmptyFamily is returned when a font is registered without a family name.
	ErrEmptyFamily = errors.New("ggchart: empty font family")

	// ErrNoFont is returned when a family list resolves to no registered font
	// and the registry has no fallback.
	ErrNoFont = errors.New("ggchart: no font for family")
)

// MissingGlyphsError is returned by FontRegistry.Register when the font
// lacks glyphs that price and time labels need.
type MissingGlyphsError struct {
	Family  string
	Missing []rune
}

func (e *MissingGlyphsError) Error() string {
	return fmt.Sprintf("ggchart: font %q has no glyphs for %q", e.Family, string(e.Missing))
}
