package ggchart

import (
	"bytes"
	"fmt"
	"strings"
	"sync"

	"github.com/go-text/typesetting/font"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"
)

// DefaultFontFamily is the family list charts use when none is configured.
const DefaultFontFamily = "-apple-system, BlinkMacSystemFont, 'Trebuchet MS', Roboto, Ubuntu, sans-serif"

// DefaultFontSize is the chart font size in pixels when none is configured.
const DefaultFontSize = 12

// labelRunes are the characters price and time labels are made of.
const labelRunes = "0123456789.,-+%:"

var goRegular = sync.OnceValues(func() (*text.FontSource, error) {
	return text.NewFontSource(goregular.TTF)
})

// FontRegistry resolves CSS-style family lists to font sources.
//
// The first registered family of a list wins. Lists naming no registered
// family resolve to the fallback source.
type FontRegistry struct {
	sources  map[string]*text.FontSource
	fallback *text.FontSource
}

// NewFontRegistry returns a registry whose fallback is the Go regular font,
// registered under the family "Go".
func NewFontRegistry() *FontRegistry {
	r := &FontRegistry{sources: make(map[string]*text.FontSource)}
	if src, err := goRegular(); err == nil {
		r.fallback = src
		r.sources["go"] = src
	} else {
		Logger().Warn("ggchart: default font unavailable", "err", err)
	}
	return r
}

// Register parses data (TTF or OTF) and registers it under family.
// The font must carry glyphs for digits and price punctuation.
func (r *FontRegistry) Register(family string, data []byte) error {
	key := normalizeFamily(family)
	if key == "" {
		return ErrEmptyFamily
	}

	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("ggchart: parse font %q: %w", family, err)
	}
	var missing []rune
	for _, c := range labelRunes {
		if _, ok := face.NominalGlyph(c); !ok {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		return &MissingGlyphsError{Family: family, Missing: missing}
	}

	src, err := text.NewFontSource(data)
	if err != nil {
		return fmt.Errorf("ggchart: load font %q: %w", family, err)
	}
	r.sources[key] = src
	return nil
}

// RegisterSource registers an already loaded source under family.
func (r *FontRegistry) RegisterSource(family string, src *text.FontSource) error {
	key := normalizeFamily(family)
	if key == "" {
		return ErrEmptyFamily
	}
	r.sources[key] = src
	return nil
}

// SetFallback replaces the fallback source. nil disables the fallback.
func (r *FontRegistry) SetFallback(src *text.FontSource) {
	r.fallback = src
}

// Resolve returns the source for the first registered family of list.
func (r *FontRegistry) Resolve(list string) (*text.FontSource, error) {
	for _, fam := range strings.Split(list, ",") {
		if src, ok := r.sources[normalizeFamily(fam)]; ok {
			return src, nil
		}
	}
	if r.fallback == nil {
		return nil, fmt.Errorf("%w %q", ErrNoFont, list)
	}
	Logger().Debug("ggchart: font family fallback", "family", list, "font", r.fallback.Name())
	return r.fallback, nil
}

// Face returns a face of the given pixel size for the family list.
func (r *FontRegistry) Face(list string, size float64) (text.Face, error) {
	src, err := r.Resolve(list)
	if err != nil {
		return nil, err
	}
	return src.Face(size), nil
}

// normalizeFamily trims whitespace and quotes and lowercases a family name.
func normalizeFamily(s string) string {
	s = strings.TrimSpace(s)
	s = strings.Trim(s, `"'`)
	return strings.ToLower(strings.TrimSpace(s))
}

// FontString composes a font description from size and family lists,
// in the form "12px Roboto, sans-serif".
func FontString(size float64, family string) string {
	return fmt.Sprintf("%gpx %s", size, family)
}
