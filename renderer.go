package ggchart

import (
	"github.com/gogpu/gg/text"

	"github.com/gogpu/ggchart/internal/widthcache"
)

// PaneRenderer is what a chart's paint scheduler consumes: one opaque unit
// drawn once per frame after all lower panes have painted.
type PaneRenderer interface {
	Draw(c Canvas)
	HitTest(x, y float64) (*Hit, bool)
}

// Hit describes an interactive element found by HitTest.
type Hit struct {
	Pane *Pane
}

// DrawFunc is the single render callback bound to a Renderer.
type DrawFunc func(t *Target)

// Renderer presents a drawing tree, or any DrawFunc, as a PaneRenderer.
// It owns the font settings and a text width cache for them.
//
// Renderer is not safe for concurrent use.
type Renderer struct {
	fontSize   float64
	fontFamily string
	font       string
	face       text.Face

	fonts    *FontRegistry
	widths   *widthcache.Cache
	baseline TextBaseline

	draw DrawFunc
}

var _ PaneRenderer = (*Renderer)(nil)

// NewRenderer returns a Renderer with no font and no draw func.
// The first SetParams call establishes the font.
func NewRenderer(opts ...RendererOption) *Renderer {
	o := defaultRendererOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.fonts == nil {
		o.fonts = NewFontRegistry()
	}
	return &Renderer{
		fonts:    o.fonts,
		widths:   widthcache.New(o.textCacheLimit),
		baseline: o.baseline,
	}
}

// SetParams updates the font settings. It is called every frame and does
// nothing unless size or family differ from the current values. A change
// recomposes the font string, resolves a new face and empties the text
// width cache.
func (r *Renderer) SetParams(fontSize float64, fontFamily string) {
	if r.fontSize == fontSize && r.fontFamily == fontFamily {
		return
	}
	r.fontSize = fontSize
	r.fontFamily = fontFamily
	r.font = FontString(fontSize, fontFamily)

	face, err := r.fonts.Face(fontFamily, fontSize)
	if err != nil {
		Logger().Warn("ggchart: no face for font", "font", r.font, "err", err)
		face = nil
	}
	r.face = face
	r.widths.Reset()
	Logger().Debug("ggchart: renderer font changed", "font", r.font)
}

// FontSize returns the current font size.
func (r *Renderer) FontSize() float64 { return r.fontSize }

// FontFamily returns the current family list.
func (r *Renderer) FontFamily() string { return r.fontFamily }

// Font returns the composed font string, "" before the first SetParams.
func (r *Renderer) Font() string { return r.font }

// Face returns the resolved face, or nil.
func (r *Renderer) Face() text.Face { return r.face }

// SetDrawFunc binds fn as the render callback, replacing any previous one.
// nil unbinds.
func (r *Renderer) SetDrawFunc(fn DrawFunc) {
	r.draw = fn
}

// Draw prepares the text state of c and runs the bound draw func.
// Without a draw func it only prepares c.
func (r *Renderer) Draw(c Canvas) {
	t := &Target{Canvas: c, renderer: r}
	t.SetTextBaseline(r.baseline)
	if r.face != nil {
		t.setFont(r.face, r.font)
	}
	if r.draw != nil {
		r.draw(t)
	}
}

// HitTest always reports no hit. Drawings rendered through a Renderer
// are not interactive.
func (r *Renderer) HitTest(x, y float64) (*Hit, bool) {
	return nil, false
}

// MeasureText returns the advance width of s in the renderer's face,
// served from the width cache.
func (r *Renderer) MeasureText(s string) float64 {
	if r.face == nil {
		return 0
	}
	return r.widths.Measure(s, r.face.Advance)
}
