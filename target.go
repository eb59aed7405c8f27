package ggchart

import "github.com/gogpu/gg/text"

// Target is the drawing context handed to panes for one paint pass.
//
// It wraps a Canvas and adds the text state a gg.Context does not carry:
// baseline, alignment and the composed font string. State set by one
// drawing stays in effect for the next; nothing is restored.
type Target struct {
	Canvas

	face     text.Face
	font     string
	baseline TextBaseline
	align    TextAlign

	// renderer serves cached widths for its own face. May be nil.
	renderer *Renderer
}

// NewTarget wraps c. The font is unset and the baseline is alphabetic.
func NewTarget(c Canvas) *Target {
	return &Target{Canvas: c}
}

// SetFont sets the face used by FillText and MeasureText.
func (t *Target) SetFont(face text.Face) {
	t.setFont(face, "")
}

func (t *Target) setFont(face text.Face, font string) {
	t.face = face
	t.font = font
	t.Canvas.SetFont(face)
}

// Font returns the current face, or nil.
func (t *Target) Font() text.Face {
	return t.face
}

// FontString returns the composed font description ("12px Roboto") when
// the font was set by a Renderer, or "" otherwise.
func (t *Target) FontString() string {
	return t.font
}

// SetTextBaseline sets the vertical anchor of FillText.
func (t *Target) SetTextBaseline(b TextBaseline) {
	t.baseline = b
}

// TextBaseline returns the vertical anchor of FillText.
func (t *Target) TextBaseline() TextBaseline {
	return t.baseline
}

// SetTextAlign sets the horizontal anchor of FillText.
func (t *Target) SetTextAlign(a TextAlign) {
	t.align = a
}

// TextAlign returns the horizontal anchor of FillText.
func (t *Target) TextAlign() TextAlign {
	return t.align
}

// MeasureText returns the advance width of s in the current face.
// Widths for the renderer's face come from its cache.
func (t *Target) MeasureText(s string) float64 {
	if t.face == nil {
		return 0
	}
	if t.renderer != nil && t.renderer.face == t.face {
		return t.renderer.MeasureText(s)
	}
	return t.face.Advance(s)
}

// FillText draws s at (x, y) honoring the baseline and alignment.
// Without a font it draws nothing.
func (t *Target) FillText(s string, x, y float64) {
	if t.face == nil || s == "" {
		return
	}
	if ax := t.align.anchorX(); ax != 0 {
		x -= t.MeasureText(s) * ax
	}
	y += t.baseline.offset(t.face.Metrics())
	t.Canvas.DrawStringAnchored(s, x, y, 0, 0)
}
