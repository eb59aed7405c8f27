package drawing

import (
	"math"

	"github.com/gogpu/gg"

	"github.com/gogpu/ggchart"
)

// Box is a rectangle spanned by two chart points.
type Box struct {
	pane   *ggchart.Pane
	p1, p2 ggchart.Point
	fill   gg.RGBA
	border Style
}

// NewBox returns a detached box filled with fill and outlined by border.
// A zero border width draws no outline.
func NewBox(p1, p2 ggchart.Point, fill gg.RGBA, border Style) *Box {
	b := &Box{p1: p1, p2: p2, fill: fill, border: border.clone()}
	b.pane = ggchart.NewPane(b)
	return b
}

// Pane returns the pane that paints the box.
func (b *Box) Pane() *ggchart.Pane { return b.pane }

// SetPoints moves the corners.
func (b *Box) SetPoints(p1, p2 ggchart.Point) {
	b.p1, b.p2 = p1, p2
	b.pane.Refresh()
}

// SetFill changes the fill color.
func (b *Box) SetFill(c gg.RGBA) {
	b.fill = c
	b.pane.Refresh()
}

// Draw fills and outlines the box when both corners are drawable.
func (b *Box) Draw(t *ggchart.Target, tr ggchart.Transform) {
	x1, y1, ok := ggchart.PointToCoordinates(tr, b.p1)
	if !ok {
		return
	}
	x2, y2, ok := ggchart.PointToCoordinates(tr, b.p2)
	if !ok {
		return
	}
	x := math.Min(float64(x1), float64(x2))
	y := math.Min(float64(y1), float64(y2))
	w := math.Abs(float64(x2 - x1))
	h := math.Abs(float64(y2 - y1))

	if b.fill.A > 0 {
		setFill(t, b.fill)
		t.DrawRectangle(x, y, w, h)
		_ = t.Fill()
	}
	if b.border.Width > 0 {
		b.border.apply(t)
		t.DrawRectangle(x, y, w, h)
		_ = t.Stroke()
	}
}

// Label is a text annotation anchored at a chart point, drawn centered on
// a background box when a background color is set.
type Label struct {
	pane       *ggchart.Pane
	at         ggchart.Point
	text       string
	color      gg.RGBA
	background gg.RGBA
	marker     bool
}

// NewLabel returns a detached label showing s at pt.
func NewLabel(pt ggchart.Point, s string, color, background gg.RGBA) *Label {
	l := &Label{at: pt, text: s, color: color, background: background}
	l.pane = ggchart.NewPane(l)
	return l
}

// Pane returns the pane that paints the label.
func (l *Label) Pane() *ggchart.Pane { return l.pane }

// Text returns the label text.
func (l *Label) Text() string { return l.text }

// SetText changes the label text.
func (l *Label) SetText(s string) {
	l.text = s
	l.pane.Refresh()
}

// MoveTo moves the anchor point.
func (l *Label) MoveTo(pt ggchart.Point) {
	l.at = pt
	l.pane.Refresh()
}

// SetMarker draws a dot at the anchor point, with the text above it.
func (l *Label) SetMarker(on bool) {
	l.marker = on
	l.pane.Refresh()
}

// Draw paints the label when its anchor is drawable and a font is set.
func (l *Label) Draw(t *ggchart.Target, tr ggchart.Transform) {
	x, y, ok := ggchart.PointToCoordinates(tr, l.at)
	if !ok {
		return
	}
	cx, cy := float64(x), float64(y)
	if l.marker {
		setFill(t, l.color)
		t.DrawCircle(cx, cy, markerRadius)
		_ = t.Fill()
	}
	if l.text == "" || t.Font() == nil {
		return
	}

	m := t.Font().Metrics()
	boxW := t.MeasureText(l.text) + 2*labelPadding
	boxH := m.Ascent + m.Descent + 2*labelPadding
	if l.marker {
		cy -= boxH/2 + 2*markerRadius
	}
	if l.background.A > 0 {
		setFill(t, l.background)
		t.DrawRectangle(cx-boxW/2, cy-boxH/2, boxW, boxH)
		_ = t.Fill()
	}
	setFill(t, l.color)
	t.SetTextBaseline(ggchart.BaselineMiddle)
	t.SetTextAlign(ggchart.AlignCenter)
	t.FillText(l.text, cx, cy)
}

const markerRadius = 3
