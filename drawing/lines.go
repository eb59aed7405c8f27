package drawing

import (
	"slices"

	"github.com/gogpu/gg"

	"github.com/gogpu/ggchart"
)

// TrendLine is a straight segment between two chart points.
type TrendLine struct {
	pane   *ggchart.Pane
	p1, p2 ggchart.Point
	style  Style
}

// NewTrendLine returns a detached trend line from p1 to p2.
func NewTrendLine(p1, p2 ggchart.Point, style Style) *TrendLine {
	l := &TrendLine{p1: p1, p2: p2, style: style.clone()}
	l.pane = ggchart.NewPane(l)
	return l
}

// Pane returns the pane that paints the line.
func (l *TrendLine) Pane() *ggchart.Pane { return l.pane }

// Points returns the end points.
func (l *TrendLine) Points() (p1, p2 ggchart.Point) { return l.p1, l.p2 }

// SetPoints moves the end points.
func (l *TrendLine) SetPoints(p1, p2 ggchart.Point) {
	l.p1, l.p2 = p1, p2
	l.pane.Refresh()
}

// SetStyle changes the stroke style.
func (l *TrendLine) SetStyle(s Style) {
	l.style = s.clone()
	l.pane.Refresh()
}

// Draw strokes the segment when both ends are drawable.
func (l *TrendLine) Draw(t *ggchart.Target, tr ggchart.Transform) {
	x1, y1, ok := ggchart.PointToCoordinates(tr, l.p1)
	if !ok {
		return
	}
	x2, y2, ok := ggchart.PointToCoordinates(tr, l.p2)
	if !ok {
		return
	}
	l.style.apply(t)
	t.MoveTo(float64(x1), float64(y1))
	t.LineTo(float64(x2), float64(y2))
	_ = t.Stroke()
}

// HorizontalLine spans the pane at one price, optionally with a price
// label at the right edge.
type HorizontalLine struct {
	pane      *ggchart.Pane
	price     float64
	style     Style
	label     bool
	labelText gg.RGBA
	format    *PriceFormatter
}

// NewHorizontalLine returns a detached line at price with a label.
func NewHorizontalLine(price float64, style Style) *HorizontalLine {
	l := &HorizontalLine{
		price:     price,
		style:     style.clone(),
		label:     true,
		labelText: gg.White,
		format:    DefaultPriceFormatter,
	}
	l.pane = ggchart.NewPane(l)
	return l
}

// Pane returns the pane that paints the line.
func (l *HorizontalLine) Pane() *ggchart.Pane { return l.pane }

// Price returns the line's price.
func (l *HorizontalLine) Price() float64 { return l.price }

// SetPrice moves the line.
func (l *HorizontalLine) SetPrice(p float64) {
	l.price = p
	l.pane.Refresh()
}

// SetLabel shows or hides the price label.
func (l *HorizontalLine) SetLabel(show bool) {
	l.label = show
	l.pane.Refresh()
}

// SetFormatter sets the label formatter. nil restores the default.
func (l *HorizontalLine) SetFormatter(f *PriceFormatter) {
	if f == nil {
		f = DefaultPriceFormatter
	}
	l.format = f
	l.pane.Refresh()
}

// Draw strokes the line and, when enabled, the label box.
func (l *HorizontalLine) Draw(t *ggchart.Target, tr ggchart.Transform) {
	y, ok := tr.PriceToCoordinate(l.price)
	if !ok {
		return
	}
	w := float64(t.Width())
	l.style.apply(t)
	t.MoveTo(0, float64(y))
	t.LineTo(w, float64(y))
	_ = t.Stroke()

	if !l.label || t.Font() == nil {
		return
	}
	s := l.format.Format(l.price)
	m := t.Font().Metrics()
	boxW := t.MeasureText(s) + 2*labelPadding
	boxH := m.Ascent + m.Descent + 2*labelPadding

	setFill(t, l.style.Color)
	t.DrawRectangle(w-boxW, float64(y)-boxH/2, boxW, boxH)
	_ = t.Fill()

	setFill(t, l.labelText)
	t.SetTextBaseline(ggchart.BaselineMiddle)
	t.SetTextAlign(ggchart.AlignRight)
	t.FillText(s, w-labelPadding, float64(y))
}

// labelPadding is the space around label text in pixels.
const labelPadding = 4

// VerticalLine spans the pane at one time.
type VerticalLine struct {
	pane  *ggchart.Pane
	time  ggchart.Time
	style Style
}

// NewVerticalLine returns a detached line at time t.
func NewVerticalLine(t ggchart.Time, style Style) *VerticalLine {
	l := &VerticalLine{time: t, style: style.clone()}
	l.pane = ggchart.NewPane(l)
	return l
}

// Pane returns the pane that paints the line.
func (l *VerticalLine) Pane() *ggchart.Pane { return l.pane }

// Time returns the line's time.
func (l *VerticalLine) Time() ggchart.Time { return l.time }

// SetTime moves the line.
func (l *VerticalLine) SetTime(t ggchart.Time) {
	l.time = t
	l.pane.Refresh()
}

// Draw strokes the line when its time is on the time scale.
func (l *VerticalLine) Draw(t *ggchart.Target, tr ggchart.Transform) {
	x, ok := tr.TimeToCoordinate(l.time)
	if !ok {
		return
	}
	l.style.apply(t)
	t.MoveTo(float64(x), 0)
	t.LineTo(float64(x), float64(t.Height()))
	_ = t.Stroke()
}

// Polyline connects a sequence of chart points, such as the values of an
// indicator. Points that are not drawable break the line into separate
// runs.
type Polyline struct {
	pane   *ggchart.Pane
	points []ggchart.Point
	style  Style
}

// NewPolyline returns a detached polyline through points.
func NewPolyline(points []ggchart.Point, style Style) *Polyline {
	l := &Polyline{points: slices.Clone(points), style: style.clone()}
	l.pane = ggchart.NewPane(l)
	return l
}

// Pane returns the pane that paints the polyline.
func (l *Polyline) Pane() *ggchart.Pane { return l.pane }

// SetPoints replaces the points.
func (l *Polyline) SetPoints(points []ggchart.Point) {
	l.points = slices.Clone(points)
	l.pane.Refresh()
}

// Append adds a point at the end.
func (l *Polyline) Append(pt ggchart.Point) {
	l.points = append(l.points, pt)
	l.pane.Refresh()
}

// Draw strokes every run of two or more consecutive drawable points.
func (l *Polyline) Draw(t *ggchart.Target, tr ggchart.Transform) {
	l.style.apply(t)
	run := 0
	for _, pt := range l.points {
		x, y, ok := ggchart.PointToCoordinates(tr, pt)
		if !ok {
			l.flush(t, run)
			run = 0
			continue
		}
		if run == 0 {
			t.MoveTo(float64(x), float64(y))
		} else {
			t.LineTo(float64(x), float64(y))
		}
		run++
	}
	l.flush(t, run)
}

func (l *Polyline) flush(t *ggchart.Target, run int) {
	if run < 2 {
		return
	}
	_ = t.Stroke()
}
