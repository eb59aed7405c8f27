package ggchart

import (
	"fmt"

	"github.com/gogpu/gg/text"
)

// recordingCanvas is a Canvas that logs every call.
type recordingCanvas struct {
	w, h int
	ops  []string
	face text.Face
}

func newRecordingCanvas(w, h int) *recordingCanvas {
	return &recordingCanvas{w: w, h: h}
}

func (c *recordingCanvas) log(format string, args ...any) {
	c.ops = append(c.ops, fmt.Sprintf(format, args...))
}

func (c *recordingCanvas) Width() int  { return c.w }
func (c *recordingCanvas) Height() int { return c.h }

func (c *recordingCanvas) SetRGBA(r, g, b, a float64) { c.log("rgba %g %g %g %g", r, g, b, a) }
func (c *recordingCanvas) SetLineWidth(w float64)     { c.log("lineWidth %g", w) }
func (c *recordingCanvas) SetDash(l ...float64)       { c.log("dash %v", l) }
func (c *recordingCanvas) ClearDash()                 { c.log("clearDash") }
func (c *recordingCanvas) MoveTo(x, y float64)        { c.log("moveTo %g %g", x, y) }
func (c *recordingCanvas) LineTo(x, y float64)        { c.log("lineTo %g %g", x, y) }
func (c *recordingCanvas) DrawRectangle(x, y, w, h float64) {
	c.log("rect %g %g %g %g", x, y, w, h)
}
func (c *recordingCanvas) DrawCircle(x, y, r float64) { c.log("circle %g %g %g", x, y, r) }
func (c *recordingCanvas) Fill() error                { c.log("fill"); return nil }
func (c *recordingCanvas) Stroke() error              { c.log("stroke"); return nil }

func (c *recordingCanvas) SetFont(face text.Face) {
	c.face = face
	c.log("font")
}

func (c *recordingCanvas) DrawStringAnchored(s string, x, y, ax, ay float64) {
	c.log("text %q %g %g %g %g", s, x, y, ax, ay)
}

type fakeTimeScale struct {
	index   map[Time]Index
	nearest []bool
}

func (s *fakeTimeScale) TimeToIndex(t Time, findNearest bool) (Index, bool) {
	s.nearest = append(s.nearest, findNearest)
	i, ok := s.index[t]
	return i, ok
}

// IndexToCoordinate places bars 10px apart.
func (s *fakeTimeScale) IndexToCoordinate(i Index) Coordinate {
	return Coordinate(float64(i) * 10)
}

type fakePriceScale struct {
	first    float64
	hasFirst bool
	anchors  []float64
}

func (s *fakePriceScale) FirstValue() (float64, bool) { return s.first, s.hasFirst }

// PriceToCoordinate puts the anchor at y=100, one pixel per price unit.
func (s *fakePriceScale) PriceToCoordinate(price, first float64) Coordinate {
	s.anchors = append(s.anchors, first)
	return Coordinate(100 - (price - first))
}

type fakeSeries struct {
	visible bool
	ps      *fakePriceScale
}

func (s *fakeSeries) Visible() bool          { return s.visible }
func (s *fakeSeries) PriceScale() PriceScale { return s.ps }

type fakeModel struct {
	ts      *fakeTimeScale
	opts    Options
	updates int
}

func (m *fakeModel) TimeScale() TimeScale { return m.ts }
func (m *fakeModel) FullUpdate()          { m.updates++ }
func (m *fakeModel) Options() Options     { return m.opts }

// newFakeChart returns a visible series anchored at 50 and a model that
// knows times 1000, 2000 and 3000 as indices 0, 1 and 2.
func newFakeChart() (*fakeSeries, *fakeModel) {
	s := &fakeSeries{visible: true, ps: &fakePriceScale{first: 50, hasFirst: true}}
	m := &fakeModel{
		ts: &fakeTimeScale{index: map[Time]Index{1000: 0, 2000: 1, 3000: 2}},
		opts: Options{Layout: LayoutOptions{
			FontSize:   DefaultFontSize,
			FontFamily: DefaultFontFamily,
		}},
	}
	return s, m
}

// traceDrawer appends its name to a shared log when drawn.
type traceDrawer struct {
	name string
	log  *[]string
}

func (d traceDrawer) Draw(*Target, Transform) {
	*d.log = append(*d.log, d.name)
}

func tracePane(name string, log *[]string) *Pane {
	return NewPane(traceDrawer{name: name, log: log})
}
