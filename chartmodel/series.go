package chartmodel

import (
	"math"
	"slices"

	"github.com/gogpu/ggchart"
)

// Bar is one OHLC sample.
type Bar struct {
	Time                   ggchart.Time
	Open, High, Low, Close float64
}

// Series is a bar series drawn on one price scale.
type Series struct {
	visible bool
	scale   *PriceScale
	bars    []Bar
}

var _ ggchart.Series = (*Series)(nil)

// NewSeries returns a visible, empty series on scale.
func NewSeries(scale *PriceScale) *Series {
	return &Series{visible: true, scale: scale}
}

// Visible reports whether the series is shown.
func (s *Series) Visible() bool { return s.visible }

// SetVisible shows or hides the series.
func (s *Series) SetVisible(v bool) { s.visible = v }

// PriceScale returns the series' scale.
func (s *Series) PriceScale() ggchart.PriceScale { return s.scale }

// Scale returns the concrete scale.
func (s *Series) Scale() *PriceScale { return s.scale }

// SetBars replaces the data. bars is copied and sorted by time.
func (s *Series) SetBars(bars []Bar) {
	s.bars = slices.Clone(bars)
	slices.SortFunc(s.bars, func(a, b Bar) int {
		switch {
		case a.Time < b.Time:
			return -1
		case a.Time > b.Time:
			return 1
		}
		return 0
	})
}

// Bars returns the data sorted by time. The slice must not be modified.
func (s *Series) Bars() []Bar { return s.bars }

// Autoscale loads the bar times into ts and fits the price scale to the
// bars visible on ts. The first visible close becomes the first value;
// with nothing visible the first value is cleared.
func (s *Series) Autoscale(ts *TimeScale) {
	times := make([]ggchart.Time, len(s.bars))
	for i, b := range s.bars {
		times[i] = b.Time
	}
	ts.SetTimes(times)

	from, to, ok := ts.VisibleRange()
	if !ok {
		s.scale.ClearFirstValue()
		return
	}
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, b := range s.bars[from : to+1] {
		lo = math.Min(lo, b.Low)
		hi = math.Max(hi, b.High)
	}
	s.scale.SetRange(lo, hi)
	s.scale.SetFirstValue(s.bars[from].Close)
}
