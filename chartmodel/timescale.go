package chartmodel

import (
	"math"
	"slices"

	"github.com/gogpu/ggchart"
)

// TimeScale is a horizontal scale over sorted bar times.
// The last bar sits rightOffset bars away from the right edge; every bar
// takes barSpacing pixels.
type TimeScale struct {
	times       []ggchart.Time
	width       float64
	barSpacing  float64
	rightOffset float64
}

var _ ggchart.TimeScale = (*TimeScale)(nil)

// NewTimeScale returns an empty scale width pixels wide.
func NewTimeScale(width, barSpacing float64) *TimeScale {
	if barSpacing <= 0 {
		barSpacing = DefaultBarSpacing
	}
	return &TimeScale{width: width, barSpacing: barSpacing}
}

// DefaultBarSpacing is the bar width in pixels used for non-positive values.
const DefaultBarSpacing = 6

// SetTimes replaces the bar times. times is copied and sorted.
func (s *TimeScale) SetTimes(times []ggchart.Time) {
	s.times = slices.Clone(times)
	slices.Sort(s.times)
}

// Len returns the number of bars on the scale.
func (s *TimeScale) Len() int {
	return len(s.times)
}

// SetWidth sets the pane width in pixels.
func (s *TimeScale) SetWidth(w float64) { s.width = w }

// Width returns the pane width in pixels.
func (s *TimeScale) Width() float64 { return s.width }

// SetBarSpacing sets the width of one bar. Non-positive values are ignored.
func (s *TimeScale) SetBarSpacing(px float64) {
	if px > 0 {
		s.barSpacing = px
	}
}

// BarSpacing returns the width of one bar in pixels.
func (s *TimeScale) BarSpacing() float64 { return s.barSpacing }

// SetRightOffset sets the gap, in bars, between the last bar and the right edge.
func (s *TimeScale) SetRightOffset(bars float64) { s.rightOffset = bars }

// TimeToIndex returns the index of t. Without findNearest only exact bar
// times resolve. With findNearest any time between the first and the last
// bar resolves to the closest bar; times outside that range do not.
func (s *TimeScale) TimeToIndex(t ggchart.Time, findNearest bool) (ggchart.Index, bool) {
	n := len(s.times)
	if n == 0 {
		return 0, false
	}
	i, found := slices.BinarySearch(s.times, t)
	if found {
		return ggchart.Index(i), true
	}
	if !findNearest || i == 0 || i == n {
		return 0, false
	}
	if t-s.times[i-1] <= s.times[i]-t {
		return ggchart.Index(i - 1), true
	}
	return ggchart.Index(i), true
}

// IndexToCoordinate returns the x coordinate of the center of bar i.
// Indices past the last bar extrapolate into the right offset area.
func (s *TimeScale) IndexToCoordinate(i ggchart.Index) ggchart.Coordinate {
	base := float64(len(s.times) - 1)
	fromRight := base + s.rightOffset - float64(i)
	return ggchart.Coordinate(s.width - (fromRight+0.5)*s.barSpacing - 1)
}

// IndexToTime returns the time of bar i.
func (s *TimeScale) IndexToTime(i ggchart.Index) (ggchart.Time, bool) {
	if i < 0 || int(i) >= len(s.times) {
		return 0, false
	}
	return s.times[i], true
}

// VisibleRange returns the first and last bar indices that fall inside the
// pane, clamped to existing bars. ok is false when no bar is visible.
func (s *TimeScale) VisibleRange() (from, to ggchart.Index, ok bool) {
	n := len(s.times)
	if n == 0 || s.width <= 0 {
		return 0, 0, false
	}
	last := float64(n-1) + s.rightOffset
	first := last - s.width/s.barSpacing + 1
	lo := int(math.Max(0, math.Ceil(first)))
	hi := int(math.Min(float64(n-1), math.Floor(last)))
	if lo > hi {
		return 0, 0, false
	}
	return ggchart.Index(lo), ggchart.Index(hi), true
}
