package chartmodel

import (
	"math"

	"github.com/gogpu/ggchart"
)

// Mode selects how prices are projected onto the scale.
type Mode int

const (
	// ModeNormal plots raw prices.
	ModeNormal Mode = iota
	// ModePercentage plots the change from the first value in percent.
	ModePercentage
	// ModeIndexedTo100 plots prices indexed so the first value is 100.
	ModeIndexedTo100
)

// Default scale margins as a fraction of the pane height.
const (
	DefaultTopMargin    = 0.2
	DefaultBottomMargin = 0.1
)

// PriceScale is a linear vertical scale over a price range.
type PriceScale struct {
	mode   Mode
	height float64
	top    float64
	bottom float64

	min, max float64

	first    float64
	hasFirst bool
}

var _ ggchart.PriceScale = (*PriceScale)(nil)

// NewPriceScale returns a normal mode scale height pixels tall with no
// range and no first value.
func NewPriceScale(height float64) *PriceScale {
	return &PriceScale{
		height: height,
		top:    DefaultTopMargin,
		bottom: DefaultBottomMargin,
	}
}

// SetMode sets the projection mode.
func (s *PriceScale) SetMode(m Mode) { s.mode = m }

// Mode returns the projection mode.
func (s *PriceScale) Mode() Mode { return s.mode }

// SetHeight sets the pane height in pixels.
func (s *PriceScale) SetHeight(h float64) { s.height = h }

// Height returns the pane height in pixels.
func (s *PriceScale) Height() float64 { return s.height }

// SetMargins sets the top and bottom margins as fractions of the height.
func (s *PriceScale) SetMargins(top, bottom float64) {
	s.top, s.bottom = top, bottom
}

// SetRange sets the displayed price range. The bounds may come in any order.
func (s *PriceScale) SetRange(lo, hi float64) {
	if lo > hi {
		lo, hi = hi, lo
	}
	s.min, s.max = lo, hi
}

// Range returns the displayed price range.
func (s *PriceScale) Range() (lo, hi float64) {
	return s.min, s.max
}

// SetFirstValue sets the first displayed value, the anchor of percentage
// and indexed modes.
func (s *PriceScale) SetFirstValue(v float64) {
	s.first = v
	s.hasFirst = true
}

// ClearFirstValue forgets the first value; FirstValue reports false until
// the next SetFirstValue.
func (s *PriceScale) ClearFirstValue() {
	s.first = 0
	s.hasFirst = false
}

// FirstValue returns the first displayed value.
func (s *PriceScale) FirstValue() (float64, bool) {
	return s.first, s.hasFirst
}

// PriceToCoordinate maps price to a y coordinate. firstValue anchors the
// percentage and indexed modes and is ignored in normal mode.
func (s *PriceScale) PriceToCoordinate(price, firstValue float64) ggchart.Coordinate {
	v := s.project(price, firstValue)
	lo := s.project(s.min, firstValue)
	hi := s.project(s.max, firstValue)

	inner := s.height * (1 - s.top - s.bottom)
	if hi == lo {
		return ggchart.Coordinate(s.height*s.top + inner/2)
	}
	return ggchart.Coordinate(s.height*s.top + (hi-v)/(hi-lo)*inner)
}

// CoordinateToPrice inverts PriceToCoordinate.
func (s *PriceScale) CoordinateToPrice(y ggchart.Coordinate, firstValue float64) float64 {
	lo := s.project(s.min, firstValue)
	hi := s.project(s.max, firstValue)
	inner := s.height * (1 - s.top - s.bottom)
	if inner == 0 {
		return s.unproject(lo, firstValue)
	}
	v := hi - (float64(y)-s.height*s.top)/inner*(hi-lo)
	return s.unproject(v, firstValue)
}

func (s *PriceScale) project(price, first float64) float64 {
	if first == 0 {
		return price
	}
	switch s.mode {
	case ModePercentage:
		return (price - first) / math.Abs(first) * 100
	case ModeIndexedTo100:
		return price / first * 100
	default:
		return price
	}
}

func (s *PriceScale) unproject(v, first float64) float64 {
	if first == 0 {
		return v
	}
	switch s.mode {
	case ModePercentage:
		return v/100*math.Abs(first) + first
	case ModeIndexedTo100:
		return v / 100 * first
	default:
		return v
	}
}
