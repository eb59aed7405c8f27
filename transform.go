package ggchart

// Transform maps domain values to pixel coordinates.
// A false result means the value is not drawable right now (outside the
// time range, or a price scale without a first value). Callers skip the
// geometry; it is never an error.
type Transform interface {
	TimeToIndex(t Time) (Index, bool)
	IndexToCoordinate(i Index) Coordinate
	TimeToCoordinate(t Time) (Coordinate, bool)
	PriceToCoordinate(price float64) (Coordinate, bool)
}

// Point is a location in chart domain space.
type Point struct {
	Time  Time
	Price float64
}

var _ Transform = (*Pane)(nil)

// TimeToIndex resolves t against the model's time scale. The nearest index
// is accepted, no exact match is required.
func (p *Pane) TimeToIndex(t Time) (Index, bool) {
	p.mustBeLive("TimeToIndex")
	return p.model.TimeScale().TimeToIndex(t, true)
}

// IndexToCoordinate maps a logical index to an x coordinate.
func (p *Pane) IndexToCoordinate(i Index) Coordinate {
	p.mustBeLive("IndexToCoordinate")
	return p.model.TimeScale().IndexToCoordinate(i)
}

// TimeToCoordinate maps t to an x coordinate. Nothing is cached; every
// call resolves the index again.
func (p *Pane) TimeToCoordinate(t Time) (Coordinate, bool) {
	i, ok := p.TimeToIndex(t)
	if !ok {
		return 0, false
	}
	return p.IndexToCoordinate(i), true
}

// PriceToCoordinate maps price to a y coordinate on the series' price
// scale, anchored at the scale's first value.
func (p *Pane) PriceToCoordinate(price float64) (Coordinate, bool) {
	p.mustBeLive("PriceToCoordinate")
	ps := p.series.PriceScale()
	first, ok := ps.FirstValue()
	if !ok {
		return 0, false
	}
	return ps.PriceToCoordinate(price, first), true
}

// PointToCoordinates maps pt to pixel coordinates through tr. ok is false
// when either axis is not drawable.
func PointToCoordinates(tr Transform, pt Point) (x, y Coordinate, ok bool) {
	if x, ok = tr.TimeToCoordinate(pt.Time); !ok {
		return 0, 0, false
	}
	if y, ok = tr.PriceToCoordinate(pt.Price); !ok {
		return 0, 0, false
	}
	return x, y, true
}
