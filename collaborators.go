package ggchart

import "time"

// Time is a point on the chart's time axis in UTC unix seconds.
type Time int64

// TimeOf converts t to a chart Time.
func TimeOf(t time.Time) Time {
	return Time(t.Unix())
}

// Std returns t as a UTC time.Time.
func (t Time) Std() time.Time {
	return time.Unix(int64(t), 0).UTC()
}

// Index is an ordinal position along the time axis (a logical bar index).
// It is distinct from a raw Time.
type Index int

// Coordinate is a pixel position inside a pane, x or y depending on use.
type Coordinate float64

// Series is the owning series of a drawing tree.
type Series interface {
	// Visible reports whether the series is currently shown.
	Visible() bool
	// PriceScale returns the price scale the series is attached to.
	PriceScale() PriceScale
}

// PriceScale maps prices to vertical pixel coordinates.
type PriceScale interface {
	// PriceToCoordinate maps price, using firstValue as the anchor for
	// percentage and indexed modes.
	PriceToCoordinate(price, firstValue float64) Coordinate
	// FirstValue returns the first displayed value of the scale, or false
	// when nothing is displayed yet.
	FirstValue() (float64, bool)
}

// TimeScale maps times to logical indices and indices to pixels.
type TimeScale interface {
	// TimeToIndex resolves t to a logical index. With findNearest set the
	// scale may return the nearest index instead of requiring an exact match.
	TimeToIndex(t Time, findNearest bool) (Index, bool)
	// IndexToCoordinate maps a logical index to a horizontal pixel.
	IndexToCoordinate(i Index) Coordinate
}

// Model is the chart model a drawing tree belongs to.
type Model interface {
	TimeScale() TimeScale
	// FullUpdate schedules a full redraw of the chart.
	FullUpdate()
	Options() Options
}

// Options is the subset of chart options ggchart reads.
type Options struct {
	Layout LayoutOptions
}

// LayoutOptions holds the chart-wide text settings.
type LayoutOptions struct {
	FontSize   float64
	FontFamily string
}
