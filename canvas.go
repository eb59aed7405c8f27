package ggchart

import (
	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
)

// Canvas is the 2D drawing surface overlays paint on.
// It is the subset of *gg.Context that drawings use, so a gg.Context can be
// passed directly and tests can record calls.
type Canvas interface {
	Width() int
	Height() int

	SetRGBA(r, g, b, a float64)
	SetLineWidth(width float64)
	SetDash(lengths ...float64)
	ClearDash()

	MoveTo(x, y float64)
	LineTo(x, y float64)
	DrawRectangle(x, y, w, h float64)
	DrawCircle(x, y, r float64)
	Fill() error
	Stroke() error

	SetFont(face text.Face)
	DrawStringAnchored(s string, x, y, ax, ay float64)
}

var _ Canvas = (*gg.Context)(nil)

// TextBaseline selects which part of a text line sits on the y passed to
// Target.FillText.
type TextBaseline int

const (
	// BaselineAlphabetic places the glyph baseline at y.
	BaselineAlphabetic TextBaseline = iota
	// BaselineTop places the top of the line at y.
	BaselineTop
	// BaselineMiddle centers the line on y.
	BaselineMiddle
	// BaselineBottom places the bottom of the descenders at y.
	BaselineBottom
)

// String returns the baseline name.
func (b TextBaseline) String() string {
	switch b {
	case BaselineAlphabetic:
		return "alphabetic"
	case BaselineTop:
		return "top"
	case BaselineMiddle:
		return "middle"
	case BaselineBottom:
		return "bottom"
	default:
		return "unknown"
	}
}

// offset returns the distance from y to the glyph baseline for m.
func (b TextBaseline) offset(m text.Metrics) float64 {
	switch b {
	case BaselineTop:
		return m.Ascent
	case BaselineMiddle:
		return (m.Ascent - m.Descent) / 2
	case BaselineBottom:
		return -m.Descent
	default:
		return 0
	}
}

// TextAlign selects which end of a text line sits on the x passed to
// Target.FillText.
type TextAlign int

const (
	AlignLeft TextAlign = iota
	AlignCenter
	AlignRight
)

func (a TextAlign) anchorX() float64 {
	switch a {
	case AlignCenter:
		return 0.5
	case AlignRight:
		return 1
	default:
		return 0
	}
}
