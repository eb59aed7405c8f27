package ggchart

import (
	"fmt"
	"testing"

	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"
)

func testFace(t *testing.T, size float64) text.Face {
	t.Helper()
	src, err := text.NewFontSource(goregular.TTF)
	if err != nil {
		t.Fatalf("NewFontSource: %v", err)
	}
	return src.Face(size)
}

func TestTargetFillTextWithoutFont(t *testing.T) {
	c := newRecordingCanvas(10, 10)
	tg := NewTarget(c)
	tg.FillText("hello", 1, 2)
	if len(c.ops) != 0 {
		t.Errorf("ops = %v, want none", c.ops)
	}
}

func TestTargetFillTextBaseline(t *testing.T) {
	face := testFace(t, 12)
	m := face.Metrics()

	tests := []struct {
		baseline TextBaseline
		dy       float64
	}{
		{BaselineAlphabetic, 0},
		{BaselineTop, m.Ascent},
		{BaselineMiddle, (m.Ascent - m.Descent) / 2},
		{BaselineBottom, -m.Descent},
	}
	for _, tt := range tests {
		t.Run(tt.baseline.String(), func(t *testing.T) {
			c := newRecordingCanvas(100, 100)
			tg := NewTarget(c)
			tg.SetFont(face)
			tg.SetTextBaseline(tt.baseline)
			tg.FillText("x", 10, 50)

			want := fmt.Sprintf("text %q %g %g %g %g", "x", 10.0, 50+tt.dy, 0.0, 0.0)
			if got := c.ops[len(c.ops)-1]; got != want {
				t.Errorf("op = %s, want %s", got, want)
			}
		})
	}
}

func TestTargetFillTextAlign(t *testing.T) {
	face := testFace(t, 12)
	w := face.Advance("abc")

	tests := []struct {
		align TextAlign
		x     float64
	}{
		{AlignLeft, 100},
		{AlignCenter, 100 - w/2},
		{AlignRight, 100 - w},
	}
	for _, tt := range tests {
		c := newRecordingCanvas(200, 100)
		tg := NewTarget(c)
		tg.SetFont(face)
		tg.SetTextAlign(tt.align)
		tg.FillText("abc", 100, 20)

		want := fmt.Sprintf("text %q %g %g %g %g", "abc", tt.x, 20.0, 0.0, 0.0)
		if got := c.ops[len(c.ops)-1]; got != want {
			t.Errorf("align %d: op = %s, want %s", tt.align, got, want)
		}
	}
}

func TestTargetMeasureTextUsesRendererCache(t *testing.T) {
	r := NewRenderer()
	r.SetParams(12, "Go")

	var tg *Target
	r.SetDrawFunc(func(x *Target) { tg = x })
	r.Draw(newRecordingCanvas(10, 10))

	if w := tg.MeasureText("42.00"); w <= 0 {
		t.Fatalf("MeasureText = %g, want > 0", w)
	}
	if r.widths.Len() != 1 {
		t.Errorf("renderer cache len = %d, want 1", r.widths.Len())
	}

	// A different face bypasses the renderer cache.
	tg.SetFont(testFace(t, 20))
	tg.MeasureText("99.00")
	if r.widths.Len() != 1 {
		t.Errorf("renderer cache len = %d, want 1 after foreign face", r.widths.Len())
	}
	if tg.FontString() != "" {
		t.Errorf("FontString() after SetFont = %q, want empty", tg.FontString())
	}
}

func TestTextBaselineString(t *testing.T) {
	if got := TextBaseline(42).String(); got != "unknown" {
		t.Errorf("String() = %q, want unknown", got)
	}
}
