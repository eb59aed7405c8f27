package chartmodel

import (
	"math"
	"testing"

	"github.com/gogpu/ggchart"
)

func TestTimeScaleTimeToIndex(t *testing.T) {
	ts := NewTimeScale(100, 10)
	ts.SetTimes([]ggchart.Time{300, 100, 200, 400})

	tests := []struct {
		name    string
		time    ggchart.Time
		nearest bool
		want    ggchart.Index
		wantOK  bool
	}{
		{"exact", 200, false, 1, true},
		{"exact nearest", 400, true, 3, true},
		{"between strict", 240, false, 0, false},
		{"between nearest low", 240, true, 1, true},
		{"between nearest high", 260, true, 2, true},
		{"before first", 50, true, 0, false},
		{"after last", 500, true, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ts.TimeToIndex(tt.time, tt.nearest)
			if ok != tt.wantOK || (ok && got != tt.want) {
				t.Errorf("TimeToIndex(%d, %v) = %d, %v; want %d, %v", tt.time, tt.nearest, got, ok, tt.want, tt.wantOK)
			}
		})
	}

	if _, ok := NewTimeScale(100, 10).TimeToIndex(1, true); ok {
		t.Error("empty scale resolved a time")
	}
}

func TestTimeScaleIndexToCoordinate(t *testing.T) {
	ts := NewTimeScale(200, 10)
	ts.SetTimes([]ggchart.Time{1, 2, 3, 4, 5})

	// Last bar centered half a bar from the right edge.
	if got := ts.IndexToCoordinate(4); got != 194 {
		t.Errorf("IndexToCoordinate(last) = %v, want 194", got)
	}
	if got := ts.IndexToCoordinate(3); got != 184 {
		t.Errorf("IndexToCoordinate(3) = %v, want 184", got)
	}

	ts.SetRightOffset(2)
	if got := ts.IndexToCoordinate(4); got != 174 {
		t.Errorf("IndexToCoordinate with offset = %v, want 174", got)
	}
}

func TestTimeScaleVisibleRange(t *testing.T) {
	ts := NewTimeScale(50, 10) // five bars fit
	times := make([]ggchart.Time, 20)
	for i := range times {
		times[i] = ggchart.Time(i)
	}
	ts.SetTimes(times)

	from, to, ok := ts.VisibleRange()
	if !ok || from != 15 || to != 19 {
		t.Errorf("VisibleRange = %d..%d, %v; want 15..19, true", from, to, ok)
	}

	ts.SetRightOffset(30)
	if _, _, ok := ts.VisibleRange(); ok {
		t.Error("VisibleRange reported bars while scrolled past the data")
	}
}

func TestPriceScaleNormal(t *testing.T) {
	ps := NewPriceScale(100)
	ps.SetMargins(0, 0)
	ps.SetRange(0, 50)

	tests := []struct {
		price float64
		want  ggchart.Coordinate
	}{
		{50, 0},
		{0, 100},
		{25, 50},
	}
	for _, tt := range tests {
		if got := ps.PriceToCoordinate(tt.price, 10); got != tt.want {
			t.Errorf("PriceToCoordinate(%g) = %v, want %v", tt.price, got, tt.want)
		}
		if back := ps.CoordinateToPrice(tt.want, 10); math.Abs(back-tt.price) > 1e-9 {
			t.Errorf("CoordinateToPrice(%v) = %g, want %g", tt.want, back, tt.price)
		}
	}
}

func TestPriceScaleAnchoredModes(t *testing.T) {
	for _, mode := range []Mode{ModePercentage, ModeIndexedTo100} {
		ps := NewPriceScale(200)
		ps.SetMode(mode)
		ps.SetRange(90, 110)

		// The projection is linear in price for a fixed anchor, so the
		// range ends stay at the margins.
		top := ps.PriceToCoordinate(110, 100)
		bottom := ps.PriceToCoordinate(90, 100)
		if math.Abs(float64(top)-200*DefaultTopMargin) > 1e-9 {
			t.Errorf("mode %d: top = %v", mode, top)
		}
		if math.Abs(float64(bottom)-200*(1-DefaultBottomMargin)) > 1e-9 {
			t.Errorf("mode %d: bottom = %v", mode, bottom)
		}
		if back := ps.CoordinateToPrice(ps.PriceToCoordinate(103, 100), 100); math.Abs(back-103) > 1e-9 {
			t.Errorf("mode %d: round trip = %g, want 103", mode, back)
		}
	}
}

func TestPriceScaleFlatRange(t *testing.T) {
	ps := NewPriceScale(100)
	ps.SetMargins(0, 0)
	ps.SetRange(5, 5)
	if got := ps.PriceToCoordinate(5, 5); got != 50 {
		t.Errorf("flat range coordinate = %v, want 50", got)
	}
}

func TestPriceScaleFirstValue(t *testing.T) {
	ps := NewPriceScale(100)
	if _, ok := ps.FirstValue(); ok {
		t.Error("new scale has a first value")
	}
	ps.SetFirstValue(42)
	if v, ok := ps.FirstValue(); !ok || v != 42 {
		t.Errorf("FirstValue = %g, %v; want 42, true", v, ok)
	}
	ps.ClearFirstValue()
	if _, ok := ps.FirstValue(); ok {
		t.Error("first value survived ClearFirstValue")
	}
}

func TestSeriesAutoscale(t *testing.T) {
	ts := NewTimeScale(30, 10) // three bars fit
	s := NewSeries(NewPriceScale(100))
	s.SetBars([]Bar{
		{Time: 4, Open: 10, High: 14, Low: 9, Close: 13},
		{Time: 1, Open: 1, High: 100, Low: 0, Close: 1},
		{Time: 3, Open: 11, High: 12, Low: 8, Close: 10},
		{Time: 2, Open: 12, High: 15, Low: 10, Close: 11},
	})
	s.Autoscale(ts)

	if ts.Len() != 4 {
		t.Fatalf("time scale has %d bars, want 4", ts.Len())
	}
	if lo, hi := s.Scale().Range(); lo != 8 || hi != 15 {
		t.Errorf("range = %g..%g, want 8..15", lo, hi)
	}
	if v, ok := s.Scale().FirstValue(); !ok || v != 11 {
		t.Errorf("first value = %g, %v; want 11 (close of first visible bar)", v, ok)
	}
}

func TestSeriesVisibility(t *testing.T) {
	s := NewSeries(NewPriceScale(10))
	if !s.Visible() {
		t.Error("new series hidden")
	}
	s.SetVisible(false)
	if s.Visible() {
		t.Error("SetVisible(false) ignored")
	}
	if s.PriceScale() == nil {
		t.Error("PriceScale() = nil")
	}
}

func TestModel(t *testing.T) {
	hooks := 0
	m := NewModel(NewTimeScale(10, 1), WithLayout(14, "Go"), WithUpdateHook(func() { hooks++ }))

	if l := m.Options().Layout; l.FontSize != 14 || l.FontFamily != "Go" {
		t.Errorf("layout = %+v", l)
	}
	m.FullUpdate()
	m.FullUpdate()
	if m.FullUpdates() != 2 || hooks != 2 {
		t.Errorf("updates = %d, hooks = %d; want 2, 2", m.FullUpdates(), hooks)
	}

	d := NewModel(NewTimeScale(10, 1))
	if l := d.Options().Layout; l.FontSize != ggchart.DefaultFontSize || l.FontFamily != ggchart.DefaultFontFamily {
		t.Errorf("default layout = %+v", l)
	}
}

func TestModelDrivesPanes(t *testing.T) {
	ts := NewTimeScale(100, 10)
	s := NewSeries(NewPriceScale(100))
	s.SetBars([]Bar{{Time: 10, Low: 1, High: 2, Close: 1.5}, {Time: 20, Low: 1, High: 2, Close: 1.5}})
	s.Autoscale(ts)
	m := NewModel(ts)

	p := ggchart.NewPane(nil)
	p.Init(s, m)
	x, ok := p.TimeToCoordinate(20)
	if !ok || x != ts.IndexToCoordinate(1) {
		t.Errorf("TimeToCoordinate = %v, %v", x, ok)
	}
	p.Refresh()
	if m.FullUpdates() != 1 {
		t.Errorf("Refresh did not reach the model")
	}
}
