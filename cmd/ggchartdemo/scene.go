package main

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"os"
	"time"

	"github.com/gogpu/gg"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/ggchart"
	"github.com/gogpu/ggchart/chartmodel"
	"github.com/gogpu/ggchart/drawing"
)

// Scene describes one chart picture: generated bars plus overlays.
type Scene struct {
	Width      int       `yaml:"width"`
	Height     int       `yaml:"height"`
	BarSpacing float64   `yaml:"barSpacing"`
	Font       FontSpec  `yaml:"font"`
	Bars       BarsSpec  `yaml:"bars"`
	Drawings   []Drawing `yaml:"drawings"`
}

// FontSpec is the chart layout font.
type FontSpec struct {
	Size   float64 `yaml:"size"`
	Family string  `yaml:"family"`
}

// BarsSpec generates a random walk of OHLC bars.
type BarsSpec struct {
	Count    int           `yaml:"count"`
	Start    time.Time     `yaml:"start"`
	Interval time.Duration `yaml:"interval"`
	Price    float64       `yaml:"price"`
	Seed     uint64        `yaml:"seed"`
}

// PointSpec addresses a chart point by bar number and price.
type PointSpec struct {
	Bar   int     `yaml:"bar"`
	Price float64 `yaml:"price"`
}

// Drawing is one overlay. Kind selects which fields apply.
type Drawing struct {
	Kind       string      `yaml:"kind"` // trend, hline, vline, box, label, sma
	Layer      string      `yaml:"layer"`
	From       PointSpec   `yaml:"from"`
	To         PointSpec   `yaml:"to"`
	Price      float64     `yaml:"price"`
	Bar        int         `yaml:"bar"`
	Period     int         `yaml:"period"`
	Text       string      `yaml:"text"`
	Color      string      `yaml:"color"`
	Background string      `yaml:"background"`
	Width      float64     `yaml:"width"`
	Dash       []float64   `yaml:"dash"`
	Marker     bool        `yaml:"marker"`
	NoLabel    bool        `yaml:"noLabel"`
	Points     []PointSpec `yaml:"points"`
}

var errUnknownKind = errors.New("unknown drawing kind")

func loadScene(path string) (*Scene, error) {
	data := defaultScene
	if path != "" {
		var err error
		if data, err = os.ReadFile(path); err != nil {
			return nil, err
		}
	}
	sc := &Scene{
		Width:      800,
		Height:     500,
		BarSpacing: 6,
		Font:       FontSpec{Size: ggchart.DefaultFontSize, Family: ggchart.DefaultFontFamily},
	}
	if err := yaml.Unmarshal(data, sc); err != nil {
		return nil, fmt.Errorf("parse scene: %w", err)
	}
	if sc.Bars.Count <= 0 {
		sc.Bars.Count = 120
	}
	if sc.Bars.Interval <= 0 {
		sc.Bars.Interval = time.Hour
	}
	if sc.Bars.Price <= 0 {
		sc.Bars.Price = 100
	}
	return sc, nil
}

func (b BarsSpec) generate() []chartmodel.Bar {
	rng := rand.New(rand.NewPCG(b.Seed, b.Seed^0x9e3779b97f4a7c15))
	bars := make([]chartmodel.Bar, b.Count)
	price := b.Price
	for i := range bars {
		open := price
		step := (rng.Float64() - 0.5) * 0.04 * price
		closePrice := math.Max(open+step, 0.01)
		high := math.Max(open, closePrice) * (1 + rng.Float64()*0.01)
		low := math.Min(open, closePrice) * (1 - rng.Float64()*0.01)
		bars[i] = chartmodel.Bar{
			Time:  ggchart.TimeOf(b.Start.Add(time.Duration(i) * b.Interval)),
			Open:  open,
			High:  high,
			Low:   low,
			Close: closePrice,
		}
		price = closePrice
	}
	return bars
}

// overlays builds one pane per drawing and groups them by layer, in the
// order the layers first appear.
func (sc *Scene) overlays(bars []chartmodel.Bar) (*ggchart.Pane, error) {
	root := ggchart.NewGroup()
	layers := make(map[string]*ggchart.Pane)

	at := func(p PointSpec) ggchart.Point {
		return ggchart.Point{Time: barTime(bars, p.Bar), Price: p.Price}
	}

	for i, d := range sc.Drawings {
		style := drawing.Style{Color: colorOr(d.Color, drawing.DefaultStyle.Color), Width: d.Width, Dash: d.Dash}

		var pane *ggchart.Pane
		switch d.Kind {
		case "trend":
			pane = drawing.NewTrendLine(at(d.From), at(d.To), style).Pane()
		case "hline":
			l := drawing.NewHorizontalLine(d.Price, style)
			l.SetLabel(!d.NoLabel)
			pane = l.Pane()
		case "vline":
			pane = drawing.NewVerticalLine(barTime(bars, d.Bar), style).Pane()
		case "box":
			fill := colorOr(d.Background, gg.RGBA2(0.16, 0.38, 1, 0.15))
			pane = drawing.NewBox(at(d.From), at(d.To), fill, style).Pane()
		case "label":
			l := drawing.NewLabel(at(d.From), d.Text, colorOr(d.Color, gg.White), colorOr(d.Background, gg.Transparent))
			l.SetMarker(d.Marker)
			pane = l.Pane()
		case "sma":
			pane = drawing.NewPolyline(movingAverage(bars, d.Period), style).Pane()
		case "polyline":
			pts := make([]ggchart.Point, len(d.Points))
			for j, p := range d.Points {
				pts[j] = at(p)
			}
			pane = drawing.NewPolyline(pts, style).Pane()
		default:
			return nil, fmt.Errorf("drawing %d: %w %q", i, errUnknownKind, d.Kind)
		}

		layer, ok := layers[d.Layer]
		if !ok {
			layer = ggchart.NewGroup()
			layers[d.Layer] = layer
			root.AddChild(layer)
		}
		layer.AddChild(pane)
	}
	return root, nil
}

func barTime(bars []chartmodel.Bar, i int) ggchart.Time {
	if len(bars) == 0 {
		return 0
	}
	if i < 0 {
		i += len(bars)
	}
	i = max(0, min(i, len(bars)-1))
	return bars[i].Time
}

func colorOr(hex string, def gg.RGBA) gg.RGBA {
	if hex == "" {
		return def
	}
	return gg.Hex(hex)
}

// movingAverage returns the simple moving average of closes over period bars.
func movingAverage(bars []chartmodel.Bar, period int) []ggchart.Point {
	if period <= 0 {
		period = 20
	}
	var pts []ggchart.Point
	sum := 0.0
	for i, b := range bars {
		sum += b.Close
		if i >= period {
			sum -= bars[i-period].Close
		}
		if i >= period-1 {
			pts = append(pts, ggchart.Point{Time: b.Time, Price: sum / float64(period)})
		}
	}
	return pts
}
