// Command ggchartdemo renders a candlestick chart with ggchart overlays
// to a PNG file.
package main

import (
	_ "embed"
	"flag"
	"log"
	"log/slog"
	"math"
	"os"

	"github.com/gogpu/gg"

	"github.com/gogpu/ggchart"
	"github.com/gogpu/ggchart/chartmodel"
)

//go:embed scene.yaml
var defaultScene []byte

func main() {
	var (
		scenePath = flag.String("scene", "", "scene file (YAML); built-in scene if empty")
		output    = flag.String("output", "chart.png", "output file")
		verbose   = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	if *verbose {
		ggchart.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	sc, err := loadScene(*scenePath)
	if err != nil {
		log.Fatalf("Failed to load scene: %v", err)
	}
	dc, err := render(sc)
	if err != nil {
		log.Fatalf("Failed to render: %v", err)
	}
	if err := dc.SavePNG(*output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	log.Printf("Chart saved to %s (%dx%d)\n", *output, sc.Width, sc.Height)
}

// render paints the series first and the overlay tree on top, the way a
// chart's paint loop visits its panes.
func render(sc *Scene) (*gg.Context, error) {
	w, h := float64(sc.Width), float64(sc.Height)

	ts := chartmodel.NewTimeScale(w, sc.BarSpacing)
	ts.SetRightOffset(5)
	series := chartmodel.NewSeries(chartmodel.NewPriceScale(h))
	bars := sc.Bars.generate()
	series.SetBars(bars)
	series.Autoscale(ts)

	model := chartmodel.NewModel(ts, chartmodel.WithLayout(sc.Font.Size, sc.Font.Family))

	root, err := sc.overlays(bars)
	if err != nil {
		return nil, err
	}
	view := ggchart.NewPaneView(series, model)
	view.SetDrawingPane(root)

	dc := gg.NewContext(sc.Width, sc.Height)
	dc.ClearWithColor(gg.Hex("#131722"))
	paintCandles(dc, ts, series)

	if r := view.Renderer(h, w, false); r != nil {
		r.Draw(dc)
	}
	return dc, nil
}

var (
	upColor   = gg.Hex("#26A69A")
	downColor = gg.Hex("#EF5350")
)

func paintCandles(dc *gg.Context, ts *chartmodel.TimeScale, series *chartmodel.Series) {
	ps := series.Scale()
	first, ok := ps.FirstValue()
	if !ok {
		return
	}
	from, to, ok := ts.VisibleRange()
	if !ok {
		return
	}
	body := max(1, ts.BarSpacing()*0.7)
	bars := series.Bars()
	for i := from; i <= to; i++ {
		b := bars[i]
		x := float64(ts.IndexToCoordinate(i))
		yo := float64(ps.PriceToCoordinate(b.Open, first))
		yc := float64(ps.PriceToCoordinate(b.Close, first))
		yh := float64(ps.PriceToCoordinate(b.High, first))
		yl := float64(ps.PriceToCoordinate(b.Low, first))

		c := upColor
		if b.Close < b.Open {
			c = downColor
		}
		dc.SetColor(c.Color())
		dc.SetLineWidth(1)
		dc.DrawLine(x, yh, x, yl)
		_ = dc.Stroke()
		dc.DrawRectangle(x-body/2, min(yo, yc), body, max(1, math.Abs(yc-yo)))
		_ = dc.Fill()
	}
}
