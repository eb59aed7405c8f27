package drawing

import (
	"slices"

	"github.com/gogpu/gg"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/gogpu/ggchart"
)

// Style is the stroke style of a line.
type Style struct {
	Color gg.RGBA
	// Width in pixels. Zero means 1.
	Width float64
	// Dash lengths; empty draws a solid line.
	Dash []float64
}

// DefaultStyle is a 1px solid blue line.
var DefaultStyle = Style{Color: gg.Hex("#2962FF"), Width: 1}

func (s Style) apply(t *ggchart.Target) {
	t.SetRGBA(s.Color.R, s.Color.G, s.Color.B, s.Color.A)
	w := s.Width
	if w <= 0 {
		w = 1
	}
	t.SetLineWidth(w)
	if len(s.Dash) > 0 {
		t.SetDash(s.Dash...)
	} else {
		t.ClearDash()
	}
}

func (s Style) clone() Style {
	s.Dash = slices.Clone(s.Dash)
	return s
}

func setFill(t *ggchart.Target, c gg.RGBA) {
	t.SetRGBA(c.R, c.G, c.B, c.A)
}

// PriceFormatter formats prices for labels with locale-aware grouping.
type PriceFormatter struct {
	printer   *message.Printer
	precision int
}

// NewPriceFormatter returns a formatter for tag with a fixed number of
// fraction digits.
func NewPriceFormatter(tag language.Tag, precision int) *PriceFormatter {
	if precision < 0 {
		precision = 0
	}
	return &PriceFormatter{printer: message.NewPrinter(tag), precision: precision}
}

// DefaultPriceFormatter formats in English with two fraction digits.
var DefaultPriceFormatter = NewPriceFormatter(language.English, 2)

// Format returns price as label text, e.g. "1,234.50".
func (f *PriceFormatter) Format(price float64) string {
	return f.printer.Sprint(number.Decimal(price,
		number.MinFractionDigits(f.precision),
		number.MaxFractionDigits(f.precision),
	))
}
