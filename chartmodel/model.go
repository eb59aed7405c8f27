// Package chartmodel is a small in-memory chart: a time scale, price
// scales, bar series and a model. It implements the collaborator
// interfaces of ggchart for demos and tests.
package chartmodel

import "github.com/gogpu/ggchart"

// Model holds the time scale and the chart options and counts redraw
// requests.
type Model struct {
	ts      *TimeScale
	opts    ggchart.Options
	updates int
	hook    func()
}

var _ ggchart.Model = (*Model)(nil)

// Option configures a Model during creation.
type Option func(*Model)

// WithLayout sets the chart font settings.
func WithLayout(fontSize float64, fontFamily string) Option {
	return func(m *Model) {
		m.opts.Layout = ggchart.LayoutOptions{FontSize: fontSize, FontFamily: fontFamily}
	}
}

// WithUpdateHook calls fn on every FullUpdate.
func WithUpdateHook(fn func()) Option {
	return func(m *Model) {
		m.hook = fn
	}
}

// NewModel returns a model over ts with the default layout.
func NewModel(ts *TimeScale, opts ...Option) *Model {
	m := &Model{
		ts: ts,
		opts: ggchart.Options{Layout: ggchart.LayoutOptions{
			FontSize:   ggchart.DefaultFontSize,
			FontFamily: ggchart.DefaultFontFamily,
		}},
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// TimeScale returns the model's time scale.
func (m *Model) TimeScale() ggchart.TimeScale { return m.ts }

// Scale returns the concrete time scale.
func (m *Model) Scale() *TimeScale { return m.ts }

// Options returns the chart options.
func (m *Model) Options() ggchart.Options { return m.opts }

// SetLayout replaces the font settings.
func (m *Model) SetLayout(l ggchart.LayoutOptions) { m.opts.Layout = l }

// FullUpdate records a redraw request.
func (m *Model) FullUpdate() {
	m.updates++
	if m.hook != nil {
		m.hook()
	}
}

// FullUpdates returns the number of FullUpdate calls so far.
func (m *Model) FullUpdates() int { return m.updates }
