package ggchart

// PaneView is the object a chart's pane-view layer queries every frame.
// It decides whether the bound drawing tree is painted and feeds it to a
// Renderer.
//
// One tree is bound at a time. Binding another replaces the callback; the
// previous tree keeps its references but is no longer painted.
type PaneView struct {
	series   Series
	model    Model
	renderer *Renderer
	root     *Pane
}

// NewPaneView returns a view for series s on model m.
func NewPaneView(s Series, m Model, opts ...RendererOption) *PaneView {
	return &PaneView{
		series:   s,
		model:    m,
		renderer: NewRenderer(opts...),
	}
}

// Renderer returns the renderer for this frame, or nil when the series is
// hidden. height, width and addAnchors are accepted for the host contract;
// the drawing tree reads its geometry from the canvas.
func (v *PaneView) Renderer(height, width float64, addAnchors bool) *Renderer {
	if !v.series.Visible() {
		return nil
	}
	layout := v.model.Options().Layout
	v.renderer.SetParams(layout.FontSize, layout.FontFamily)
	return v.renderer
}

// SetDrawingPane binds p to this view's series and model right away and
// makes it the tree painted by the renderer.
func (v *PaneView) SetDrawingPane(p *Pane) {
	p.Init(v.series, v.model)
	if v.root != nil && v.root != p {
		Logger().Debug("ggchart: replacing bound drawing pane")
	}
	v.root = p
	v.renderer.SetDrawFunc(p.Render)
}

// DrawingPane returns the bound tree, or nil.
func (v *PaneView) DrawingPane() *Pane {
	return v.root
}
