package ggchart

import "fmt"

// Drawer supplies the geometry of one pane. It receives the coordinate
// transform of the pane it is attached to.
type Drawer interface {
	Draw(t *Target, tr Transform)
}

// DrawerFunc adapts a plain function to the Drawer interface.
type DrawerFunc func(t *Target, tr Transform)

// Draw calls f(t, tr).
func (f DrawerFunc) Draw(t *Target, tr Transform) {
	f(t, tr)
}

// Pane is a node of the drawing tree.
//
// Children are painted in insertion order and always before the pane's own
// Drawer, so a pane paints over its whole subtree. A Pane without a Drawer
// is a pure group.
//
// A Pane is detached until Init binds it to a series and a model, directly
// or through AddChild on a live parent. The series and model are borrowed;
// the pane never owns them.
//
// Pane is not safe for concurrent use. Structural changes and Render must
// be serialized by the caller.
type Pane struct {
	drawer   Drawer
	children []*Pane

	series Series
	model  Model
}

// NewPane returns a detached pane drawn by d. d may be nil.
func NewPane(d Drawer) *Pane {
	return &Pane{drawer: d}
}

// NewGroup returns a detached pane that only hosts children.
func NewGroup(children ...*Pane) *Pane {
	p := &Pane{}
	p.children = append(p.children, children...)
	return p
}

// Init binds the pane and every current child to s and m.
//
// Init may be called again: the new references overwrite the old ones on
// the whole subtree, which is how a live subtree moves to another chart.
func (p *Pane) Init(s Series, m Model) {
	p.series = s
	p.model = m
	for _, c := range p.children {
		c.Init(s, m)
	}
}

// AddChild binds c to this pane's series and model and appends it to the
// end of the paint order. When p is live, c is live when AddChild returns.
//
// Adding the same pane twice creates two entries and paints it twice.
func (p *Pane) AddChild(c *Pane) {
	c.Init(p.series, p.model)
	p.children = append(p.children, c)
}

// RemoveChild removes the first entry identical to c. It reports whether a
// child was removed. The removed pane keeps its references.
func (p *Pane) RemoveChild(c *Pane) bool {
	for i, child := range p.children {
		if child == c {
			p.children = append(p.children[:i], p.children[i+1:]...)
			return true
		}
	}
	return false
}

// Children returns a copy of the child list in paint order.
func (p *Pane) Children() []*Pane {
	out := make([]*Pane, len(p.children))
	copy(out, p.children)
	return out
}

// Drawer returns the pane's own drawer, or nil for a group.
func (p *Pane) Drawer() Drawer {
	return p.drawer
}

// Series returns the bound series, or nil while detached.
func (p *Pane) Series() Series {
	return p.series
}

// Model returns the bound model, or nil while detached.
func (p *Pane) Model() Model {
	return p.model
}

// Live reports whether Init has bound the pane to a series and a model.
func (p *Pane) Live() bool {
	return p.series != nil && p.model != nil
}

// Render paints every child subtree in insertion order, then the pane's
// own drawer. It panics if the pane was never initialized.
func (p *Pane) Render(t *Target) {
	p.mustBeLive("Render")
	for _, c := range p.children {
		c.Render(t)
	}
	if p.drawer != nil {
		p.drawer.Draw(t, p)
	}
}

// PaintOrder returns the panes of the subtree in the order Render paints
// them: each child subtree in insertion order, the pane itself last.
func (p *Pane) PaintOrder() []*Pane {
	return p.appendPaintOrder(nil)
}

func (p *Pane) appendPaintOrder(dst []*Pane) []*Pane {
	for _, c := range p.children {
		dst = c.appendPaintOrder(dst)
	}
	return append(dst, p)
}

// Refresh asks the owning model for a full redraw. There is no dirty
// region tracking; every visual mutation of a drawing should call Refresh.
// On a detached pane Refresh does nothing.
func (p *Pane) Refresh() {
	if p.model == nil {
		Logger().Debug("ggchart: refresh on detached pane ignored")
		return
	}
	p.model.FullUpdate()
}

func (p *Pane) mustBeLive(op string) {
	if !p.Live() {
		panic(fmt.Errorf("%w: %s called before Init", ErrNotInitialized, op))
	}
}
