// Package ggchart composes chart overlays into a drawing tree.
//
// # Overview
//
// Overlays such as annotations, trend lines or indicator layers are Panes.
// Panes form a tree, receive the chart's series and model when attached,
// and paint back to front through a single Renderer that the chart's paint
// scheduler treats as one opaque unit.
//
//	root := ggchart.NewGroup()
//	view := ggchart.NewPaneView(series, model)
//	view.SetDrawingPane(root)
//
//	root.AddChild(ggchart.NewPane(ggchart.DrawerFunc(func(t *ggchart.Target, tr ggchart.Transform) {
//	    x, ok := tr.TimeToCoordinate(ts)
//	    if !ok {
//	        return // not visible
//	    }
//	    t.MoveTo(float64(x), 0)
//	    t.LineTo(float64(x), float64(t.Height()))
//	    _ = t.Stroke()
//	})))
//
//	// every frame
//	if r := view.Renderer(h, w, false); r != nil {
//	    r.Draw(dc) // dc is a *gg.Context
//	}
//
// # Paint order
//
// A pane renders all of its children in insertion order and then itself.
// Children are always underneath their parent. PaintOrder returns the exact
// sequence.
//
// # Coordinates
//
// Transform maps times and prices to pixels through the chart's time and
// price scales. A false result means the geometry is not drawable right now
// and must be skipped. Using a transform or rendering before a pane is
// initialized panics.
//
// # Concurrency
//
// Everything except SetLogger and Logger is single-threaded. Callers must
// not mutate a tree while it renders.
package ggchart
