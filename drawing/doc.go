// Package drawing provides ready-made overlay kinds for ggchart: trend
// lines, horizontal and vertical lines, boxes and text labels.
//
// Every kind owns a *ggchart.Pane that is attached to a tree with AddChild.
// Setters call Pane.Refresh so the change shows on the next frame. Geometry
// whose time or price is not drawable is skipped silently.
//
//	line := drawing.NewTrendLine(
//	    ggchart.Point{Time: t0, Price: 101.5},
//	    ggchart.Point{Time: t1, Price: 108},
//	    drawing.Style{Color: gg.Hex("#2962FF"), Width: 2},
//	)
//	root.AddChild(line.Pane())
package drawing
