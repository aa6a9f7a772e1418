// Package render replays composed scenes onto a 2D drawing surface. The
// engine stays surface-agnostic: the browser canvas (cmd/wasm) and the SVG
// writer here both implement Surface.
package render

import "github.com/rigview/rigview/backend-go/internal/engine"

// Surface is an immediate-mode 2D drawing target. Coordinates are canvas
// pixels, y growing downward. Color strings are CSS colors; an empty fill or
// stroke means "skip that pass".
type Surface interface {
	// Clear fills the whole surface with the given color.
	Clear(fill string)
	// FillRect fills an axis-aligned rectangle.
	FillRect(x, y, w, h float64, fill string)
	// StrokeRect strokes the outline of an axis-aligned rectangle.
	StrokeRect(x, y, w, h float64, stroke string, width float64)
	// FillCircle fills a full circle (a 0..2pi arc) centered at (cx, cy).
	FillCircle(cx, cy, r float64, fill string)
	// Segment strokes a line from (x1, y1) to (x2, y2).
	Segment(x1, y1, x2, y2 float64, stroke string, width float64)
}

// Draw executes every command of the scene against the surface, in order.
func Draw(scene engine.Scene, s Surface) {
	for _, c := range scene {
		switch c.Op {
		case engine.OpClear:
			s.Clear(c.Fill)
		case engine.OpRect:
			if c.Fill != "" {
				s.FillRect(c.X, c.Y, c.W, c.H, c.Fill)
			}
			if c.Stroke != "" {
				s.StrokeRect(c.X, c.Y, c.W, c.H, c.Stroke, c.StrokeWidth)
			}
		case engine.OpCircle:
			s.FillCircle(c.X, c.Y, c.R, c.Fill)
		case engine.OpSegment:
			s.Segment(c.X, c.Y, c.X2, c.Y2, c.Stroke, c.StrokeWidth)
		}
	}
}
