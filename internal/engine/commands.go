package engine

import "encoding/json"

// Op identifies a drawing operation.
type Op string

const (
	// OpClear fills the whole surface with the background color.
	OpClear Op = "clear"
	// OpRect draws a filled and/or stroked axis-aligned rectangle.
	OpRect Op = "rect"
	// OpCircle draws a filled circle (a 0..2pi arc).
	OpCircle Op = "circle"
	// OpSegment strokes a line segment.
	OpSegment Op = "segment"
)

// DrawCommand is a single drawing operation for a 2D surface to execute.
// The geometry fields used depend on Op: X/Y/W/H for rects and clears,
// X/Y/R for circles (center and radius), X/Y/X2/Y2 for segment endpoints.
// Element names the rig part
// the command draws, for debugging and hit correlation; it has no render
// semantics.
type DrawCommand struct {
	Op      Op     `json:"op"`
	Element string `json:"element,omitempty"`

	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w,omitempty"`
	H float64 `json:"h,omitempty"`

	R float64 `json:"r,omitempty"`

	X2 float64 `json:"x2,omitempty"`
	Y2 float64 `json:"y2,omitempty"`

	Fill        string  `json:"fill,omitempty"`
	Stroke      string  `json:"stroke,omitempty"`
	StrokeWidth float64 `json:"strokeWidth,omitempty"`
}

// Scene is the full drawable state of the rig, in painter's order (back to
// front). It is regenerated whole on every compose; nothing mutates it
// incrementally.
type Scene []DrawCommand

// ToJSON serializes the scene to a JSON array.
func (s Scene) ToJSON() (string, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return "[]", err
	}
	return string(data), nil
}

// Count returns how many commands in the scene carry the given op.
func (s Scene) Count(op Op) int {
	n := 0
	for _, c := range s {
		if c.Op == op {
			n++
		}
	}
	return n
}
