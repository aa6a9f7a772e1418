package rig

import "github.com/rigview/rigview/backend-go/internal/geom"

// BasePose is the top-left corner of the base rectangle in canvas pixels.
// X is the only freely mutable coordinate; Y is derived from the viewport at
// initialization (the base always rests on the ground line) and held fixed.
type BasePose struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// BaseController owns the base pose. The pose starts explicitly unplaced:
// a placed flag, not a (0,0) sentinel, so a base legitimately parked at the
// left edge is never mistaken for uninitialized.
type BaseController struct {
	pose   BasePose
	placed bool
}

// NewBaseController returns a controller with an unplaced pose.
func NewBaseController() *BaseController {
	return &BaseController{}
}

// Initialize places the base at its centered resting position on the ground
// line. Idempotent after the first call: once placed, later calls do
// nothing, regardless of the viewport passed.
func (c *BaseController) Initialize(viewport Viewport, dims BaseDimensions) {
	if c.placed {
		return
	}
	c.pose = BasePose{
		X: (viewport.Width - dims.Width) / 2,
		Y: viewport.Height - viewport.GroundOffset - dims.Height - dims.WheelRadius,
	}
	c.placed = true
}

// OnSurfaceClick recenters the base horizontally under the click, clamped so
// the base never extends past either edge of the surface. Y is untouched.
// A click before the surface is available is a normal transient and is
// silently ignored.
func (c *BaseController) OnSurfaceClick(localX, localY float64, viewport Viewport, dims BaseDimensions) {
	if !c.placed {
		return
	}
	c.pose.X = geom.Clamp(localX-dims.Width/2, 0, viewport.Width-dims.Width)
}

// Pose returns the current base pose and whether it has been placed.
func (c *BaseController) Pose() (BasePose, bool) {
	return c.pose, c.placed
}
