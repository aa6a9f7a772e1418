// Package rig defines the configuration model of the visualized rig (a
// wheeled base carrying a three-link arm with a two-finger gripper) and the
// controller that owns the base's position on the canvas.
package rig

import (
	"fmt"

	"github.com/rigview/rigview/backend-go/internal/kinematics"
)

// BaseDimensions are the fixed dimensions of the base body, in pixels.
type BaseDimensions struct {
	Width       float64 `json:"width"`
	Height      float64 `json:"height"`
	WheelRadius float64 `json:"wheelRadius"`
}

// Viewport describes the drawing surface: pixel dimensions plus the ground
// line's offset from the bottom edge. Width is derived externally from the
// page layout; height is a fixed configuration constant.
type Viewport struct {
	Width        float64 `json:"width"`
	Height       float64 `json:"height"`
	GroundOffset float64 `json:"groundOffset"`
}

// Style is the display attribute set of one scene element. Colors serve
// visual disambiguation only and play no role in the geometry.
type Style struct {
	Fill        string  `json:"fill,omitempty"`
	Stroke      string  `json:"stroke,omitempty"`
	StrokeWidth float64 `json:"strokeWidth,omitempty"`
}

// Styles maps each element of the rig to its display attributes.
type Styles struct {
	Background Style    `json:"background"`
	Base       Style    `json:"base"`
	Wheel      Style    `json:"wheel"`
	Links      [3]Style `json:"links"`
	Gripper    Style    `json:"gripper"`
}

// Config is the full, immutable configuration of a visualization instance.
// Only the base pose (owned by BaseController) changes after construction.
type Config struct {
	Links        kinematics.LinkLengths  `json:"links"`
	Angles       kinematics.JointAngles  `json:"angles"`
	Base         BaseDimensions          `json:"base"`
	Viewport     Viewport                `json:"viewport"`
	GripperWidth float64                 `json:"gripperWidth"`
	Styles       Styles                  `json:"styles"`
}

// ShoulderAnchorOffset is the divisor applied to the base width to place the
// arm mount: the shoulder sits at base.x + width/ShoulderAnchorOffset, on
// top of the base near its right edge.
const ShoulderAnchorOffset = 1.25

// Validate checks the configuration for drawable values.
func (c *Config) Validate() error {
	if err := c.Links.Validate(); err != nil {
		return err
	}
	if c.Base.Width <= 0 || c.Base.Height <= 0 || c.Base.WheelRadius <= 0 {
		return fmt.Errorf("base dimensions must be positive, got %+v", c.Base)
	}
	if c.Viewport.Height <= 0 {
		return fmt.Errorf("viewport height must be positive, got %v", c.Viewport.Height)
	}
	if c.GripperWidth <= 0 {
		return fmt.Errorf("gripper width must be positive, got %v", c.GripperWidth)
	}
	return nil
}

// Default returns the stock rig configuration. Viewport width is zero until
// the surface mounts and reports its size.
func Default() *Config {
	return &Config{
		Links:  kinematics.LinkLengths{L1: 60, L2: 80, L3: 60},
		Angles: kinematics.JointAngles{Theta1: 1.0472, Theta2: 0.5236, Theta3: -0.3491},
		Base: BaseDimensions{
			Width:       100,
			Height:      40,
			WheelRadius: 12,
		},
		Viewport: Viewport{
			Width:        0,
			Height:       300,
			GroundOffset: 10,
		},
		GripperWidth: 20,
		Styles: Styles{
			Background: Style{Fill: "#f8f9fa"},
			Base:       Style{Fill: "#6c757d", Stroke: "#343a40", StrokeWidth: 2},
			Wheel:      Style{Fill: "#212529"},
			Links: [3]Style{
				{Stroke: "#e63946", StrokeWidth: 4},
				{Stroke: "#2a9d8f", StrokeWidth: 4},
				{Stroke: "#457b9d", StrokeWidth: 4},
			},
			Gripper: Style{Stroke: "#f4a261", StrokeWidth: 3},
		},
	}
}
