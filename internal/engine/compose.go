package engine

import (
	"github.com/rigview/rigview/backend-go/internal/geom"
	"github.com/rigview/rigview/backend-go/internal/kinematics"
	"github.com/rigview/rigview/backend-go/internal/rig"
)

// ShoulderAnchor returns the arm's mount point for a base at pose: on top of
// the base body, near its right edge.
func ShoulderAnchor(pose rig.BasePose, dims rig.BaseDimensions) geom.Vec2 {
	return geom.Vec2{
		X: pose.X + dims.Width/rig.ShoulderAnchorOffset,
		Y: pose.Y,
	}
}

// ComposeScene builds the complete draw-command list for the rig: background
// clear, two wheels, the base body, three arm links, and two gripper
// fingers, in painter's order. Each stage's end point feeds the next, a
// strict kinematic chain with no back-references.
//
// ComposeScene is total: any finite angles and positive lengths produce a
// drawable scene. It never fails; supplying physically sensible angles is
// the caller's concern.
func ComposeScene(cfg *rig.Config, pose rig.BasePose) Scene {
	scene := make(Scene, 0, 9)

	scene = append(scene, DrawCommand{
		Op:   OpClear,
		W:    cfg.Viewport.Width,
		H:    cfg.Viewport.Height,
		Fill: cfg.Styles.Background.Fill,
	})

	// Wheels: centered under the base's left and right edges, vertically
	// pinned to the ground line regardless of the base pose.
	wheelY := cfg.Viewport.Height - cfg.Viewport.GroundOffset - cfg.Base.WheelRadius
	for _, wheelX := range [2]float64{pose.X, pose.X + cfg.Base.Width} {
		scene = append(scene, DrawCommand{
			Op:      OpCircle,
			Element: "wheel",
			X:       wheelX,
			Y:       wheelY,
			R:       cfg.Base.WheelRadius,
			Fill:    cfg.Styles.Wheel.Fill,
		})
	}

	scene = append(scene, DrawCommand{
		Op:          OpRect,
		Element:     "base",
		X:           pose.X,
		Y:           pose.Y,
		W:           cfg.Base.Width,
		H:           cfg.Base.Height,
		Fill:        cfg.Styles.Base.Fill,
		Stroke:      cfg.Styles.Base.Stroke,
		StrokeWidth: cfg.Styles.Base.StrokeWidth,
	})

	joints := kinematics.Chain(ShoulderAnchor(pose, cfg.Base), cfg.Links, cfg.Angles)
	linkNames := [3]string{"link1", "link2", "link3"}
	for i := 0; i < 3; i++ {
		scene = append(scene, DrawCommand{
			Op:          OpSegment,
			Element:     linkNames[i],
			X:           joints[i].X,
			Y:           joints[i].Y,
			X2:          joints[i+1].X,
			Y2:          joints[i+1].Y,
			Stroke:      cfg.Styles.Links[i].Stroke,
			StrokeWidth: cfg.Styles.Links[i].StrokeWidth,
		})
	}

	tip := joints[3]
	fingers := kinematics.GripperFingers(tip, cfg.Angles.Theta3, cfg.GripperWidth/2)
	fingerNames := [2]string{"finger1", "finger2"}
	for i, f := range fingers {
		scene = append(scene, DrawCommand{
			Op:          OpSegment,
			Element:     fingerNames[i],
			X:           tip.X,
			Y:           tip.Y,
			X2:          f.X,
			Y2:          f.Y,
			Stroke:      cfg.Styles.Gripper.Stroke,
			StrokeWidth: cfg.Styles.Gripper.StrokeWidth,
		})
	}

	return scene
}
