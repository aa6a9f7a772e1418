// Package engine owns the live visualization state and turns it into draw
// commands. It is the recompute-and-render pivot between the base position
// controller and whatever surface executes the scene.
package engine

import (
	"sync"

	"github.com/rigview/rigview/backend-go/internal/geom"
	"github.com/rigview/rigview/backend-go/internal/kinematics"
	"github.com/rigview/rigview/backend-go/internal/rig"
)

// Engine composes scenes from the rig configuration and the base pose.
// Exactly two triggers cause recomposition: a viewport mount/resize and a
// surface click. Both recompose the whole scene synchronously.
//
// In the wasm build the engine runs single-threaded; the mutex exists for
// the server shell, where HTTP handlers and the session hub share one
// instance.
type Engine struct {
	mu    sync.Mutex
	cfg   *rig.Config
	ctrl  *rig.BaseController
	scene Scene
	dirty bool
}

// New creates an engine around the given configuration. The base stays
// unplaced until the first SetViewport reports surface dimensions.
func New(cfg *rig.Config) *Engine {
	return &Engine{
		cfg:   cfg,
		ctrl:  rig.NewBaseController(),
		dirty: true,
	}
}

// SetViewport records the drawing surface's dimensions and, on first call,
// centers the base. A non-positive height keeps the configured constant.
func (e *Engine) SetViewport(width, height float64) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.cfg.Viewport.Width = width
	if height > 0 {
		e.cfg.Viewport.Height = height
	}
	e.ctrl.Initialize(e.cfg.Viewport, e.cfg.Base)
	e.dirty = true
}

// OnSurfaceClick repositions the base under a click at local surface
// coordinates and recomposes. Before the surface has mounted this is a
// no-op, not an error.
func (e *Engine) OnSurfaceClick(x, y float64) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.ctrl.OnSurfaceClick(x, y, e.cfg.Viewport, e.cfg.Base)
	e.dirty = true
}

// Scene returns the current draw-command list, recomposing if state changed
// since the last call. An unmounted surface yields an empty scene.
func (e *Engine) Scene() Scene {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.sceneLocked()
}

func (e *Engine) sceneLocked() Scene {
	pose, placed := e.ctrl.Pose()
	if !placed {
		return Scene{}
	}
	if e.dirty {
		e.scene = ComposeScene(e.cfg, pose)
		e.dirty = false
	}
	return e.scene
}

// Render returns the current scene as JSON draw commands.
func (e *Engine) Render() string {
	out, _ := e.Scene().ToJSON()
	return out
}

// SolveIK computes joint angles for a target in the arm-local frame (origin
// at the shoulder anchor, y up). It is a standalone capability, not wired
// into the redraw loop: solving does not change the displayed angles.
func (e *Engine) SolveIK(x, y float64) (kinematics.JointAngles, error) {
	e.mu.Lock()
	links := e.cfg.Links
	e.mu.Unlock()

	return kinematics.Solve(geom.Vec2{X: x, Y: y}, links)
}

// HitTestBase reports whether the point lies inside the base body.
func (e *Engine) HitTestBase(x, y float64) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	pose, placed := e.ctrl.Pose()
	if !placed {
		return false
	}
	return x >= pose.X && x <= pose.X+e.cfg.Base.Width &&
		y >= pose.Y && y <= pose.Y+e.cfg.Base.Height
}

// BasePose returns the current pose and whether the base has been placed.
func (e *Engine) BasePose() (rig.BasePose, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.ctrl.Pose()
}

// Config returns a copy of the rig configuration.
func (e *Engine) Config() rig.Config {
	e.mu.Lock()
	defer e.mu.Unlock()
	return *e.cfg
}
