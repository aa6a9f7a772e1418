//go:build js && wasm

package main

import (
	"encoding/json"
	"math"
	"syscall/js"

	"github.com/rigview/rigview/backend-go/internal/engine"
	"github.com/rigview/rigview/backend-go/internal/render"
	"github.com/rigview/rigview/backend-go/internal/rig"
)

var eng *engine.Engine

func main() {
	eng = engine.New(rig.Default())

	rigEngine := js.Global().Get("Object").New()

	// --- Commands (frontend → backend) ---
	rigEngine.Set("setViewport", js.FuncOf(setViewport))
	rigEngine.Set("onSurfaceClick", js.FuncOf(onSurfaceClick))

	// --- Queries (frontend ← backend) ---
	rigEngine.Set("render", js.FuncOf(renderJSON))
	rigEngine.Set("renderTo", js.FuncOf(renderTo))
	rigEngine.Set("solveIk", js.FuncOf(solveIK))
	rigEngine.Set("hitTestBase", js.FuncOf(hitTestBase))
	rigEngine.Set("getRig", js.FuncOf(getRig))
	rigEngine.Set("getBasePose", js.FuncOf(getBasePose))

	js.Global().Set("rigEngine", rigEngine)

	// Signal that WASM is ready
	js.Global().Set("rigWasmReady", js.ValueOf(true))

	// Keep Go runtime alive
	select {}
}

// --- Command Handlers ---

func setViewport(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return nil
	}
	width := args[0].Float()
	height := 0.0
	if len(args) > 1 {
		height = args[1].Float()
	}
	eng.SetViewport(width, height)
	return nil
}

func onSurfaceClick(this js.Value, args []js.Value) interface{} {
	if len(args) < 2 {
		return nil
	}
	eng.OnSurfaceClick(args[0].Float(), args[1].Float())
	return nil
}

// --- Query Handlers ---

func renderJSON(this js.Value, args []js.Value) interface{} {
	return js.ValueOf(eng.Render())
}

// renderTo executes the scene directly against a CanvasRenderingContext2D.
func renderTo(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return nil
	}
	cfg := eng.Config()
	surface := &canvasSurface{
		ctx:    args[0],
		width:  cfg.Viewport.Width,
		height: cfg.Viewport.Height,
	}
	render.Draw(eng.Scene(), surface)
	return nil
}

func solveIK(this js.Value, args []js.Value) interface{} {
	if len(args) < 2 {
		return js.ValueOf(map[string]interface{}{"error": "missing target"})
	}

	angles, err := eng.SolveIK(args[0].Float(), args[1].Float())
	if err != nil {
		return js.ValueOf(map[string]interface{}{"error": err.Error()})
	}
	return js.ValueOf(map[string]interface{}{
		"theta1": angles.Theta1,
		"theta2": angles.Theta2,
		"theta3": angles.Theta3,
	})
}

func hitTestBase(this js.Value, args []js.Value) interface{} {
	if len(args) < 2 {
		return js.ValueOf(false)
	}
	return js.ValueOf(eng.HitTestBase(args[0].Float(), args[1].Float()))
}

func getRig(this js.Value, args []js.Value) interface{} {
	data, err := json.Marshal(eng.Config())
	if err != nil {
		return js.ValueOf("{}")
	}
	return js.ValueOf(string(data))
}

func getBasePose(this js.Value, args []js.Value) interface{} {
	pose, placed := eng.BasePose()
	return js.ValueOf(map[string]interface{}{
		"x":      pose.X,
		"y":      pose.Y,
		"placed": placed,
	})
}

// canvasSurface drives a Canvas2D context with the engine's draw commands.
type canvasSurface struct {
	ctx    js.Value
	width  float64
	height float64
}

func (s *canvasSurface) Clear(fill string) {
	s.ctx.Set("fillStyle", fill)
	s.ctx.Call("fillRect", 0, 0, s.width, s.height)
}

func (s *canvasSurface) FillRect(x, y, w, h float64, fill string) {
	s.ctx.Set("fillStyle", fill)
	s.ctx.Call("fillRect", x, y, w, h)
}

func (s *canvasSurface) StrokeRect(x, y, w, h float64, stroke string, width float64) {
	s.ctx.Set("strokeStyle", stroke)
	s.ctx.Set("lineWidth", width)
	s.ctx.Call("strokeRect", x, y, w, h)
}

func (s *canvasSurface) FillCircle(cx, cy, r float64, fill string) {
	s.ctx.Set("fillStyle", fill)
	s.ctx.Call("beginPath")
	s.ctx.Call("arc", cx, cy, r, 0, 2*math.Pi)
	s.ctx.Call("fill")
}

func (s *canvasSurface) Segment(x1, y1, x2, y2 float64, stroke string, width float64) {
	s.ctx.Set("strokeStyle", stroke)
	s.ctx.Set("lineWidth", width)
	s.ctx.Call("beginPath")
	s.ctx.Call("moveTo", x1, y1)
	s.ctx.Call("lineTo", x2, y2)
	s.ctx.Call("stroke")
}
