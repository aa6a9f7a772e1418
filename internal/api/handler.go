// Package api exposes the engine over plain HTTP: scene and rig reads, IK
// solves, and the authenticated base-move command.
package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/rigview/rigview/backend-go/internal/engine"
	"github.com/rigview/rigview/backend-go/internal/kinematics"
	"github.com/rigview/rigview/backend-go/internal/session"
)

type Handler struct {
	engine *engine.Engine
	hub    *session.Hub
}

func NewHandler(eng *engine.Engine, hub *session.Hub) *Handler {
	return &Handler{engine: eng, hub: hub}
}

// GetScene handles GET /api/scene.
func (h *Handler) GetScene(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.engine.Scene())
}

// GetRig handles GET /api/rig.
func (h *Handler) GetRig(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.engine.Config())
}

type solveRequest struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type solveError struct {
	Error  string                 `json:"error"`
	Target map[string]float64     `json:"target"`
	Links  kinematics.LinkLengths `json:"links"`
}

// SolveIK handles POST /api/ik/solve. The target is in the arm-local frame,
// origin at the shoulder anchor. Unreachable targets get a 422 carrying the
// offending target and link lengths.
func (h *Handler) SolveIK(w http.ResponseWriter, r *http.Request) {
	var req solveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	angles, err := h.engine.SolveIK(req.X, req.Y)
	if err != nil {
		var re *kinematics.ReachabilityError
		if errors.As(err, &re) {
			writeJSON(w, http.StatusUnprocessableEntity, solveError{
				Error:  "target not reachable",
				Target: map[string]float64{"x": re.Target.X, "y": re.Target.Y},
				Links:  re.Links,
			})
			return
		}
		slog.Error("ik solve failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
		return
	}

	writeJSON(w, http.StatusOK, angles)
}

type moveRequest struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// MoveBase handles POST /api/base/position (control token required). The
// click is applied exactly like a surface click, candidate position clamped
// to the viewport, and the updated scene fans out to WebSocket viewers
// before the response returns.
func (h *Handler) MoveBase(w http.ResponseWriter, r *http.Request) {
	var req moveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	h.engine.OnSurfaceClick(req.X, req.Y)
	h.hub.BroadcastScene()

	pose, placed := h.engine.BasePose()
	if !placed {
		// Surface not mounted yet; the click was a documented no-op.
		writeJSON(w, http.StatusAccepted, map[string]string{"status": "surface unavailable"})
		return
	}
	writeJSON(w, http.StatusOK, pose)
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
