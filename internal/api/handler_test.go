package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rigview/rigview/backend-go/internal/engine"
	"github.com/rigview/rigview/backend-go/internal/kinematics"
	"github.com/rigview/rigview/backend-go/internal/rig"
	"github.com/rigview/rigview/backend-go/internal/session"
)

func newTestHandler(t *testing.T, mounted bool) *Handler {
	t.Helper()
	eng := engine.New(rig.Default())
	if mounted {
		eng.SetViewport(800, 300)
	}
	return NewHandler(eng, session.NewHub(eng))
}

func TestGetScene(t *testing.T) {
	h := newTestHandler(t, true)

	rr := httptest.NewRecorder()
	h.GetScene(rr, httptest.NewRequest(http.MethodGet, "/api/scene", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	var scene []map[string]any
	if err := json.Unmarshal(rr.Body.Bytes(), &scene); err != nil {
		t.Fatalf("body: %v", err)
	}
	if len(scene) != 9 {
		t.Errorf("scene has %d commands, want 9", len(scene))
	}
}

func TestGetRig(t *testing.T) {
	h := newTestHandler(t, true)

	rr := httptest.NewRecorder()
	h.GetRig(rr, httptest.NewRequest(http.MethodGet, "/api/rig", nil))

	var cfg rig.Config
	if err := json.Unmarshal(rr.Body.Bytes(), &cfg); err != nil {
		t.Fatalf("body: %v", err)
	}
	if cfg.Links != (kinematics.LinkLengths{L1: 60, L2: 80, L3: 60}) {
		t.Errorf("links = %+v", cfg.Links)
	}
}

func TestSolveIK(t *testing.T) {
	h := newTestHandler(t, true)

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/ik/solve", strings.NewReader(`{"x":100,"y":50}`))
	h.SolveIK(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rr.Code, rr.Body.String())
	}
	var angles kinematics.JointAngles
	if err := json.Unmarshal(rr.Body.Bytes(), &angles); err != nil {
		t.Fatal(err)
	}
	got := kinematics.Forward(kinematics.LinkLengths{L1: 60, L2: 80, L3: 60}, angles)
	if dx, dy := got.X-100, got.Y-50; dx*dx+dy*dy > 1e-12 {
		t.Errorf("angles %+v reach (%v, %v), want (100, 50)", angles, got.X, got.Y)
	}
}

func TestSolveIKUnreachable(t *testing.T) {
	h := newTestHandler(t, true)

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/ik/solve", strings.NewReader(`{"x":5000,"y":0}`))
	h.SolveIK(rr, req)

	if rr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rr.Code)
	}
	var resp solveError
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Target["x"] != 5000 || resp.Links.L2 != 80 {
		t.Errorf("diagnostics = %+v", resp)
	}
}

func TestSolveIKBadBody(t *testing.T) {
	h := newTestHandler(t, true)

	rr := httptest.NewRecorder()
	h.SolveIK(rr, httptest.NewRequest(http.MethodPost, "/api/ik/solve", strings.NewReader("{")))

	if rr.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rr.Code)
	}
}

func TestMoveBase(t *testing.T) {
	h := newTestHandler(t, true)

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/base/position", strings.NewReader(`{"x":10,"y":150}`))
	h.MoveBase(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	var pose rig.BasePose
	if err := json.Unmarshal(rr.Body.Bytes(), &pose); err != nil {
		t.Fatal(err)
	}
	if pose.X != 0 {
		t.Errorf("pose.X = %v, want 0 (clamped)", pose.X)
	}
}

func TestMoveBaseBeforeMount(t *testing.T) {
	h := newTestHandler(t, false)

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/base/position", strings.NewReader(`{"x":400,"y":150}`))
	h.MoveBase(rr, req)

	if rr.Code != http.StatusAccepted {
		t.Errorf("status = %d, want 202", rr.Code)
	}
}
