package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"

	"github.com/rigview/rigview/backend-go/internal/auth"
	"github.com/rigview/rigview/backend-go/internal/config"
	"github.com/rigview/rigview/backend-go/internal/engine"
	"github.com/rigview/rigview/backend-go/internal/rig"
	"github.com/rigview/rigview/backend-go/internal/session"
)

const testOrigin = "http://localhost:5173"

func newTestRouter(t *testing.T) (*mux.Router, *auth.Service, *engine.Engine) {
	t.Helper()
	cfg := &config.Config{
		Port:           8080,
		ControlSecret:  "test-secret",
		AllowedOrigins: testOrigin,
		StaticDir:      t.TempDir(),
		CanvasHeight:   300,
		GroundOffset:   10,
	}
	eng := engine.New(rig.Default())
	hub := session.NewHub(eng)
	svc := auth.NewService(cfg.ControlSecret)
	return newRouter(cfg, eng, hub, svc, auth.NewHandler(svc)), svc, eng
}

// A browser always preflights /api/base/position because the request carries
// an Authorization header. The preflight must get CORS headers back, not a
// 405 or a 401.
func TestBasePositionPreflight(t *testing.T) {
	r, _, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/base/position", nil)
	req.Header.Set("Origin", testOrigin)
	req.Header.Set("Access-Control-Request-Method", "POST")
	req.Header.Set("Access-Control-Request-Headers", "Authorization")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("preflight status = %d, want %d", rec.Code, http.StatusOK)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != testOrigin {
		t.Errorf("Access-Control-Allow-Origin = %q, want %q", got, testOrigin)
	}
	if got := rec.Header().Get("Access-Control-Allow-Headers"); !strings.Contains(got, "Authorization") {
		t.Errorf("Access-Control-Allow-Headers = %q, want Authorization allowed", got)
	}
}

func TestBasePositionRequiresToken(t *testing.T) {
	r, svc, eng := newTestRouter(t)
	eng.SetViewport(800, 300)

	body := strings.NewReader(`{"x":790,"y":150}`)
	req := httptest.NewRequest(http.MethodPost, "/api/base/position", body)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status without token = %d, want %d", rec.Code, http.StatusUnauthorized)
	}

	sess, err := svc.CreateSession()
	if err != nil {
		t.Fatal(err)
	}

	body = strings.NewReader(`{"x":790,"y":150}`)
	req = httptest.NewRequest(http.MethodPost, "/api/base/position", body)
	req.Header.Set("Authorization", "Bearer "+sess.Token)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status with token = %d, body %s", rec.Code, rec.Body.String())
	}

	var pose struct {
		X float64 `json:"x"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &pose); err != nil {
		t.Fatal(err)
	}
	if pose.X != 700 {
		t.Errorf("base x = %v, want 700 (clamped)", pose.X)
	}
}

func TestHealth(t *testing.T) {
	r, _, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
}
