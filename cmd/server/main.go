package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/rigview/rigview/backend-go/internal/api"
	"github.com/rigview/rigview/backend-go/internal/auth"
	"github.com/rigview/rigview/backend-go/internal/config"
	"github.com/rigview/rigview/backend-go/internal/engine"
	"github.com/rigview/rigview/backend-go/internal/export"
	mw "github.com/rigview/rigview/backend-go/internal/middleware"
	"github.com/rigview/rigview/backend-go/internal/rig"
	"github.com/rigview/rigview/backend-go/internal/session"
	"github.com/rigview/rigview/backend-go/internal/typeid"
	"github.com/rigview/rigview/backend-go/internal/web"
)

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})))

	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}

	rigCfg := rig.Default()
	rigCfg.Viewport.Height = cfg.CanvasHeight
	rigCfg.Viewport.GroundOffset = cfg.GroundOffset
	if err := rigCfg.Validate(); err != nil {
		slog.Error("invalid rig configuration", "error", err)
		os.Exit(1)
	}

	eng := engine.New(rigCfg)

	authService := auth.NewService(cfg.ControlSecret)
	authHandler := auth.NewHandler(authService)

	hub := session.NewHub(eng)
	go hub.Run()

	r := newRouter(cfg, eng, hub, authService, authHandler)

	addr := fmt.Sprintf(":%d", cfg.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		slog.Info("shutting down server")
		hub.Stop()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		srv.Shutdown(shutdownCtx)
	}()

	slog.Info("server starting", "addr", addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}
}

func newRouter(cfg *config.Config, eng *engine.Engine, hub *session.Hub, authService *auth.Service, authHandler *auth.Handler) *mux.Router {
	apiHandler := api.NewHandler(eng, hub)
	exportHandler := export.NewHandler(eng)
	webHandler := web.NewHandler(cfg.StaticDir)

	r := mux.NewRouter()

	// Global middleware
	r.Use(mw.Recovery)
	r.Use(mw.Logger)
	r.Use(mw.CORS(cfg.AllowedOrigins))

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// Control sessions (public: any viewer may claim the controls)
	r.HandleFunc("/auth/session", authHandler.CreateSession).Methods("POST", "OPTIONS")

	// Read-only API
	r.HandleFunc("/api/scene", apiHandler.GetScene).Methods("GET")
	r.HandleFunc("/api/rig", apiHandler.GetRig).Methods("GET")
	r.HandleFunc("/api/ik/solve", apiHandler.SolveIK).Methods("POST", "OPTIONS")

	// Control API. OPTIONS must be registered here too: mux skips the
	// middleware chain entirely on a method mismatch, and the preflight
	// has to reach the CORS handler before ControlMiddleware can reject it.
	control := r.PathPrefix("/api/base").Subrouter()
	control.Use(authService.ControlMiddleware)
	control.HandleFunc("/position", apiHandler.MoveBase).Methods("POST", "OPTIONS")

	// Snapshot export
	r.HandleFunc("/export/svg", exportHandler.ExportSVG).Methods("POST", "OPTIONS")

	// WebSocket endpoint
	r.HandleFunc("/ws/scene", func(w http.ResponseWriter, r *http.Request) {
		handleWebSocket(w, r, hub, authService, cfg.AllowedOrigins)
	})

	// Frontend
	r.PathPrefix("/").Handler(webHandler.Serve()).Methods("GET")

	return r
}

func handleWebSocket(w http.ResponseWriter, r *http.Request, hub *session.Hub, authSvc *auth.Service, allowedOrigins string) {
	// A token grants the control role; without one the connection is
	// view-only, which is the normal case.
	control := false
	if token := r.URL.Query().Get("token"); token != "" {
		if _, err := authSvc.ValidateToken(token); err != nil {
			http.Error(w, "invalid token", http.StatusUnauthorized)
			return
		}
		control = true
	}

	var originPatterns []string
	for _, o := range strings.Split(allowedOrigins, ",") {
		o = strings.TrimSpace(o)
		o = strings.TrimPrefix(o, "http://")
		o = strings.TrimPrefix(o, "https://")
		if o != "" {
			originPatterns = append(originPatterns, o)
		}
	}

	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: originPatterns,
	})
	if err != nil {
		slog.Error("websocket accept", "error", err)
		return
	}

	viewerID := typeid.NewViewerID()
	clientID := uuid.New().String()
	client := session.NewClient(hub, conn, viewerID, clientID, control)

	hub.Register(client)

	ctx := r.Context()
	go client.WritePump(ctx)
	client.ReadPump(ctx)
}
