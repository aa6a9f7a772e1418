// Package export produces downloadable snapshots of the current scene.
package export

import (
	"fmt"
	"net/http"

	"github.com/rigview/rigview/backend-go/internal/engine"
	"github.com/rigview/rigview/backend-go/internal/render"
	"github.com/rigview/rigview/backend-go/internal/typeid"
)

type Handler struct {
	engine *engine.Engine
}

func NewHandler(eng *engine.Engine) *Handler {
	return &Handler{engine: eng}
}

// ExportSVG handles POST /export/svg: the current scene rendered through the
// SVG surface, served as an attachment.
func (h *Handler) ExportSVG(w http.ResponseWriter, r *http.Request) {
	scene := h.engine.Scene()
	if len(scene) == 0 {
		http.Error(w, "scene not composed yet", http.StatusConflict)
		return
	}

	cfg := h.engine.Config()
	surface := render.NewSVGSurface(cfg.Viewport.Width, cfg.Viewport.Height)
	render.Draw(scene, surface)

	w.Header().Set("Content-Type", "image/svg+xml")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf(`attachment; filename="%s.svg"`, typeid.NewExportID()))
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(surface.Document()))
}
