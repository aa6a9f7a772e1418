// Package web serves the static frontend bundle (index page, wasm binary,
// loader script).
package web

import (
	"net/http"
	"path/filepath"
	"strings"
)

type Handler struct {
	dir string
}

func NewHandler(dir string) *Handler {
	return &Handler{dir: dir}
}

// Serve returns a handler for the frontend files. The wasm binary is
// content-hashed by the build, so it gets long-lived caching; everything
// else revalidates.
func (h *Handler) Serve() http.Handler {
	fs := http.FileServer(http.Dir(h.dir))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if filepath.Ext(r.URL.Path) == ".wasm" {
			w.Header().Set("Content-Type", "application/wasm")
			w.Header().Set("Cache-Control", "public, max-age=31536000, immutable")
		} else {
			w.Header().Set("Cache-Control", "no-cache")
		}

		// Serve the index for bare paths so the visualizer loads at /.
		if strings.HasSuffix(r.URL.Path, "/") {
			http.ServeFile(w, r, filepath.Join(h.dir, "index.html"))
			return
		}
		fs.ServeHTTP(w, r)
	})
}
