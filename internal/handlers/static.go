package handlers

import (
	"net/http"
	"os"
)

// fallbackHTML is served when the entry page is missing from disk.
const fallbackHTML = "<h1>index.html not found.</h1>"

// StaticHandler is the front door: the entry HTML page and the static
// assets directory. Pure file delivery, no dynamic behavior.
type StaticHandler struct {
	indexFile string
	staticDir string
}

func NewStaticHandler(indexFile, staticDir string) *StaticHandler {
	return &StaticHandler{indexFile: indexFile, staticDir: staticDir}
}

// Index serves the entry page, or an inline notice when it is missing.
// The front door answers 200 either way.
func (h *StaticHandler) Index(w http.ResponseWriter, r *http.Request) {
	if _, err := os.Stat(h.indexFile); err == nil {
		http.ServeFile(w, r, h.indexFile)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(fallbackHTML))
}

// Assets returns the file server for the static directory, mounted under
// /static/.
func (h *StaticHandler) Assets() http.Handler {
	return http.StripPrefix("/static/", http.FileServer(http.Dir(h.staticDir)))
}
