package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"axiom-backend/internal/handlers"
	"axiom-backend/internal/middleware"
)

func New(
	chatHandler *handlers.ChatHandler,
	modelsHandler *handlers.ModelsHandler,
	staticHandler *handlers.StaticHandler,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.CORS())

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	// ──── Front Door ────
	r.Get("/", staticHandler.Index)
	r.Handle("/static/*", staticHandler.Assets())

	// ──── Chat API ────
	r.Route("/api", func(r chi.Router) {
		r.Post("/chat", chatHandler.Chat)
		r.Get("/models", modelsHandler.List)
	})

	return r
}
