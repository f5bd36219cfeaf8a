package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// Init builds the router for every Yamanaka endpoint: the JSON check/pull/
// push/initial handlers, the SSE event stream, and a plain-text root health
// line for probes that don't speak JSON.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(withLogging)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{h.allowedOrigin},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
	}))

	router.Get("/", h.root)

	router.Group(func(r chi.Router) {
		r.Get("/api/check", h.check)
		r.Get("/api/sync/pull", h.pull)
		r.Post("/api/sync/push", h.push)
		r.Post("/api/sync/initial", h.initial)
		r.Get("/api/events", h.events)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
