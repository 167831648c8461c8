package http

import (
	"net/http"

	"github.com/MKhiriev/go-dataset-loader/internal/metrics"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)

	// scraped often, kept out of the access log
	router.Method(http.MethodGet, "/metrics", metrics.Handler(h.gatherer))

	router.Group(func(r chi.Router) {
		r.Use(h.withTraceID, h.withLogging)

		r.Get("/healthz", h.health)
		r.Get("/version", h.version)

		r.Get("/staged", h.stagedStats)
		r.Post("/staged/flush", h.flush)
		r.Post("/staged/requeue", h.requeue)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
