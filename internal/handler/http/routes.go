package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withMetrics)

	router.Get("/metrics", h.metrics.handler().ServeHTTP)

	router.Group(func(r chi.Router) {
		r.Use(h.withRateLimit)
		r.Use(withGZip)

		r.Get("/api/plans", h.getPlans)
		r.Get("/api/plans/{planID}", h.getPlan)
		r.Get("/api/formats", h.getFormats)
		r.Get("/api/formats/{formatID}", h.getFormat)
		r.Get("/api/version/", h.getServerVersion)
		r.Get("/api/info", h.getServerInfo)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
