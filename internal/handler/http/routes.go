package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the router. Only the canonical /run-circuit route is served;
// there are no alternate variants of it.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}
	router.Use(withGZip)
	if h.hashKey != "" {
		router.Use(h.withResponseHashing)
	}

	router.Get("/run-circuit", h.runCircuit)
	router.Post("/api/circuits/run", h.submitCircuit)

	router.Get("/api/version/", h.getServerVersion)
	router.Get("/health", h.getHealth)

	router.NotFound(routeNotFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
