package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer, h.withTraceID, h.withLogging, withGZip)

	// liveness probe used by terminals before every reconciliation
	router.Get("/", h.getStatus)

	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/transactions", h.listTransactions)
		r.Get("/stats", h.getStats)

		r.Group(func(r chi.Router) {
			r.Use(h.checkBodyHash)
			r.Post("/add", h.addTransactions)
			r.Post("/sync", h.syncTransactions)
		})
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))
	router.NotFound(notFound)

	return router
}
