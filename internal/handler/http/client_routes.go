package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *ClientHandler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer, traceID(h.logger), accessLog)

	router.Route("/api", func(r chi.Router) {
		r.Get("/status", h.getStatus)

		r.Route("/sales", func(r chi.Router) {
			r.Get("/", h.listSales)
			r.Post("/", h.recordSale)
			r.Delete("/{localID}", h.deleteSale)
		})

		r.Get("/stats", h.getCombinedStats)
		r.Get("/stats/local", h.getLocalStats)
		r.Post("/sync", h.triggerSync)
		r.Get("/backend/transactions", h.listBackendTransactions)
	})

	router.NotFound(notFound)

	return router
}
