package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes builds the chi router. Registration, login and the review mutations
// are also mounted under /customer for clients of the older URL layout.
func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(RequestID, RequestLog(h.logger), Recover(h.logger))

	r.Get("/healthz", h.Health)

	accountRoutes := func(r chi.Router) {
		r.Post("/register", h.Register)
		r.Post("/login", h.Login)
	}
	accountRoutes(r)

	r.Get("/", h.ListBooks)
	r.Get("/isbn/{isbn}", h.BookByISBN)
	r.Get("/author/{author}", h.BooksByAuthor)
	r.Get("/title/{title}", h.BooksByTitle)

	reviewRoutes := func(r chi.Router) {
		r.Put("/review/{isbn}", h.PutReview)
		r.Delete("/review/{isbn}", h.DeleteReview)
	}
	r.Get("/review/{isbn}", h.GetReviews)
	reviewRoutes(r)
	r.Route("/customer", func(r chi.Router) {
		accountRoutes(r)
		r.Route("/auth", reviewRoutes)
	})

	return r
}
