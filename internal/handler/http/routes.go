package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the router of the remote store API.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer, h.withTraceID, withLogging)

	router.Get("/api/health", h.health)
	router.Get("/api/version", h.getServerVersion)

	router.Route("/api/users/{userID}", func(r chi.Router) {
		r.Use(withGZip)

		r.Get("/decks", h.getDecks)
		r.Put("/decks/{id}", h.putDeck)
		r.Delete("/decks/{id}", h.deleteDeck)

		r.Get("/cards", h.getCards)
		r.Put("/cards/{id}", h.putCard)
		r.Delete("/cards/{id}", h.deleteCard)
	})

	return router
}
