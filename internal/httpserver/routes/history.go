package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/edusearch/edusearch/internal/httpserver/deps"
	"github.com/edusearch/edusearch/internal/httpserver/handlers"
)

func init() { Register(registerHistory) }

func registerHistory(r chi.Router, d deps.Deps) {
	r.Route("/search-history", func(r chi.Router) {
		r.Get("/", handlers.SearchHistory(d))
		r.Delete("/", handlers.ClearSearchHistory(d))
		r.Delete("/{id}", handlers.DeleteSearchHistory(d))
	})
}
