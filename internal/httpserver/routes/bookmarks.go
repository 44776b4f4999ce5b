package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/edusearch/edusearch/internal/httpserver/deps"
	"github.com/edusearch/edusearch/internal/httpserver/handlers"
)

func init() { Register(registerBookmarks) }

func registerBookmarks(r chi.Router, d deps.Deps) {
	r.Route("/bookmarks", func(r chi.Router) {
		r.Get("/", handlers.ListBookmarks(d))
		r.Post("/", handlers.CreateBookmark(d))
		r.Get("/categories", handlers.BookmarkCategories(d))
		r.Delete("/{id}", handlers.DeleteBookmark(d))
	})
}
