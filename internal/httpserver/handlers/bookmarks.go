package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/edusearch/edusearch/internal/domain"
	"github.com/edusearch/edusearch/internal/httpserver/deps"
	"github.com/edusearch/edusearch/internal/logger"
)

// ListBookmarks returns the default user's bookmarks, optionally restricted
// to one category.
func ListBookmarks(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		category := r.URL.Query().Get("category")
		bookmarks := d.Store.GetBookmarks(d.DefaultUserID, category)
		respondJSON(w, http.StatusOK, bookmarks)
	}
}

// CreateBookmark validates the request body and inserts a bookmark for the
// default user. The userId of the body, if any, is ignored.
func CreateBookmark(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var params domain.NewBookmark
		if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
			respondError(w, http.StatusBadRequest, "Invalid bookmark data")
			return
		}
		params.UserID = d.DefaultUserID

		if err := params.Validate(); err != nil {
			respondError(w, http.StatusBadRequest, "Invalid bookmark data: "+err.Error())
			return
		}

		bookmark := d.Store.CreateBookmark(params)
		d.Logger.Info("bookmark created",
			logger.Int("id", bookmark.ID),
			logger.String("category", bookmark.Category))
		respondJSON(w, http.StatusCreated, bookmark)
	}
}

// DeleteBookmark removes one bookmark by id.
func DeleteBookmark(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.Atoi(chi.URLParam(r, "id"))
		if err != nil {
			respondError(w, http.StatusBadRequest, "Invalid bookmark ID")
			return
		}

		if !d.Store.DeleteBookmark(id) {
			respondError(w, http.StatusNotFound, "Bookmark not found")
			return
		}
		respondSuccess(w)
	}
}

// BookmarkCategories returns the distinct categories of the default user's
// bookmarks, sorted.
func BookmarkCategories(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categories := d.Store.GetBookmarkCategories(d.DefaultUserID)
		respondJSON(w, http.StatusOK, categories)
	}
}
