package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/edusearch/edusearch/internal/httpserver/deps"
)

// SearchHistory returns the default user's most recent searches, newest
// first. The limit parameter caps the result; absent or invalid values fall
// back to the configured default.
func SearchHistory(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := d.HistoryLimit
		if v := r.URL.Query().Get("limit"); v != "" {
			if n, err := strconv.Atoi(v); err == nil && n > 0 {
				limit = n
			}
		}

		entries := d.Store.GetSearchHistory(d.DefaultUserID, limit)
		respondJSON(w, http.StatusOK, entries)
	}
}

// DeleteSearchHistory removes one history entry by id.
func DeleteSearchHistory(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.Atoi(chi.URLParam(r, "id"))
		if err != nil {
			respondError(w, http.StatusBadRequest, "Invalid history ID")
			return
		}

		if !d.Store.DeleteSearchHistory(id) {
			respondError(w, http.StatusNotFound, "Search history item not found")
			return
		}
		respondSuccess(w)
	}
}

// ClearSearchHistory deletes every history entry of the default user.
// Clearing an empty history still succeeds.
func ClearSearchHistory(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		d.Store.ClearSearchHistory(d.DefaultUserID)
		respondSuccess(w)
	}
}
