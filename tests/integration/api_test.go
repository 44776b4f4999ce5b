package integration

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edusearch/edusearch/internal/domain"
	"github.com/edusearch/edusearch/internal/httpserver/deps"
	"github.com/edusearch/edusearch/internal/httpserver/mw"
	"github.com/edusearch/edusearch/internal/httpserver/routes"
	"github.com/edusearch/edusearch/internal/logger"
	"github.com/edusearch/edusearch/internal/search"
	"github.com/edusearch/edusearch/internal/store/memory"
)

// newAPI assembles the router the way the server does: registry-registered
// routes under /api behind the standard middleware chain.
func newAPI(t *testing.T) (http.Handler, *memory.Store) {
	t.Helper()

	store := memory.New()
	_, err := store.CreateUser(domain.NewUser{Username: "demo", Password: "demo123"})
	require.NoError(t, err)

	d := deps.Deps{
		Logger:        logger.Nop(),
		StartTime:     time.Now(),
		Store:         store,
		Search:        search.New(nil),
		DefaultUserID: 1,
		HistoryLimit:  10,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(mw.Log(d.Logger))
	r.Use(mw.CORS([]string{"*"}))
	r.Use(mw.RateLimit(mw.RateLimitConfig{Burst: 1000, RefillPerIPPerMin: 1000}))
	r.Route("/api", func(api chi.Router) {
		routes.RegisterAll(api, d)
	})
	return r, store
}

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestSearchFlowRecordsHistory(t *testing.T) {
	h, _ := newAPI(t)

	rec := get(t, h, "/api/search?q=Quantum&num=5")
	require.Equal(t, http.StatusOK, rec.Code)

	var page search.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &page))
	require.Len(t, page.Items, 5)

	catalog := make(map[string]bool)
	for _, src := range search.DefaultSources() {
		catalog[src.Domain] = true
	}
	for _, item := range page.Items {
		assert.Contains(t, item.Link, "quantum")
		assert.True(t, catalog[item.DisplayLink], "displayLink %q not in catalog", item.DisplayLink)
	}

	rec = get(t, h, "/api/search-history")
	require.Equal(t, http.StatusOK, rec.Code)
	var history []domain.SearchHistory
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &history))
	require.Len(t, history, 1)
	assert.Equal(t, "Quantum", history[0].Query)
}

func TestBookmarkLifecycle(t *testing.T) {
	h, _ := newAPI(t)

	body := `{"title":"Linear Algebra","url":"https://mit.edu/linear-algebra-1","category":"Math","snippet":"Lecture notes"}`
	req := httptest.NewRequest(http.MethodPost, "/api/bookmarks", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created domain.Bookmark
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	require.NotNil(t, created.Snippet)
	assert.Equal(t, "Lecture notes", *created.Snippet)
	assert.Nil(t, created.Source)

	rec = get(t, h, "/api/bookmarks/categories")
	require.Equal(t, http.StatusOK, rec.Code)
	var categories []string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &categories))
	assert.Equal(t, []string{"Math"}, categories)

	req = httptest.NewRequest(http.MethodDelete, "/api/bookmarks/1", nil)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = get(t, h, "/api/bookmarks")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]\n", rec.Body.String())
}

func TestHealthz(t *testing.T) {
	h, _ := newAPI(t)

	rec := get(t, h, "/api/healthz")
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
}

func TestCORSPreflight(t *testing.T) {
	h, _ := newAPI(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/bookmarks", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRateLimitRejectsWhenExhausted(t *testing.T) {
	store := memory.New()
	d := deps.Deps{
		Logger:        logger.Nop(),
		StartTime:     time.Now(),
		Store:         store,
		Search:        search.New(nil),
		DefaultUserID: 1,
		HistoryLimit:  10,
	}

	r := chi.NewRouter()
	r.Use(mw.RateLimit(mw.RateLimitConfig{Burst: 2, RefillPerIPPerMin: 1}))
	r.Route("/api", func(api chi.Router) {
		routes.RegisterAll(api, d)
	})

	for i := 0; i < 2; i++ {
		rec := get(t, r, "/api/bookmarks")
		require.Equal(t, http.StatusOK, rec.Code)
	}

	rec := get(t, r, "/api/bookmarks")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("Retry-After"))
}
