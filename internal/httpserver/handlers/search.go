package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/edusearch/edusearch/internal/domain"
	"github.com/edusearch/edusearch/internal/httpserver/deps"
	"github.com/edusearch/edusearch/internal/logger"
	"github.com/edusearch/edusearch/internal/search"
	redisstore "github.com/edusearch/edusearch/internal/store/redis"
)

// searchFilters is the serialized description of one search's parameters,
// stored opaquely on the history entry.
type searchFilters struct {
	Start        string `json:"start"`
	Num          string `json:"num"`
	Sort         string `json:"sort,omitempty"`
	DateRestrict string `json:"dateRestrict,omitempty"`
	SiteSearch   string `json:"siteSearch,omitempty"`
}

// Search synthesizes a result page for the q parameter and records the
// search in the default user's history.
func Search(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		// Any non-empty value passes, whitespace included; only an absent or
		// empty q is rejected.
		query := q.Get("q")
		if query == "" {
			respondError(w, http.StatusBadRequest, "Query parameter 'q' is required")
			return
		}

		startParam := q.Get("start")
		numParam := q.Get("num")
		opts := search.Options{
			Start:        intOrDefault(startParam, 1),
			Num:          intOrDefault(numParam, 10),
			DateRestrict: q.Get("dateRestrict"),
			SiteSearch:   q.Get("siteSearch"),
		}

		page := lookupOrSynthesize(r, d, query, opts)

		recordSearch(d, query, searchFilters{
			Start:        orDefault(startParam, "1"),
			Num:          orDefault(numParam, "10"),
			Sort:         q.Get("sort"),
			DateRestrict: opts.DateRestrict,
			SiteSearch:   opts.SiteSearch,
		}, len(page.Items))

		respondJSON(w, http.StatusOK, page)
	}
}

// lookupOrSynthesize consults the page cache when enabled; a miss or any
// cache error falls through to generating the page.
func lookupOrSynthesize(r *http.Request, d deps.Deps, query string, opts search.Options) *search.Response {
	if d.SearchCache == nil {
		return d.Search.Page(query, opts)
	}

	ctx := r.Context()
	key := redisstore.SearchPageKey(search.Slugify(query), opts.Start, opts.Num)

	cached, err := d.SearchCache.GetPage(ctx, key)
	if err != nil {
		d.Logger.Warn("search cache read failed",
			logger.String("key", key),
			logger.Error(err))
	}
	if cached != nil {
		d.Logger.Debug("search cache hit", logger.String("key", key))
		return cached
	}

	page := d.Search.Page(query, opts)
	if err := d.SearchCache.SetPage(ctx, key, page); err != nil {
		d.Logger.Warn("search cache write failed",
			logger.String("key", key),
			logger.Error(err))
	}
	return page
}

func recordSearch(d deps.Deps, query string, filters searchFilters, resultCount int) {
	data, err := json.Marshal(filters)
	if err != nil {
		d.Logger.Warn("failed to serialize search filters", logger.Error(err))
		data = []byte("{}")
	}
	serialized := string(data)

	d.Store.CreateSearchHistory(domain.NewSearchHistory{
		UserID:      d.DefaultUserID,
		Query:       query,
		Filters:     &serialized,
		ResultCount: &resultCount,
	})
}

func intOrDefault(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
