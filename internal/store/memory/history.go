package memory

import (
	"sort"

	"github.com/edusearch/edusearch/internal/domain"
)

// DefaultHistoryLimit caps GetSearchHistory results when the caller does not
// supply a limit.
const DefaultHistoryLimit = 10

// GetSearchHistory returns the user's history entries sorted by CreatedAt
// descending, truncated to limit. A limit <= 0 means DefaultHistoryLimit.
func (s *Store) GetSearchHistory(userID, limit int) []*domain.SearchHistory {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := make([]*domain.SearchHistory, 0)
	for _, h := range s.history {
		if h.UserID == userID {
			entries = append(entries, h)
		}
	}
	sort.Slice(entries, func(i, j int) bool {
		if !entries[i].CreatedAt.Equal(entries[j].CreatedAt) {
			return entries[i].CreatedAt.After(entries[j].CreatedAt)
		}
		return entries[i].ID > entries[j].ID
	})

	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries
}

// CreateSearchHistory inserts a history entry with the next history id and a
// server-side CreatedAt timestamp.
func (s *Store) CreateSearchHistory(params domain.NewSearchHistory) *domain.SearchHistory {
	s.mu.Lock()
	defer s.mu.Unlock()

	h := &domain.SearchHistory{
		ID:          s.nextHistoryID,
		UserID:      params.UserID,
		Query:       params.Query,
		Filters:     params.Filters,
		ResultCount: params.ResultCount,
		CreatedAt:   s.TimeNow(),
	}
	s.nextHistoryID++
	s.history[h.ID] = h
	return h
}

// DeleteSearchHistory removes one history entry and reports whether it
// existed.
func (s *Store) DeleteSearchHistory(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.history[id]; !ok {
		return false
	}
	delete(s.history, id)
	return true
}

// ClearSearchHistory deletes every history entry owned by userID. Clearing a
// user with no entries is a no-op; entries of other users are untouched.
func (s *Store) ClearSearchHistory(userID int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, h := range s.history {
		if h.UserID == userID {
			delete(s.history, id)
		}
	}
}
