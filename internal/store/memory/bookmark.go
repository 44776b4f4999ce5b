package memory

import (
	"sort"

	"github.com/edusearch/edusearch/internal/domain"
)

// GetBookmarks returns the bookmarks owned by userID.
//
// With an empty category the result is sorted by CreatedAt descending (most
// recent first). With a category the result is the exact-match subset in
// storage (allocation) order and the sort step is skipped. The asymmetry is
// long-standing observable behavior and is kept as is.
func (s *Store) GetBookmarks(userID int, category string) []*domain.Bookmark {
	s.mu.RLock()
	defer s.mu.RUnlock()

	owned := make([]*domain.Bookmark, 0)
	for _, b := range s.bookmarks {
		if b.UserID == userID {
			owned = append(owned, b)
		}
	}
	// Map iteration order is random; allocation order is the storage order.
	sort.Slice(owned, func(i, j int) bool { return owned[i].ID < owned[j].ID })

	if category != "" {
		filtered := make([]*domain.Bookmark, 0, len(owned))
		for _, b := range owned {
			if b.Category == category {
				filtered = append(filtered, b)
			}
		}
		return filtered
	}

	sort.SliceStable(owned, func(i, j int) bool {
		if !owned[i].CreatedAt.Equal(owned[j].CreatedAt) {
			return owned[i].CreatedAt.After(owned[j].CreatedAt)
		}
		return owned[i].ID > owned[j].ID
	})
	return owned
}

// GetBookmark returns one bookmark by id.
func (s *Store) GetBookmark(id int) (*domain.Bookmark, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	b, ok := s.bookmarks[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return b, nil
}

// CreateBookmark inserts a bookmark with the next bookmark id and a
// server-side CreatedAt timestamp. The record is fully populated before it
// becomes visible.
func (s *Store) CreateBookmark(params domain.NewBookmark) *domain.Bookmark {
	s.mu.Lock()
	defer s.mu.Unlock()

	b := &domain.Bookmark{
		ID:          s.nextBookmarkID,
		UserID:      params.UserID,
		Title:       params.Title,
		URL:         params.URL,
		Description: params.Description,
		Category:    params.Category,
		Snippet:     params.Snippet,
		Source:      params.Source,
		CreatedAt:   s.TimeNow(),
	}
	s.nextBookmarkID++
	s.bookmarks[b.ID] = b
	return b
}

// DeleteBookmark removes a bookmark if present and reports whether a
// deletion occurred. Deleting an unknown id is not an error.
func (s *Store) DeleteBookmark(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.bookmarks[id]; !ok {
		return false
	}
	delete(s.bookmarks, id)
	return true
}

// GetBookmarkCategories returns the distinct categories across the user's
// bookmarks, lexicographically sorted.
func (s *Store) GetBookmarkCategories(userID int) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]struct{})
	for _, b := range s.bookmarks {
		if b.UserID == userID {
			seen[b.Category] = struct{}{}
		}
	}

	categories := make([]string, 0, len(seen))
	for c := range seen {
		categories = append(categories, c)
	}
	sort.Strings(categories)
	return categories
}
