// Package memory holds every record of the application in process memory.
// The store is volatile and unbounded: contents live exactly as long as the
// process, which is the intended deployment model for this service.
package memory

import (
	"sync"
	"time"

	"github.com/edusearch/edusearch/internal/domain"
)

// Store keeps the three collections (users, bookmarks, search history) in
// maps keyed by id, each with its own monotonic id allocator. Ids are never
// reused, even after deletes.
//
// A Store is constructed explicitly and injected into its consumers so tests
// can run against isolated instances.
type Store struct {
	mu sync.RWMutex

	users     map[int]*domain.User
	bookmarks map[int]*domain.Bookmark
	history   map[int]*domain.SearchHistory

	nextUserID     int
	nextBookmarkID int
	nextHistoryID  int

	// TimeNow stamps CreatedAt on inserts. Overridable in tests.
	TimeNow func() time.Time
}

// New creates an empty store.
func New() *Store {
	return &Store{
		users:          make(map[int]*domain.User),
		bookmarks:      make(map[int]*domain.Bookmark),
		history:        make(map[int]*domain.SearchHistory),
		nextUserID:     1,
		nextBookmarkID: 1,
		nextHistoryID:  1,
		TimeNow:        time.Now,
	}
}
