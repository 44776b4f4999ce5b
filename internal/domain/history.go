package domain

import (
	"errors"
	"strings"
	"time"
)

// SearchHistory records one executed search for a user.
// Filters is an opaque serialized description of the search parameters;
// the store never interprets it.
type SearchHistory struct {
	ID          int       `json:"id"`
	UserID      int       `json:"userId"`
	Query       string    `json:"query"`
	Filters     *string   `json:"filters"`
	ResultCount *int      `json:"resultCount"`
	CreatedAt   time.Time `json:"createdAt"`
}

// NewSearchHistory is the insert shape for a history entry.
type NewSearchHistory struct {
	UserID      int     `json:"userId"`
	Query       string  `json:"query"`
	Filters     *string `json:"filters"`
	ResultCount *int    `json:"resultCount"`
}

func (h NewSearchHistory) Validate() error {
	if strings.TrimSpace(h.Query) == "" {
		return errors.New("query is required")
	}
	return nil
}
