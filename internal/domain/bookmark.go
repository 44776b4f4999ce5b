package domain

import (
	"errors"
	"strings"
	"time"
)

// Bookmark is a saved search result belonging to one user.
// Optional fields are pointers so the JSON output carries an explicit null
// instead of an ambiguous empty string.
type Bookmark struct {
	ID          int       `json:"id"`
	UserID      int       `json:"userId"`
	Title       string    `json:"title"`
	URL         string    `json:"url"`
	Description *string   `json:"description"`
	Category    string    `json:"category"`
	Snippet     *string   `json:"snippet"`
	Source      *string   `json:"source"`
	CreatedAt   time.Time `json:"createdAt"`
}

// NewBookmark is the insert shape: id and createdAt are assigned by the
// store, never by the caller.
type NewBookmark struct {
	UserID      int     `json:"userId"`
	Title       string  `json:"title"`
	URL         string  `json:"url"`
	Description *string `json:"description"`
	Category    string  `json:"category"`
	Snippet     *string `json:"snippet"`
	Source      *string `json:"source"`
}

func (b NewBookmark) Validate() error {
	if strings.TrimSpace(b.Title) == "" {
		return errors.New("title is required")
	}
	if strings.TrimSpace(b.URL) == "" {
		return errors.New("url is required")
	}
	if strings.TrimSpace(b.Category) == "" {
		return errors.New("category is required")
	}
	return nil
}
