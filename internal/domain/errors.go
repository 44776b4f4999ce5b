package domain

import "errors"

var (
	// ErrNotFound indicates a lookup or delete targeted an id that does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrConflict indicates an insert violated a uniqueness constraint
	// (currently only usernames).
	ErrConflict = errors.New("record already exists")
)
