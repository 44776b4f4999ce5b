package domain

import (
	"errors"
	"strings"
)

// User is an account record. Only one demo user exists in practice, but the
// model keeps userId everywhere so multi-user support stays a data change,
// not a schema change.
type User struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	// Password is stored as received. Hashing is a known gap of this design.
	Password string `json:"-"`
}

// NewUser carries the insert shape for a user: everything except the
// server-assigned id.
type NewUser struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (u NewUser) Validate() error {
	if strings.TrimSpace(u.Username) == "" {
		return errors.New("username is required")
	}
	if u.Password == "" {
		return errors.New("password is required")
	}
	return nil
}
