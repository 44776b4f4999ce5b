package memory

import "github.com/edusearch/edusearch/internal/domain"

// GetUser returns the user with the given id.
func (s *Store) GetUser(id int) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return user, nil
}

// GetUserByUsername looks a user up by exact username. Linear scan; the user
// collection is tiny and no secondary index is maintained.
func (s *Store) GetUserByUsername(username string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, user := range s.users {
		if user.Username == username {
			return user, nil
		}
	}
	return nil, domain.ErrNotFound
}

// CreateUser inserts a new user with the next user id.
// Usernames are unique: inserting a duplicate returns domain.ErrConflict
// and leaves the store unchanged.
func (s *Store) CreateUser(params domain.NewUser) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, user := range s.users {
		if user.Username == params.Username {
			return nil, domain.ErrConflict
		}
	}

	user := &domain.User{
		ID:       s.nextUserID,
		Username: params.Username,
		Password: params.Password,
	}
	s.nextUserID++
	s.users[user.ID] = user
	return user, nil
}
