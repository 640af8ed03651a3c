package store

import (
	"context"
	"sync"

	"libraryapi/internal/user"
)

// UserJSON is the flat-file user directory repository.
type UserJSON struct {
	mu    sync.Mutex
	path  string
	users []user.User
}

func NewUserJSON(path string) (*UserJSON, error) {
	s := &UserJSON{path: path}
	if err := loadJSONFile(path, &s.users); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *UserJSON) GetByID(_ context.Context, id int64) (user.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.ID == id {
			return u, nil
		}
	}
	return user.User{}, user.ErrNotFound
}

func (s *UserJSON) List(_ context.Context) ([]user.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]user.User, len(s.users))
	copy(out, s.users)
	return out, nil
}

func (s *UserJSON) Create(_ context.Context, u *user.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.users {
		if existing.RegistrationNumber == u.RegistrationNumber || existing.Email == u.Email {
			return user.ErrDuplicate
		}
	}

	u.ID = nextID(len(s.users), func(i int) int64 { return s.users[i].ID })
	s.users = append(s.users, *u)
	return saveJSONFile(s.path, s.users)
}
