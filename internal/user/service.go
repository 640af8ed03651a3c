package user

import (
	"context"
	"time"
)

// Service provides user directory business logic.
type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// GetByID returns a user by identifier.
func (s *Service) GetByID(ctx context.Context, id int64) (User, error) {
	return s.repo.GetByID(ctx, id)
}

// List returns all registered users.
func (s *Service) List(ctx context.Context) ([]User, error) {
	return s.repo.List(ctx)
}

// Register creates a new active user. ActiveSince is stamped here and is
// immutable afterwards.
func (s *Service) Register(ctx context.Context, u *User) error {
	u.ActiveSince = s.now()
	if u.Status == "" {
		u.Status = StatusActive
	}
	return s.repo.Create(ctx, u)
}
