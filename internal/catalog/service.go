package catalog

import (
	"context"
)

// Service provides catalog business logic.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// GetByID returns a book by its identifier.
func (s *Service) GetByID(ctx context.Context, id int64) (Book, error) {
	return s.repo.GetByID(ctx, id)
}

// List returns the full catalog.
func (s *Service) List(ctx context.Context) ([]Book, error) {
	return s.repo.List(ctx)
}

// Add registers a new book. New books start out available.
func (s *Service) Add(ctx context.Context, b *Book) error {
	if b.Status == "" {
		b.Status = StatusAvailable
	}
	return s.repo.Add(ctx, b)
}

// SetStatus updates a book's availability. The loan ledger calls this
// around every loan transition; status is always read back from the
// repository, never cached.
func (s *Service) SetStatus(ctx context.Context, id int64, status Status) error {
	return s.repo.SetStatus(ctx, id, status)
}
