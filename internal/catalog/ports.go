package catalog

import (
	"context"
)

// Repository defines the contract for book storage.
type Repository interface {
	GetByID(ctx context.Context, id int64) (Book, error)
	List(ctx context.Context) ([]Book, error)
	Add(ctx context.Context, b *Book) error
	SetStatus(ctx context.Context, id int64, status Status) error
}
