package user

import (
	"context"
)

// Repository defines the contract for user storage. Create fails with
// ErrDuplicate when the registration number or email is already taken.
type Repository interface {
	GetByID(ctx context.Context, id int64) (User, error)
	List(ctx context.Context) ([]User, error)
	Create(ctx context.Context, u *User) error
}
