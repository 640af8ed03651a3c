package loan

import (
	"context"

	"libraryapi/internal/catalog"
	"libraryapi/internal/user"
)

// Repository defines the contract for ledger storage. Append assigns the
// loan its identifier (max existing id + 1 for the flat file driver,
// a serial for Postgres).
type Repository interface {
	List(ctx context.Context) ([]Loan, error)
	GetByID(ctx context.Context, id int64) (Loan, error)
	Append(ctx context.Context, l *Loan) error
	Update(ctx context.Context, l *Loan) error
}

// Catalog is the slice of the catalog service the ledger depends on.
// The ledger holds book identifiers only and re-reads current state
// through this interface on every transition.
type Catalog interface {
	GetByID(ctx context.Context, id int64) (catalog.Book, error)
	SetStatus(ctx context.Context, id int64, status catalog.Status) error
}

// Users is the slice of the user directory the ledger depends on.
type Users interface {
	GetByID(ctx context.Context, id int64) (user.User, error)
}
