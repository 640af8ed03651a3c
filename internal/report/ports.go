package report

import (
	"context"

	"libraryapi/internal/catalog"
	"libraryapi/internal/loan"
	"libraryapi/internal/user"
)

// The aggregator is a read-only consumer of the three collections. It
// takes fresh snapshots on every call and computes everything from them;
// nothing is cached.

type BookSource interface {
	List(ctx context.Context) ([]catalog.Book, error)
}

type UserSource interface {
	List(ctx context.Context) ([]user.User, error)
}

type LoanSource interface {
	List(ctx context.Context) ([]loan.Loan, error)
}
