package report

import (
	"context"
	"time"

	"libraryapi/internal/loan"
)

// Service produces reports over snapshots of users, books, and loans.
type Service struct {
	users UserSource
	books BookSource
	loans LoanSource
	now   func() time.Time
}

func NewService(users UserSource, books BookSource, loans LoanSource) *Service {
	return &Service{users: users, books: books, loans: loans, now: time.Now}
}

// MostBorrowedBooks ranks books by loan count, descending, ties broken
// by first-encountered order.
func (s *Service) MostBorrowedBooks(ctx context.Context, limit int) ([]BookCount, error) {
	books, err := s.books.List(ctx)
	if err != nil {
		return nil, err
	}
	loans, err := s.loans.List(ctx)
	if err != nil {
		return nil, err
	}
	return mostBorrowedBooks(books, loans, limit), nil
}

// MostActiveUsers ranks users by loan count.
func (s *Service) MostActiveUsers(ctx context.Context, limit int) ([]UserCount, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}
	loans, err := s.loans.List(ctx)
	if err != nil {
		return nil, err
	}
	return mostActiveUsers(users, loans, limit), nil
}

// OccupancyRate reports the fraction of the catalog on loan. An empty
// catalog yields a zero rate, not an error.
func (s *Service) OccupancyRate(ctx context.Context) (Occupancy, error) {
	books, err := s.books.List(ctx)
	if err != nil {
		return Occupancy{}, err
	}
	return occupancy(books), nil
}

// LoansInPeriod returns loans whose loan date falls within [start, end],
// inclusive on both ends, compared at day granularity.
func (s *Service) LoansInPeriod(ctx context.Context, start, end time.Time) ([]loan.Loan, error) {
	loans, err := s.loans.List(ctx)
	if err != nil {
		return nil, err
	}
	return loansInPeriod(loans, start, end), nil
}

// ActiveLoanCount counts loans still open.
func (s *Service) ActiveLoanCount(ctx context.Context) (int, error) {
	loans, err := s.loans.List(ctx)
	if err != nil {
		return 0, err
	}
	return activeLoanCount(loans), nil
}

// OverdueLoans returns active loans past their due date. Overdue status
// is computed lazily against the current clock; stored fines are not
// touched.
func (s *Service) OverdueLoans(ctx context.Context) ([]loan.Loan, error) {
	loans, err := s.loans.List(ctx)
	if err != nil {
		return nil, err
	}
	return overdueLoans(loans, s.now()), nil
}

// Summary aggregates the headline numbers in one pass.
func (s *Service) Summary(ctx context.Context) (Summary, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return Summary{}, err
	}
	books, err := s.books.List(ctx)
	if err != nil {
		return Summary{}, err
	}
	loans, err := s.loans.List(ctx)
	if err != nil {
		return Summary{}, err
	}

	sum := Summary{
		TotalUsers:   len(users),
		TotalBooks:   len(books),
		TotalLoans:   len(loans),
		ActiveLoans:  activeLoanCount(loans),
		OverdueLoans: len(overdueLoans(loans, s.now())),
		Occupancy:    occupancy(books),
	}
	if top := mostBorrowedBooks(books, loans, 1); len(top) > 0 {
		sum.TopBook = &top[0]
	}
	if top := mostActiveUsers(users, loans, 1); len(top) > 0 {
		sum.TopUser = &top[0]
	}
	return sum, nil
}
