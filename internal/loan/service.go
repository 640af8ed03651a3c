package loan

import (
	"context"
	"sync"
	"time"

	"libraryapi/internal/catalog"
)

// Service is the loan ledger. It owns the loan collection exclusively and
// keeps the catalog consistent with it: creating a loan marks the book
// loaned, returning it marks the book available again.
//
// The mutex serializes the validate-then-mutate sequence so the
// one-active-loan-per-book invariant holds under concurrent requests.
type Service struct {
	mu      sync.Mutex
	repo    Repository
	catalog Catalog
	users   Users
	fines   FinePolicy
	now     func() time.Time
}

func NewService(repo Repository, cat Catalog, users Users, fines FinePolicy) *Service {
	return &Service{
		repo:    repo,
		catalog: cat,
		users:   users,
		fines:   fines,
		now:     time.Now,
	}
}

// Create opens a loan of bookID to userID. Validation order: user must
// exist, book must exist, book must be available. The due date is the
// loan date plus the user type's loan period. Nothing is mutated until
// all validation has passed.
func (s *Service) Create(ctx context.Context, userID, bookID int64) (Loan, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return Loan{}, err
	}

	b, err := s.catalog.GetByID(ctx, bookID)
	if err != nil {
		return Loan{}, err
	}
	if !b.Available() {
		return Loan{}, ErrBookUnavailable
	}

	now := s.now()
	l := Loan{
		UserID:   u.ID,
		BookID:   b.ID,
		LoanDate: now,
		DueDate:  now.Add(u.Type.LoanPeriod()),
		Status:   StatusActive,
	}
	if err := s.repo.Append(ctx, &l); err != nil {
		return Loan{}, err
	}
	if err := s.catalog.SetStatus(ctx, bookID, catalog.StatusLoaned); err != nil {
		return Loan{}, err
	}
	return l, nil
}

// Return closes an active loan: stamps the return date, assesses the
// fine, and releases the book back to the catalog.
func (s *Service) Return(ctx context.Context, loanID int64) (Loan, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, err := s.repo.GetByID(ctx, loanID)
	if err != nil {
		return Loan{}, err
	}
	if l.Status != StatusActive {
		return Loan{}, ErrAlreadyReturned
	}

	now := s.now()
	l.ReturnDate = &now
	l.Status = StatusReturned
	l.Fine = s.fines.Assess(l.DueDate, now)

	if err := s.repo.Update(ctx, &l); err != nil {
		return Loan{}, err
	}
	if err := s.catalog.SetStatus(ctx, l.BookID, catalog.StatusAvailable); err != nil {
		return Loan{}, err
	}
	return l, nil
}

// List returns every loan in insertion order.
func (s *Service) List(ctx context.Context) ([]Loan, error) {
	return s.repo.List(ctx)
}

// GetByID returns a single loan.
func (s *Service) GetByID(ctx context.Context, id int64) (Loan, error) {
	return s.repo.GetByID(ctx, id)
}
