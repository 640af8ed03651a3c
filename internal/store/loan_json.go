package store

import (
	"context"
	"sync"

	"libraryapi/internal/loan"
)

// LoanJSON is the flat-file ledger repository. The file holds a JSON
// array of loan records in insertion order, exactly the wire format the
// API serves.
type LoanJSON struct {
	mu    sync.Mutex
	path  string
	loans []loan.Loan
}

func NewLoanJSON(path string) (*LoanJSON, error) {
	s := &LoanJSON{path: path}
	if err := loadJSONFile(path, &s.loans); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *LoanJSON) List(_ context.Context) ([]loan.Loan, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]loan.Loan, len(s.loans))
	copy(out, s.loans)
	return out, nil
}

func (s *LoanJSON) GetByID(_ context.Context, id int64) (loan.Loan, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, l := range s.loans {
		if l.ID == id {
			return l, nil
		}
	}
	return loan.Loan{}, loan.ErrNotFound
}

func (s *LoanJSON) Append(_ context.Context, l *loan.Loan) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	l.ID = nextID(len(s.loans), func(i int) int64 { return s.loans[i].ID })
	s.loans = append(s.loans, *l)
	return saveJSONFile(s.path, s.loans)
}

func (s *LoanJSON) Update(_ context.Context, l *loan.Loan) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.loans {
		if s.loans[i].ID == l.ID {
			s.loans[i] = *l
			return saveJSONFile(s.path, s.loans)
		}
	}
	return loan.ErrNotFound
}
