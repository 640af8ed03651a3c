package loan

import (
	"errors"
	"fmt"
	"math"
	"time"
)

var (
	// ErrNotFound is returned when a loan is not found.
	ErrNotFound = errors.New("loan not found")
	// ErrAlreadyReturned is returned when a loan has already been closed.
	ErrAlreadyReturned = errors.New("loan already returned")
	// ErrBookUnavailable is returned when the requested book is on loan.
	ErrBookUnavailable = errors.New("book unavailable")
)

// Status is the lifecycle state of a loan. An ACTIVE loan has no return
// date; a RETURNED loan always has one.
type Status string

const (
	StatusActive   Status = "ACTIVE"
	StatusReturned Status = "RETURNED"
)

// ParseStatus converts a raw string into a Status. Unknown values fail.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusActive, StatusReturned:
		return Status(s), nil
	}
	return "", fmt.Errorf("invalid loan status: %q", s)
}

// Loan binds one user to one book for a bounded period. The JSON field
// names are the persisted wire format; loans are served in the same shape.
type Loan struct {
	ID         int64      `json:"loanId"`
	UserID     int64      `json:"userId"`
	BookID     int64      `json:"bookId"`
	LoanDate   time.Time  `json:"loanDate"`
	DueDate    time.Time  `json:"dueDate"`
	ReturnDate *time.Time `json:"returnDate"`
	Status     Status     `json:"status"`
	Fine       float64    `json:"fine"`
}

// Overdue reports whether an active loan is past its due date at the
// given instant. Returned loans are never overdue.
func (l Loan) Overdue(now time.Time) bool {
	return l.Status == StatusActive && now.After(l.DueDate)
}

// FinePolicy fixes how late returns are charged. Fines are assessed once,
// at return time, and stored on the loan record.
type FinePolicy struct {
	PerDayRate float64
}

// Assess computes the fine for a loan due at due and returned at
// returned. Every started day past the due date counts as a full day.
func (p FinePolicy) Assess(due, returned time.Time) float64 {
	if !returned.After(due) {
		return 0
	}
	daysLate := math.Ceil(returned.Sub(due).Hours() / 24)
	return daysLate * p.PerDayRate
}
