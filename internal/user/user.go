package user

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrNotFound is returned when a user is not found.
	ErrNotFound = errors.New("user not found")
	// ErrDuplicate is returned when a registration number or email is
	// already taken.
	ErrDuplicate = errors.New("user already registered")
)

// Type classifies a user and determines the loan period.
type Type string

const (
	TypeStudent Type = "student"
	TypeFaculty Type = "faculty"
	TypeStaff   Type = "staff"
)

// ParseType converts a raw string into a Type. Unknown values fail.
func ParseType(s string) (Type, error) {
	switch Type(s) {
	case TypeStudent, TypeFaculty, TypeStaff:
		return Type(s), nil
	}
	return "", fmt.Errorf("invalid user type: %q", s)
}

// LoanPeriod is how long this class of user may keep a book.
func (t Type) LoanPeriod() time.Duration {
	if t == TypeFaculty {
		return 30 * 24 * time.Hour
	}
	return 14 * 24 * time.Hour
}

// Status is the standing of a user account.
type Status string

const (
	StatusActive    Status = "active"
	StatusInactive  Status = "inactive"
	StatusSuspended Status = "suspended"
)

// ParseStatus converts a raw string into a Status. Unknown values fail.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusActive, StatusInactive, StatusSuspended:
		return Status(s), nil
	}
	return "", fmt.Errorf("invalid user status: %q", s)
}

// User represents a registered library user. ActiveSince is set at
// creation and never changes afterwards.
type User struct {
	ID                 int64     `json:"id"`
	Name               string    `json:"name"`
	RegistrationNumber string    `json:"registration_number"`
	Type               Type      `json:"type"`
	Email              string    `json:"email"`
	ActiveSince        time.Time `json:"active_since"`
	Status             Status    `json:"status"`
}
