package catalog

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a book is not found.
var ErrNotFound = errors.New("book not found")

// Status is the availability state of a book. Only the loan ledger
// transitions it between Available and Loaned.
type Status string

const (
	StatusAvailable Status = "available"
	StatusLoaned    Status = "loaned"
)

// ParseStatus converts a raw string into a Status. Unknown values fail.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusAvailable, StatusLoaned:
		return Status(s), nil
	}
	return "", fmt.Errorf("invalid book status: %q", s)
}

// Book represents a book in the catalog.
type Book struct {
	ID     int64  `json:"id"`
	Title  string `json:"title"`
	Author string `json:"author"`
	ISBN   string `json:"isbn"`
	Status Status `json:"status"`
}

// Available reports whether the book can be loaned out.
func (b Book) Available() bool {
	return b.Status == StatusAvailable
}
