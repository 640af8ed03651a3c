package report

import (
	"sort"
	"time"

	"libraryapi/internal/catalog"
	"libraryapi/internal/loan"
	"libraryapi/internal/user"
)

// BookCount is one row of the most-borrowed ranking.
type BookCount struct {
	Book  catalog.Book `json:"book"`
	Count int          `json:"count"`
}

// UserCount is one row of the most-active ranking.
type UserCount struct {
	User  user.User `json:"user"`
	Count int       `json:"count"`
}

// Occupancy describes how much of the catalog is currently on loan.
type Occupancy struct {
	TotalBooks  int     `json:"total_books"`
	LoanedBooks int     `json:"loaned_books"`
	Rate        float64 `json:"rate"`
}

// Summary is the headline view of the whole system.
type Summary struct {
	TotalUsers   int         `json:"total_users"`
	TotalBooks   int         `json:"total_books"`
	TotalLoans   int         `json:"total_loans"`
	ActiveLoans  int         `json:"active_loans"`
	OverdueLoans int         `json:"overdue_loans"`
	Occupancy    Occupancy   `json:"occupancy"`
	TopBook      *BookCount  `json:"top_book,omitempty"`
	TopUser      *UserCount  `json:"top_user,omitempty"`
}

type keyCount struct {
	key   int64
	count int
}

// countGroup tallies loans per key and returns at most limit rows sorted
// by descending count, ties broken by first-encountered order.
func countGroup(loans []loan.Loan, key func(loan.Loan) int64, limit int) []keyCount {
	counts := make(map[int64]int)
	var order []int64
	for _, l := range loans {
		k := key(l)
		if _, seen := counts[k]; !seen {
			order = append(order, k)
		}
		counts[k]++
	}

	rows := make([]keyCount, 0, len(order))
	for _, k := range order {
		rows = append(rows, keyCount{key: k, count: counts[k]})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].count > rows[j].count
	})

	if limit > 0 && len(rows) > limit {
		rows = rows[:limit]
	}
	return rows
}

func mostBorrowedBooks(books []catalog.Book, loans []loan.Loan, limit int) []BookCount {
	byID := make(map[int64]catalog.Book, len(books))
	for _, b := range books {
		byID[b.ID] = b
	}

	var out []BookCount
	for _, row := range countGroup(loans, func(l loan.Loan) int64 { return l.BookID }, limit) {
		if b, ok := byID[row.key]; ok {
			out = append(out, BookCount{Book: b, Count: row.count})
		}
	}
	return out
}

func mostActiveUsers(users []user.User, loans []loan.Loan, limit int) []UserCount {
	byID := make(map[int64]user.User, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}

	var out []UserCount
	for _, row := range countGroup(loans, func(l loan.Loan) int64 { return l.UserID }, limit) {
		if u, ok := byID[row.key]; ok {
			out = append(out, UserCount{User: u, Count: row.count})
		}
	}
	return out
}

func occupancy(books []catalog.Book) Occupancy {
	if len(books) == 0 {
		return Occupancy{}
	}
	loaned := 0
	for _, b := range books {
		if b.Status == catalog.StatusLoaned {
			loaned++
		}
	}
	return Occupancy{
		TotalBooks:  len(books),
		LoanedBooks: loaned,
		Rate:        float64(loaned) / float64(len(books)),
	}
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func loansInPeriod(loans []loan.Loan, start, end time.Time) []loan.Loan {
	from, to := dateOnly(start), dateOnly(end)
	var out []loan.Loan
	for _, l := range loans {
		d := dateOnly(l.LoanDate)
		if !d.Before(from) && !d.After(to) {
			out = append(out, l)
		}
	}
	return out
}

func activeLoanCount(loans []loan.Loan) int {
	n := 0
	for _, l := range loans {
		if l.Status == loan.StatusActive {
			n++
		}
	}
	return n
}

func overdueLoans(loans []loan.Loan, now time.Time) []loan.Loan {
	var out []loan.Loan
	for _, l := range loans {
		if l.Overdue(now) {
			out = append(out, l)
		}
	}
	return out
}
