package report

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"libraryapi/internal/catalog"
	"libraryapi/internal/loan"
	"libraryapi/internal/user"
)

type stubBooks []catalog.Book

func (s stubBooks) List(context.Context) ([]catalog.Book, error) { return s, nil }

type stubUsers []user.User

func (s stubUsers) List(context.Context) ([]user.User, error) { return s, nil }

type stubLoans []loan.Loan

func (s stubLoans) List(context.Context) ([]loan.Loan, error) { return s, nil }

var reportNow = time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

func day(d int) time.Time {
	return time.Date(2024, 3, d, 9, 30, 0, 0, time.UTC)
}

func newTestReport(books []catalog.Book, users []user.User, loans []loan.Loan) *Service {
	svc := NewService(stubUsers(users), stubBooks(books), stubLoans(loans))
	svc.now = func() time.Time { return reportNow }
	return svc
}

func TestMostBorrowedBooks(t *testing.T) {
	books := []catalog.Book{
		{ID: 1, Title: "A"},
		{ID: 2, Title: "B"},
		{ID: 3, Title: "C"},
	}
	loans := []loan.Loan{
		{ID: 1, BookID: 2},
		{ID: 2, BookID: 1},
		{ID: 3, BookID: 2},
		{ID: 4, BookID: 3},
	}
	svc := newTestReport(books, nil, loans)

	t.Run("ranking with ties broken by first encounter", func(t *testing.T) {
		rows, err := svc.MostBorrowedBooks(context.Background(), 10)
		require.NoError(t, err)
		require.Len(t, rows, 3)

		assert.Equal(t, int64(2), rows[0].Book.ID)
		assert.Equal(t, 2, rows[0].Count)
		// Books 1 and 3 both have one loan; book 1 appeared first.
		assert.Equal(t, int64(1), rows[1].Book.ID)
		assert.Equal(t, int64(3), rows[2].Book.ID)
	})

	t.Run("limit truncates", func(t *testing.T) {
		rows, err := svc.MostBorrowedBooks(context.Background(), 1)
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, int64(2), rows[0].Book.ID)
	})

	t.Run("no loans yields empty ranking", func(t *testing.T) {
		empty := newTestReport(books, nil, nil)
		rows, err := empty.MostBorrowedBooks(context.Background(), 10)
		require.NoError(t, err)
		assert.Empty(t, rows)
	})
}

func TestMostActiveUsers(t *testing.T) {
	users := []user.User{
		{ID: 1, Name: "Ana"},
		{ID: 2, Name: "Bruno"},
	}
	loans := []loan.Loan{
		{ID: 1, UserID: 1},
		{ID: 2, UserID: 2},
		{ID: 3, UserID: 2},
	}
	svc := newTestReport(nil, users, loans)

	rows, err := svc.MostActiveUsers(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Bruno", rows[0].User.Name)
	assert.Equal(t, 2, rows[0].Count)
}

func TestOccupancyRate(t *testing.T) {
	t.Run("empty catalog is zero, not an error", func(t *testing.T) {
		svc := newTestReport(nil, nil, nil)
		occ, err := svc.OccupancyRate(context.Background())
		require.NoError(t, err)
		assert.Equal(t, float64(0), occ.Rate)
		assert.Equal(t, 0, occ.TotalBooks)
	})

	t.Run("half the catalog on loan", func(t *testing.T) {
		books := []catalog.Book{
			{ID: 1, Status: catalog.StatusLoaned},
			{ID: 2, Status: catalog.StatusAvailable},
			{ID: 3, Status: catalog.StatusLoaned},
			{ID: 4, Status: catalog.StatusAvailable},
		}
		svc := newTestReport(books, nil, nil)
		occ, err := svc.OccupancyRate(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 0.5, occ.Rate)
		assert.Equal(t, 2, occ.LoanedBooks)
	})
}

func TestLoansInPeriod(t *testing.T) {
	loans := []loan.Loan{
		{ID: 1, LoanDate: day(1)},
		{ID: 2, LoanDate: day(5)},
		{ID: 3, LoanDate: day(10)},
		{ID: 4, LoanDate: day(20)},
	}
	svc := newTestReport(nil, nil, loans)

	got, err := svc.LoansInPeriod(context.Background(),
		time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	// Both boundary days are included.
	require.Len(t, got, 2)
	assert.Equal(t, int64(2), got[0].ID)
	assert.Equal(t, int64(3), got[1].ID)
}

func TestActiveAndOverdue(t *testing.T) {
	returnedAt := day(8)
	loans := []loan.Loan{
		{ID: 1, Status: loan.StatusActive, DueDate: reportNow.Add(-48 * time.Hour)},
		{ID: 2, Status: loan.StatusActive, DueDate: reportNow.Add(48 * time.Hour)},
		{ID: 3, Status: loan.StatusReturned, DueDate: reportNow.Add(-96 * time.Hour), ReturnDate: &returnedAt},
	}
	svc := newTestReport(nil, nil, loans)

	count, err := svc.ActiveLoanCount(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	overdue, err := svc.OverdueLoans(context.Background())
	require.NoError(t, err)
	require.Len(t, overdue, 1)
	assert.Equal(t, int64(1), overdue[0].ID)
}

func TestSummary(t *testing.T) {
	books := []catalog.Book{
		{ID: 1, Title: "A", Status: catalog.StatusLoaned},
		{ID: 2, Title: "B", Status: catalog.StatusAvailable},
	}
	users := []user.User{{ID: 1, Name: "Ana"}}
	loans := []loan.Loan{
		{ID: 1, UserID: 1, BookID: 1, Status: loan.StatusActive, DueDate: reportNow.Add(24 * time.Hour)},
	}
	svc := newTestReport(books, users, loans)

	sum, err := svc.Summary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, sum.TotalUsers)
	assert.Equal(t, 2, sum.TotalBooks)
	assert.Equal(t, 1, sum.ActiveLoans)
	assert.Equal(t, 0, sum.OverdueLoans)
	assert.Equal(t, 0.5, sum.Occupancy.Rate)
	require.NotNil(t, sum.TopBook)
	assert.Equal(t, "A", sum.TopBook.Book.Title)
	require.NotNil(t, sum.TopUser)
	assert.Equal(t, "Ana", sum.TopUser.User.Name)
}
