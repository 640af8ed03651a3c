package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"libraryapi/internal/loan"
)

// LoanPG is the Postgres ledger repository. IDs come from the serial
// column, which preserves the max+1 allocation the flat file uses.
type LoanPG struct {
	db *pgxpool.Pool
}

func NewLoanPG(db *pgxpool.Pool) *LoanPG {
	return &LoanPG{db: db}
}

func (r *LoanPG) List(ctx context.Context) ([]loan.Loan, error) {
	const query = `
	SELECT id, user_id, book_id, loan_date, due_date, return_date, status, fine
	FROM loans
	ORDER BY id
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var loans []loan.Loan
	for rows.Next() {
		var l loan.Loan
		if err := rows.Scan(&l.ID, &l.UserID, &l.BookID, &l.LoanDate, &l.DueDate, &l.ReturnDate, &l.Status, &l.Fine); err != nil {
			return nil, err
		}
		loans = append(loans, l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return loans, nil
}

func (r *LoanPG) GetByID(ctx context.Context, id int64) (loan.Loan, error) {
	const query = `
	SELECT id, user_id, book_id, loan_date, due_date, return_date, status, fine
	FROM loans
	WHERE id = $1
	`
	var l loan.Loan
	err := r.db.QueryRow(ctx, query, id).Scan(
		&l.ID, &l.UserID, &l.BookID, &l.LoanDate, &l.DueDate, &l.ReturnDate, &l.Status, &l.Fine)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return loan.Loan{}, loan.ErrNotFound
		}
		return loan.Loan{}, err
	}
	return l, nil
}

func (r *LoanPG) Append(ctx context.Context, l *loan.Loan) error {
	const query = `
	INSERT INTO loans (user_id, book_id, loan_date, due_date, return_date, status, fine)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	RETURNING id
	`
	return r.db.QueryRow(ctx, query,
		l.UserID, l.BookID, l.LoanDate, l.DueDate, l.ReturnDate, l.Status, l.Fine).Scan(&l.ID)
}

func (r *LoanPG) Update(ctx context.Context, l *loan.Loan) error {
	const query = `
	UPDATE loans
	SET return_date = $2, status = $3, fine = $4
	WHERE id = $1
	`
	tag, err := r.db.Exec(ctx, query, l.ID, l.ReturnDate, l.Status, l.Fine)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return loan.ErrNotFound
	}
	return nil
}
