package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"libraryapi/internal/catalog"
)

// BookPG is the Postgres catalog repository.
type BookPG struct {
	db *pgxpool.Pool
}

func NewBookPG(db *pgxpool.Pool) *BookPG {
	return &BookPG{db: db}
}

func (r *BookPG) GetByID(ctx context.Context, id int64) (catalog.Book, error) {
	const query = `
	SELECT id, title, author, isbn, status
	FROM books
	WHERE id = $1
	`
	var b catalog.Book
	err := r.db.QueryRow(ctx, query, id).Scan(&b.ID, &b.Title, &b.Author, &b.ISBN, &b.Status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return catalog.Book{}, catalog.ErrNotFound
		}
		return catalog.Book{}, err
	}
	return b, nil
}

func (r *BookPG) List(ctx context.Context) ([]catalog.Book, error) {
	const query = `
	SELECT id, title, author, isbn, status
	FROM books
	ORDER BY id
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var books []catalog.Book
	for rows.Next() {
		var b catalog.Book
		if err := rows.Scan(&b.ID, &b.Title, &b.Author, &b.ISBN, &b.Status); err != nil {
			return nil, err
		}
		books = append(books, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return books, nil
}

func (r *BookPG) Add(ctx context.Context, b *catalog.Book) error {
	const query = `
	INSERT INTO books (title, author, isbn, status)
	VALUES ($1, $2, $3, $4)
	RETURNING id
	`
	return r.db.QueryRow(ctx, query, b.Title, b.Author, b.ISBN, b.Status).Scan(&b.ID)
}

func (r *BookPG) SetStatus(ctx context.Context, id int64, status catalog.Status) error {
	const query = `
	UPDATE books SET status = $2 WHERE id = $1
	`
	tag, err := r.db.Exec(ctx, query, id, status)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return catalog.ErrNotFound
	}
	return nil
}
