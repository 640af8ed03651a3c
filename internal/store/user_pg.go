package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"libraryapi/internal/user"
)

// Postgres unique_violation, raised by the UNIQUE constraints on
// registration_number and email.
const pgUniqueViolation = "23505"

// UserPG is the Postgres user directory repository.
type UserPG struct {
	db *pgxpool.Pool
}

func NewUserPG(db *pgxpool.Pool) *UserPG {
	return &UserPG{db: db}
}

func (r *UserPG) GetByID(ctx context.Context, id int64) (user.User, error) {
	const query = `
	SELECT id, name, registration_number, type, email, active_since, status
	FROM users
	WHERE id = $1
	`
	var u user.User
	err := r.db.QueryRow(ctx, query, id).Scan(
		&u.ID, &u.Name, &u.RegistrationNumber, &u.Type, &u.Email, &u.ActiveSince, &u.Status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrNotFound
		}
		return user.User{}, err
	}
	return u, nil
}

func (r *UserPG) List(ctx context.Context) ([]user.User, error) {
	const query = `
	SELECT id, name, registration_number, type, email, active_since, status
	FROM users
	ORDER BY id
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []user.User
	for rows.Next() {
		var u user.User
		if err := rows.Scan(&u.ID, &u.Name, &u.RegistrationNumber, &u.Type, &u.Email, &u.ActiveSince, &u.Status); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *UserPG) Create(ctx context.Context, u *user.User) error {
	const query = `
	INSERT INTO users (name, registration_number, type, email, active_since, status)
	VALUES ($1, $2, $3, $4, $5, $6)
	RETURNING id
	`
	err := r.db.QueryRow(ctx, query,
		u.Name, u.RegistrationNumber, u.Type, u.Email, u.ActiveSince, u.Status).Scan(&u.ID)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return user.ErrDuplicate
	}
	return err
}
