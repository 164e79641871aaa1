// Package store provides access to the users table. All queries are
// parameterized; rows are insert-only (no update or delete paths).
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound is returned when no user row matches a lookup.
var ErrNotFound = errors.New("user not found")

// User is one row of the users table. HashedPassword holds the bcrypt
// output, never a raw password.
type User struct {
	Email          string
	HashedPassword string
	Username       string
}

// Users runs queries against the users table.
type Users struct {
	db *sql.DB
}

func NewUsers(db *sql.DB) *Users {
	return &Users{db: db}
}

// EmailExists reports whether a user with the exact email is registered.
func (s *Users) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := s.db.QueryRowContext(ctx,
		"SELECT EXISTS(SELECT 1 FROM users WHERE email = ?)", email).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return exists, nil
}

// Create inserts a new user. The UNIQUE constraint on email is the
// authoritative guard against two concurrent signups racing past the
// EmailExists pre-check; callers can detect that case with
// IsUniqueViolation.
func (s *Users) Create(ctx context.Context, u *User) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO users(email, hashed_password, username) VALUES(?,?,?)",
		u.Email, u.HashedPassword, u.Username)
	if err != nil {
		return fmt.Errorf("inserting user: %w", err)
	}
	return nil
}

// GetByEmail fetches a user by exact email match. Returns ErrNotFound
// when no row exists.
func (s *Users) GetByEmail(ctx context.Context, email string) (*User, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT email, hashed_password, username FROM users WHERE email = ?", email)
	var u User
	if err := row.Scan(&u.Email, &u.HashedPassword, &u.Username); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return &u, nil
}

// IsUniqueViolation looks for the SQLite unique constraint error message.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
