package srp

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite" // registers the "sqlite" driver
)

const createUsersTable = `
CREATE TABLE IF NOT EXISTS users (
	id   TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	age  INTEGER NOT NULL
)`

// SQLRepository stores users in a SQL database through database/sql.
//
// Swapping MemoryRepository for SQLRepository changes nothing in User or the
// reporters: storage is its own responsibility.
type SQLRepository struct {
	db *sql.DB
}

// NewSQLRepository wraps an existing handle. The users table must exist.
func NewSQLRepository(db *sql.DB) *SQLRepository {
	return &SQLRepository{db: db}
}

// OpenSQLite opens a SQLite database (":memory:" works) and creates the users table.
func OpenSQLite(ctx context.Context, dsn string) (*SQLRepository, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("srp: open sqlite: %w", err)
	}
	// every connection to ":memory:" is a separate database.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, createUsersTable); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("srp: create users table: %w", err)
	}
	return &SQLRepository{db: db}, nil
}

// Close releases the underlying database handle.
func (r *SQLRepository) Close() error { return r.db.Close() }

// Save upserts u by ID.
func (r *SQLRepository) Save(ctx context.Context, u *User) error {
	if u == nil {
		return ErrNilUser
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO users (id, name, age) VALUES (?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET name = excluded.name, age = excluded.age`,
		u.ID, u.Name, u.Age,
	)
	if err != nil {
		return fmt.Errorf("srp: save user %s: %w", u.ID, err)
	}
	return nil
}

// FindByID loads a user by ID.
func (r *SQLRepository) FindByID(ctx context.Context, id string) (*User, error) {
	var u User
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, age FROM users WHERE id = ?`, id,
	).Scan(&u.ID, &u.Name, &u.Age)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, NotFoundError{ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("srp: find user %s: %w", id, err)
	}
	return &u, nil
}
