package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"peopleRegistry/internal/db"
	"peopleRegistry/models"
)

// DefaultTimeout bounds a single statement when no timeout is configured.
const DefaultTimeout = 3 * time.Second

type UserRepository struct {
	db      *sql.DB
	timeout time.Duration
}

func NewUserRepository(d *sql.DB) *UserRepository {
	return &UserRepository{db: d, timeout: DefaultTimeout}
}

// WithTimeout returns a copy of the repository using the given per-statement timeout.
func (r *UserRepository) WithTimeout(d time.Duration) *UserRepository {
	if d <= 0 {
		d = DefaultTimeout
	}
	return &UserRepository{db: r.db, timeout: d}
}

// EnsureSchema creates the usuarios table if absent.
func (r *UserRepository) EnsureSchema(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()
	return db.EnsureSchema(ctx, r.db)
}

// Add inserts a new user and returns it with its generated ID.
// No validation happens here; the caller decides what is acceptable.
func (r *UserRepository) Add(ctx context.Context, name, email string) (*models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	res, err := r.db.ExecContext(ctx, `INSERT INTO usuarios (nome, email) VALUES (?, ?)`, name, email)
	if err != nil {
		return nil, fmt.Errorf("insert usuario: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	return &models.User{ID: id, Name: name, Email: email}, nil
}

// List returns every user in primary key order.
func (r *UserRepository) List(ctx context.Context) ([]models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, `SELECT id, nome, email FROM usuarios ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list usuarios: %w", err)
	}
	defer rows.Close()
	out := []models.User{}
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Update overwrites name and email of the user with the given id.
// An unknown id is not an error; nothing changes.
func (r *UserRepository) Update(ctx context.Context, id int64, name, email string) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	if _, err := r.db.ExecContext(ctx, `UPDATE usuarios SET nome = ?, email = ? WHERE id = ?`, name, email, id); err != nil {
		return fmt.Errorf("update usuario %d: %w", id, err)
	}
	return nil
}

// Delete removes the user with the given id. An unknown id is a no-op.
func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	if _, err := r.db.ExecContext(ctx, `DELETE FROM usuarios WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete usuario %d: %w", id, err)
	}
	return nil
}
