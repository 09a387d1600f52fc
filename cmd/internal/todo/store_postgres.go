package todo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStore implements Store using PostgreSQL (taskd.todos).
//
// The pgx pool is owned by the caller and is never closed here.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a Postgres-backed todo store.
func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

// Create inserts a new todo.
func (s *PostgresStore) Create(ctx context.Context, t Todo) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO taskd.todos (id, user_id, title, done, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, t.ID, t.UserID, t.Title, t.Done, t.CreatedAt, t.UpdatedAt)
	return err
}

// ListByUser returns the user's todos in creation order.
func (s *PostgresStore) ListByUser(ctx context.Context, userID int64) ([]Todo, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, user_id, title, done, created_at, updated_at
		FROM taskd.todos
		WHERE user_id = $1
		ORDER BY id
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Todo
	for rows.Next() {
		var t Todo
		if err := rows.Scan(&t.ID, &t.UserID, &t.Title, &t.Done, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// UpdateOwned applies a partial update iff id and owner match.
func (s *PostgresStore) UpdateOwned(ctx context.Context, in UpdateInput) (Todo, error) {
	var t Todo

	err := s.pool.QueryRow(ctx, `
		UPDATE taskd.todos
		SET title = COALESCE($3, title),
		    done = COALESCE($4, done),
		    updated_at = $5
		WHERE id = $1 AND user_id = $2
		RETURNING id, user_id, title, done, created_at, updated_at
	`, in.ID, in.UserID, in.Title, in.Done, in.Now).
		Scan(&t.ID, &t.UserID, &t.Title, &t.Done, &t.CreatedAt, &t.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Todo{}, ErrNotFound
	}
	if err != nil {
		return Todo{}, err
	}

	return t, nil
}

// DeleteOwned removes the todo iff id and owner match.
func (s *PostgresStore) DeleteOwned(ctx context.Context, id string, userID int64) error {
	tag, err := s.pool.Exec(ctx, `
		DELETE FROM taskd.todos WHERE id = $1 AND user_id = $2
	`, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
