package session

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStore implements Store using PostgreSQL (taskd.sessions).
//
// The pgx pool is owned by the caller and is never closed here.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a Postgres-backed session store.
func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

// Create inserts a new session row.
func (s *PostgresStore) Create(ctx context.Context, row Row) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO taskd.sessions (id, user_id, device, created_at)
		VALUES ($1, $2, $3, $4)
	`, row.ID, row.UserID, row.Device, row.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return ErrTokenCollision
		}
		return err
	}
	return nil
}

// GetByID loads a session row by token.
func (s *PostgresStore) GetByID(ctx context.Context, sessionID string) (Row, error) {
	var row Row

	err := s.pool.QueryRow(ctx, `
		SELECT id, user_id, device, created_at
		FROM taskd.sessions
		WHERE id = $1
	`, sessionID).Scan(&row.ID, &row.UserID, &row.Device, &row.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Row{}, ErrSessionNotFound
	}
	if err != nil {
		return Row{}, err
	}

	return row, nil
}

// ListByUser returns the user's sessions in creation order.
func (s *PostgresStore) ListByUser(ctx context.Context, userID int64) ([]Row, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, user_id, device, created_at
		FROM taskd.sessions
		WHERE user_id = $1
		ORDER BY created_at, id
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Row
	for rows.Next() {
		var row Row
		if err := rows.Scan(&row.ID, &row.UserID, &row.Device, &row.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// Delete removes a session unconditionally (idempotent).
func (s *PostgresStore) Delete(ctx context.Context, sessionID string) error {
	_, err := s.pool.Exec(ctx, `
		DELETE FROM taskd.sessions WHERE id = $1
	`, sessionID)
	return err
}

// DeleteOwned removes the session only when token and owner match.
func (s *PostgresStore) DeleteOwned(ctx context.Context, sessionID string, userID int64) (bool, error) {
	tag, err := s.pool.Exec(ctx, `
		DELETE FROM taskd.sessions WHERE id = $1 AND user_id = $2
	`, sessionID, userID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
