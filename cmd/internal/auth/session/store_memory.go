package session

import (
	"context"
	"sync"
)

// MemoryStore is a dev-only fallback when DB is not configured.
// It preserves the Postgres contract, including insertion-ordered listing
// and the atomic token+owner delete.
type MemoryStore struct {
	mu     sync.Mutex
	byID   map[string]Row
	byUser map[int64][]string // insertion-ordered token ids per user
}

// NewMemoryStore constructs an in-memory session store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		byID:   make(map[string]Row),
		byUser: make(map[int64][]string),
	}
}

// Create inserts a new session row.
func (s *MemoryStore) Create(ctx context.Context, row Row) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byID[row.ID]; exists {
		return ErrTokenCollision
	}
	s.byID[row.ID] = row
	s.byUser[row.UserID] = append(s.byUser[row.UserID], row.ID)
	return nil
}

// GetByID loads a session row by token.
func (s *MemoryStore) GetByID(ctx context.Context, sessionID string) (Row, error) {
	if err := ctx.Err(); err != nil {
		return Row{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	row, ok := s.byID[sessionID]
	if !ok {
		return Row{}, ErrSessionNotFound
	}
	return row, nil
}

// ListByUser returns the user's sessions in insertion order.
func (s *MemoryStore) ListByUser(ctx context.Context, userID int64) ([]Row, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	ids := s.byUser[userID]
	out := make([]Row, 0, len(ids))
	for _, id := range ids {
		if row, ok := s.byID[id]; ok {
			out = append(out, row)
		}
	}
	if len(out) == 0 {
		return nil, nil
	}
	return out, nil
}

// Delete removes a session unconditionally (idempotent).
func (s *MemoryStore) Delete(ctx context.Context, sessionID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.deleteLocked(sessionID)
	return nil
}

// DeleteOwned removes the session only when token and owner match.
func (s *MemoryStore) DeleteOwned(ctx context.Context, sessionID string, userID int64) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	row, ok := s.byID[sessionID]
	if !ok || row.UserID != userID {
		return false, nil
	}
	s.deleteLocked(sessionID)
	return true, nil
}

func (s *MemoryStore) deleteLocked(sessionID string) {
	row, ok := s.byID[sessionID]
	if !ok {
		return
	}
	delete(s.byID, sessionID)

	ids := s.byUser[row.UserID]
	for i, id := range ids {
		if id == sessionID {
			s.byUser[row.UserID] = append(ids[:i], ids[i+1:]...)
			break
		}
	}
}
