package todo

import (
	"context"
	"sort"
	"sync"
)

// MemoryStore is a dev-only fallback when DB is not configured.
type MemoryStore struct {
	mu   sync.Mutex
	byID map[string]Todo
}

// NewMemoryStore constructs an in-memory todo store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{byID: make(map[string]Todo)}
}

// Create inserts a new todo.
func (s *MemoryStore) Create(ctx context.Context, t Todo) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.byID[t.ID] = t
	return nil
}

// ListByUser returns the user's todos in creation order.
func (s *MemoryStore) ListByUser(ctx context.Context, userID int64) ([]Todo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var out []Todo
	for _, t := range s.byID {
		if t.UserID == userID {
			out = append(out, t)
		}
	}
	// ULIDs sort lexicographically by creation time.
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// UpdateOwned applies a partial update iff id and owner match.
func (s *MemoryStore) UpdateOwned(ctx context.Context, in UpdateInput) (Todo, error) {
	if err := ctx.Err(); err != nil {
		return Todo{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.byID[in.ID]
	if !ok || t.UserID != in.UserID {
		return Todo{}, ErrNotFound
	}

	if in.Title != nil {
		t.Title = *in.Title
	}
	if in.Done != nil {
		t.Done = *in.Done
	}
	t.UpdatedAt = in.Now
	s.byID[in.ID] = t
	return t, nil
}

// DeleteOwned removes the todo iff id and owner match.
func (s *MemoryStore) DeleteOwned(ctx context.Context, id string, userID int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.byID[id]
	if !ok || t.UserID != userID {
		return ErrNotFound
	}
	delete(s.byID, id)
	return nil
}
