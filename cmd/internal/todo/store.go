package todo

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when a todo does not exist or belongs to
// another user. The two cases are deliberately indistinguishable.
var ErrNotFound = errors.New("todo: not found")

// Todo is one list entry. IDs are ULIDs, so lexicographic order follows
// creation order.
type Todo struct {
	ID        string
	UserID    int64
	Title     string
	Done      bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// UpdateInput carries a partial update. Nil fields are left unchanged.
type UpdateInput struct {
	ID     string
	UserID int64
	Title  *string
	Done   *bool
	Now    time.Time
}

// Store is the todo persistence boundary. All mutating operations match on
// both id and owner in a single atomic statement.
type Store interface {
	Create(ctx context.Context, t Todo) error

	// ListByUser returns the user's todos in creation order.
	ListByUser(ctx context.Context, userID int64) ([]Todo, error)

	// UpdateOwned applies the partial update iff id and owner match,
	// returning the updated row or ErrNotFound.
	UpdateOwned(ctx context.Context, in UpdateInput) (Todo, error)

	// DeleteOwned removes the todo iff id and owner match, or ErrNotFound.
	DeleteOwned(ctx context.Context, id string, userID int64) error
}
