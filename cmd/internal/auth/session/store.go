package session

import (
	"context"
	"time"
)

// DeviceUnknown is recorded when login request metadata carries no usable
// device description.
const DeviceUnknown = "Unknown Device"

// Row mirrors the taskd.sessions row.
//
// ID is the opaque token itself; there is no separate surrogate key. The
// session list a user sees therefore contains exactly the values accepted by
// revocation.
type Row struct {
	ID        string
	UserID    int64
	Device    string
	CreatedAt time.Time
}

// Store abstracts persistence for session state.
//
// Every method is a single-statement point operation; a concurrent delete and
// lookup on the same token observe either the pre- or post-delete state,
// never a partial row.
type Store interface {
	// Create inserts a new session row. A primary-key collision yields
	// ErrTokenCollision; the existing row is left untouched.
	Create(ctx context.Context, row Row) error

	// GetByID loads a session row by token.
	GetByID(ctx context.Context, sessionID string) (Row, error)

	// ListByUser returns all sessions owned by the user, ordered by an
	// explicit creation-time clause.
	ListByUser(ctx context.Context, userID int64) ([]Row, error)

	// Delete removes a single session unconditionally (idempotent).
	Delete(ctx context.Context, sessionID string) error

	// DeleteOwned removes the session only when both token and owner match,
	// in one atomic statement. It reports whether a row was deleted.
	DeleteOwned(ctx context.Context, sessionID string, userID int64) (bool, error)
}
