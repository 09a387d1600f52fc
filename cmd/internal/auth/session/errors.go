package session

import "errors"

var (
	// ErrSessionNotFound is returned when a token does not match any session row.
	ErrSessionNotFound = errors.New("session not found")

	// ErrTokenCollision is returned when a freshly minted token collides with
	// an existing primary key. With 256-bit tokens this is astronomically
	// unlikely; it fails loudly instead of silently overwriting the row.
	ErrTokenCollision = errors.New("session token collision")

	// ErrNotOwned is returned when a revoke names a session that does not
	// belong to the requesting user. Callers must surface it exactly like a
	// successful revoke so existence is never confirmed to a non-owner.
	ErrNotOwned = errors.New("session not owned by requester")

	// ErrConfig is returned for invalid configuration.
	ErrConfig = errors.New("invalid config")
)
