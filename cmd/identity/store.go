package identity

import (
	"context"
	"time"
)

// User is taskd's security principal.
// PasswordHash is server-side only and must never appear in API responses.
type User struct {
	ID           int64
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// CreateUserInput describes a signup request that already passed validation
// and hashing; Email and PasswordHash must be non-empty.
type CreateUserInput struct {
	Email        string
	PasswordHash string
	Now          time.Time
}

// Store is the credential persistence boundary.
//
// All operations are single-statement point operations; implementations must
// not require callers to hold any lock across them.
type Store interface {
	// CreateUser inserts a new user row. A duplicate email yields a
	// ConflictError with Field "email".
	CreateUser(ctx context.Context, in CreateUserInput) (User, error)

	// GetUserByEmail performs an exact-match lookup (no case folding).
	GetUserByEmail(ctx context.Context, email string) (User, error)

	// GetUserByID loads a user by its generated id.
	GetUserByID(ctx context.Context, id int64) (User, error)
}
