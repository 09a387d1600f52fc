package session

import (
	"context"
	"errors"
	"strings"
	"time"

	"taskd/cmd/security/token"
)

// Service implements the high-level session operations for taskd.
//
// It is the sole authority for "is this request authenticated": it mints
// opaque tokens bound to a user and device, resolves tokens back to user ids,
// enumerates a user's sessions, and revokes them one at a time.
type Service struct {
	cfg   Config
	store Store
}

// Validation is the explicit outcome of a token check.
//
// The zero value means "checked and invalid", so callers can never mistake an
// unchecked token for a valid one; UserID is meaningful only when Valid.
type Validation struct {
	Valid  bool
	UserID int64
}

// NewService constructs a Service with the provided configuration and store.
func NewService(cfg Config, store Store) *Service {
	return &Service{cfg: cfg, store: store}
}

// Create mints a fresh high-entropy token, persists the session row, and
// returns it. Device is a free-text descriptor captured for the session list;
// a blank descriptor is recorded as DeviceUnknown.
//
// A primary-key collision on insert propagates as ErrTokenCollision; the
// caller treats it as a server error, not something to retry silently.
func (s *Service) Create(ctx context.Context, now time.Time, userID int64, device string) (Row, error) {
	tok, err := token.NewSessionToken(s.cfg.TokenBytes)
	if err != nil {
		return Row{}, err
	}

	device = strings.TrimSpace(device)
	if device == "" {
		device = DeviceUnknown
	}
	if now.IsZero() {
		now = time.Now().UTC()
	}

	row := Row{
		ID:        tok,
		UserID:    userID,
		Device:    device,
		CreatedAt: now,
	}

	if err := s.store.Create(ctx, row); err != nil {
		return Row{}, err
	}
	return row, nil
}

// Validate resolves a token to its owning user.
//
// Presence in the store is the only validity criterion; no expiry
// arithmetic happens here or anywhere else server-side. A missing row is a
// normal Validation{Valid: false}, not an error; only storage failures
// propagate as errors.
func (s *Service) Validate(ctx context.Context, sessionID string) (Validation, error) {
	sessionID = strings.TrimSpace(sessionID)
	// Bound pathological inputs before touching the store.
	if sessionID == "" || len(sessionID) > 512 {
		return Validation{}, nil
	}

	row, err := s.store.GetByID(ctx, sessionID)
	if errors.Is(err, ErrSessionNotFound) {
		return Validation{}, nil
	}
	if err != nil {
		return Validation{}, err
	}

	return Validation{Valid: true, UserID: row.UserID}, nil
}

// List returns all sessions owned by the user, for the device-management UI.
func (s *Service) List(ctx context.Context, userID int64) ([]Row, error) {
	return s.store.ListByUser(ctx, userID)
}

// Revoke deletes the named session only if it belongs to requestingUserID.
//
// This is the critical authorization check of the component: the match of
// token and owner happens in a single atomic delete, so a user can never
// remove another user's session by guessing its token. A non-match returns
// ErrNotOwned with nothing deleted.
func (s *Service) Revoke(ctx context.Context, sessionID string, requestingUserID int64) error {
	deleted, err := s.store.DeleteOwned(ctx, sessionID, requestingUserID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotOwned
	}
	return nil
}

// RevokeCurrent unconditionally deletes the caller's own presented token
// (self-logout). Possession of the token is the ownership proof, so no
// owner check is needed.
func (s *Service) RevokeCurrent(ctx context.Context, sessionID string) error {
	return s.store.Delete(ctx, sessionID)
}
