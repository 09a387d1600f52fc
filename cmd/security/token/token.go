package token

import (
	"crypto/rand"
	"encoding/base64"
)

const (
	// MinBytes is the entropy floor for session tokens (128 bits).
	MinBytes = 16

	// DefaultBytes is the entropy used when callers pass a non-positive size.
	DefaultBytes = 32
)

// NewSessionToken returns a cryptographically random opaque token.
// It is URL-safe (base64url, no padding) and carries nBytes of entropy.
//
// A failure of the system RNG is returned to the caller and must be treated
// as fatal for the current request; tokens are never minted from a degraded
// source.
func NewSessionToken(nBytes int) (string, error) {
	if nBytes <= 0 {
		nBytes = DefaultBytes
	}
	if nBytes < MinBytes {
		return "", ErrEntropyTooLow
	}

	b := make([]byte, nBytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}

	// URL-safe, no padding.
	return base64.RawURLEncoding.EncodeToString(b), nil
}
