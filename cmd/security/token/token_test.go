package token

import (
	"encoding/base64"
	"testing"
)

func TestNewSessionToken_Default(t *testing.T) {
	tok, err := NewSessionToken(0)
	if err != nil {
		t.Fatalf("NewSessionToken: %v", err)
	}

	raw, err := base64.RawURLEncoding.DecodeString(tok)
	if err != nil {
		t.Fatalf("token is not base64url: %v", err)
	}
	if len(raw) != DefaultBytes {
		t.Fatalf("expected %d bytes of entropy, got %d", DefaultBytes, len(raw))
	}
}

func TestNewSessionToken_RejectsLowEntropy(t *testing.T) {
	if _, err := NewSessionToken(8); err != ErrEntropyTooLow {
		t.Fatalf("expected ErrEntropyTooLow, got %v", err)
	}
}

func TestNewSessionToken_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		tok, err := NewSessionToken(MinBytes)
		if err != nil {
			t.Fatalf("NewSessionToken: %v", err)
		}
		if seen[tok] {
			t.Fatalf("duplicate token after %d draws", i)
		}
		seen[tok] = true
	}
}
