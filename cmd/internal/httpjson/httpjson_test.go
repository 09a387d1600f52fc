package httpjson

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

type payload struct {
	Email string `json:"email"`
}

func decodeString(t *testing.T, body string, maxBytes int64) (payload, error) {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	rec := httptest.NewRecorder()

	var p payload
	err := Decode(rec, req, maxBytes, &p)
	return p, err
}

func TestDecode_SingleValue(t *testing.T) {
	t.Parallel()

	p, err := decodeString(t, `{"email":"a@x.com"}`, 0)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if p.Email != "a@x.com" {
		t.Fatalf("unexpected payload: %+v", p)
	}
}

func TestDecode_RejectsBadBodies(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		body     string
		maxBytes int64
	}{
		{name: "malformed", body: `{"email":`},
		{name: "unknown field", body: `{"email":"a@x.com","extra":1}`},
		{name: "trailing data", body: `{"email":"a@x.com"}{"email":"b@x.com"}`},
		{name: "over max bytes", body: `{"email":"` + strings.Repeat("a", 64) + `"}`, maxBytes: 16},
	}
	for _, tc := range cases {
		if _, err := decodeString(t, tc.body, tc.maxBytes); !errors.Is(err, ErrBadBody) {
			t.Fatalf("%s: expected ErrBadBody, got %v", tc.name, err)
		}
	}
}

func TestWriteError_Envelope(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	WriteError(rec, http.StatusBadRequest, "validation_error", "email is required")

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status=%d", rec.Code)
	}
	if got := rec.Header().Get("Cache-Control"); got != "no-store" {
		t.Fatalf("cache-control=%q", got)
	}
	want := `{"error":{"code":"validation_error","message":"email is required"}}` + "\n"
	if rec.Body.String() != want {
		t.Fatalf("body=%q want=%q", rec.Body.String(), want)
	}
}
