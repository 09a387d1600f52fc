// Package httpjson carries the JSON envelope shared by every taskd HTTP
// surface: success payloads, the {"error":{code,message}} failure shape, and
// a strict request decoder.
package httpjson

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
)

// DefaultMaxBodyBytes bounds request bodies when a surface has no tighter
// limit of its own.
const DefaultMaxBodyBytes = 1 << 20 // 1 MiB

// ErrBadBody classifies every request-body defect the decoder rejects:
// malformed JSON, unknown fields, oversized bodies, trailing data.
var ErrBadBody = errors.New("httpjson: bad request body")

// ErrorBody is the wire form of a single API error.
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an ErrorBody the way taskd clients expect it.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// Success is the body of mutation endpoints that return no resource.
type Success struct {
	Success bool `json:"success"`
}

// Write encodes v as a non-cacheable JSON response.
func Write(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError emits the error envelope with a stable code and a message safe
// to show to clients.
func WriteError(w http.ResponseWriter, status int, code, msg string) {
	Write(w, status, ErrorResponse{Error: ErrorBody{Code: code, Message: msg}})
}

// Decode reads exactly one JSON value into dst. Unknown fields, bodies over
// maxBytes, and trailing data after the value all fail with ErrBadBody; the
// caller maps that to a single 400.
func Decode(w http.ResponseWriter, r *http.Request, maxBytes int64, dst any) error {
	if r.Body == nil {
		return ErrBadBody
	}
	defer func() { _ = r.Body.Close() }()

	if maxBytes <= 0 {
		maxBytes = DefaultMaxBodyBytes
	}

	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return errors.Join(ErrBadBody, err)
	}

	var trailing json.RawMessage
	if err := dec.Decode(&trailing); !errors.Is(err, io.EOF) {
		return ErrBadBody
	}
	return nil
}
