// Package session implements taskd's session model.
//
// It provides multi-device sessions with per-session revocation. Each login
// mints one opaque random token; the token is the session row's primary key
// and is carried back to the server in a credential cookie.
//
// A session is valid if and only if its row exists: deletion is revocation,
// there is no revoked flag, and the server never applies expiry arithmetic.
// The cookie's client-side max-age is advisory only.
//
// Transport (HTTP) integration is intentionally out of scope here.
package session
