// Package authapi exposes the authentication HTTP surface: signup, login,
// session listing, per-session revocation, and logout, plus the RequireSession
// middleware that gates every protected route.
package authapi
