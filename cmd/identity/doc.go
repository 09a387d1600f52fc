// Package identity implements taskd's credential store.
//
// It owns the user record (email plus salted password hash) and nothing
// else: users are created at signup and immutable afterwards. Password
// hashing itself lives in cmd/security/password; this package only persists
// and retrieves the resulting hash.
//
// Emails are unique and matched exactly as stored; no case folding or other
// normalization is applied on either write or read.
package identity
