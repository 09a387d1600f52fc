// Package token generates the opaque session tokens used by taskd.
//
// Tokens are the sole credential for an authenticated login instance, so the
// only property that matters is unpredictability:
// - Generated from crypto/rand, never from anything time- or counter-derived.
// - Minimum 16 bytes (128 bits) of entropy; default 32 bytes.
// - Encoded base64url without padding so they are cookie- and URL-safe.
//
// The plain token is the session's primary key; there is no server-side hash
// and no embedded structure to parse or verify.
package token
