// Package password provides password hashing and verification for taskd.
//
// It implements salted, adaptive-cost bcrypt hashing and includes:
// - A tunable work factor (via environment variables; baseline cost 10)
// - Password policy validation
// - Verification that treats stored hash strings as untrusted input
//
// Security notes:
// - A mismatch is a normal false result, never an error.
// - Verification refuses hashes whose declared cost exceeds a sane ceiling,
//   so a poisoned hash string cannot pin a CPU core.
package password
