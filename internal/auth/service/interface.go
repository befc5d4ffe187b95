// Package service implements the auth building blocks: JWT access tokens,
// opaque reset tokens, and password hashing.
package service

import (
	"time"
)

// TokenService issues and validates signed access tokens.
type TokenService interface {
	// Issue creates a signed token for the subject and returns it with its
	// expiry.
	Issue(subject string) (token string, expiresAt time.Time, err error)

	// Validate verifies a token and returns its subject. Failures map to the
	// token errors in the auth domain package.
	Validate(token string) (subject string, err error)
}

// ResetTokenService generates opaque reset tokens and their storage hashes.
type ResetTokenService interface {
	// Generate returns a fresh random token and the hash under which it is
	// persisted.
	Generate() (token string, tokenHash string, err error)

	// Hash computes the storage hash of a presented token.
	Hash(token string) string
}

// PasswordService hashes and verifies passwords.
type PasswordService interface {
	// Hash derives a storable hash from a plaintext password.
	Hash(password string) (string, error)

	// Verify reports whether the password matches the stored hash.
	Verify(hash, password string) bool
}
