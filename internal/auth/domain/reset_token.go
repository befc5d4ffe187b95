// Package domain contains the core entities for authentication: password
// reset tokens and the input/output types of the auth operations.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// ResetToken is a single-use password reset token. Only the SHA-256 hash of
// the opaque token is persisted; the raw token is handed to the requester
// once and never stored.
type ResetToken struct {
	ID        uuid.UUID `json:"id" db:"id"`
	TokenHash string    `json:"-" db:"token_hash"`
	UserID    uuid.UUID `json:"user_id" db:"user_id"`
	ExpiresAt time.Time `json:"expires_at" db:"expires_at"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// IsExpired reports whether the token is past its expiry at the given instant.
func (r *ResetToken) IsExpired(now time.Time) bool {
	return !now.Before(r.ExpiresAt)
}

// NewResetToken creates a ResetToken for a user with the given lifetime.
func NewResetToken(userID uuid.UUID, tokenHash string, lifetime time.Duration) *ResetToken {
	now := time.Now().UTC()
	return &ResetToken{
		ID:        uuid.Must(uuid.NewV7()),
		TokenHash: tokenHash,
		UserID:    userID,
		ExpiresAt: now.Add(lifetime),
		CreatedAt: now,
	}
}
