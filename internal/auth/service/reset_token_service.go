package service

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"io"

	"github.com/allisson/userguard/internal/errors"
)

// resetTokenBytes is the entropy of a raw reset token.
const resetTokenBytes = 32

// resetTokenService generates URL-safe random tokens and SHA-256 hashes them
// for storage. A database dump exposes only hashes, never usable tokens.
type resetTokenService struct{}

// NewResetTokenService creates a ResetTokenService.
func NewResetTokenService() ResetTokenService {
	return &resetTokenService{}
}

// Generate returns a fresh token and its storage hash.
func (s *resetTokenService) Generate() (string, string, error) {
	raw := make([]byte, resetTokenBytes)
	if _, err := io.ReadFull(rand.Reader, raw); err != nil {
		return "", "", errors.Wrap(err, "failed to generate reset token")
	}
	token := base64.RawURLEncoding.EncodeToString(raw)
	return token, s.Hash(token), nil
}

// Hash computes the hex-encoded SHA-256 of a token.
func (s *resetTokenService) Hash(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
