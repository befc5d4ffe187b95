package service

import (
	"github.com/allisson/go-pwdhash"

	"github.com/allisson/userguard/internal/errors"
)

// passwordService hashes passwords with Argon2id.
type passwordService struct {
	hasher *pwdhash.PasswordHasher
}

// NewPasswordService creates a PasswordService using the interactive Argon2id
// policy, suitable for login-path verification latency.
func NewPasswordService() (PasswordService, error) {
	hasher, err := pwdhash.New(pwdhash.WithPolicy(pwdhash.PolicyInteractive))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create password hasher")
	}
	return &passwordService{hasher: hasher}, nil
}

// Hash derives an Argon2id hash from the password.
func (s *passwordService) Hash(password string) (string, error) {
	hash, err := s.hasher.Hash([]byte(password))
	if err != nil {
		return "", errors.Wrap(err, "failed to hash password")
	}
	return hash, nil
}

// Verify reports whether the password matches the stored hash. Any parse
// failure counts as a mismatch.
func (s *passwordService) Verify(hash, password string) bool {
	ok, err := s.hasher.Verify([]byte(password), hash)
	return err == nil && ok
}
