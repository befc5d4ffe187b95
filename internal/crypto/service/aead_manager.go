package service

import (
	"github.com/allisson/userguard/internal/crypto/domain"
)

// AEADManager builds AEAD ciphers by algorithm name.
type AEADManager struct{}

// NewAEADManager creates a new AEADManager.
func NewAEADManager() *AEADManager {
	return &AEADManager{}
}

// CreateCipher returns the AEAD implementation for the given algorithm.
// Returns domain.ErrUnsupportedAlgorithm for unknown names.
func (m *AEADManager) CreateCipher(key *domain.DataKey, algorithm domain.Algorithm) (AEAD, error) {
	switch algorithm {
	case domain.AlgorithmAESGCM:
		return NewAESGCMCipher(key)
	case domain.AlgorithmChaCha20Poly1305:
		return NewChaCha20Poly1305Cipher(key)
	default:
		return nil, domain.ErrUnsupportedAlgorithm
	}
}
