package service

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"io"

	"github.com/allisson/userguard/internal/crypto/domain"
	"github.com/allisson/userguard/internal/errors"
)

// AESGCMCipher implements AEAD using AES-256-GCM.
type AESGCMCipher struct {
	aead cipher.AEAD
}

// NewAESGCMCipher creates an AES-256-GCM cipher from the data key.
func NewAESGCMCipher(key *domain.DataKey) (*AESGCMCipher, error) {
	block, err := aes.NewCipher(key.Bytes())
	if err != nil {
		return nil, errors.Wrap(err, "failed to create aes cipher")
	}

	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create gcm mode")
	}

	return &AESGCMCipher{aead: aead}, nil
}

// Encrypt seals plaintext under a fresh random 12-byte nonce.
func (c *AESGCMCipher) Encrypt(plaintext, aad []byte) ([]byte, []byte, error) {
	nonce := make([]byte, domain.NonceSize)
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, nil, errors.Wrap(err, "failed to generate nonce")
	}

	ciphertext := c.aead.Seal(nil, nonce, plaintext, aad)
	return ciphertext, nonce, nil
}

// Decrypt opens ciphertext, verifying the authentication tag.
func (c *AESGCMCipher) Decrypt(ciphertext, nonce, aad []byte) ([]byte, error) {
	plaintext, err := c.aead.Open(nil, nonce, ciphertext, aad)
	if err != nil {
		return nil, domain.ErrDecryptionFailed
	}
	return plaintext, nil
}
