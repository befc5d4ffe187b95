package service

import (
	"crypto/cipher"
	"crypto/rand"
	"io"

	"golang.org/x/crypto/chacha20poly1305"

	"github.com/allisson/userguard/internal/crypto/domain"
	"github.com/allisson/userguard/internal/errors"
)

// ChaCha20Poly1305Cipher implements AEAD using ChaCha20-Poly1305. Same key,
// nonce, and tag sizes as AES-256-GCM, so both ciphers produce envelopes with
// identical layout.
type ChaCha20Poly1305Cipher struct {
	aead cipher.AEAD
}

// NewChaCha20Poly1305Cipher creates a ChaCha20-Poly1305 cipher from the data key.
func NewChaCha20Poly1305Cipher(key *domain.DataKey) (*ChaCha20Poly1305Cipher, error) {
	aead, err := chacha20poly1305.New(key.Bytes())
	if err != nil {
		return nil, errors.Wrap(err, "failed to create chacha20-poly1305 cipher")
	}
	return &ChaCha20Poly1305Cipher{aead: aead}, nil
}

// Encrypt seals plaintext under a fresh random 12-byte nonce.
func (c *ChaCha20Poly1305Cipher) Encrypt(plaintext, aad []byte) ([]byte, []byte, error) {
	nonce := make([]byte, domain.NonceSize)
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, nil, errors.Wrap(err, "failed to generate nonce")
	}

	ciphertext := c.aead.Seal(nil, nonce, plaintext, aad)
	return ciphertext, nonce, nil
}

// Decrypt opens ciphertext, verifying the authentication tag.
func (c *ChaCha20Poly1305Cipher) Decrypt(ciphertext, nonce, aad []byte) ([]byte, error) {
	plaintext, err := c.aead.Open(nil, nonce, ciphertext, aad)
	if err != nil {
		return nil, domain.ErrDecryptionFailed
	}
	return plaintext, nil
}
