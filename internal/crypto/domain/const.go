// Package domain contains the core types for field-level encryption of
// sensitive user data.
package domain

const (
	// KeySize is the required size in bytes of the data encryption key.
	KeySize = 32

	// NonceSize is the size in bytes of the random nonce prepended to every
	// ciphertext envelope.
	NonceSize = 12

	// TagSize is the size in bytes of the authentication tag appended by the
	// AEAD cipher.
	TagSize = 16
)

// Algorithm identifies an AEAD cipher used for field encryption.
type Algorithm string

const (
	// AlgorithmAESGCM is AES-256 in Galois/Counter Mode.
	AlgorithmAESGCM Algorithm = "aes-gcm"

	// AlgorithmChaCha20Poly1305 is the ChaCha20-Poly1305 AEAD construction.
	AlgorithmChaCha20Poly1305 Algorithm = "chacha20-poly1305"
)

// IsValid reports whether the algorithm is one of the supported AEAD ciphers.
func (a Algorithm) IsValid() bool {
	switch a {
	case AlgorithmAESGCM, AlgorithmChaCha20Poly1305:
		return true
	}
	return false
}
