package service

import (
	"encoding/base64"
	"unicode/utf8"

	"github.com/allisson/userguard/internal/crypto/domain"
)

// fieldCipher wraps an AEAD with the string envelope format:
// base64(nonce || ciphertext || tag).
type fieldCipher struct {
	aead AEAD
}

// NewFieldCipher creates a FieldCipher over the given AEAD.
func NewFieldCipher(aead AEAD) FieldCipher {
	return &fieldCipher{aead: aead}
}

// EncryptField seals the plaintext into an envelope. The nonce is random per
// call, so identical plaintexts produce distinct envelopes.
func (f *fieldCipher) EncryptField(plaintext string) (string, error) {
	ciphertext, nonce, err := f.aead.Encrypt([]byte(plaintext), nil)
	if err != nil {
		return "", err
	}

	envelope := make([]byte, 0, len(nonce)+len(ciphertext))
	envelope = append(envelope, nonce...)
	envelope = append(envelope, ciphertext...)
	return base64.StdEncoding.EncodeToString(envelope), nil
}

// DecryptField opens an envelope. Envelopes that do not decode, or are too
// short to hold a nonce plus tag, fail as malformed before any cipher work.
func (f *fieldCipher) DecryptField(envelope string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(envelope)
	if err != nil {
		return "", domain.ErrMalformedCiphertext
	}
	if len(raw) < domain.NonceSize+domain.TagSize {
		return "", domain.ErrMalformedCiphertext
	}

	nonce := raw[:domain.NonceSize]
	ciphertext := raw[domain.NonceSize:]

	plaintext, err := f.aead.Decrypt(ciphertext, nonce, nil)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(plaintext) {
		return "", domain.ErrInvalidPlaintext
	}
	return string(plaintext), nil
}
