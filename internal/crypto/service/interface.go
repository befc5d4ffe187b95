// Package service implements the field encryption services: AEAD ciphers,
// the envelope codec for string fields, and the transparent storage codec.
package service

// AEAD is an authenticated cipher over raw byte payloads. Implementations
// generate a fresh random nonce per encryption.
type AEAD interface {
	// Encrypt seals plaintext with optional additional authenticated data and
	// returns the ciphertext (including tag) together with the nonce used.
	Encrypt(plaintext, aad []byte) (ciphertext, nonce []byte, err error)

	// Decrypt opens ciphertext produced by Encrypt. Returns
	// domain.ErrDecryptionFailed when authentication fails.
	Decrypt(ciphertext, nonce, aad []byte) ([]byte, error)
}

// FieldCipher encrypts and decrypts string fields using the envelope format
// base64(nonce || ciphertext || tag).
type FieldCipher interface {
	// EncryptField seals a plaintext string into an envelope. Encrypting the
	// same value twice yields different envelopes.
	EncryptField(plaintext string) (string, error)

	// DecryptField opens an envelope back into the plaintext string. Returns
	// domain.ErrMalformedCiphertext for undecodable or truncated envelopes and
	// domain.ErrDecryptionFailed for tampered ones.
	DecryptField(envelope string) (string, error)
}

// FieldCodec converts optional field values between their domain form and
// their storage form. A nil pointer passes through untouched in both
// directions.
type FieldCodec interface {
	// ToStorage encrypts an optional plaintext field for persistence.
	ToStorage(plaintext *string) (*string, error)

	// ToDomain decrypts an optional stored field for use. Any failure is an
	// error; a corrupt stored value never silently round-trips.
	ToDomain(stored *string) (*string, error)
}
