package domain

import (
	"github.com/allisson/userguard/internal/errors"
)

var (
	// ErrInvalidKeySize indicates the configured data encryption key does not
	// decode to exactly KeySize bytes. This is a startup-time error.
	ErrInvalidKeySize = errors.Wrap(errors.ErrConfiguration, "data encryption key must decode to exactly 32 bytes")

	// ErrInvalidKeyEncoding indicates the configured data encryption key is not
	// valid standard base64.
	ErrInvalidKeyEncoding = errors.Wrap(errors.ErrConfiguration, "data encryption key must be standard base64")

	// ErrUnsupportedAlgorithm indicates an unknown cipher algorithm was requested.
	ErrUnsupportedAlgorithm = errors.Wrap(errors.ErrConfiguration, "unsupported cipher algorithm")

	// ErrMalformedCiphertext indicates a stored value is not a valid ciphertext
	// envelope: bad base64, or too short to contain a nonce and tag.
	//
	// The ciphertext errors below deliberately wrap no client-facing sentinel.
	// They only occur on data the service itself wrote, so the HTTP boundary
	// reports them as a generic internal error; which check failed stays in
	// the logs.
	ErrMalformedCiphertext = errors.New("malformed ciphertext")

	// ErrDecryptionFailed indicates authentication of the ciphertext failed.
	// The value was tampered with or encrypted under a different key.
	ErrDecryptionFailed = errors.New("decryption failed")

	// ErrInvalidPlaintext indicates decrypted bytes are not valid UTF-8.
	ErrInvalidPlaintext = errors.New("decrypted payload is not valid text")
)
