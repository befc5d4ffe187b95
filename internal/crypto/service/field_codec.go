package service

import (
	"github.com/allisson/userguard/internal/errors"
)

// fieldCodec is the transparent storage codec for optional string fields.
// It fails closed: every error from the underlying cipher propagates, so a
// corrupt stored value can never be read back as if it were plaintext.
type fieldCodec struct {
	cipher FieldCipher
}

// NewFieldCodec creates a FieldCodec over the given FieldCipher. A nil cipher
// is a wiring mistake and is rejected.
func NewFieldCodec(cipher FieldCipher) (FieldCodec, error) {
	if cipher == nil {
		return nil, errors.Wrap(errors.ErrConfiguration, "field codec requires a cipher")
	}
	return &fieldCodec{cipher: cipher}, nil
}

// ToStorage encrypts the field. Nil stays nil.
func (c *fieldCodec) ToStorage(plaintext *string) (*string, error) {
	if plaintext == nil {
		return nil, nil
	}
	envelope, err := c.cipher.EncryptField(*plaintext)
	if err != nil {
		return nil, err
	}
	return &envelope, nil
}

// ToDomain decrypts the field. Nil stays nil.
func (c *fieldCodec) ToDomain(stored *string) (*string, error) {
	if stored == nil {
		return nil, nil
	}
	plaintext, err := c.cipher.DecryptField(*stored)
	if err != nil {
		return nil, err
	}
	return &plaintext, nil
}
