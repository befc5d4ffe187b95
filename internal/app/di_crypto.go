package app

import (
	"sync"

	cryptoDomain "github.com/allisson/userguard/internal/crypto/domain"
	cryptoService "github.com/allisson/userguard/internal/crypto/service"
)

// cryptoComponents groups the field encryption dependencies.
type cryptoComponents struct {
	dataKey     *cryptoDomain.DataKey
	fieldCipher cryptoService.FieldCipher
	fieldCodec  cryptoService.FieldCodec

	dataKeyInit     sync.Once
	fieldCipherInit sync.Once
	fieldCodecInit  sync.Once
}

// DataKey returns the field encryption key. A missing or malformed key is a
// configuration error and the caller must treat it as fatal.
func (c *Container) DataKey() (*cryptoDomain.DataKey, error) {
	c.crypto.dataKeyInit.Do(func() {
		key, err := cryptoDomain.LoadDataKey(c.config.DataEncryptionKey)
		if err != nil {
			c.initErrors["dataKey"] = err
			return
		}
		c.crypto.dataKey = key
	})
	if storedErr, exists := c.initErrors["dataKey"]; exists {
		return nil, storedErr
	}
	return c.crypto.dataKey, nil
}

// FieldCipher returns the envelope cipher for string fields, built from the
// configured algorithm.
func (c *Container) FieldCipher() (cryptoService.FieldCipher, error) {
	c.crypto.fieldCipherInit.Do(func() {
		key, err := c.DataKey()
		if err != nil {
			c.initErrors["fieldCipher"] = err
			return
		}
		aead, err := cryptoService.NewAEADManager().CreateCipher(
			key, cryptoDomain.Algorithm(c.config.CryptoAlgorithm),
		)
		if err != nil {
			c.initErrors["fieldCipher"] = err
			return
		}
		c.crypto.fieldCipher = cryptoService.NewFieldCipher(aead)
	})
	if storedErr, exists := c.initErrors["fieldCipher"]; exists {
		return nil, storedErr
	}
	return c.crypto.fieldCipher, nil
}

// FieldCodec returns the storage codec used by repositories for the encrypted
// personal data columns.
func (c *Container) FieldCodec() (cryptoService.FieldCodec, error) {
	c.crypto.fieldCodecInit.Do(func() {
		cipher, err := c.FieldCipher()
		if err != nil {
			c.initErrors["fieldCodec"] = err
			return
		}
		codec, err := cryptoService.NewFieldCodec(cipher)
		if err != nil {
			c.initErrors["fieldCodec"] = err
			return
		}
		c.crypto.fieldCodec = codec
	})
	if storedErr, exists := c.initErrors["fieldCodec"]; exists {
		return nil, storedErr
	}
	return c.crypto.fieldCodec, nil
}
