package domain

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/allisson/userguard/internal/errors"
)

func TestLoadDataKey(t *testing.T) {
	t.Run("ValidKey", func(t *testing.T) {
		raw := bytes.Repeat([]byte{0xab}, KeySize)
		encoded := base64.StdEncoding.EncodeToString(raw)

		key, err := LoadDataKey(encoded)
		require.NoError(t, err)
		assert.Equal(t, raw, key.Bytes())
	})

	t.Run("WrongSize", func(t *testing.T) {
		encoded := base64.StdEncoding.EncodeToString(bytes.Repeat([]byte{0x01}, 16))

		_, err := LoadDataKey(encoded)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidKeySize)
		assert.True(t, apperrors.Is(err, apperrors.ErrConfiguration))
	})

	t.Run("NotBase64", func(t *testing.T) {
		_, err := LoadDataKey("!!!not base64!!!")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidKeyEncoding)
	})

	t.Run("EmptyString", func(t *testing.T) {
		_, err := LoadDataKey("")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidKeySize)
	})
}

func TestNewDataKey(t *testing.T) {
	t.Run("CopiesInput", func(t *testing.T) {
		raw := bytes.Repeat([]byte{0x42}, KeySize)
		key, err := NewDataKey(raw)
		require.NoError(t, err)

		raw[0] = 0x00
		assert.Equal(t, byte(0x42), key.Bytes()[0])
	})

	t.Run("RejectsShortKey", func(t *testing.T) {
		_, err := NewDataKey([]byte("too short"))
		assert.ErrorIs(t, err, ErrInvalidKeySize)
	})
}

func TestDataKeyRedaction(t *testing.T) {
	key, err := NewDataKey(bytes.Repeat([]byte{0x42}, KeySize))
	require.NoError(t, err)

	assert.Equal(t, "[REDACTED]", key.String())
	assert.Equal(t, "[REDACTED]", fmt.Sprintf("%v", key))
	assert.Equal(t, "[REDACTED]", key.LogValue().String())
}

func TestAlgorithmIsValid(t *testing.T) {
	assert.True(t, AlgorithmAESGCM.IsValid())
	assert.True(t, AlgorithmChaCha20Poly1305.IsValid())
	assert.False(t, Algorithm("des").IsValid())
	assert.False(t, Algorithm("").IsValid())
}
