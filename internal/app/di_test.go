package app

import (
	"bytes"
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allisson/userguard/internal/config"
	cryptoDomain "github.com/allisson/userguard/internal/crypto/domain"
	apperrors "github.com/allisson/userguard/internal/errors"
	"github.com/allisson/userguard/internal/metrics"
)

func testConfig() *config.Config {
	return &config.Config{
		ServerHost:          "127.0.0.1",
		ServerPort:          8080,
		LogLevel:            "error",
		DataEncryptionKey:   base64.StdEncoding.EncodeToString(bytes.Repeat([]byte{0x2a}, cryptoDomain.KeySize)),
		CryptoAlgorithm:     "aes-gcm",
		JWTSigningKey:       "test-signing-key",
		JWTIssuer:           "userguard",
		AuthTokenExpiration: time.Hour,
	}
}

func TestContainerConfig(t *testing.T) {
	cfg := testConfig()
	container := NewContainer(cfg)
	assert.Equal(t, cfg, container.Config())
	assert.NotNil(t, container.Logger())
}

func TestContainerCrypto(t *testing.T) {
	t.Run("ValidKey", func(t *testing.T) {
		container := NewContainer(testConfig())

		codec, err := container.FieldCodec()
		require.NoError(t, err)

		plaintext := "1234567"
		stored, err := codec.ToStorage(&plaintext)
		require.NoError(t, err)
		decoded, err := codec.ToDomain(stored)
		require.NoError(t, err)
		assert.Equal(t, plaintext, *decoded)
	})

	t.Run("MissingKeyIsFatal", func(t *testing.T) {
		cfg := testConfig()
		cfg.DataEncryptionKey = ""
		container := NewContainer(cfg)

		_, err := container.DataKey()
		require.Error(t, err)
		assert.True(t, apperrors.Is(err, apperrors.ErrConfiguration))

		// The error sticks on subsequent access.
		_, err = container.FieldCodec()
		require.Error(t, err)
	})

	t.Run("UnknownAlgorithm", func(t *testing.T) {
		cfg := testConfig()
		cfg.CryptoAlgorithm = "rot13"
		container := NewContainer(cfg)

		_, err := container.FieldCipher()
		assert.ErrorIs(t, err, cryptoDomain.ErrUnsupportedAlgorithm)
	})
}

func TestContainerAuth(t *testing.T) {
	t.Run("TokenService", func(t *testing.T) {
		container := NewContainer(testConfig())

		svc, err := container.TokenService()
		require.NoError(t, err)

		token, _, err := svc.Issue("user-123")
		require.NoError(t, err)
		subject, err := svc.Validate(token)
		require.NoError(t, err)
		assert.Equal(t, "user-123", subject)
	})

	t.Run("MissingSigningKey", func(t *testing.T) {
		cfg := testConfig()
		cfg.JWTSigningKey = ""
		container := NewContainer(cfg)

		_, err := container.TokenService()
		require.Error(t, err)
		assert.True(t, apperrors.Is(err, apperrors.ErrConfiguration))
	})
}

func TestContainerBusinessMetrics(t *testing.T) {
	t.Run("DisabledReturnsNoOp", func(t *testing.T) {
		cfg := testConfig()
		cfg.MetricsEnabled = false
		container := NewContainer(cfg)

		m, err := container.BusinessMetrics()
		require.NoError(t, err)
		assert.IsType(t, &metrics.NoOpBusinessMetrics{}, m)
	})

	t.Run("EnabledReturnsRecorder", func(t *testing.T) {
		cfg := testConfig()
		cfg.MetricsEnabled = true
		cfg.MetricsNamespace = "userguard"
		container := NewContainer(cfg)

		m, err := container.BusinessMetrics()
		require.NoError(t, err)
		assert.NotNil(t, m)
	})
}
