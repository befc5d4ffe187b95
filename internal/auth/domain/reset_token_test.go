package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestNewResetToken(t *testing.T) {
	userID := uuid.Must(uuid.NewV7())
	token := NewResetToken(userID, "abc123hash", time.Hour)

	assert.NotEqual(t, uuid.Nil, token.ID)
	assert.Equal(t, userID, token.UserID)
	assert.Equal(t, "abc123hash", token.TokenHash)
	assert.WithinDuration(t, token.CreatedAt.Add(time.Hour), token.ExpiresAt, time.Second)
}

func TestResetTokenIsExpired(t *testing.T) {
	token := NewResetToken(uuid.Must(uuid.NewV7()), "hash", time.Hour)

	assert.False(t, token.IsExpired(time.Now().UTC()))
	assert.True(t, token.IsExpired(token.ExpiresAt))
	assert.True(t, token.IsExpired(token.ExpiresAt.Add(time.Minute)))
}
