package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrap(t *testing.T) {
	t.Run("WrapPreservesSentinel", func(t *testing.T) {
		err := Wrap(ErrNotFound, "user not found")
		assert.True(t, Is(err, ErrNotFound))
		assert.Equal(t, "user not found: not found", err.Error())
	})

	t.Run("WrapNilReturnsNil", func(t *testing.T) {
		assert.Nil(t, Wrap(nil, "context"))
	})

	t.Run("WrapChainsMultipleLevels", func(t *testing.T) {
		inner := Wrap(ErrUnauthorized, "token expired")
		outer := Wrap(inner, "authentication failed")
		assert.True(t, Is(outer, ErrUnauthorized))
	})
}

func TestIs(t *testing.T) {
	err := fmt.Errorf("outer: %w", ErrConfiguration)
	assert.True(t, Is(err, ErrConfiguration))
	assert.False(t, Is(err, ErrConflict))
}
