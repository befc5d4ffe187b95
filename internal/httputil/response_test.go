package httputil

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	cryptoDomain "github.com/allisson/userguard/internal/crypto/domain"
	apperrors "github.com/allisson/userguard/internal/errors"
)

func setupTestContext(t *testing.T) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/test", nil)
	return c, w
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestHandleErrorGin(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedError  string
	}{
		{"NotFound", apperrors.Wrap(apperrors.ErrNotFound, "user not found"), http.StatusNotFound, "not_found"},
		{"Conflict", apperrors.Wrap(apperrors.ErrConflict, "email taken"), http.StatusConflict, "conflict"},
		{"InvalidInput", apperrors.Wrap(apperrors.ErrInvalidInput, "bad value"), http.StatusUnprocessableEntity, "invalid_input"},
		{"Unauthorized", apperrors.ErrUnauthorized, http.StatusUnauthorized, "unauthorized"},
		{"Forbidden", apperrors.ErrForbidden, http.StatusForbidden, "forbidden"},
		{"Internal", errors.New("db exploded"), http.StatusInternalServerError, "internal_error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := setupTestContext(t)

			HandleErrorGin(c, tt.err, testLogger())

			assert.Equal(t, tt.expectedStatus, w.Code)

			var response ErrorResponse
			assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
			assert.Equal(t, tt.expectedError, response.Error)
		})
	}

	t.Run("NilErrorWritesNothing", func(t *testing.T) {
		c, w := setupTestContext(t)
		HandleErrorGin(c, nil, testLogger())
		assert.Empty(t, w.Body.String())
	})

	t.Run("InternalErrorHidesDetails", func(t *testing.T) {
		c, w := setupTestContext(t)
		HandleErrorGin(c, errors.New("secret detail"), testLogger())

		assert.NotContains(t, w.Body.String(), "secret detail")
	})

	t.Run("CiphertextFailuresAreIndistinguishable", func(t *testing.T) {
		// A corrupt stored envelope and a tampered one must produce the same
		// generic response; the sub-case stays in the logs.
		bodies := make([]string, 0, 2)
		for _, err := range []error{
			apperrors.Wrap(cryptoDomain.ErrMalformedCiphertext, "failed to decrypt address"),
			apperrors.Wrap(cryptoDomain.ErrDecryptionFailed, "failed to decrypt address"),
		} {
			c, w := setupTestContext(t)
			HandleErrorGin(c, err, testLogger())

			assert.Equal(t, http.StatusInternalServerError, w.Code)
			assert.NotContains(t, w.Body.String(), "ciphertext")
			assert.NotContains(t, w.Body.String(), "decrypt")
			bodies = append(bodies, w.Body.String())
		}
		assert.Equal(t, bodies[0], bodies[1])
	})
}

func TestHandleValidationErrorGin(t *testing.T) {
	c, w := setupTestContext(t)

	HandleValidationErrorGin(c, errors.New("email: cannot be blank"), testLogger())

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var response ErrorResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "validation_error", response.Error)
}

func TestHandleBadRequestGin(t *testing.T) {
	c, w := setupTestContext(t)

	HandleBadRequestGin(c, errors.New("invalid json"), testLogger())

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
