package http

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	apperrors "github.com/allisson/userguard/internal/errors"
)

// mockTokenService is a mock implementation of service.TokenService.
type mockTokenService struct {
	mock.Mock
}

func (m *mockTokenService) Issue(subject string) (string, time.Time, error) {
	args := m.Called(subject)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

func (m *mockTokenService) Validate(token string) (string, error) {
	args := m.Called(token)
	return args.String(0), args.Error(1)
}

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func setupRouter(tokenService *mockTokenService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(AuthenticationMiddleware(tokenService, testLogger()))

	router.GET("/public", func(c *gin.Context) {
		subject, ok := GetSubject(c.Request.Context())
		c.JSON(http.StatusOK, gin.H{"subject": subject, "authenticated": ok})
	})

	protected := router.Group("/", RequireAuthenticated(testLogger()))
	protected.GET("/protected", func(c *gin.Context) {
		subject, _ := GetSubject(c.Request.Context())
		c.JSON(http.StatusOK, gin.H{"subject": subject})
	})

	return router
}

func TestAuthenticationMiddleware(t *testing.T) {
	t.Run("ValidTokenSetsSubject", func(t *testing.T) {
		tokenService := &mockTokenService{}
		tokenService.On("Validate", "good-token").Return("user-123", nil)
		router := setupRouter(tokenService)

		req := httptest.NewRequest(http.MethodGet, "/public", nil)
		req.Header.Set("Authorization", "Bearer good-token")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"subject":"user-123"`)
		assert.Contains(t, w.Body.String(), `"authenticated":true`)
	})

	t.Run("MissingHeaderContinuesUnauthenticated", func(t *testing.T) {
		tokenService := &mockTokenService{}
		router := setupRouter(tokenService)

		req := httptest.NewRequest(http.MethodGet, "/public", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"authenticated":false`)
		tokenService.AssertNotCalled(t, "Validate", mock.Anything)
	})

	t.Run("InvalidTokenContinuesUnauthenticated", func(t *testing.T) {
		tokenService := &mockTokenService{}
		tokenService.On("Validate", "bad-token").Return("", apperrors.ErrUnauthorized)
		router := setupRouter(tokenService)

		req := httptest.NewRequest(http.MethodGet, "/public", nil)
		req.Header.Set("Authorization", "Bearer bad-token")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"authenticated":false`)
	})

	t.Run("CaseInsensitiveBearer", func(t *testing.T) {
		tokenService := &mockTokenService{}
		tokenService.On("Validate", "good-token").Return("user-123", nil)
		router := setupRouter(tokenService)

		req := httptest.NewRequest(http.MethodGet, "/public", nil)
		req.Header.Set("Authorization", "BEARER good-token")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"authenticated":true`)
	})
}

func TestRequireAuthenticated(t *testing.T) {
	t.Run("RejectsUnauthenticated", func(t *testing.T) {
		tokenService := &mockTokenService{}
		router := setupRouter(tokenService)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("AllowsAuthenticated", func(t *testing.T) {
		tokenService := &mockTokenService{}
		tokenService.On("Validate", "good-token").Return("user-123", nil)
		router := setupRouter(tokenService)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer good-token")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"subject":"user-123"`)
	})
}
