package http

import (
	"log/slog"
	"strings"

	"github.com/gin-gonic/gin"

	authService "github.com/allisson/userguard/internal/auth/service"
	apperrors "github.com/allisson/userguard/internal/errors"
	"github.com/allisson/userguard/internal/httputil"
)

// AuthenticationMiddleware validates the Bearer token in the Authorization
// header and stores the subject in the request context.
//
// The middleware never rejects a request. A missing, malformed, or invalid
// token leaves the request unauthenticated and lets it continue; endpoints
// that need an identity enforce it with RequireAuthenticated. This keeps
// public endpoints (signup, login, password reset) on the same router without
// per-route middleware lists.
//
// Authorization header format: "Bearer <token>" (case-insensitive "bearer")
func AuthenticationMiddleware(tokenService authService.TokenService, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Next()
			return
		}

		const bearerPrefix = "bearer "
		if len(authHeader) < len(bearerPrefix) ||
			!strings.EqualFold(authHeader[:len(bearerPrefix)], bearerPrefix) {
			logger.Debug("authentication skipped: malformed authorization header")
			c.Next()
			return
		}

		token := authHeader[len(bearerPrefix):]
		if token == "" {
			c.Next()
			return
		}

		subject, err := tokenService.Validate(token)
		if err != nil {
			logger.Debug("authentication failed", slog.String("error", err.Error()))
			c.Next()
			return
		}

		c.Request = c.Request.WithContext(WithSubject(c.Request.Context(), subject))
		c.Next()
	}
}

// RequireAuthenticated rejects requests that carry no authenticated subject
// with 401. Protected routes mount this after AuthenticationMiddleware.
func RequireAuthenticated(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := GetSubject(c.Request.Context()); !ok {
			httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, logger)
			c.Abort()
			return
		}
		c.Next()
	}
}
