// Package http provides the user HTTP handlers.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	authHTTP "github.com/allisson/userguard/internal/auth/http"
	apperrors "github.com/allisson/userguard/internal/errors"
	"github.com/allisson/userguard/internal/httputil"
	"github.com/allisson/userguard/internal/user/http/dto"
	"github.com/allisson/userguard/internal/user/usecase"
)

// UserHandler handles HTTP requests for user profile operations.
type UserHandler struct {
	userUseCase usecase.UseCase
	logger      *slog.Logger
}

// NewUserHandler creates a new user handler with required dependencies.
func NewUserHandler(userUseCase usecase.UseCase, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		userUseCase: userUseCase,
		logger:      logger,
	}
}

// MeHandler returns the authenticated user's profile.
// GET /v1/me - Requires authentication; mounted behind RequireAuthenticated.
func (h *UserHandler) MeHandler(c *gin.Context) {
	subject, ok := authHTTP.GetSubject(c.Request.Context())
	if !ok {
		httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, h.logger)
		return
	}

	userID, err := uuid.Parse(subject)
	if err != nil {
		httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, h.logger)
		return
	}

	user, err := h.userUseCase.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.NewUserResponse(user))
}
