package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	authDomain "github.com/allisson/userguard/internal/auth/domain"
	"github.com/allisson/userguard/internal/auth/http/dto"
	authUseCase "github.com/allisson/userguard/internal/auth/usecase"
	"github.com/allisson/userguard/internal/httputil"
	userDTO "github.com/allisson/userguard/internal/user/http/dto"
	userUseCase "github.com/allisson/userguard/internal/user/usecase"
)

// AuthHandler handles HTTP requests for signup, login, and the password
// reset flow.
type AuthHandler struct {
	authUseCase authUseCase.AuthUseCase
	userUseCase userUseCase.UseCase
	logger      *slog.Logger
}

// NewAuthHandler creates a new auth handler with required dependencies.
func NewAuthHandler(
	authUseCase authUseCase.AuthUseCase,
	userUseCase userUseCase.UseCase,
	logger *slog.Logger,
) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
		userUseCase: userUseCase,
		logger:      logger,
	}
}

// SignupHandler registers a new account.
// POST /v1/auth/signup - Returns 201 Created with the public user fields.
func (h *AuthHandler) SignupHandler(c *gin.Context) {
	var req dto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	user, err := h.userUseCase.RegisterUser(c.Request.Context(), userUseCase.RegisterUserInput{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Address:   req.Address,
		Phone:     req.Phone,
		TaxID:     req.TaxID,
	})
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, userDTO.NewUserResponse(user))
}

// LoginHandler verifies credentials and issues an access token.
// POST /v1/auth/login - Returns 200 OK with the token, 401 on bad credentials.
func (h *AuthHandler) LoginHandler(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	output, err := h.authUseCase.Login(c.Request.Context(), authDomain.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{
		AccessToken: output.AccessToken,
		TokenType:   output.TokenType,
		ExpiresAt:   output.ExpiresAt,
	})
}

// ForgotPasswordHandler starts the password reset flow.
// POST /v1/auth/forgot-password - Always returns 200 OK; the response only
// carries a token when the account exists.
func (h *AuthHandler) ForgotPasswordHandler(c *gin.Context) {
	var req dto.ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	output, err := h.authUseCase.ForgotPassword(c.Request.Context(), authDomain.ForgotPasswordInput{
		Email: req.Email,
	})
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	resp := dto.ForgotPasswordResponse{
		Message: "if the account exists, a reset token has been issued",
	}
	if output != nil {
		resp.Token = output.Token
		resp.ExpiresAt = &output.ExpiresAt
	}
	c.JSON(http.StatusOK, resp)
}

// ResetPasswordHandler consumes a reset token and sets the new password.
// POST /v1/auth/reset-password - Returns 200 OK, or 422 with a uniform
// "invalid or expired token" message.
func (h *AuthHandler) ResetPasswordHandler(c *gin.Context) {
	var req dto.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	err := h.authUseCase.ResetPassword(c.Request.Context(), authDomain.ResetPasswordInput{
		Token:       req.Token,
		NewPassword: req.NewPassword,
	})
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "password updated"})
}
