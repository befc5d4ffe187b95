// Package usecase implements the authentication business logic: login,
// password reset issuance, and atomic reset consumption.
package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/allisson/userguard/internal/auth/domain"
	userdomain "github.com/allisson/userguard/internal/user/domain"
)

// AuthUseCase defines the interface for authentication operations
type AuthUseCase interface {
	Login(ctx context.Context, input domain.LoginInput) (*domain.LoginOutput, error)
	ForgotPassword(ctx context.Context, input domain.ForgotPasswordInput) (*domain.ForgotPasswordOutput, error)
	ResetPassword(ctx context.Context, input domain.ResetPasswordInput) error
}

// UserRepository defines the user repository operations the auth flows need
type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*userdomain.User, error)
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error
}

// ResetTokenRepository defines reset token repository operations
type ResetTokenRepository interface {
	Create(ctx context.Context, token *domain.ResetToken) error
	GetByTokenHash(ctx context.Context, tokenHash string) (*domain.ResetToken, error)
	Delete(ctx context.Context, tokenHash string) (bool, error)
	DeleteByUserID(ctx context.Context, userID string) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}
