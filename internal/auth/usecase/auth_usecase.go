package usecase

import (
	"context"
	"log/slog"
	"time"

	validation "github.com/jellydator/validation"

	"github.com/allisson/userguard/internal/auth/domain"
	"github.com/allisson/userguard/internal/auth/service"
	"github.com/allisson/userguard/internal/database"
	apperrors "github.com/allisson/userguard/internal/errors"
	userdomain "github.com/allisson/userguard/internal/user/domain"
	appValidation "github.com/allisson/userguard/internal/validation"
)

// AuthenticationUseCase handles login and the password reset flow
type AuthenticationUseCase struct {
	txManager         database.TxManager
	userRepo          UserRepository
	resetTokenRepo    ResetTokenRepository
	tokenService      service.TokenService
	resetTokenService service.ResetTokenService
	passwordService   service.PasswordService
	resetTokenTTL     time.Duration
}

// NewAuthenticationUseCase creates a new AuthenticationUseCase
func NewAuthenticationUseCase(
	txManager database.TxManager,
	userRepo UserRepository,
	resetTokenRepo ResetTokenRepository,
	tokenService service.TokenService,
	resetTokenService service.ResetTokenService,
	passwordService service.PasswordService,
	resetTokenTTL time.Duration,
) *AuthenticationUseCase {
	return &AuthenticationUseCase{
		txManager:         txManager,
		userRepo:          userRepo,
		resetTokenRepo:    resetTokenRepo,
		tokenService:      tokenService,
		resetTokenService: resetTokenService,
		passwordService:   passwordService,
		resetTokenTTL:     resetTokenTTL,
	}
}

// Login verifies credentials and issues an access token. Unknown email and
// wrong password produce the same error.
func (u *AuthenticationUseCase) Login(ctx context.Context, input domain.LoginInput) (*domain.LoginOutput, error) {
	err := validation.ValidateStruct(&input,
		validation.Field(&input.Email, validation.Required),
		validation.Field(&input.Password, validation.Required),
	)
	if err != nil {
		return nil, appValidation.WrapValidationError(err)
	}

	user, err := u.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !u.passwordService.Verify(user.PasswordHash, input.Password) {
		return nil, domain.ErrInvalidCredentials
	}

	token, expiresAt, err := u.tokenService.Issue(user.ID.String())
	if err != nil {
		return nil, err
	}

	return &domain.LoginOutput{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresAt:   expiresAt,
	}, nil
}

// ForgotPassword issues a reset token for the account. For an unknown email
// it logs and reports success anyway, so the endpoint does not reveal which
// addresses are registered. Issuing a new token invalidates older ones.
func (u *AuthenticationUseCase) ForgotPassword(
	ctx context.Context,
	input domain.ForgotPasswordInput,
) (*domain.ForgotPasswordOutput, error) {
	err := validation.ValidateStruct(&input,
		validation.Field(&input.Email, validation.Required, appValidation.Email),
	)
	if err != nil {
		return nil, appValidation.WrapValidationError(err)
	}

	user, err := u.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrNotFound) {
			slog.InfoContext(ctx, "password reset requested for unknown email")
			return nil, nil
		}
		return nil, err
	}

	token, tokenHash, err := u.resetTokenService.Generate()
	if err != nil {
		return nil, err
	}
	resetToken := domain.NewResetToken(user.ID, tokenHash, u.resetTokenTTL)

	err = u.txManager.WithTx(ctx, func(txCtx context.Context) error {
		if err := u.resetTokenRepo.DeleteByUserID(txCtx, user.ID.String()); err != nil {
			return err
		}
		return u.resetTokenRepo.Create(txCtx, resetToken)
	})
	if err != nil {
		return nil, err
	}

	return &domain.ForgotPasswordOutput{
		Token:     token,
		ExpiresAt: resetToken.ExpiresAt,
	}, nil
}

// ResetPassword consumes a reset token and sets the new password. The token
// lookup, expiry check, password update, and token deletion run in one
// transaction; the delete reports whether this caller removed the row, so
// with racing consumers exactly one wins and the rest fail without applying
// their password change.
func (u *AuthenticationUseCase) ResetPassword(ctx context.Context, input domain.ResetPasswordInput) error {
	err := validation.ValidateStruct(&input,
		validation.Field(&input.Token, validation.Required),
		validation.Field(&input.NewPassword,
			validation.Required,
			appValidation.PasswordStrength{MinLength: 8, RequireUpper: true, RequireLower: true, RequireNumber: true},
		),
	)
	if err != nil {
		return appValidation.WrapValidationError(err)
	}

	passwordHash, err := u.passwordService.Hash(input.NewPassword)
	if err != nil {
		return err
	}

	tokenHash := u.resetTokenService.Hash(input.Token)

	return u.txManager.WithTx(ctx, func(txCtx context.Context) error {
		resetToken, err := u.resetTokenRepo.GetByTokenHash(txCtx, tokenHash)
		if err != nil {
			if apperrors.Is(err, apperrors.ErrNotFound) {
				return domain.ErrInvalidOrExpiredToken
			}
			return err
		}

		if resetToken.IsExpired(time.Now().UTC()) {
			return domain.ErrInvalidOrExpiredToken
		}

		if err := u.userRepo.UpdatePassword(txCtx, resetToken.UserID, passwordHash); err != nil {
			if apperrors.Is(err, userdomain.ErrUserNotFound) {
				return domain.ErrInvalidOrExpiredToken
			}
			return err
		}

		removed, err := u.resetTokenRepo.Delete(txCtx, tokenHash)
		if err != nil {
			return err
		}
		if !removed {
			// Another consumer deleted the row first. Fail so the
			// transaction rolls back the password update.
			return domain.ErrInvalidOrExpiredToken
		}
		return nil
	})
}
