package usecase

import (
	"context"
	"time"

	"github.com/allisson/userguard/internal/auth/domain"
	"github.com/allisson/userguard/internal/metrics"
)

// authUseCaseWithMetrics decorates AuthUseCase with metrics instrumentation.
type authUseCaseWithMetrics struct {
	next    AuthUseCase
	metrics metrics.BusinessMetrics
}

// NewAuthUseCaseWithMetrics wraps an AuthUseCase with metrics recording.
func NewAuthUseCaseWithMetrics(useCase AuthUseCase, m metrics.BusinessMetrics) AuthUseCase {
	return &authUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Login records metrics for login operations.
func (a *authUseCaseWithMetrics) Login(ctx context.Context, input domain.LoginInput) (*domain.LoginOutput, error) {
	start := time.Now()
	output, err := a.next.Login(ctx, input)

	status := "success"
	if err != nil {
		status = "error"
	}

	a.metrics.RecordOperation(ctx, "auth", "login", status)
	a.metrics.RecordDuration(ctx, "auth", "login", time.Since(start), status)

	return output, err
}

// ForgotPassword records metrics for password reset requests.
func (a *authUseCaseWithMetrics) ForgotPassword(
	ctx context.Context,
	input domain.ForgotPasswordInput,
) (*domain.ForgotPasswordOutput, error) {
	start := time.Now()
	output, err := a.next.ForgotPassword(ctx, input)

	status := "success"
	if err != nil {
		status = "error"
	}

	a.metrics.RecordOperation(ctx, "auth", "forgot_password", status)
	a.metrics.RecordDuration(ctx, "auth", "forgot_password", time.Since(start), status)

	return output, err
}

// ResetPassword records metrics for password reset completions.
func (a *authUseCaseWithMetrics) ResetPassword(ctx context.Context, input domain.ResetPasswordInput) error {
	start := time.Now()
	err := a.next.ResetPassword(ctx, input)

	status := "success"
	if err != nil {
		status = "error"
	}

	a.metrics.RecordOperation(ctx, "auth", "reset_password", status)
	a.metrics.RecordDuration(ctx, "auth", "reset_password", time.Since(start), status)

	return err
}
