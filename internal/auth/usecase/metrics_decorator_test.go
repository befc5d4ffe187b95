package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	authDomain "github.com/allisson/userguard/internal/auth/domain"
)

// mockAuthUseCase is a mock implementation of AuthUseCase.
type mockAuthUseCase struct {
	mock.Mock
}

func (m *mockAuthUseCase) Login(ctx context.Context, input authDomain.LoginInput) (*authDomain.LoginOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*authDomain.LoginOutput), args.Error(1)
}

func (m *mockAuthUseCase) ForgotPassword(
	ctx context.Context,
	input authDomain.ForgotPasswordInput,
) (*authDomain.ForgotPasswordOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*authDomain.ForgotPasswordOutput), args.Error(1)
}

func (m *mockAuthUseCase) ResetPassword(ctx context.Context, input authDomain.ResetPasswordInput) error {
	args := m.Called(ctx, input)
	return args.Error(0)
}

// mockBusinessMetrics records calls for verification.
type mockBusinessMetrics struct {
	mock.Mock
}

func (m *mockBusinessMetrics) RecordOperation(ctx context.Context, domain, operation, status string) {
	m.Called(ctx, domain, operation, status)
}

func (m *mockBusinessMetrics) RecordDuration(
	ctx context.Context,
	domain, operation string,
	duration time.Duration,
	status string,
) {
	m.Called(ctx, domain, operation, duration, status)
}

func TestAuthUseCaseWithMetrics(t *testing.T) {
	ctx := context.Background()

	t.Run("LoginSuccess", func(t *testing.T) {
		next := &mockAuthUseCase{}
		m := &mockBusinessMetrics{}
		decorated := NewAuthUseCaseWithMetrics(next, m)

		input := authDomain.LoginInput{Email: "jane@example.com", Password: "Secret123"}
		next.On("Login", ctx, input).Return(&authDomain.LoginOutput{AccessToken: "token"}, nil)
		m.On("RecordOperation", ctx, "auth", "login", "success").Return()
		m.On("RecordDuration", ctx, "auth", "login", mock.Anything, "success").Return()

		output, err := decorated.Login(ctx, input)
		assert.NoError(t, err)
		assert.Equal(t, "token", output.AccessToken)
		m.AssertExpectations(t)
	})

	t.Run("ResetPasswordError", func(t *testing.T) {
		next := &mockAuthUseCase{}
		m := &mockBusinessMetrics{}
		decorated := NewAuthUseCaseWithMetrics(next, m)

		input := authDomain.ResetPasswordInput{Token: "raw-token", NewPassword: "NewSecret123"}
		next.On("ResetPassword", ctx, input).Return(authDomain.ErrInvalidOrExpiredToken)
		m.On("RecordOperation", ctx, "auth", "reset_password", "error").Return()
		m.On("RecordDuration", ctx, "auth", "reset_password", mock.Anything, "error").Return()

		err := decorated.ResetPassword(ctx, input)
		assert.ErrorIs(t, err, authDomain.ErrInvalidOrExpiredToken)
		m.AssertExpectations(t)
	})
}
