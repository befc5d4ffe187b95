package domain

import (
	"time"
)

// LoginInput carries the credentials for a login attempt.
type LoginInput struct {
	Email    string
	Password string
}

// LoginOutput carries the issued access token.
type LoginOutput struct {
	AccessToken string
	TokenType   string
	ExpiresAt   time.Time
}

// ForgotPasswordInput starts the password reset flow for an email address.
type ForgotPasswordInput struct {
	Email string
}

// ForgotPasswordOutput carries the raw reset token for delivery to the
// requester. A nil output means the account does not exist; callers must
// respond as if it did.
type ForgotPasswordOutput struct {
	Token     string
	ExpiresAt time.Time
}

// ResetPasswordInput consumes a reset token and sets a new password.
type ResetPasswordInput struct {
	Token       string
	NewPassword string
}
