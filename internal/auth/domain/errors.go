package domain

import (
	"github.com/allisson/userguard/internal/errors"
)

var (
	// ErrInvalidCredentials indicates a failed login. The message never says
	// whether the email or the password was wrong.
	ErrInvalidCredentials = errors.Wrap(errors.ErrUnauthorized, "invalid credentials")

	// ErrInvalidOrExpiredToken is the uniform reset-token failure. Unknown,
	// expired, and already-consumed tokens are indistinguishable to callers.
	ErrInvalidOrExpiredToken = errors.Wrap(errors.ErrInvalidInput, "invalid or expired token")

	// ErrResetTokenNotFound indicates the token hash has no matching row.
	// Repositories return this; use cases fold it into ErrInvalidOrExpiredToken.
	ErrResetTokenNotFound = errors.Wrap(errors.ErrNotFound, "reset token not found")

	// ErrTokenMalformed indicates an access token that does not parse as a JWT.
	ErrTokenMalformed = errors.Wrap(errors.ErrUnauthorized, "token is malformed")

	// ErrTokenExpired indicates an access token past its expiry.
	ErrTokenExpired = errors.Wrap(errors.ErrUnauthorized, "token is expired")

	// ErrTokenBadSignature indicates an access token whose signature does not
	// verify, including tokens signed with an unexpected method.
	ErrTokenBadSignature = errors.Wrap(errors.ErrUnauthorized, "token signature is invalid")

	// ErrNotAuthenticated indicates a request reached a protected operation
	// without an authenticated subject.
	ErrNotAuthenticated = errors.Wrap(errors.ErrUnauthorized, "authentication required")
)
