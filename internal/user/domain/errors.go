package domain

import (
	"github.com/allisson/userguard/internal/errors"
)

var (
	// ErrUserNotFound indicates the requested user does not exist
	ErrUserNotFound = errors.Wrap(errors.ErrNotFound, "user not found")

	// ErrUserAlreadyExists indicates the email address is already registered
	ErrUserAlreadyExists = errors.Wrap(errors.ErrConflict, "user already exists")
)
