// Package validation provides custom validation rules for the application.
package validation

import (
	"regexp"
	"strings"
	"unicode"

	validation "github.com/jellydator/validation"

	apperrors "github.com/allisson/userguard/internal/errors"
)

var (
	// emailRegex is a basic email validation pattern
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

	// taxIDRegex matches the fixed-format tax identifier: exactly 7 digits
	taxIDRegex = regexp.MustCompile(`^\d{7}$`)
)

// WrapValidationError wraps validation errors as domain ErrInvalidInput
func WrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	return apperrors.Wrap(apperrors.ErrInvalidInput, err.Error())
}

// stringValue indirects pointers and extracts a string value. The second
// return is false when the value is nil and the rule should be skipped.
func stringValue(value interface{}) (string, bool, error) {
	indirect, isNil := validation.Indirect(value)
	if isNil {
		return "", false, nil
	}
	s, ok := indirect.(string)
	if !ok {
		return "", false, validation.NewError("validation_string", "must be a string")
	}
	return s, true, nil
}

// NotBlank validates that a string is not empty after trimming whitespace.
var NotBlank = validation.By(func(value interface{}) error {
	s, present, err := stringValue(value)
	if err != nil || !present {
		return err
	}
	if strings.TrimSpace(s) == "" {
		return validation.NewError("validation_not_blank", "cannot be blank")
	}
	return nil
})

// Email validates that a string looks like an email address.
var Email = validation.By(func(value interface{}) error {
	s, present, err := stringValue(value)
	if err != nil || !present {
		return err
	}
	if !emailRegex.MatchString(s) {
		return validation.NewError("validation_email", "must be a valid email address")
	}
	return nil
})

// TaxID validates the fixed-format tax identifier (exactly 7 digits).
var TaxID = validation.By(func(value interface{}) error {
	s, present, err := stringValue(value)
	if err != nil || !present {
		return err
	}
	if !taxIDRegex.MatchString(s) {
		return validation.NewError("validation_tax_id", "must be exactly 7 digits")
	}
	return nil
})

// PasswordStrength validates password meets minimum security requirements
type PasswordStrength struct {
	MinLength     int
	RequireUpper  bool
	RequireLower  bool
	RequireNumber bool
}

// Validate checks if the password meets the configured requirements
func (p PasswordStrength) Validate(value interface{}) error {
	s, present, err := stringValue(value)
	if err != nil {
		return validation.NewError("validation_password_strength", "password must be a string")
	}
	if !present {
		return nil
	}

	if len(s) < p.MinLength {
		return validation.NewError(
			"validation_password_min_length",
			"password is too short",
		)
	}

	if p.RequireUpper && !hasUpperCase(s) {
		return validation.NewError(
			"validation_password_uppercase",
			"password must contain at least one uppercase letter",
		)
	}

	if p.RequireLower && !hasLowerCase(s) {
		return validation.NewError(
			"validation_password_lowercase",
			"password must contain at least one lowercase letter",
		)
	}

	if p.RequireNumber && !hasNumber(s) {
		return validation.NewError("validation_password_number", "password must contain at least one number")
	}

	return nil
}

func hasUpperCase(s string) bool {
	for _, r := range s {
		if unicode.IsUpper(r) {
			return true
		}
	}
	return false
}

func hasLowerCase(s string) bool {
	for _, r := range s {
		if unicode.IsLower(r) {
			return true
		}
	}
	return false
}

func hasNumber(s string) bool {
	for _, r := range s {
		if unicode.IsDigit(r) {
			return true
		}
	}
	return false
}
