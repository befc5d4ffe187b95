// Package domain contains the user entity and its domain errors.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// DefaultRole is assigned to users created through signup.
const DefaultRole = "user"

// User represents an account. Address, Phone, and TaxID are optional personal
// data fields; they are encrypted at rest and a nil pointer means the user
// never provided the value.
type User struct {
	ID           uuid.UUID `json:"id" db:"id"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	FirstName    string    `json:"first_name" db:"first_name"`
	LastName     string    `json:"last_name" db:"last_name"`
	Address      *string   `json:"address,omitempty" db:"address"`
	Phone        *string   `json:"phone,omitempty" db:"phone"`
	TaxID        *string   `json:"tax_id,omitempty" db:"tax_id"`
	Role         string    `json:"role" db:"role"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// NewUser creates a user with a fresh id and the default role.
func NewUser(email, passwordHash, firstName, lastName string) *User {
	now := time.Now().UTC()
	return &User{
		ID:           uuid.Must(uuid.NewV7()),
		Email:        email,
		PasswordHash: passwordHash,
		FirstName:    firstName,
		LastName:     lastName,
		Role:         DefaultRole,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}
