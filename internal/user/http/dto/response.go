// Package dto defines the response payloads for the user endpoints.
package dto

import (
	"time"

	"github.com/allisson/userguard/internal/user/domain"
)

// UserResponse is the public representation of a user. The personal data
// fields come back decrypted; the password hash never leaves the domain.
type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Address   *string   `json:"address,omitempty"`
	Phone     *string   `json:"phone,omitempty"`
	TaxID     *string   `json:"tax_id,omitempty"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// NewUserResponse converts a domain user to its response form.
func NewUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:        user.ID.String(),
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Address:   user.Address,
		Phone:     user.Phone,
		TaxID:     user.TaxID,
		Role:      user.Role,
		CreatedAt: user.CreatedAt,
	}
}
