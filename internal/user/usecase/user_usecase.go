// Package usecase implements the user business logic.
package usecase

import (
	"context"
	"strings"

	validation "github.com/jellydator/validation"

	"github.com/google/uuid"

	authservice "github.com/allisson/userguard/internal/auth/service"
	"github.com/allisson/userguard/internal/user/domain"
	appValidation "github.com/allisson/userguard/internal/validation"
)

// RegisterUserInput contains the input data for user registration
type RegisterUserInput struct {
	Email     string  `json:"email"`
	Password  string  `json:"password"`
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Address   *string `json:"address"`
	Phone     *string `json:"phone"`
	TaxID     *string `json:"tax_id"`
}

// UseCase defines the interface for user business logic operations
type UseCase interface {
	RegisterUser(ctx context.Context, input RegisterUserInput) (*domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

// UserRepository interface defines user repository operations
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error
}

// UserUseCase handles user-related business logic
type UserUseCase struct {
	userRepo        UserRepository
	passwordService authservice.PasswordService
}

// NewUserUseCase creates a new UserUseCase
func NewUserUseCase(userRepo UserRepository, passwordService authservice.PasswordService) *UserUseCase {
	return &UserUseCase{
		userRepo:        userRepo,
		passwordService: passwordService,
	}
}

// validateRegisterUserInput validates the registration input
func validateRegisterUserInput(input RegisterUserInput) error {
	err := validation.ValidateStruct(&input,
		validation.Field(&input.Email, validation.Required, appValidation.Email),
		validation.Field(&input.Password,
			validation.Required,
			appValidation.PasswordStrength{MinLength: 8, RequireUpper: true, RequireLower: true, RequireNumber: true},
		),
		validation.Field(&input.FirstName, validation.Required, appValidation.NotBlank),
		validation.Field(&input.LastName, validation.Required, appValidation.NotBlank),
		validation.Field(&input.TaxID, appValidation.TaxID),
	)
	return appValidation.WrapValidationError(err)
}

// RegisterUser creates a new user with a hashed password. The personal data
// fields are encrypted by the repository on write.
func (u *UserUseCase) RegisterUser(ctx context.Context, input RegisterUserInput) (*domain.User, error) {
	if err := validateRegisterUserInput(input); err != nil {
		return nil, err
	}

	passwordHash, err := u.passwordService.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))
	user := domain.NewUser(email, passwordHash, input.FirstName, input.LastName)
	user.Address = input.Address
	user.Phone = input.Phone
	user.TaxID = input.TaxID

	if err := u.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// GetUserByEmail retrieves a user by email address
func (u *UserUseCase) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return u.userRepo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
}

// GetUserByID retrieves a user by ID
func (u *UserUseCase) GetUserByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return u.userRepo.GetByID(ctx, id)
}
