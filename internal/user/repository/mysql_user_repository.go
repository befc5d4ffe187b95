package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	cryptoservice "github.com/allisson/userguard/internal/crypto/service"
	"github.com/allisson/userguard/internal/database"
	apperrors "github.com/allisson/userguard/internal/errors"
	"github.com/allisson/userguard/internal/user/domain"
)

// MySQLUserRepository handles user persistence for MySQL
type MySQLUserRepository struct {
	db    *sql.DB
	codec cryptoservice.FieldCodec
}

// NewMySQLUserRepository creates a new MySQLUserRepository
func NewMySQLUserRepository(db *sql.DB, codec cryptoservice.FieldCodec) *MySQLUserRepository {
	return &MySQLUserRepository{
		db:    db,
		codec: codec,
	}
}

// Create inserts a new user, encrypting the personal data fields
func (r *MySQLUserRepository) Create(ctx context.Context, user *domain.User) error {
	address, phone, taxID, err := encodeSensitiveFields(r.codec, user)
	if err != nil {
		return err
	}

	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO users (id, email, password_hash, first_name, last_name, address, phone, tax_id, role, created_at, updated_at)
			  VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err = querier.ExecContext(ctx, query,
		user.ID.String(), user.Email, user.PasswordHash, user.FirstName, user.LastName,
		address, phone, taxID, user.Role, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		if isMySQLUniqueViolation(err) {
			return domain.ErrUserAlreadyExists
		}
		return apperrors.Wrap(err, "failed to create user")
	}
	return nil
}

// GetByID retrieves a user by ID, decrypting the personal data fields
func (r *MySQLUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, email, password_hash, first_name, last_name, address, phone, tax_id, role, created_at, updated_at
			  FROM users WHERE id = ?`

	return r.scanUser(querier.QueryRowContext(ctx, query, id.String()), "failed to get user by id")
}

// GetByEmail retrieves a user by email, decrypting the personal data fields
func (r *MySQLUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, email, password_hash, first_name, last_name, address, phone, tax_id, role, created_at, updated_at
			  FROM users WHERE email = ?`

	return r.scanUser(querier.QueryRowContext(ctx, query, email), "failed to get user by email")
}

// UpdatePassword sets a new password hash for the user
func (r *MySQLUserRepository) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE users SET password_hash = ?, updated_at = ? WHERE id = ?`

	result, err := querier.ExecContext(ctx, query, passwordHash, time.Now().UTC(), id.String())
	if err != nil {
		return apperrors.Wrap(err, "failed to update password")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to get rows affected")
	}
	if affected == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *MySQLUserRepository) scanUser(row *sql.Row, wrapMsg string) (*domain.User, error) {
	var user domain.User
	var address, phone, taxID *string

	err := row.Scan(
		&user.ID, &user.Email, &user.PasswordHash, &user.FirstName, &user.LastName,
		&address, &phone, &taxID, &user.Role, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, apperrors.Wrap(err, wrapMsg)
	}

	if err := decodeSensitiveFields(r.codec, &user, address, phone, taxID); err != nil {
		return nil, err
	}
	return &user, nil
}

// isMySQLUniqueViolation checks if the error is a MySQL unique constraint violation
func isMySQLUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	errMsg := strings.ToLower(err.Error())
	return strings.Contains(errMsg, "error 1062") || strings.Contains(errMsg, "duplicate entry")
}
