// Package repository provides data persistence implementations for user
// entities. The optional personal data columns (address, phone, tax_id) go
// through the field codec so only ciphertext envelopes reach the database.
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

// PostgreSQLUserRepository handles user persistence for PostgreSQL
type PostgreSQLUserRepository struct {
	db    *sql.DB
	codec cryptoservice.FieldCodec
}

// NewPostgreSQLUserRepository creates a new PostgreSQLUserRepository
func NewPostgreSQLUserRepository(db *sql.DB, codec cryptoservice.FieldCodec) *PostgreSQLUserRepository {
	return &PostgreSQLUserRepository{
		db:    db,
		codec: codec,
	}
}

// Create inserts a new user, encrypting the personal data fields
func (r *PostgreSQLUserRepository) Create(ctx context.Context, user *domain.User) error {
	address, phone, taxID, err := encodeSensitiveFields(r.codec, user)
	if err != nil {
		return err
	}

	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO users (id, email, password_hash, first_name, last_name, address, phone, tax_id, role, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err = querier.ExecContext(ctx, query,
		user.ID, user.Email, user.PasswordHash, user.FirstName, user.LastName,
		address, phone, taxID, user.Role, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		if isPostgreSQLUniqueViolation(err) {
			return domain.ErrUserAlreadyExists
		}
		return apperrors.Wrap(err, "failed to create user")
	}
	return nil
}

// GetByID retrieves a user by ID, decrypting the personal data fields
func (r *PostgreSQLUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, email, password_hash, first_name, last_name, address, phone, tax_id, role, created_at, updated_at
			  FROM users WHERE id = $1`

	return r.scanUser(querier.QueryRowContext(ctx, query, id), "failed to get user by id")
}

// GetByEmail retrieves a user by email, decrypting the personal data fields
func (r *PostgreSQLUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, email, password_hash, first_name, last_name, address, phone, tax_id, role, created_at, updated_at
			  FROM users WHERE email = $1`

	return r.scanUser(querier.QueryRowContext(ctx, query, email), "failed to get user by email")
}

// UpdatePassword sets a new password hash for the user
func (r *PostgreSQLUserRepository) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE users SET password_hash = $1, updated_at = $2 WHERE id = $3`

	result, err := querier.ExecContext(ctx, query, passwordHash, time.Now().UTC(), id)
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

func (r *PostgreSQLUserRepository) scanUser(row *sql.Row, wrapMsg string) (*domain.User, error) {
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

// encodeSensitiveFields encrypts the optional personal data fields for storage.
func encodeSensitiveFields(codec cryptoservice.FieldCodec, user *domain.User) (address, phone, taxID *string, err error) {
	if address, err = codec.ToStorage(user.Address); err != nil {
		return nil, nil, nil, apperrors.Wrap(err, "failed to encrypt address")
	}
	if phone, err = codec.ToStorage(user.Phone); err != nil {
		return nil, nil, nil, apperrors.Wrap(err, "failed to encrypt phone")
	}
	if taxID, err = codec.ToStorage(user.TaxID); err != nil {
		return nil, nil, nil, apperrors.Wrap(err, "failed to encrypt tax id")
	}
	return address, phone, taxID, nil
}

// decodeSensitiveFields decrypts the optional personal data fields after scan.
// Any failure propagates; a corrupt column never comes back as plaintext.
func decodeSensitiveFields(codec cryptoservice.FieldCodec, user *domain.User, address, phone, taxID *string) error {
	var err error
	if user.Address, err = codec.ToDomain(address); err != nil {
		return apperrors.Wrap(err, "failed to decrypt address")
	}
	if user.Phone, err = codec.ToDomain(phone); err != nil {
		return apperrors.Wrap(err, "failed to decrypt phone")
	}
	if user.TaxID, err = codec.ToDomain(taxID); err != nil {
		return apperrors.Wrap(err, "failed to decrypt tax id")
	}
	return nil
}

// isPostgreSQLUniqueViolation checks if the error is a PostgreSQL unique constraint violation
func isPostgreSQLUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	errMsg := strings.ToLower(err.Error())
	return strings.Contains(errMsg, "duplicate key") || strings.Contains(errMsg, "unique constraint")
}
