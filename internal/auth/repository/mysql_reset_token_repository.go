package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/allisson/userguard/internal/auth/domain"
	"github.com/allisson/userguard/internal/database"
	apperrors "github.com/allisson/userguard/internal/errors"
)

// MySQLResetTokenRepository handles reset token persistence for MySQL
type MySQLResetTokenRepository struct {
	db *sql.DB
}

// NewMySQLResetTokenRepository creates a new MySQLResetTokenRepository
func NewMySQLResetTokenRepository(db *sql.DB) *MySQLResetTokenRepository {
	return &MySQLResetTokenRepository{
		db: db,
	}
}

// Create inserts a new reset token
func (r *MySQLResetTokenRepository) Create(ctx context.Context, token *domain.ResetToken) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO password_reset_tokens (id, token_hash, user_id, expires_at, created_at)
			  VALUES (?, ?, ?, ?, ?)`

	_, err := querier.ExecContext(ctx, query,
		token.ID.String(), token.TokenHash, token.UserID.String(), token.ExpiresAt, token.CreatedAt,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create reset token")
	}
	return nil
}

// GetByTokenHash retrieves a reset token by its storage hash
func (r *MySQLResetTokenRepository) GetByTokenHash(ctx context.Context, tokenHash string) (*domain.ResetToken, error) {
	var token domain.ResetToken
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, token_hash, user_id, expires_at, created_at
			  FROM password_reset_tokens WHERE token_hash = ?`

	err := querier.QueryRowContext(ctx, query, tokenHash).Scan(
		&token.ID, &token.TokenHash, &token.UserID, &token.ExpiresAt, &token.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrResetTokenNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get reset token by hash")
	}

	return &token, nil
}

// Delete removes a reset token by its storage hash and reports whether a row
// was removed. Under concurrent consumers only one caller sees true.
func (r *MySQLResetTokenRepository) Delete(ctx context.Context, tokenHash string) (bool, error) {
	querier := database.GetTx(ctx, r.db)

	query := `DELETE FROM password_reset_tokens WHERE token_hash = ?`

	result, err := querier.ExecContext(ctx, query, tokenHash)
	if err != nil {
		return false, apperrors.Wrap(err, "failed to delete reset token")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, apperrors.Wrap(err, "failed to get rows affected")
	}
	return affected == 1, nil
}

// DeleteByUserID removes all reset tokens for a user.
func (r *MySQLResetTokenRepository) DeleteByUserID(ctx context.Context, userID string) error {
	querier := database.GetTx(ctx, r.db)

	query := `DELETE FROM password_reset_tokens WHERE user_id = ?`

	if _, err := querier.ExecContext(ctx, query, userID); err != nil {
		return apperrors.Wrap(err, "failed to delete reset tokens for user")
	}
	return nil
}

// DeleteExpired removes all tokens past their expiry and returns the count.
func (r *MySQLResetTokenRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	querier := database.GetTx(ctx, r.db)

	query := `DELETE FROM password_reset_tokens WHERE expires_at <= ?`

	result, err := querier.ExecContext(ctx, query, now)
	if err != nil {
		return 0, apperrors.Wrap(err, "failed to delete expired reset tokens")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, apperrors.Wrap(err, "failed to get rows affected")
	}
	return affected, nil
}
