package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allisson/userguard/internal/auth/domain"
)

func TestMySQLResetTokenRepository_Create(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewMySQLResetTokenRepository(db)

	token := domain.NewResetToken(uuid.Must(uuid.NewV7()), "hash-value", time.Hour)

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO password_reset_tokens`)).
		WithArgs(token.ID.String(), token.TokenHash, token.UserID.String(), token.ExpiresAt, token.CreatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Create(context.Background(), token)
	assert.NoError(t, err)
}

func TestMySQLResetTokenRepository_GetByTokenHash_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewMySQLResetTokenRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, token_hash, user_id, expires_at, created_at`)).
		WithArgs("missing-hash").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByTokenHash(context.Background(), "missing-hash")
	assert.ErrorIs(t, err, domain.ErrResetTokenNotFound)
}

func TestMySQLResetTokenRepository_Delete(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewMySQLResetTokenRepository(db)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM password_reset_tokens WHERE token_hash = ?`)).
		WithArgs("hash-value").
		WillReturnResult(sqlmock.NewResult(0, 1))

	removed, err := repo.Delete(context.Background(), "hash-value")
	require.NoError(t, err)
	assert.True(t, removed)
}
