package repository

import (
	"bytes"
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cryptodomain "github.com/allisson/userguard/internal/crypto/domain"
	cryptoservice "github.com/allisson/userguard/internal/crypto/service"
	userdomain "github.com/allisson/userguard/internal/user/domain"
)

func setupMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		db.Close()
	})
	return db, mock
}

func testCodec(t *testing.T) cryptoservice.FieldCodec {
	t.Helper()
	key, err := cryptodomain.NewDataKey(bytes.Repeat([]byte{0x2a}, cryptodomain.KeySize))
	require.NoError(t, err)
	aead, err := cryptoservice.NewAESGCMCipher(key)
	require.NoError(t, err)
	codec, err := cryptoservice.NewFieldCodec(cryptoservice.NewFieldCipher(aead))
	require.NoError(t, err)
	return codec
}

func strptr(s string) *string { return &s }

func TestPostgreSQLUserRepository_Create(t *testing.T) {
	t.Run("EncryptsSensitiveFields", func(t *testing.T) {
		db, mock := setupMockDB(t)
		codec := testCodec(t)
		repo := NewPostgreSQLUserRepository(db, codec)

		user := userdomain.NewUser("jane@example.com", "hashed", "Jane", "Doe")
		user.Address = strptr("123 Main Street")
		user.TaxID = strptr("1234567")

		var storedAddress, storedTaxID string
		mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO users`)).
			WithArgs(
				user.ID, user.Email, user.PasswordHash, user.FirstName, user.LastName,
				captureString{&storedAddress}, nil, captureString{&storedTaxID},
				user.Role, user.CreatedAt, user.UpdatedAt,
			).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Create(context.Background(), user)
		require.NoError(t, err)

		// The envelope, not the plaintext, is what reached the database.
		assert.NotEqual(t, "123 Main Street", storedAddress)
		assert.NotEqual(t, "1234567", storedTaxID)

		decoded, err := codec.ToDomain(&storedTaxID)
		require.NoError(t, err)
		assert.Equal(t, "1234567", *decoded)
	})

	t.Run("DuplicateEmail", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewPostgreSQLUserRepository(db, testCodec(t))

		user := userdomain.NewUser("jane@example.com", "hashed", "Jane", "Doe")

		mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO users`)).
			WillReturnError(errors.New(`pq: duplicate key value violates unique constraint "users_email_key"`))

		err := repo.Create(context.Background(), user)
		assert.ErrorIs(t, err, userdomain.ErrUserAlreadyExists)
	})
}

func TestPostgreSQLUserRepository_GetByEmail(t *testing.T) {
	t.Run("DecryptsSensitiveFields", func(t *testing.T) {
		db, mock := setupMockDB(t)
		codec := testCodec(t)
		repo := NewPostgreSQLUserRepository(db, codec)

		id := uuid.Must(uuid.NewV7())
		now := time.Now().UTC()
		encryptedTaxID, err := codec.ToStorage(strptr("1234567"))
		require.NoError(t, err)

		rows := sqlmock.NewRows([]string{
			"id", "email", "password_hash", "first_name", "last_name",
			"address", "phone", "tax_id", "role", "created_at", "updated_at",
		}).AddRow(id, "jane@example.com", "hashed", "Jane", "Doe", nil, nil, *encryptedTaxID, "user", now, now)

		mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, email, password_hash`)).
			WithArgs("jane@example.com").
			WillReturnRows(rows)

		user, err := repo.GetByEmail(context.Background(), "jane@example.com")
		require.NoError(t, err)
		assert.Equal(t, id, user.ID)
		assert.Nil(t, user.Address)
		assert.Nil(t, user.Phone)
		require.NotNil(t, user.TaxID)
		assert.Equal(t, "1234567", *user.TaxID)
	})

	t.Run("CorruptStoredFieldFails", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewPostgreSQLUserRepository(db, testCodec(t))

		id := uuid.Must(uuid.NewV7())
		now := time.Now().UTC()

		rows := sqlmock.NewRows([]string{
			"id", "email", "password_hash", "first_name", "last_name",
			"address", "phone", "tax_id", "role", "created_at", "updated_at",
		}).AddRow(id, "jane@example.com", "hashed", "Jane", "Doe", nil, nil, "not-an-envelope", "user", now, now)

		mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, email, password_hash`)).
			WithArgs("jane@example.com").
			WillReturnRows(rows)

		_, err := repo.GetByEmail(context.Background(), "jane@example.com")
		require.Error(t, err)
		assert.ErrorIs(t, err, cryptodomain.ErrMalformedCiphertext)
	})

	t.Run("NotFound", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewPostgreSQLUserRepository(db, testCodec(t))

		mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, email, password_hash`)).
			WithArgs("nobody@example.com").
			WillReturnError(sql.ErrNoRows)

		_, err := repo.GetByEmail(context.Background(), "nobody@example.com")
		assert.ErrorIs(t, err, userdomain.ErrUserNotFound)
	})
}

func TestPostgreSQLUserRepository_UpdatePassword(t *testing.T) {
	t.Run("Updated", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewPostgreSQLUserRepository(db, testCodec(t))

		id := uuid.Must(uuid.NewV7())
		mock.ExpectExec(regexp.QuoteMeta(`UPDATE users SET password_hash`)).
			WithArgs("new-hash", sqlmock.AnyArg(), id).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.UpdatePassword(context.Background(), id, "new-hash")
		assert.NoError(t, err)
	})

	t.Run("MissingUser", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewPostgreSQLUserRepository(db, testCodec(t))

		id := uuid.Must(uuid.NewV7())
		mock.ExpectExec(regexp.QuoteMeta(`UPDATE users SET password_hash`)).
			WithArgs("new-hash", sqlmock.AnyArg(), id).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.UpdatePassword(context.Background(), id, "new-hash")
		assert.ErrorIs(t, err, userdomain.ErrUserNotFound)
	})
}

// captureString matches any string argument and records its value.
type captureString struct {
	dest *string
}

func (c captureString) Match(v driver.Value) bool {
	s, ok := v.(string)
	if !ok {
		return false
	}
	*c.dest = s
	return true
}
