package services

import (
	"testing"
	"time"

	"dayflow-app/dayflow/testutils"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestLogin_UnknownEmail(t *testing.T) {
	db, mock, close := testutils.SetupMockDB()
	defer close()

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE email = \$1`).
		WithArgs("nobody@x.com", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "email", "password_hash", "created_at"}))

	authService := NewAuthService("test-secret", 24)
	_, _, err := authService.Login(db, "nobody@x.com", "secret1")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLogin_Success(t *testing.T) {
	db, mock, close := testutils.SetupMockDB()
	defer close()

	authService := NewAuthService("test-secret", 24)
	hash, err := authService.HashPassword("secret1")
	assert.NoError(t, err)

	userID := uuid.New()
	mock.ExpectQuery(`SELECT \* FROM "users" WHERE email = \$1`).
		WithArgs("alice@x.com", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "email", "password_hash", "created_at"}).
			AddRow(userID.String(), "alice", "alice@x.com", hash, time.Now()))

	tokenString, user, err := authService.Login(db, "alice@x.com", "secret1")
	assert.NoError(t, err)
	assert.Equal(t, userID, user.ID)

	claims, err := authService.ValidateToken(tokenString)
	assert.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLogin_WrongPassword(t *testing.T) {
	db, mock, close := testutils.SetupMockDB()
	defer close()

	authService := NewAuthService("test-secret", 24)
	hash, err := authService.HashPassword("secret1")
	assert.NoError(t, err)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE email = \$1`).
		WithArgs("alice@x.com", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "email", "password_hash", "created_at"}).
			AddRow(uuid.New().String(), "alice", "alice@x.com", hash, time.Now()))

	_, _, err = authService.Login(db, "alice@x.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHashAndComparePasswords(t *testing.T) {
	authService := NewAuthService("test-secret", 24)

	hash, err := authService.HashPassword("secret1")
	assert.NoError(t, err)
	assert.NotEqual(t, "secret1", hash)

	assert.NoError(t, authService.ComparePasswords(hash, "secret1"))
	assert.Error(t, authService.ComparePasswords(hash, "secret2"))
}
