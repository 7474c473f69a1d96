package services

import (
	"testing"

	"dayflow-app/dayflow/models"
	"dayflow-app/dayflow/testutils"

	"github.com/stretchr/testify/assert"
)

func TestRegister_SeedsDefaultCategories(t *testing.T) {
	db := testutils.SetupTestDB(t)
	authService := NewAuthService("test-secret", 24)
	userService := NewUserService(authService)

	user, err := userService.Register(db, "alice", "alice@x.com", "secret1")
	assert.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	assert.NotEqual(t, "secret1", user.PasswordHash)

	var categories []models.Category
	err = db.DB.Where("user_id = ?", user.ID).Order("created_at ASC, name ASC").Find(&categories).Error
	assert.NoError(t, err)
	assert.Len(t, categories, len(models.DefaultCategories))

	got := map[string]string{}
	for _, c := range categories {
		got[c.Name] = c.Color
	}
	assert.Equal(t, map[string]string{
		"Personal":  "#007bff",
		"Work":      "#8c00ff",
		"Study":     "#00ff4c",
		"Important": "#ff0000",
		"Finance":   "#225d29",
		"Travel":    "#00ccff",
		"Others":    "#ff00f7",
	}, got)
}

func TestRegister_DuplicateUsernameOrEmail(t *testing.T) {
	db := testutils.SetupTestDB(t)
	userService := NewUserService(NewAuthService("test-secret", 24))

	_, err := userService.Register(db, "alice", "alice@x.com", "secret1")
	assert.NoError(t, err)

	_, err = userService.Register(db, "alice", "other@x.com", "secret1")
	assert.ErrorIs(t, err, ErrUserExists)

	_, err = userService.Register(db, "bob", "alice@x.com", "secret1")
	assert.ErrorIs(t, err, ErrUserExists)

	var count int64
	assert.NoError(t, db.DB.Model(&models.User{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestRegister_BlankIdentity(t *testing.T) {
	db := testutils.SetupTestDB(t)
	userService := NewUserService(NewAuthService("test-secret", 24))

	_, err := userService.Register(db, "   ", "alice@x.com", "secret1")
	assert.ErrorIs(t, err, ErrInvalidInput)

	var count int64
	assert.NoError(t, db.DB.Model(&models.User{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestRegisterThenLogin(t *testing.T) {
	db := testutils.SetupTestDB(t)
	authService := NewAuthService("test-secret", 24)
	userService := NewUserService(authService)

	registered, err := userService.Register(db, "alice", "alice@x.com", "secret1")
	assert.NoError(t, err)

	tokenString, user, err := authService.Login(db, "alice@x.com", "secret1")
	assert.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)

	claims, err := authService.ValidateToken(tokenString)
	assert.NoError(t, err)
	assert.Equal(t, registered.ID, claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, "alice@x.com", claims.Email)

	_, _, err = authService.Login(db, "alice@x.com", "wrong-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = authService.Login(db, "nobody@x.com", "secret1")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
