package services

import (
	"strings"

	"dayflow-app/dayflow/database"
	"dayflow-app/dayflow/models"

	"github.com/google/uuid"
)

type UserServiceInterface interface {
	Register(db *database.Database, username, email, password string) (models.User, error)
}

type UserService struct {
	authService AuthServiceInterface
}

func NewUserService(authService AuthServiceInterface) *UserService {
	return &UserService{authService: authService}
}

// Register creates the user row and the starter category set in a single
// transaction: a user is never left authenticatable without its seed.
func (s *UserService) Register(db *database.Database, username, email, password string) (models.User, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)
	if username == "" || email == "" {
		return models.User{}, ErrInvalidInput
	}

	tx := db.DB.Begin()
	if tx.Error != nil {
		return models.User{}, tx.Error
	}

	var count int64
	if err := tx.Model(&models.User{}).
		Where("username = ? OR email = ?", username, email).
		Count(&count).Error; err != nil {
		tx.Rollback()
		return models.User{}, err
	}
	if count > 0 {
		tx.Rollback()
		return models.User{}, ErrUserExists
	}

	hash, err := s.authService.HashPassword(password)
	if err != nil {
		tx.Rollback()
		return models.User{}, err
	}

	user := models.User{
		ID:           uuid.New(),
		Username:     username,
		Email:        email,
		PasswordHash: hash,
	}

	if err := tx.Create(&user).Error; err != nil {
		tx.Rollback()
		return models.User{}, err
	}

	for _, seed := range models.DefaultCategories {
		category := models.Category{
			ID:     uuid.New(),
			UserID: user.ID,
			Name:   seed.Name,
			Color:  seed.Color,
		}
		if err := tx.Create(&category).Error; err != nil {
			tx.Rollback()
			return models.User{}, err
		}
	}

	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		return models.User{}, err
	}

	return user, nil
}

var UserServiceInstance UserServiceInterface
