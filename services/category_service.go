package services

import (
	"strings"

	"dayflow-app/dayflow/database"
	"dayflow-app/dayflow/models"

	"github.com/google/uuid"
)

type CategoryServiceInterface interface {
	GetCategories(db *database.Database, userID uuid.UUID) ([]models.Category, error)
	CreateCategory(db *database.Database, userID uuid.UUID, name, color string) (models.Category, error)
	UpdateCategory(db *database.Database, userID, categoryID uuid.UUID, name, color string) error
	DeleteCategory(db *database.Database, userID, categoryID uuid.UUID) error
}

type CategoryService struct{}

func (s *CategoryService) GetCategories(db *database.Database, userID uuid.UUID) ([]models.Category, error) {
	categories := []models.Category{}
	if err := db.DB.Where("user_id = ?", userID).Order("name ASC").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (s *CategoryService) CreateCategory(db *database.Database, userID uuid.UUID, name, color string) (models.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Category{}, ErrInvalidInput
	}
	if color == "" {
		color = models.DefaultCategoryColor
	}

	category := models.Category{
		ID:     uuid.New(),
		UserID: userID,
		Name:   name,
		Color:  color,
	}
	if err := db.DB.Create(&category).Error; err != nil {
		return models.Category{}, err
	}
	return category, nil
}

// UpdateCategory renames or recolors a category. A missing or foreign id
// matches zero rows and the call succeeds without effect.
func (s *CategoryService) UpdateCategory(db *database.Database, userID, categoryID uuid.UUID, name, color string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrInvalidInput
	}
	if color == "" {
		color = models.DefaultCategoryColor
	}

	return db.DB.Model(&models.Category{}).
		Where("id = ? AND user_id = ?", categoryID, userID).
		Updates(map[string]interface{}{"name": name, "color": color}).Error
}

// DeleteCategory clears the category reference on every note, todo and
// reminder the user owns before removing the category row itself, all in
// one transaction so no durable state has dangling references.
func (s *CategoryService) DeleteCategory(db *database.Database, userID, categoryID uuid.UUID) error {
	tx := db.DB.Begin()
	if tx.Error != nil {
		return tx.Error
	}

	if err := tx.Model(&models.Note{}).
		Where("category_id = ? AND user_id = ?", categoryID, userID).
		UpdateColumn("category_id", nil).Error; err != nil {
		tx.Rollback()
		return err
	}

	if err := tx.Model(&models.Todo{}).
		Where("category_id = ? AND user_id = ?", categoryID, userID).
		UpdateColumn("category_id", nil).Error; err != nil {
		tx.Rollback()
		return err
	}

	if err := tx.Model(&models.Reminder{}).
		Where("category_id = ? AND user_id = ?", categoryID, userID).
		UpdateColumn("category_id", nil).Error; err != nil {
		tx.Rollback()
		return err
	}

	if err := tx.Where("id = ? AND user_id = ?", categoryID, userID).
		Delete(&models.Category{}).Error; err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit().Error
}

var CategoryServiceInstance CategoryServiceInterface = &CategoryService{}
