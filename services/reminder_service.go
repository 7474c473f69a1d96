package services

import (
	"errors"
	"strings"
	"time"

	"dayflow-app/dayflow/database"
	"dayflow-app/dayflow/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReminderInput carries the writable reminder fields from the API boundary.
type ReminderInput struct {
	Title        string
	Description  string
	CategoryID   *uuid.UUID
	ReminderTime time.Time
	IsCompleted  bool
}

type ReminderServiceInterface interface {
	GetReminders(db *database.Database, userID uuid.UUID) ([]models.Reminder, error)
	CreateReminder(db *database.Database, userID uuid.UUID, input ReminderInput) (models.Reminder, error)
	UpdateReminder(db *database.Database, userID, reminderID uuid.UUID, input ReminderInput) (models.Reminder, error)
	DeleteReminder(db *database.Database, userID, reminderID uuid.UUID) error
	SetCompleted(db *database.Database, userID, reminderID uuid.UUID, completed bool) error
}

type ReminderService struct{}

const reminderCategoryJoin = "LEFT JOIN categories ON categories.id = reminders.category_id"

func reminderByID(tx *gorm.DB, id uuid.UUID) (models.Reminder, error) {
	var reminder models.Reminder
	err := tx.Model(&models.Reminder{}).
		Select("reminders.*, categories.name AS category_name, categories.color AS category_color").
		Joins(reminderCategoryJoin).
		Where("reminders.id = ?", id).
		First(&reminder).Error
	return reminder, err
}

func (i *ReminderInput) normalize() error {
	i.Title = strings.TrimSpace(i.Title)
	if i.Title == "" {
		return ErrInvalidInput
	}
	if i.ReminderTime.IsZero() {
		return ErrInvalidInput
	}
	return nil
}

func (s *ReminderService) GetReminders(db *database.Database, userID uuid.UUID) ([]models.Reminder, error) {
	reminders := []models.Reminder{}
	err := db.DB.Model(&models.Reminder{}).
		Select("reminders.*, categories.name AS category_name, categories.color AS category_color").
		Joins(reminderCategoryJoin).
		Where("reminders.user_id = ?", userID).
		Order("reminders.reminder_time ASC").
		Find(&reminders).Error
	if err != nil {
		return nil, err
	}
	return reminders, nil
}

func (s *ReminderService) CreateReminder(db *database.Database, userID uuid.UUID, input ReminderInput) (models.Reminder, error) {
	if err := input.normalize(); err != nil {
		return models.Reminder{}, err
	}

	tx := db.DB.Begin()
	if tx.Error != nil {
		return models.Reminder{}, tx.Error
	}

	owned, err := ownsCategory(tx, userID, input.CategoryID)
	if err != nil {
		tx.Rollback()
		return models.Reminder{}, err
	}
	if !owned {
		tx.Rollback()
		return models.Reminder{}, ErrInvalidInput
	}

	reminder := models.Reminder{
		ID:           uuid.New(),
		UserID:       userID,
		Title:        input.Title,
		Description:  input.Description,
		CategoryID:   input.CategoryID,
		ReminderTime: input.ReminderTime,
		IsCompleted:  input.IsCompleted,
	}
	if err := tx.Create(&reminder).Error; err != nil {
		tx.Rollback()
		return models.Reminder{}, err
	}

	created, err := reminderByID(tx, reminder.ID)
	if err != nil {
		tx.Rollback()
		return models.Reminder{}, err
	}

	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		return models.Reminder{}, err
	}
	return created, nil
}

func (s *ReminderService) UpdateReminder(db *database.Database, userID, reminderID uuid.UUID, input ReminderInput) (models.Reminder, error) {
	if err := input.normalize(); err != nil {
		return models.Reminder{}, err
	}

	tx := db.DB.Begin()
	if tx.Error != nil {
		return models.Reminder{}, tx.Error
	}

	var reminder models.Reminder
	if err := tx.Where("id = ? AND user_id = ?", reminderID, userID).First(&reminder).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Reminder{}, ErrReminderNotFound
		}
		return models.Reminder{}, err
	}

	owned, err := ownsCategory(tx, userID, input.CategoryID)
	if err != nil {
		tx.Rollback()
		return models.Reminder{}, err
	}
	if !owned {
		tx.Rollback()
		return models.Reminder{}, ErrInvalidInput
	}

	if err := tx.Model(&reminder).Updates(map[string]interface{}{
		"title":         input.Title,
		"description":   input.Description,
		"category_id":   input.CategoryID,
		"reminder_time": input.ReminderTime,
		"is_completed":  input.IsCompleted,
	}).Error; err != nil {
		tx.Rollback()
		return models.Reminder{}, err
	}

	updated, err := reminderByID(tx, reminder.ID)
	if err != nil {
		tx.Rollback()
		return models.Reminder{}, err
	}

	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		return models.Reminder{}, err
	}
	return updated, nil
}

// DeleteReminder is idempotent: deleting a missing or foreign row succeeds
// without side effects.
func (s *ReminderService) DeleteReminder(db *database.Database, userID, reminderID uuid.UUID) error {
	return db.DB.Where("id = ? AND user_id = ?", reminderID, userID).
		Delete(&models.Reminder{}).Error
}

func (s *ReminderService) SetCompleted(db *database.Database, userID, reminderID uuid.UUID, completed bool) error {
	result := db.DB.Model(&models.Reminder{}).
		Where("id = ? AND user_id = ?", reminderID, userID).
		UpdateColumn("is_completed", completed)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrReminderNotFound
	}
	return nil
}

var ReminderServiceInstance ReminderServiceInterface = &ReminderService{}
