package services

import (
	"errors"
	"strings"

	"dayflow-app/dayflow/database"
	"dayflow-app/dayflow/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NoteInput carries the writable note fields from the API boundary.
type NoteInput struct {
	Title      string
	Content    string
	CategoryID *uuid.UUID
	IsPinned   bool
}

type NoteServiceInterface interface {
	GetNotes(db *database.Database, userID uuid.UUID) ([]models.Note, error)
	CreateNote(db *database.Database, userID uuid.UUID, input NoteInput) (models.Note, error)
	UpdateNote(db *database.Database, userID, noteID uuid.UUID, input NoteInput) (models.Note, error)
	DeleteNote(db *database.Database, userID, noteID uuid.UUID) error
	SetPinned(db *database.Database, userID, noteID uuid.UUID, pinned bool) error
}

type NoteService struct{}

const noteCategoryJoin = "LEFT JOIN categories ON categories.id = notes.category_id"

func noteByID(tx *gorm.DB, id uuid.UUID) (models.Note, error) {
	var note models.Note
	err := tx.Model(&models.Note{}).
		Select("notes.*, categories.name AS category_name, categories.color AS category_color").
		Joins(noteCategoryJoin).
		Where("notes.id = ?", id).
		First(&note).Error
	return note, err
}

// ownsCategory reports whether the category exists and belongs to the user.
func ownsCategory(tx *gorm.DB, userID uuid.UUID, categoryID *uuid.UUID) (bool, error) {
	if categoryID == nil {
		return true, nil
	}
	var count int64
	err := tx.Model(&models.Category{}).
		Where("id = ? AND user_id = ?", categoryID, userID).
		Count(&count).Error
	return count > 0, err
}

func (s *NoteService) GetNotes(db *database.Database, userID uuid.UUID) ([]models.Note, error) {
	notes := []models.Note{}
	err := db.DB.Model(&models.Note{}).
		Select("notes.*, categories.name AS category_name, categories.color AS category_color").
		Joins(noteCategoryJoin).
		Where("notes.user_id = ?", userID).
		Order("notes.is_pinned DESC").
		Order("notes.updated_at DESC").
		Find(&notes).Error
	if err != nil {
		return nil, err
	}
	return notes, nil
}

func (s *NoteService) CreateNote(db *database.Database, userID uuid.UUID, input NoteInput) (models.Note, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return models.Note{}, ErrInvalidInput
	}

	tx := db.DB.Begin()
	if tx.Error != nil {
		return models.Note{}, tx.Error
	}

	owned, err := ownsCategory(tx, userID, input.CategoryID)
	if err != nil {
		tx.Rollback()
		return models.Note{}, err
	}
	if !owned {
		tx.Rollback()
		return models.Note{}, ErrInvalidInput
	}

	note := models.Note{
		ID:         uuid.New(),
		UserID:     userID,
		Title:      title,
		Content:    input.Content,
		CategoryID: input.CategoryID,
		IsPinned:   input.IsPinned,
	}
	if err := tx.Create(&note).Error; err != nil {
		tx.Rollback()
		return models.Note{}, err
	}

	created, err := noteByID(tx, note.ID)
	if err != nil {
		tx.Rollback()
		return models.Note{}, err
	}

	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		return models.Note{}, err
	}
	return created, nil
}

func (s *NoteService) UpdateNote(db *database.Database, userID, noteID uuid.UUID, input NoteInput) (models.Note, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return models.Note{}, ErrInvalidInput
	}

	tx := db.DB.Begin()
	if tx.Error != nil {
		return models.Note{}, tx.Error
	}

	var note models.Note
	if err := tx.Where("id = ? AND user_id = ?", noteID, userID).First(&note).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Note{}, ErrNoteNotFound
		}
		return models.Note{}, err
	}

	owned, err := ownsCategory(tx, userID, input.CategoryID)
	if err != nil {
		tx.Rollback()
		return models.Note{}, err
	}
	if !owned {
		tx.Rollback()
		return models.Note{}, ErrInvalidInput
	}

	if err := tx.Model(&note).Updates(map[string]interface{}{
		"title":       title,
		"content":     input.Content,
		"category_id": input.CategoryID,
		"is_pinned":   input.IsPinned,
	}).Error; err != nil {
		tx.Rollback()
		return models.Note{}, err
	}

	updated, err := noteByID(tx, note.ID)
	if err != nil {
		tx.Rollback()
		return models.Note{}, err
	}

	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		return models.Note{}, err
	}
	return updated, nil
}

// DeleteNote is idempotent: deleting a missing or foreign row succeeds
// without side effects.
func (s *NoteService) DeleteNote(db *database.Database, userID, noteID uuid.UUID) error {
	return db.DB.Where("id = ? AND user_id = ?", noteID, userID).
		Delete(&models.Note{}).Error
}

// SetPinned flips only the pinned flag. UpdateColumn leaves updated_at
// untouched so pinning does not reshuffle the recency ordering.
func (s *NoteService) SetPinned(db *database.Database, userID, noteID uuid.UUID, pinned bool) error {
	result := db.DB.Model(&models.Note{}).
		Where("id = ? AND user_id = ?", noteID, userID).
		UpdateColumn("is_pinned", pinned)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNoteNotFound
	}
	return nil
}

var NoteServiceInstance NoteServiceInterface = &NoteService{}
