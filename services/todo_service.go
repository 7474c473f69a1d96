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

// TodoInput carries the writable todo fields from the API boundary.
type TodoInput struct {
	Task        string
	CategoryID  *uuid.UUID
	Priority    models.Priority
	DueDate     *string
	IsCompleted bool
}

type TodoServiceInterface interface {
	GetTodos(db *database.Database, userID uuid.UUID) ([]models.Todo, error)
	CreateTodo(db *database.Database, userID uuid.UUID, input TodoInput) (models.Todo, error)
	UpdateTodo(db *database.Database, userID, todoID uuid.UUID, input TodoInput) (models.Todo, error)
	DeleteTodo(db *database.Database, userID, todoID uuid.UUID) error
	SetCompleted(db *database.Database, userID, todoID uuid.UUID, completed bool) error
}

type TodoService struct{}

const todoCategoryJoin = "LEFT JOIN categories ON categories.id = todos.category_id"

// Highest priority first, dated todos before undated ones, then earliest
// due date first.
func todoListOrder(query *gorm.DB) *gorm.DB {
	return query.
		Order(models.PriorityRankExpr + " DESC").
		Order("CASE WHEN todos.due_date IS NULL THEN 1 ELSE 0 END").
		Order("todos.due_date ASC")
}

func todoByID(tx *gorm.DB, id uuid.UUID) (models.Todo, error) {
	var todo models.Todo
	err := tx.Model(&models.Todo{}).
		Select("todos.*, categories.name AS category_name, categories.color AS category_color").
		Joins(todoCategoryJoin).
		Where("todos.id = ?", id).
		First(&todo).Error
	return todo, err
}

func (i *TodoInput) normalize() error {
	i.Task = strings.TrimSpace(i.Task)
	if i.Task == "" {
		return ErrInvalidInput
	}
	if i.Priority == "" {
		i.Priority = models.PriorityMedium
	}
	if !i.Priority.IsValid() {
		return ErrInvalidInput
	}
	if i.DueDate != nil {
		if *i.DueDate == "" {
			i.DueDate = nil
		} else if _, err := time.Parse("2006-01-02", *i.DueDate); err != nil {
			return ErrInvalidInput
		}
	}
	return nil
}

func (s *TodoService) GetTodos(db *database.Database, userID uuid.UUID) ([]models.Todo, error) {
	todos := []models.Todo{}
	query := db.DB.Model(&models.Todo{}).
		Select("todos.*, categories.name AS category_name, categories.color AS category_color").
		Joins(todoCategoryJoin).
		Where("todos.user_id = ?", userID)
	if err := todoListOrder(query).Find(&todos).Error; err != nil {
		return nil, err
	}
	return todos, nil
}

func (s *TodoService) CreateTodo(db *database.Database, userID uuid.UUID, input TodoInput) (models.Todo, error) {
	if err := input.normalize(); err != nil {
		return models.Todo{}, err
	}

	tx := db.DB.Begin()
	if tx.Error != nil {
		return models.Todo{}, tx.Error
	}

	owned, err := ownsCategory(tx, userID, input.CategoryID)
	if err != nil {
		tx.Rollback()
		return models.Todo{}, err
	}
	if !owned {
		tx.Rollback()
		return models.Todo{}, ErrInvalidInput
	}

	todo := models.Todo{
		ID:          uuid.New(),
		UserID:      userID,
		Task:        input.Task,
		CategoryID:  input.CategoryID,
		Priority:    input.Priority,
		DueDate:     input.DueDate,
		IsCompleted: input.IsCompleted,
	}
	if err := tx.Create(&todo).Error; err != nil {
		tx.Rollback()
		return models.Todo{}, err
	}

	created, err := todoByID(tx, todo.ID)
	if err != nil {
		tx.Rollback()
		return models.Todo{}, err
	}

	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		return models.Todo{}, err
	}
	return created, nil
}

func (s *TodoService) UpdateTodo(db *database.Database, userID, todoID uuid.UUID, input TodoInput) (models.Todo, error) {
	if err := input.normalize(); err != nil {
		return models.Todo{}, err
	}

	tx := db.DB.Begin()
	if tx.Error != nil {
		return models.Todo{}, tx.Error
	}

	var todo models.Todo
	if err := tx.Where("id = ? AND user_id = ?", todoID, userID).First(&todo).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Todo{}, ErrTodoNotFound
		}
		return models.Todo{}, err
	}

	owned, err := ownsCategory(tx, userID, input.CategoryID)
	if err != nil {
		tx.Rollback()
		return models.Todo{}, err
	}
	if !owned {
		tx.Rollback()
		return models.Todo{}, ErrInvalidInput
	}

	if err := tx.Model(&todo).Updates(map[string]interface{}{
		"task":         input.Task,
		"category_id":  input.CategoryID,
		"priority":     input.Priority,
		"due_date":     input.DueDate,
		"is_completed": input.IsCompleted,
	}).Error; err != nil {
		tx.Rollback()
		return models.Todo{}, err
	}

	updated, err := todoByID(tx, todo.ID)
	if err != nil {
		tx.Rollback()
		return models.Todo{}, err
	}

	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		return models.Todo{}, err
	}
	return updated, nil
}

// DeleteTodo is idempotent: deleting a missing or foreign row succeeds
// without side effects.
func (s *TodoService) DeleteTodo(db *database.Database, userID, todoID uuid.UUID) error {
	return db.DB.Where("id = ? AND user_id = ?", todoID, userID).
		Delete(&models.Todo{}).Error
}

func (s *TodoService) SetCompleted(db *database.Database, userID, todoID uuid.UUID, completed bool) error {
	result := db.DB.Model(&models.Todo{}).
		Where("id = ? AND user_id = ?", todoID, userID).
		UpdateColumn("is_completed", completed)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTodoNotFound
	}
	return nil
}

var TodoServiceInstance TodoServiceInterface = &TodoService{}
