package services

import (
	"time"

	"dayflow-app/dayflow/database"
	"dayflow-app/dayflow/models"

	"github.com/google/uuid"
)

// UserData is the full dashboard snapshot: every list carries the store's
// default ordering and the category join fields.
type UserData struct {
	Notes      []models.Note     `json:"notes"`
	Todos      []models.Todo     `json:"todos"`
	Reminders  []models.Reminder `json:"reminders"`
	Categories []models.Category `json:"categories"`
}

type DashboardServiceInterface interface {
	GetUserData(db *database.Database, userID uuid.UUID) (UserData, error)
	GetUpcomingReminders(db *database.Database, userID uuid.UUID, now time.Time) ([]models.Reminder, error)
	GetTodayTasks(db *database.Database, userID uuid.UUID, now time.Time) ([]models.Todo, error)
}

type DashboardService struct {
	noteService     NoteServiceInterface
	todoService     TodoServiceInterface
	reminderService ReminderServiceInterface
	categoryService CategoryServiceInterface
}

func NewDashboardService(
	noteService NoteServiceInterface,
	todoService TodoServiceInterface,
	reminderService ReminderServiceInterface,
	categoryService CategoryServiceInterface,
) *DashboardService {
	return &DashboardService{
		noteService:     noteService,
		todoService:     todoService,
		reminderService: reminderService,
		categoryService: categoryService,
	}
}

func (s *DashboardService) GetUserData(db *database.Database, userID uuid.UUID) (UserData, error) {
	notes, err := s.noteService.GetNotes(db, userID)
	if err != nil {
		return UserData{}, err
	}
	todos, err := s.todoService.GetTodos(db, userID)
	if err != nil {
		return UserData{}, err
	}
	reminders, err := s.reminderService.GetReminders(db, userID)
	if err != nil {
		return UserData{}, err
	}
	categories, err := s.categoryService.GetCategories(db, userID)
	if err != nil {
		return UserData{}, err
	}

	return UserData{
		Notes:      notes,
		Todos:      todos,
		Reminders:  reminders,
		Categories: categories,
	}, nil
}

// GetUpcomingReminders returns the next incomplete reminders at or after
// now, earliest first, capped at 10.
func (s *DashboardService) GetUpcomingReminders(db *database.Database, userID uuid.UUID, now time.Time) ([]models.Reminder, error) {
	reminders := []models.Reminder{}
	err := db.DB.Model(&models.Reminder{}).
		Select("reminders.*, categories.name AS category_name, categories.color AS category_color").
		Joins(reminderCategoryJoin).
		Where("reminders.user_id = ? AND reminders.is_completed = ? AND reminders.reminder_time >= ?", userID, false, now).
		Order("reminders.reminder_time ASC").
		Limit(10).
		Find(&reminders).Error
	if err != nil {
		return nil, err
	}
	return reminders, nil
}

// GetTodayTasks returns todos due on the server-local calendar date of now,
// highest priority first, oldest first within a priority.
func (s *DashboardService) GetTodayTasks(db *database.Database, userID uuid.UUID, now time.Time) ([]models.Todo, error) {
	today := now.Format("2006-01-02")

	todos := []models.Todo{}
	err := db.DB.Model(&models.Todo{}).
		Select("todos.*, categories.name AS category_name, categories.color AS category_color").
		Joins(todoCategoryJoin).
		Where("todos.user_id = ? AND todos.due_date = ?", userID, today).
		Order(models.PriorityRankExpr + " DESC").
		Order("todos.created_at ASC").
		Find(&todos).Error
	if err != nil {
		return nil, err
	}
	return todos, nil
}

var DashboardServiceInstance DashboardServiceInterface
