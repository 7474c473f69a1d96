package services

import (
	"fmt"
	"testing"
	"time"

	"dayflow-app/dayflow/models"
	"dayflow-app/dayflow/testutils"

	"github.com/stretchr/testify/assert"
)

func newTestDashboardService() *DashboardService {
	return NewDashboardService(&NoteService{}, &TodoService{}, &ReminderService{}, &CategoryService{})
}

func TestGetUserData(t *testing.T) {
	db := testutils.SetupTestDB(t)
	alice := createTestUser(t, db, "alice", "alice@x.com")
	bob := createTestUser(t, db, "bob", "bob@x.com")
	service := newTestDashboardService()

	noteService := &NoteService{}
	todoService := &TodoService{}
	reminderService := &ReminderService{}
	categoryService := &CategoryService{}

	category, err := categoryService.CreateCategory(db, alice.ID, "Urgent", "#f00")
	assert.NoError(t, err)
	_, err = noteService.CreateNote(db, alice.ID, NoteInput{Title: "note", CategoryID: &category.ID})
	assert.NoError(t, err)
	_, err = todoService.CreateTodo(db, alice.ID, TodoInput{Task: "todo"})
	assert.NoError(t, err)
	_, err = reminderService.CreateReminder(db, alice.ID, ReminderInput{Title: "reminder", ReminderTime: time.Now().Add(time.Hour)})
	assert.NoError(t, err)

	// Bob's rows must never surface in Alice's snapshot.
	_, err = noteService.CreateNote(db, bob.ID, NoteInput{Title: "bob note"})
	assert.NoError(t, err)

	data, err := service.GetUserData(db, alice.ID)
	assert.NoError(t, err)
	assert.Len(t, data.Notes, 1)
	assert.Len(t, data.Todos, 1)
	assert.Len(t, data.Reminders, 1)
	assert.Len(t, data.Categories, 1)
	if assert.NotNil(t, data.Notes[0].CategoryName) {
		assert.Equal(t, "Urgent", *data.Notes[0].CategoryName)
	}
}

func TestGetUpcomingReminders(t *testing.T) {
	db := testutils.SetupTestDB(t)
	user := createTestUser(t, db, "alice", "alice@x.com")
	service := newTestDashboardService()
	reminderService := &ReminderService{}

	now := time.Now().Truncate(time.Second)

	past, err := reminderService.CreateReminder(db, user.ID, ReminderInput{Title: "past", ReminderTime: now.Add(-time.Hour)})
	assert.NoError(t, err)
	done, err := reminderService.CreateReminder(db, user.ID, ReminderInput{Title: "done", ReminderTime: now.Add(time.Hour), IsCompleted: true})
	assert.NoError(t, err)

	// Twelve future incomplete reminders: the view caps at ten.
	for i := 1; i <= 12; i++ {
		_, err := reminderService.CreateReminder(db, user.ID, ReminderInput{
			Title:        fmt.Sprintf("upcoming %02d", i),
			ReminderTime: now.Add(time.Duration(i) * time.Hour),
		})
		assert.NoError(t, err)
	}

	reminders, err := service.GetUpcomingReminders(db, user.ID, now)
	assert.NoError(t, err)
	assert.Len(t, reminders, 10)
	assert.Equal(t, "upcoming 01", reminders[0].Title)
	for _, r := range reminders {
		assert.NotEqual(t, past.ID, r.ID)
		assert.NotEqual(t, done.ID, r.ID)
		assert.False(t, r.IsCompleted)
	}
	for i := 1; i < len(reminders); i++ {
		assert.False(t, reminders[i].ReminderTime.Before(reminders[i-1].ReminderTime))
	}
}

func TestGetTodayTasks(t *testing.T) {
	db := testutils.SetupTestDB(t)
	user := createTestUser(t, db, "alice", "alice@x.com")
	service := newTestDashboardService()
	todoService := &TodoService{}

	now := time.Now()
	today := now.Format("2006-01-02")
	tomorrow := now.AddDate(0, 0, 1).Format("2006-01-02")

	todayMedium, err := todoService.CreateTodo(db, user.ID, TodoInput{Task: "today medium", DueDate: &today})
	assert.NoError(t, err)
	time.Sleep(10 * time.Millisecond)
	todayHigh, err := todoService.CreateTodo(db, user.ID, TodoInput{Task: "today high", Priority: models.PriorityHigh, DueDate: &today})
	assert.NoError(t, err)
	_, err = todoService.CreateTodo(db, user.ID, TodoInput{Task: "tomorrow", DueDate: &tomorrow})
	assert.NoError(t, err)
	_, err = todoService.CreateTodo(db, user.ID, TodoInput{Task: "undated"})
	assert.NoError(t, err)

	todos, err := service.GetTodayTasks(db, user.ID, now)
	assert.NoError(t, err)
	if assert.Len(t, todos, 2) {
		assert.Equal(t, todayHigh.ID, todos[0].ID)
		assert.Equal(t, todayMedium.ID, todos[1].ID)
	}
}

// Full pass over the register/login/todo/category lifecycle.
func TestEndToEndScenario(t *testing.T) {
	db := testutils.SetupTestDB(t)
	authService := NewAuthService("test-secret", 24)
	userService := NewUserService(authService)
	todoService := &TodoService{}
	categoryService := &CategoryService{}
	dashboardService := newTestDashboardService()

	_, err := userService.Register(db, "alice", "alice@x.com", "secret1")
	assert.NoError(t, err)

	tokenString, user, err := authService.Login(db, "alice@x.com", "secret1")
	assert.NoError(t, err)
	claims, err := authService.ValidateToken(tokenString)
	assert.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	remaining := time.Until(claims.ExpiresAt.Time)
	assert.Greater(t, remaining, 23*time.Hour)
	assert.LessOrEqual(t, remaining, 24*time.Hour)

	now := time.Now()
	today := now.Format("2006-01-02")
	todo, err := todoService.CreateTodo(db, user.ID, TodoInput{
		Task:     "Buy milk",
		Priority: models.PriorityHigh,
		DueDate:  &today,
	})
	assert.NoError(t, err)

	tasks, err := dashboardService.GetTodayTasks(db, user.ID, now)
	assert.NoError(t, err)
	if assert.Len(t, tasks, 1) {
		assert.Equal(t, "Buy milk", tasks[0].Task)
	}

	category, err := categoryService.CreateCategory(db, user.ID, "Urgent", "#f00")
	assert.NoError(t, err)

	todo, err = todoService.UpdateTodo(db, user.ID, todo.ID, TodoInput{
		Task:       "Buy milk",
		Priority:   models.PriorityHigh,
		DueDate:    &today,
		CategoryID: &category.ID,
	})
	assert.NoError(t, err)
	if assert.NotNil(t, todo.CategoryName) {
		assert.Equal(t, "Urgent", *todo.CategoryName)
	}

	assert.NoError(t, categoryService.DeleteCategory(db, user.ID, category.ID))

	refetched, err := dashboardService.GetTodayTasks(db, user.ID, now)
	assert.NoError(t, err)
	if assert.Len(t, refetched, 1) {
		assert.Equal(t, "Buy milk", refetched[0].Task)
		assert.Nil(t, refetched[0].CategoryID)
		assert.Nil(t, refetched[0].CategoryName)
		assert.Nil(t, refetched[0].CategoryColor)
	}
}
