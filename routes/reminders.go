package routes

import (
	"net/http"
	"time"

	"dayflow-app/dayflow/database"
	"dayflow-app/dayflow/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type reminderRequest struct {
	Title        string     `json:"title" binding:"required"`
	Description  string     `json:"description"`
	CategoryID   *uuid.UUID `json:"category_id"`
	ReminderTime string     `json:"reminder_time" binding:"required"`
	IsCompleted  bool       `json:"is_completed"`
}

// reminderTimeFormats covers RFC3339 plus the formats browser
// datetime-local inputs commonly submit.
var reminderTimeFormats = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
}

func parseReminderTime(value string) (time.Time, bool) {
	for _, layout := range reminderTimeFormats {
		if t, err := time.ParseInLocation(layout, value, time.Local); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func RegisterReminderRoutes(group *gin.RouterGroup, db *database.Database, reminderService services.ReminderServiceInterface) {
	group.GET("/reminders", func(c *gin.Context) { GetReminders(c, db, reminderService) })
	group.POST("/reminders", func(c *gin.Context) { CreateReminder(c, db, reminderService) })
	group.PUT("/reminders/:id", func(c *gin.Context) { UpdateReminder(c, db, reminderService) })
	group.DELETE("/reminders/:id", func(c *gin.Context) { DeleteReminder(c, db, reminderService) })
}

func GetReminders(c *gin.Context, db *database.Database, reminderService services.ReminderServiceInterface) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	reminders, err := reminderService.GetReminders(db, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, reminders)
}

func CreateReminder(c *gin.Context, db *database.Database, reminderService services.ReminderServiceInterface) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var request reminderRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Reminder title and time are required"})
		return
	}

	reminderTime, ok := parseReminderTime(request.ReminderTime)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid reminder time"})
		return
	}

	reminder, err := reminderService.CreateReminder(db, userID, services.ReminderInput{
		Title:        request.Title,
		Description:  request.Description,
		CategoryID:   request.CategoryID,
		ReminderTime: reminderTime,
		IsCompleted:  request.IsCompleted,
	})
	if err != nil {
		handleServiceError(c, err, "Reminder title is required")
		return
	}
	c.JSON(http.StatusCreated, reminder)
}

func UpdateReminder(c *gin.Context, db *database.Database, reminderService services.ReminderServiceInterface) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	reminderID, ok := pathID(c)
	if !ok {
		return
	}

	var request reminderRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Reminder title and time are required"})
		return
	}

	reminderTime, ok := parseReminderTime(request.ReminderTime)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid reminder time"})
		return
	}

	reminder, err := reminderService.UpdateReminder(db, userID, reminderID, services.ReminderInput{
		Title:        request.Title,
		Description:  request.Description,
		CategoryID:   request.CategoryID,
		ReminderTime: reminderTime,
		IsCompleted:  request.IsCompleted,
	})
	if err != nil {
		handleServiceError(c, err, "Reminder title is required")
		return
	}
	c.JSON(http.StatusOK, reminder)
}

func DeleteReminder(c *gin.Context, db *database.Database, reminderService services.ReminderServiceInterface) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	reminderID, ok := pathID(c)
	if !ok {
		return
	}

	if err := reminderService.DeleteReminder(db, userID, reminderID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Reminder deleted successfully"})
}
