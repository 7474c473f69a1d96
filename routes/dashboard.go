package routes

import (
	"net/http"
	"time"

	"dayflow-app/dayflow/database"
	"dayflow-app/dayflow/services"

	"github.com/gin-gonic/gin"
)

type completeRequest struct {
	Completed bool `json:"completed"`
}

func RegisterDashboardRoutes(
	group *gin.RouterGroup,
	db *database.Database,
	dashboardService services.DashboardServiceInterface,
	todoService services.TodoServiceInterface,
	reminderService services.ReminderServiceInterface,
) {
	group.GET("/user-data", func(c *gin.Context) { GetUserData(c, db, dashboardService) })
	group.GET("/upcoming-reminders", func(c *gin.Context) { GetUpcomingReminders(c, db, dashboardService) })
	group.GET("/today-tasks", func(c *gin.Context) { GetTodayTasks(c, db, dashboardService) })
	group.PUT("/complete/:type/:id", func(c *gin.Context) { CompleteItem(c, db, todoService, reminderService) })
}

func GetUserData(c *gin.Context, db *database.Database, dashboardService services.DashboardServiceInterface) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	data, err := dashboardService.GetUserData(db, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, data)
}

func GetUpcomingReminders(c *gin.Context, db *database.Database, dashboardService services.DashboardServiceInterface) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	reminders, err := dashboardService.GetUpcomingReminders(db, userID, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, reminders)
}

func GetTodayTasks(c *gin.Context, db *database.Database, dashboardService services.DashboardServiceInterface) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	todos, err := dashboardService.GetTodayTasks(db, userID, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, todos)
}

// CompleteItem flips the completed flag on a todo or reminder.
func CompleteItem(c *gin.Context, db *database.Database, todoService services.TodoServiceInterface, reminderService services.ReminderServiceInterface) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	itemID, ok := pathID(c)
	if !ok {
		return
	}

	var request completeRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var err error
	switch c.Param("type") {
	case "todo":
		err = todoService.SetCompleted(db, userID, itemID, request.Completed)
	case "reminder":
		err = reminderService.SetCompleted(db, userID, itemID, request.Completed)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid type"})
		return
	}

	if err != nil {
		handleServiceError(c, err, "Invalid request")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Status updated successfully"})
}
