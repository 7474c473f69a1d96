package routes

import (
	"net/http"

	"dayflow-app/dayflow/database"
	"dayflow-app/dayflow/models"
	"dayflow-app/dayflow/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type todoRequest struct {
	Task        string     `json:"task" binding:"required"`
	CategoryID  *uuid.UUID `json:"category_id"`
	Priority    string     `json:"priority"`
	DueDate     *string    `json:"due_date"`
	IsCompleted bool       `json:"is_completed"`
}

func (r todoRequest) toInput() services.TodoInput {
	return services.TodoInput{
		Task:        r.Task,
		CategoryID:  r.CategoryID,
		Priority:    models.Priority(r.Priority),
		DueDate:     r.DueDate,
		IsCompleted: r.IsCompleted,
	}
}

func RegisterTodoRoutes(group *gin.RouterGroup, db *database.Database, todoService services.TodoServiceInterface) {
	group.GET("/todos", func(c *gin.Context) { GetTodos(c, db, todoService) })
	group.POST("/todos", func(c *gin.Context) { CreateTodo(c, db, todoService) })
	group.PUT("/todos/:id", func(c *gin.Context) { UpdateTodo(c, db, todoService) })
	group.DELETE("/todos/:id", func(c *gin.Context) { DeleteTodo(c, db, todoService) })
}

func GetTodos(c *gin.Context, db *database.Database, todoService services.TodoServiceInterface) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	todos, err := todoService.GetTodos(db, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, todos)
}

func CreateTodo(c *gin.Context, db *database.Database, todoService services.TodoServiceInterface) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var request todoRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Task description is required"})
		return
	}

	todo, err := todoService.CreateTodo(db, userID, request.toInput())
	if err != nil {
		handleServiceError(c, err, "Task description is required")
		return
	}
	c.JSON(http.StatusCreated, todo)
}

func UpdateTodo(c *gin.Context, db *database.Database, todoService services.TodoServiceInterface) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	todoID, ok := pathID(c)
	if !ok {
		return
	}

	var request todoRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Task description is required"})
		return
	}

	todo, err := todoService.UpdateTodo(db, userID, todoID, request.toInput())
	if err != nil {
		handleServiceError(c, err, "Task description is required")
		return
	}
	c.JSON(http.StatusOK, todo)
}

func DeleteTodo(c *gin.Context, db *database.Database, todoService services.TodoServiceInterface) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	todoID, ok := pathID(c)
	if !ok {
		return
	}

	if err := todoService.DeleteTodo(db, userID, todoID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Todo deleted successfully"})
}
