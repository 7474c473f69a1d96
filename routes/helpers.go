package routes

import (
	"errors"
	"net/http"

	"dayflow-app/dayflow/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// currentUserID reads the identity the auth middleware attached. Handlers
// below this gate should always find it; a miss means the route was wired
// outside the protected group.
func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	userIDInterface, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return uuid.Nil, false
	}

	userID, ok := userIDInterface.(uuid.UUID)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return uuid.Nil, false
	}

	return userID, true
}

// pathID parses the :id path parameter.
func pathID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return uuid.Nil, false
	}
	return id, true
}

// handleServiceError maps service errors onto the response taxonomy.
// Store and driver failures surface as an opaque 500.
func handleServiceError(c *gin.Context, err error, message string) {
	switch {
	case errors.Is(err, services.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": message})
	case errors.Is(err, services.ErrNoteNotFound),
		errors.Is(err, services.ErrTodoNotFound),
		errors.Is(err, services.ErrReminderNotFound),
		errors.Is(err, services.ErrCategoryNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
