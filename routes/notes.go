package routes

import (
	"net/http"

	"dayflow-app/dayflow/database"
	"dayflow-app/dayflow/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type noteRequest struct {
	Title      string     `json:"title" binding:"required"`
	Content    string     `json:"content"`
	CategoryID *uuid.UUID `json:"category_id"`
	IsPinned   bool       `json:"is_pinned"`
}

type pinRequest struct {
	Pinned bool `json:"pinned"`
}

func RegisterNoteRoutes(group *gin.RouterGroup, db *database.Database, noteService services.NoteServiceInterface) {
	group.GET("/notes", func(c *gin.Context) { GetNotes(c, db, noteService) })
	group.POST("/notes", func(c *gin.Context) { CreateNote(c, db, noteService) })
	group.PUT("/notes/:id", func(c *gin.Context) { UpdateNote(c, db, noteService) })
	group.DELETE("/notes/:id", func(c *gin.Context) { DeleteNote(c, db, noteService) })
	group.PUT("/notes/:id/pin", func(c *gin.Context) { PinNote(c, db, noteService) })
}

func GetNotes(c *gin.Context, db *database.Database, noteService services.NoteServiceInterface) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	notes, err := noteService.GetNotes(db, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, notes)
}

func CreateNote(c *gin.Context, db *database.Database, noteService services.NoteServiceInterface) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var request noteRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Note title is required"})
		return
	}

	note, err := noteService.CreateNote(db, userID, services.NoteInput{
		Title:      request.Title,
		Content:    request.Content,
		CategoryID: request.CategoryID,
		IsPinned:   request.IsPinned,
	})
	if err != nil {
		handleServiceError(c, err, "Note title is required")
		return
	}
	c.JSON(http.StatusCreated, note)
}

func UpdateNote(c *gin.Context, db *database.Database, noteService services.NoteServiceInterface) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	noteID, ok := pathID(c)
	if !ok {
		return
	}

	var request noteRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Note title is required"})
		return
	}

	note, err := noteService.UpdateNote(db, userID, noteID, services.NoteInput{
		Title:      request.Title,
		Content:    request.Content,
		CategoryID: request.CategoryID,
		IsPinned:   request.IsPinned,
	})
	if err != nil {
		handleServiceError(c, err, "Note title is required")
		return
	}
	c.JSON(http.StatusOK, note)
}

func DeleteNote(c *gin.Context, db *database.Database, noteService services.NoteServiceInterface) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	noteID, ok := pathID(c)
	if !ok {
		return
	}

	if err := noteService.DeleteNote(db, userID, noteID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Note deleted successfully"})
}

func PinNote(c *gin.Context, db *database.Database, noteService services.NoteServiceInterface) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	noteID, ok := pathID(c)
	if !ok {
		return
	}

	var request pinRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := noteService.SetPinned(db, userID, noteID, request.Pinned); err != nil {
		handleServiceError(c, err, "Invalid pin request")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Pin status updated"})
}
