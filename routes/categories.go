package routes

import (
	"net/http"

	"dayflow-app/dayflow/database"
	"dayflow-app/dayflow/services"

	"github.com/gin-gonic/gin"
)

type categoryRequest struct {
	Name  string `json:"name" binding:"required"`
	Color string `json:"color"`
}

func RegisterCategoryRoutes(group *gin.RouterGroup, db *database.Database, categoryService services.CategoryServiceInterface) {
	group.GET("/categories", func(c *gin.Context) { GetCategories(c, db, categoryService) })
	group.POST("/categories", func(c *gin.Context) { CreateCategory(c, db, categoryService) })
	group.PUT("/categories/:id", func(c *gin.Context) { UpdateCategory(c, db, categoryService) })
	group.DELETE("/categories/:id", func(c *gin.Context) { DeleteCategory(c, db, categoryService) })
}

func GetCategories(c *gin.Context, db *database.Database, categoryService services.CategoryServiceInterface) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	categories, err := categoryService.GetCategories(db, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, categories)
}

func CreateCategory(c *gin.Context, db *database.Database, categoryService services.CategoryServiceInterface) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var request categoryRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Category name is required"})
		return
	}

	category, err := categoryService.CreateCategory(db, userID, request.Name, request.Color)
	if err != nil {
		handleServiceError(c, err, "Category name is required")
		return
	}
	c.JSON(http.StatusCreated, category)
}

func UpdateCategory(c *gin.Context, db *database.Database, categoryService services.CategoryServiceInterface) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	categoryID, ok := pathID(c)
	if !ok {
		return
	}

	var request categoryRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Category name is required"})
		return
	}

	if err := categoryService.UpdateCategory(db, userID, categoryID, request.Name, request.Color); err != nil {
		handleServiceError(c, err, "Category name is required")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Category updated successfully"})
}

func DeleteCategory(c *gin.Context, db *database.Database, categoryService services.CategoryServiceInterface) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	categoryID, ok := pathID(c)
	if !ok {
		return
	}

	if err := categoryService.DeleteCategory(db, userID, categoryID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Category deleted successfully"})
}
