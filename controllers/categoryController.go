package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/eshopke/eshop-api/models"
)

type CategoryController struct {
	DB  *gorm.DB
	Log *zap.Logger
}

func NewCategoryController(db *gorm.DB, log *zap.Logger) *CategoryController {
	return &CategoryController{DB: db, Log: log}
}

func (c *CategoryController) GetCategories(ctx *gin.Context) {
	var categories []models.Category
	if result := c.DB.Find(&categories); result.Error != nil {
		c.Log.Error("Failed to fetch categories", zap.Error(result.Error))
		respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch categories", result.Error)
		return
	}

	ctx.JSON(http.StatusOK, categories)
}

func (c *CategoryController) GetCategory(ctx *gin.Context) {
	categoryId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid category ID", err)
		return
	}

	var category models.Category
	if result := c.DB.First(&category, categoryId); result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "The category with the given ID was not found")
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Unable to retrieve category", result.Error)
		}
		return
	}

	ctx.JSON(http.StatusOK, category)
}

func (c *CategoryController) CreateCategory(ctx *gin.Context) {
	var category models.Category
	if err := ctx.ShouldBindJSON(&category); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if err := c.DB.Create(&category).Error; err != nil {
		c.Log.Error("Failed to create category", zap.Error(err))
		respondWithError(ctx, http.StatusInternalServerError, "The category cannot be created", err)
		return
	}

	ctx.JSON(http.StatusCreated, category)
}

// UpdateCategory replaces every mutable field, not a partial patch.
func (c *CategoryController) UpdateCategory(ctx *gin.Context) {
	categoryId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid category ID", err)
		return
	}

	var input models.Category
	if err := ctx.ShouldBindJSON(&input); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	var category models.Category
	if result := c.DB.First(&category, categoryId); result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "The category cannot be updated")
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Unable to retrieve category", result.Error)
		}
		return
	}

	category.Name = input.Name
	category.Icon = input.Icon
	category.Color = input.Color

	if err := c.DB.Save(&category).Error; err != nil {
		c.Log.Error("Failed to update category", zap.Error(err))
		respondWithError(ctx, http.StatusInternalServerError, "The category cannot be updated", err)
		return
	}

	ctx.JSON(http.StatusOK, category)
}

func (c *CategoryController) DeleteCategory(ctx *gin.Context) {
	categoryId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid category ID", err)
		return
	}

	result := c.DB.Delete(&models.Category{}, categoryId)
	if result.Error != nil {
		c.Log.Error("Failed to delete category", zap.Error(result.Error))
		ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "error": result.Error.Error()})
		return
	}
	if result.RowsAffected == 0 {
		ctx.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Category not found"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"success": true, "message": "The category is deleted"})
}
