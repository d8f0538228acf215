package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/eshopke/eshop-api/models"
)

type ProductController struct {
	DB  *gorm.DB
	Log *zap.Logger
}

func NewProductController(db *gorm.DB, log *zap.Logger) *ProductController {
	return &ProductController{DB: db, Log: log}
}

// categoryExists reports whether the referenced category id is present.
func (c *ProductController) categoryExists(id uint) (bool, error) {
	var category models.Category
	err := c.DB.First(&category, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func productFromInput(input models.ProductInput) models.Product {
	return models.Product{
		Name:            input.Name,
		Description:     input.Description,
		RichDescription: input.RichDescription,
		Image:           input.Image,
		Images:          input.Images,
		Brand:           input.Brand,
		Price:           input.Price,
		CategoryID:      input.Category,
		CountInStock:    input.CountInStock,
		Rating:          input.Rating,
		NumReviews:      input.NumReviews,
		IsFeatured:      input.IsFeatured,
	}
}

// GetProducts lists products with their category joined, optionally filtered
// by ?categories=1,2,3.
func (c *ProductController) GetProducts(ctx *gin.Context) {
	query := c.DB.Preload("Category")

	if filter := ctx.Query("categories"); filter != "" {
		var categoryIds []uint
		for _, part := range strings.Split(filter, ",") {
			id, err := strconv.Atoi(strings.TrimSpace(part))
			if err != nil {
				respondWithError(ctx, http.StatusBadRequest, "Invalid category filter", err)
				return
			}
			categoryIds = append(categoryIds, uint(id))
		}
		query = query.Where("category_id IN ?", categoryIds)
	}

	var products []models.Product
	if result := query.Find(&products); result.Error != nil {
		c.Log.Error("Failed to fetch products", zap.Error(result.Error))
		respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch products", result.Error)
		return
	}

	ctx.JSON(http.StatusOK, products)
}

func (c *ProductController) GetProduct(ctx *gin.Context) {
	productId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid product ID", err)
		return
	}

	var product models.Product
	result := c.DB.Preload("Category").First(&product, productId)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "Product not found")
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Unable to retrieve product", result.Error)
		}
		return
	}

	ctx.JSON(http.StatusOK, product)
}

func (c *ProductController) CreateProduct(ctx *gin.Context) {
	var input models.ProductInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	exists, err := c.categoryExists(input.Category)
	if err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to validate category", err)
		return
	}
	if !exists {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid Category")
		return
	}

	product := productFromInput(input)
	if err := c.DB.Create(&product).Error; err != nil {
		c.Log.Error("Failed to create product", zap.Error(err))
		respondWithError(ctx, http.StatusInternalServerError, "The product cannot be created", err)
		return
	}

	c.DB.Preload("Category").First(&product, product.ID)
	ctx.JSON(http.StatusCreated, product)
}

func (c *ProductController) UpdateProduct(ctx *gin.Context) {
	productId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid product ID", err)
		return
	}

	var input models.ProductInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	exists, err := c.categoryExists(input.Category)
	if err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to validate category", err)
		return
	}
	if !exists {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid Category")
		return
	}

	var product models.Product
	if result := c.DB.First(&product, productId); result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "The product cannot be updated")
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Unable to retrieve product", result.Error)
		}
		return
	}

	updated := productFromInput(input)
	updated.Model = product.Model
	if err := c.DB.Save(&updated).Error; err != nil {
		c.Log.Error("Failed to update product", zap.Error(err))
		respondWithError(ctx, http.StatusInternalServerError, "The product cannot be updated", err)
		return
	}

	c.DB.Preload("Category").First(&updated, updated.ID)
	ctx.JSON(http.StatusOK, updated)
}

func (c *ProductController) DeleteProduct(ctx *gin.Context) {
	productId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid product ID", err)
		return
	}

	result := c.DB.Delete(&models.Product{}, productId)
	if result.Error != nil {
		c.Log.Error("Failed to delete product", zap.Error(result.Error))
		ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "error": result.Error.Error()})
		return
	}
	if result.RowsAffected == 0 {
		ctx.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Product not found"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"success": true, "message": "The product is deleted"})
}

func (c *ProductController) GetProductCount(ctx *gin.Context) {
	var count int64
	if result := c.DB.Model(&models.Product{}).Count(&count); result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to count products", result.Error)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"productCount": count})
}

// GetFeaturedProducts returns up to :count featured products.
func (c *ProductController) GetFeaturedProducts(ctx *gin.Context) {
	count, err := strconv.Atoi(ctx.Param("count"))
	if err != nil || count < 0 {
		respondWithError(ctx, http.StatusBadRequest, "Invalid count", err)
		return
	}

	var products []models.Product
	query := c.DB.Where("is_featured = ?", true)
	if count > 0 {
		query = query.Limit(count)
	}
	if result := query.Find(&products); result.Error != nil {
		c.Log.Error("Failed to fetch featured products", zap.Error(result.Error))
		respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch featured products", result.Error)
		return
	}

	ctx.JSON(http.StatusOK, products)
}
