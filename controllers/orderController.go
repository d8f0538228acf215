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

type OrderController struct {
	DB  *gorm.DB
	Log *zap.Logger
}

func NewOrderController(db *gorm.DB, log *zap.Logger) *OrderController {
	return &OrderController{DB: db, Log: log}
}

// GetOrders lists all orders newest first with the ordering user joined.
func (c *OrderController) GetOrders(ctx *gin.Context) {
	var orders []models.Order
	result := c.DB.Preload("User").Order("date_ordered DESC").Find(&orders)
	if result.Error != nil {
		c.Log.Error("Failed to fetch orders", zap.Error(result.Error))
		respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch orders", result.Error)
		return
	}

	ctx.JSON(http.StatusOK, orders)
}

// GetOrder returns one order with its items, each item's product, and that
// product's category joined.
func (c *OrderController) GetOrder(ctx *gin.Context) {
	orderId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid order ID", err)
		return
	}

	var order models.Order
	result := c.DB.
		Preload("User").
		Preload("OrderItems.Product.Category").
		First(&order, orderId)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "The order with the given ID was not found")
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Unable to retrieve order", result.Error)
		}
		return
	}

	ctx.JSON(http.StatusOK, order)
}

// CreateOrder persists the submitted line items and the order in one
// transaction. The total price is computed server-side from the current
// product prices, never taken from the client.
func (c *OrderController) CreateOrder(ctx *gin.Context) {
	var input models.OrderInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	status := input.Status
	if status == "" {
		status = "Pending"
	}

	tx := c.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	var totalPrice float64
	orderItems := make([]models.OrderItem, 0, len(input.OrderItems))
	for _, item := range input.OrderItems {
		var product models.Product
		if err := tx.First(&product, item.Product).Error; err != nil {
			tx.Rollback()
			if errors.Is(err, gorm.ErrRecordNotFound) {
				sendErrorResponse(ctx, http.StatusBadRequest, "Invalid Product")
			} else {
				respondWithError(ctx, http.StatusInternalServerError, "Failed to validate product", err)
			}
			return
		}

		totalPrice += product.Price * float64(item.Quantity)
		orderItems = append(orderItems, models.OrderItem{
			Quantity:  item.Quantity,
			ProductID: product.ID,
		})
	}

	order := models.Order{
		OrderItems:       orderItems,
		ShippingAddress1: input.ShippingAddress1,
		ShippingAddress2: input.ShippingAddress2,
		City:             input.City,
		Zip:              input.Zip,
		Country:          input.Country,
		Phone:            input.Phone,
		Status:           status,
		TotalPrice:       totalPrice,
		UserID:           input.User,
	}
	if err := tx.Create(&order).Error; err != nil {
		tx.Rollback()
		c.Log.Error("Failed to create order", zap.Error(err))
		respondWithError(ctx, http.StatusInternalServerError, "The order cannot be created", err)
		return
	}

	if err := tx.Commit().Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to save order", err)
		return
	}

	c.Log.Info("Order created",
		zap.Uint("order_id", order.ID),
		zap.Float64("total_price", order.TotalPrice),
		zap.Int("items", len(order.OrderItems)))
	ctx.JSON(http.StatusCreated, order)
}

// UpdateOrderStatus mutates the status field only.
func (c *OrderController) UpdateOrderStatus(ctx *gin.Context) {
	orderId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid order ID", err)
		return
	}

	var input models.OrderStatusInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	var order models.Order
	if result := c.DB.First(&order, orderId); result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "The order cannot be updated")
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Unable to retrieve order", result.Error)
		}
		return
	}

	order.Status = input.Status
	if err := c.DB.Save(&order).Error; err != nil {
		c.Log.Error("Failed to update order status", zap.Error(err))
		respondWithError(ctx, http.StatusInternalServerError, "The order cannot be updated", err)
		return
	}

	ctx.JSON(http.StatusOK, order)
}

// DeleteOrder removes the order together with the order items it owns.
func (c *OrderController) DeleteOrder(ctx *gin.Context) {
	orderId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid order ID", err)
		return
	}

	var order models.Order
	if result := c.DB.First(&order, orderId); result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Order not found"})
		} else {
			ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "error": result.Error.Error()})
		}
		return
	}

	tx := c.DB.Begin()
	if err := tx.Where("order_id = ?", order.ID).Delete(&models.OrderItem{}).Error; err != nil {
		tx.Rollback()
		ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}
	if err := tx.Delete(&order).Error; err != nil {
		tx.Rollback()
		ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}
	if err := tx.Commit().Error; err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"success": true, "message": "The order is deleted"})
}

// GetTotalSales sums totalPrice across every order.
func (c *OrderController) GetTotalSales(ctx *gin.Context) {
	var totalSales float64
	result := c.DB.Model(&models.Order{}).
		Select("COALESCE(SUM(total_price), 0)").
		Scan(&totalSales)
	if result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "The order sales cannot be generated", result.Error)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"totalsales": totalSales})
}

func (c *OrderController) GetOrderCount(ctx *gin.Context) {
	var count int64
	if result := c.DB.Model(&models.Order{}).Count(&count); result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to count orders", result.Error)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"orderCount": count})
}

// GetUserOrders lists one user's orders newest first, deep-joined like GetOrder.
func (c *OrderController) GetUserOrders(ctx *gin.Context) {
	userId, err := strconv.Atoi(ctx.Param("userid"))
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid user ID", err)
		return
	}

	var orders []models.Order
	result := c.DB.
		Preload("OrderItems.Product.Category").
		Where("user_id = ?", userId).
		Order("date_ordered DESC").
		Find(&orders)
	if result.Error != nil {
		c.Log.Error("Failed to fetch user orders", zap.Error(result.Error))
		respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch orders", result.Error)
		return
	}

	ctx.JSON(http.StatusOK, orders)
}
