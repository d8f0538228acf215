package controllers

import (
	"errors"
	"math"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/eshopke/eshop-api/models"
	"github.com/eshopke/eshop-api/payments"
)

// SessionCreator is the slice of the payments client the checkout handler
// needs.
type SessionCreator interface {
	CreateCheckoutSession(items []payments.LineItem) (string, error)
}

type CheckoutController struct {
	DB       *gorm.DB
	Log      *zap.Logger
	Payments SessionCreator
}

func NewCheckoutController(db *gorm.DB, log *zap.Logger, pay SessionCreator) *CheckoutController {
	return &CheckoutController{DB: db, Log: log, Payments: pay}
}

// CreateCheckoutSession prices the submitted cart from the product table and
// opens a hosted payment session, replying with its id.
func (c *CheckoutController) CreateCheckoutSession(ctx *gin.Context) {
	var items []models.OrderItemInput
	if err := ctx.ShouldBindJSON(&items); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if len(items) == 0 {
		sendErrorResponse(ctx, http.StatusBadRequest, "Checkout session cannot be created - check the order items")
		return
	}

	lineItems := make([]payments.LineItem, 0, len(items))
	for _, item := range items {
		var product models.Product
		if err := c.DB.First(&product, item.Product).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				sendErrorResponse(ctx, http.StatusBadRequest, "Invalid Product")
			} else {
				respondWithError(ctx, http.StatusInternalServerError, "Failed to look up product", err)
			}
			return
		}

		lineItems = append(lineItems, payments.LineItem{
			Name:       product.Name,
			UnitAmount: int64(math.Round(product.Price * 100)),
			Quantity:   int64(item.Quantity),
		})
	}

	sessionId, err := c.Payments.CreateCheckoutSession(lineItems)
	if err != nil {
		c.Log.Error("Failed to create checkout session", zap.Error(err))
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to create checkout session")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"id": sessionId})
}
