package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/eshopke/eshop-api/controllers"
)

func OrderRoutes(api *gin.RouterGroup, ctrl *controllers.OrderController, checkout *controllers.CheckoutController, requireAuth, requireAdmin gin.HandlerFunc) {
	orders := api.Group("/orders")
	{
		orders.GET("/:id", ctrl.GetOrder)
		orders.POST("", ctrl.CreateOrder)
		orders.GET("/get/userorders/:userid", ctrl.GetUserOrders)
	}

	admin := orders.Group("", requireAuth, requireAdmin)
	{
		admin.GET("", ctrl.GetOrders)
		admin.PUT("/:id", ctrl.UpdateOrderStatus)
		admin.DELETE("/:id", ctrl.DeleteOrder)
		admin.GET("/get/totalsales", ctrl.GetTotalSales)
		admin.GET("/get/count", ctrl.GetOrderCount)
	}

	api.POST("/create-checkout-session", checkout.CreateCheckoutSession)
}
