package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/eshopke/eshop-api/controllers"
)

func ProductRoutes(api *gin.RouterGroup, ctrl *controllers.ProductController, requireAuth, requireAdmin gin.HandlerFunc) {
	products := api.Group("/products")
	{
		products.GET("", ctrl.GetProducts)
		products.GET("/:id", ctrl.GetProduct)
	}

	admin := products.Group("", requireAuth, requireAdmin)
	{
		admin.POST("", ctrl.CreateProduct)
		admin.PUT("/:id", ctrl.UpdateProduct)
		admin.DELETE("/:id", ctrl.DeleteProduct)
		admin.GET("/get/count", ctrl.GetProductCount)
		admin.GET("/get/featured/:count", ctrl.GetFeaturedProducts)
	}
}
