package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/eshopke/eshop-api/controllers"
)

func CategoryRoutes(api *gin.RouterGroup, ctrl *controllers.CategoryController, requireAuth, requireAdmin gin.HandlerFunc) {
	categories := api.Group("/categories")
	{
		categories.GET("", ctrl.GetCategories)
		categories.GET("/:id", ctrl.GetCategory)
	}

	admin := categories.Group("", requireAuth, requireAdmin)
	{
		admin.POST("", ctrl.CreateCategory)
		admin.PUT("/:id", ctrl.UpdateCategory)
		admin.DELETE("/:id", ctrl.DeleteCategory)
	}
}
