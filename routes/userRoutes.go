package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/eshopke/eshop-api/controllers"
)

func UserRoutes(api *gin.RouterGroup, ctrl *controllers.UserController, requireAuth, requireAdmin gin.HandlerFunc) {
	users := api.Group("/users")
	{
		users.GET("", ctrl.GetUsers)
		users.GET("/:id", ctrl.GetUser)
		users.POST("/login", ctrl.Login)
	}

	admin := users.Group("", requireAuth, requireAdmin)
	{
		admin.POST("", ctrl.RegisterUser)
		admin.PUT("/:id", ctrl.UpdateUser)
		admin.DELETE("/:id", ctrl.DeleteUser)
		admin.GET("/get/count", ctrl.GetUserCount)
	}
}
