package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/eshopke/eshop-api/controllers"
)

func UploadRoutes(api *gin.RouterGroup, ctrl *controllers.UploadController, requireAuth, requireAdmin gin.HandlerFunc) {
	api.POST("/uploads", requireAuth, requireAdmin, ctrl.UploadImage)
}
