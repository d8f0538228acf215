package main

import (
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/eshopke/eshop-api/controllers"
	"github.com/eshopke/eshop-api/initializers"
	"github.com/eshopke/eshop-api/middlewares"
	"github.com/eshopke/eshop-api/payments"
	"github.com/eshopke/eshop-api/routes"
)

func main() {
	cfg, err := initializers.LoadConfig()
	if err != nil {
		log.Fatal("Invalid configuration: ", err)
	}

	logger, err := initializers.NewLogger(cfg.Env)
	if err != nil {
		log.Fatal("Failed to build logger: ", err)
	}
	defer logger.Sync()

	db, err := initializers.ConnectToDB(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	if err := initializers.SyncDatabase(db); err != nil {
		logger.Fatal("Failed to migrate database", zap.Error(err))
	}
	logger.Info("Database synced successfully")

	paymentsClient, err := payments.NewClient(cfg.Checkout, logger)
	if err != nil {
		logger.Fatal("Failed to configure payment gateway", zap.Error(err))
	}

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	server := gin.New()
	server.Use(middlewares.RequestLogger(logger), gin.Recovery())
	server.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:   []string{"Content-Length"},
		MaxAge:          12 * time.Hour,
	}))

	server.GET("/", controllers.GetHome)
	server.Static("/uploads", cfg.UploadDir)

	requireAuth := middlewares.RequireAuth(cfg.JWTSecret)
	requireAdmin := middlewares.RequireAdmin()

	api := server.Group("/api/v1")
	routes.CategoryRoutes(api, controllers.NewCategoryController(db, logger), requireAuth, requireAdmin)
	routes.ProductRoutes(api, controllers.NewProductController(db, logger), requireAuth, requireAdmin)
	routes.OrderRoutes(api,
		controllers.NewOrderController(db, logger),
		controllers.NewCheckoutController(db, logger, paymentsClient),
		requireAuth, requireAdmin)
	routes.UserRoutes(api, controllers.NewUserController(db, logger, cfg.JWTSecret), requireAuth, requireAdmin)
	routes.UploadRoutes(api, controllers.NewUploadController(logger, cfg.UploadDir), requireAuth, requireAdmin)

	logger.Info("Server starting", zap.String("port", cfg.Port), zap.String("env", cfg.Env))
	if err := server.Run(":" + cfg.Port); err != nil {
		logger.Fatal("Server exited", zap.Error(err))
	}
}
