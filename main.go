// @title Aurelia Storefront API
// @version 1.0
// @description Aurelia Jewels storefront and back office API documentation
// @host localhost:8081
// @BasePath /api/v1
// @schemes http
package main

import (
	"fmt"
	"log"
	"time"

	store_cache "github.com/Aurelia-Jewels/aurelia-storefront-backend/cache"
	"github.com/Aurelia-Jewels/aurelia-storefront-backend/config"
	"github.com/Aurelia-Jewels/aurelia-storefront-backend/controllers/cms/settings_controller"
	_ "github.com/Aurelia-Jewels/aurelia-storefront-backend/docs"
	"github.com/Aurelia-Jewels/aurelia-storefront-backend/middleware"
	"github.com/Aurelia-Jewels/aurelia-storefront-backend/routes/cms_routes"
	"github.com/Aurelia-Jewels/aurelia-storefront-backend/routes/ecommerce_routes"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func init() {
	_ = godotenv.Load()
}

func main() {
	// Connect to DB
	config.InitDB()
	defer config.CloseDB()

	// Redis connection
	config.ConnectRedis()
	defer config.CloseRedis()

	// Replay failed settings writes in the background
	stopReconciler := store_cache.StartSettingsReconciler(30*time.Second, settings_controller.PersistSettings)
	defer stopReconciler()
	log.Println("✅ Settings reconciler started")

	corsCfg := cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:3001"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-CSRF-Token", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	router := gin.Default()
	router.Use(cors.New(corsCfg))

	// Register API routes
	api := router.Group("/api/v1")

	// Admin routes (rate limited)
	adminGroup := api.Group("/admin")
	adminGroup.Use(middleware.RateLimiter(100, time.Minute))
	cms_routes.SetupSettingsRoutes(adminGroup)
	log.Println("✅ Admin routes registered")

	// Public storefront (no rate limiter)
	ecommerce_routes.SetupStorefrontRoutes(api)

	// Swagger docs
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	fmt.Println("🚀 Server is running on http://localhost:8081")
	router.Run(":8081")
}
