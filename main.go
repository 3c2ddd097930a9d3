// @title Ecommerce Backend API
// @version 1.0
// @description Ecommerce Backend API Documentation
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/beratazgun/ecommerce-backend-api/config"
	_ "github.com/beratazgun/ecommerce-backend-api/docs"
	"github.com/beratazgun/ecommerce-backend-api/middleware"
	"github.com/beratazgun/ecommerce-backend-api/models"
	"github.com/beratazgun/ecommerce-backend-api/routes/seller_routes"
	"github.com/beratazgun/ecommerce-backend-api/routes/storefront_routes"
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

	if os.Getenv("JWT_SECRET") == "" {
		log.Fatal("❌ JWT_SECRET environment variable not set")
	}

	corsCfg := cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:3001"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-CSRF-Token", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
		ExposeHeaders:    []string{"Content-Disposition", "Content-Length"}, // invoice downloads
	}

	router := gin.Default()
	router.Use(cors.New(corsCfg))
	router.Use(middleware.RequestID())

	api := router.Group("/api/v1")

	// Public storefront + customer account routes
	storefront_routes.SetupAuthRoutes(api)
	storefront_routes.SetupProductRoutes(api)
	storefront_routes.SetupAccountRoutes(api)
	log.Println("✅ Storefront routes registered")

	// Seller routes (at /api/v1/seller prefix)
	sellerGroup := api.Group("/seller")
	sellerGroup.Use(middleware.RateLimiter(100, time.Minute))
	sellerGroup.Use(middleware.AuthMiddleware(), middleware.RequireRole(models.RoleSeller))
	seller_routes.SetupCatalogRoutes(sellerGroup)
	seller_routes.SetupProductRoutes(sellerGroup)
	log.Println("✅ Seller routes registered")

	// Swagger docs
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	fmt.Printf("🚀 Server is running on http://localhost:%s\n", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
