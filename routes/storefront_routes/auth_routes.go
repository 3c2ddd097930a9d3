package storefront_routes

import (
	"github.com/gin-gonic/gin"

	"github.com/beratazgun/ecommerce-backend-api/controllers/storefront/auth_controller"
	"github.com/beratazgun/ecommerce-backend-api/middleware"
)

func SetupAuthRoutes(router *gin.RouterGroup) {
	auth := router.Group("/auth")
	{
		auth.POST("/signup/:role", auth_controller.Signup)
		auth.POST("/login/:role", auth_controller.Login)
		auth.POST("/logout", auth_controller.Logout)
		auth.GET("/me", middleware.AuthMiddleware(), auth_controller.GetMe)
	}
}
