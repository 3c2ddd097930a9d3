package storefront_routes

import (
	"github.com/gin-gonic/gin"

	"github.com/beratazgun/ecommerce-backend-api/controllers/storefront/filter_controller"
	"github.com/beratazgun/ecommerce-backend-api/controllers/storefront/product_controller"
	"github.com/beratazgun/ecommerce-backend-api/controllers/storefront/review_controller"
)

func SetupProductRoutes(router *gin.RouterGroup) {
	// Product routes (public, no auth required)
	products := router.Group("/products")
	{
		products.GET("", product_controller.GetProducts) // Listing with filters
		products.GET("/:productSlug", product_controller.GetProductBySlug)
		products.GET("/:productSlug/group", product_controller.GetProductGroup) // Colour/storage variants
		products.GET("/:productSlug/reviews", review_controller.GetProductReviews)
	}

	// Precomputed facets per category
	router.GET("/filters/:category", filter_controller.GetFilter)
}
