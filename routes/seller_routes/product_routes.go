package seller_routes

import (
	"github.com/gin-gonic/gin"

	"github.com/beratazgun/ecommerce-backend-api/controllers/seller/product_controller"
)

func SetupProductRoutes(router *gin.RouterGroup) {
	products := router.Group("/products")
	{
		products.POST("", product_controller.CreateProduct)
		products.GET("", product_controller.GetSellerProducts)
		products.PATCH("/:productSlug", product_controller.UpdateProduct)
		products.DELETE("/:productSlug", product_controller.DeleteProduct)
		products.POST("/:productSlug/images", product_controller.UploadProductImages)
	}
}
