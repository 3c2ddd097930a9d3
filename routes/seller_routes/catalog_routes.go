package seller_routes

import (
	"github.com/gin-gonic/gin"

	"github.com/beratazgun/ecommerce-backend-api/controllers/seller/brand_controller"
	"github.com/beratazgun/ecommerce-backend-api/controllers/seller/category_controller"
	"github.com/beratazgun/ecommerce-backend-api/controllers/seller/filter_controller"
	"github.com/beratazgun/ecommerce-backend-api/controllers/seller/formfields_controller"
	"github.com/beratazgun/ecommerce-backend-api/controllers/seller/model_controller"
)

// SetupCatalogRoutes registers the reference-entity endpoints. Auth and the
// seller role check are wired onto the group by the caller.
func SetupCatalogRoutes(router *gin.RouterGroup) {
	categories := router.Group("/categories")
	{
		categories.POST("", category_controller.CreateCategory)
		categories.GET("", category_controller.GetCategories)
		categories.DELETE("/:categorySlug", category_controller.DeleteCategory)
	}

	brands := router.Group("/brands")
	{
		brands.POST("", brand_controller.CreateBrand)
		brands.GET("", brand_controller.GetBrands)
		brands.POST("/:brandSlug/logo", brand_controller.UploadBrandLogo)
	}

	productModels := router.Group("/models")
	{
		productModels.POST("", model_controller.CreateProductModel)
		productModels.GET("", model_controller.GetAllProductModels)
		productModels.GET("/:categorySlug", model_controller.GetProductModels)
	}

	router.POST("/filters", filter_controller.CreateFilter)

	formFields := router.Group("/form-fields")
	{
		formFields.POST("", formfields_controller.CreateFormFields)
		formFields.GET("/:categorySlug", formfields_controller.GetFormFields)
	}
}
