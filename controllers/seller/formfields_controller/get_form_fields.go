package formfields_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/beratazgun/ecommerce-backend-api/cache"
	"github.com/beratazgun/ecommerce-backend-api/config"
	"github.com/beratazgun/ecommerce-backend-api/models"
	"github.com/beratazgun/ecommerce-backend-api/services"
	"github.com/beratazgun/ecommerce-backend-api/utils"
)

// GetFormFields godoc
// @Summary Get the product form of a category
// @Description Returns the dynamic form definition, served from cache when possible
// @Tags Seller catalog
// @Produce json
// @Param categorySlug path string true "Category slug"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse "Category not found"
// @Router /seller/form-fields/:categorySlug [get]
func GetFormFields(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	svc := services.NewFormFieldsService(config.DB, cache.NewRedisStore(config.RedisClient))

	formFields, err := svc.Get(ctx, c.Param("categorySlug"))
	if err != nil {
		status := utils.StatusOf(err)
		msg := err.Error()
		if status == http.StatusInternalServerError {
			log.Printf("[seller.formFields.get] fetch failed: %v", err)
			msg = "Server error"
		}
		c.JSON(status, models.ErrorResponse(c, status, msg))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, http.StatusOK, "Form fields fetched successfully", formFields))
}
