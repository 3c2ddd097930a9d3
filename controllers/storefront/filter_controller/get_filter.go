package filter_controller

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

// GetFilter godoc
// @Summary Get category filters
// @Description Precomputed facet values for a category's filter sidebar
// @Tags Filters
// @Produce json
// @Param category path string true "Category slug"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse "Category not found"
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /filters/:category [get]
func GetFilter(c *gin.Context) {
	category := c.Param("category")

	ctx, cancel := config.WithTimeout()
	defer cancel()

	svc := services.NewFilterService(config.DB, cache.NewRedisStore(config.RedisClient))
	filters, err := svc.GetFilters(ctx, category)
	if err != nil {
		status := utils.StatusOf(err)
		msg := err.Error()
		if status == http.StatusInternalServerError {
			log.Printf("[filter.get] failed for %s: %v", category, err)
			msg = "Server error"
		}
		c.JSON(status, models.ErrorResponse(c, status, msg))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, http.StatusOK, "Get filter successfully", filters))
}
