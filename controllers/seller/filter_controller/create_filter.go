package filter_controller

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/beratazgun/ecommerce-backend-api/cache"
	"github.com/beratazgun/ecommerce-backend-api/config"
	"github.com/beratazgun/ecommerce-backend-api/models"
	"github.com/beratazgun/ecommerce-backend-api/services"
	"github.com/beratazgun/ecommerce-backend-api/utils"
)

// CreateFilter godoc
// @Summary Precompute category filters
// @Description Builds the facet set of a category from its live product data and replaces the stored one
// @Tags Seller catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param filter body models.CreateFilterRequest true "Filter definition"
// @Success 201 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse "Validation error"
// @Failure 404 {object} models.ApiResponse "Category not found"
// @Router /seller/filters [post]
func CreateFilter(c *gin.Context) {
	var req models.CreateFilterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, http.StatusBadRequest, "Invalid request body"))
		return
	}

	// One aggregation runs per attribute, so the default request timeout
	// is too tight for large categories.
	ctx, cancel := config.WithCustomTimeout(30 * time.Second)
	defer cancel()

	svc := services.NewFilterService(config.DB, cache.NewRedisStore(config.RedisClient))

	filter, err := svc.BuildFilters(ctx, req)
	if err != nil {
		status := utils.StatusOf(err)
		msg := err.Error()
		if status == http.StatusInternalServerError {
			log.Printf("[seller.filter.create] build failed: %v", err)
			msg = "Server error"
		}
		c.JSON(status, models.ErrorResponse(c, status, msg))
		return
	}

	c.JSON(http.StatusCreated, models.SuccessResponse(c, http.StatusCreated, "Filters created successfully", filter))
}
