package address_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/beratazgun/ecommerce-backend-api/cache"
	"github.com/beratazgun/ecommerce-backend-api/config"
	"github.com/beratazgun/ecommerce-backend-api/middleware"
	"github.com/beratazgun/ecommerce-backend-api/models"
	"github.com/beratazgun/ecommerce-backend-api/services"
	"github.com/beratazgun/ecommerce-backend-api/utils"
)

// UpdateAddress godoc
// @Summary Update an address
// @Tags Addresses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.UpdateAddressRequest true "Fields to update"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse "Nothing to update"
// @Failure 404 {object} models.ApiResponse "Address not found"
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /addresses [patch]
func UpdateAddress(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, http.StatusUnauthorized, "Please login to update addresses"))
		return
	}
	role, _ := middleware.GetUserRole(c)

	var req models.UpdateAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, http.StatusBadRequest, err.Error()))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	svc := services.NewAddressService(config.DB, cache.NewRedisStore(config.RedisClient))
	addr, err := svc.Update(ctx, userID, role, req)
	if err != nil {
		status := utils.StatusOf(err)
		msg := err.Error()
		if status == http.StatusInternalServerError {
			log.Printf("[address.update] failed for user %s: %v", userID.Hex(), err)
			msg = "Server error"
		}
		c.JSON(status, models.ErrorResponse(c, status, msg))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, http.StatusOK, "Address updated successfully", addr))
}
