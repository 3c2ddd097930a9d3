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
)

// GetAddresses godoc
// @Summary List addresses
// @Tags Addresses
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /addresses [get]
func GetAddresses(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, http.StatusUnauthorized, "Please login to view addresses"))
		return
	}
	role, _ := middleware.GetUserRole(c)

	ctx, cancel := config.WithTimeout()
	defer cancel()

	svc := services.NewAddressService(config.DB, cache.NewRedisStore(config.RedisClient))
	addrs, err := svc.List(ctx, userID, role)
	if err != nil {
		log.Printf("[address.list] failed for user %s: %v", userID.Hex(), err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, http.StatusInternalServerError, "Server error"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, http.StatusOK, "Get addresses successfully", addrs))
}
