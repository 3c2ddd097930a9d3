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

// CreateAddress godoc
// @Summary Add an address
// @Tags Addresses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.AddressRequest true "Address"
// @Success 201 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse "Invalid request"
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /addresses [post]
func CreateAddress(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, http.StatusUnauthorized, "Please login to add an address"))
		return
	}
	role, _ := middleware.GetUserRole(c)

	var req models.AddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, http.StatusBadRequest, err.Error()))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	svc := services.NewAddressService(config.DB, cache.NewRedisStore(config.RedisClient))
	addr, err := svc.Create(ctx, userID, role, req)
	if err != nil {
		log.Printf("[address.create] failed for user %s: %v", userID.Hex(), err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, http.StatusInternalServerError, "Server error"))
		return
	}

	c.JSON(http.StatusCreated, models.SuccessResponse(c, http.StatusCreated, "Address created successfully", addr))
}
