package address_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/beratazgun/ecommerce-backend-api/cache"
	"github.com/beratazgun/ecommerce-backend-api/config"
	"github.com/beratazgun/ecommerce-backend-api/middleware"
	"github.com/beratazgun/ecommerce-backend-api/models"
	"github.com/beratazgun/ecommerce-backend-api/services"
	"github.com/beratazgun/ecommerce-backend-api/utils"
)

// DeleteAddress godoc
// @Summary Delete an address
// @Tags Addresses
// @Produce json
// @Security BearerAuth
// @Param addressId path string true "Address ID"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse "Address not found"
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /addresses/:addressId [delete]
func DeleteAddress(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, http.StatusUnauthorized, "Please login to delete addresses"))
		return
	}
	role, _ := middleware.GetUserRole(c)

	addressID, err := primitive.ObjectIDFromHex(c.Param("addressId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, http.StatusBadRequest, "Invalid address id"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	svc := services.NewAddressService(config.DB, cache.NewRedisStore(config.RedisClient))
	if err := svc.Delete(ctx, userID, role, addressID); err != nil {
		status := utils.StatusOf(err)
		msg := err.Error()
		if status == http.StatusInternalServerError {
			log.Printf("[address.delete] failed for user %s: %v", userID.Hex(), err)
			msg = "Server error"
		}
		c.JSON(status, models.ErrorResponse(c, status, msg))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, http.StatusOK, "Address deleted successfully", nil))
}
