package cart_controller

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

// DeleteFromCart godoc
// @Summary Remove a cart line
// @Tags Cart
// @Produce json
// @Security BearerAuth
// @Param cartId path string true "Cart item ID"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse "Cart item not found"
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /cart/:cartId [delete]
func DeleteFromCart(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, http.StatusUnauthorized, "Please login to update the cart"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	svc := services.NewCartService(cache.NewRedisStore(config.RedisClient))
	if err := svc.RemoveItem(ctx, userID.Hex(), c.Param("cartId")); err != nil {
		status := utils.StatusOf(err)
		msg := err.Error()
		if status == http.StatusInternalServerError {
			log.Printf("[cart.delete] failed for user %s: %v", userID.Hex(), err)
			msg = "Server error"
		}
		c.JSON(status, models.ErrorResponse(c, status, msg))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, http.StatusOK, "Removed from cart successfully", nil))
}
