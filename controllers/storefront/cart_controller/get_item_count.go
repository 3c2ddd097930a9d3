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
)

// GetItemCount godoc
// @Summary Get cart item count
// @Description Total quantity across all cart lines, for the header badge
// @Tags Cart
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /cart/count [get]
func GetItemCount(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, http.StatusUnauthorized, "Please login to view the cart"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	svc := services.NewCartService(cache.NewRedisStore(config.RedisClient))
	count, err := svc.ItemCount(ctx, userID.Hex())
	if err != nil {
		log.Printf("[cart.count] failed for user %s: %v", userID.Hex(), err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, http.StatusInternalServerError, "Server error"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, http.StatusOK, "Get item count successfully", count))
}
