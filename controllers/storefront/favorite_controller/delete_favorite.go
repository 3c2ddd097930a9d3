package favorite_controller

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

// DeleteFavorite godoc
// @Summary Remove a product from favorites
// @Tags Favorites
// @Produce json
// @Security BearerAuth
// @Param productId path string true "Product ID"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse "Product is not in favorites"
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /favorites/:productId [delete]
func DeleteFavorite(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, http.StatusUnauthorized, "Please login to update favorites"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	svc := services.NewFavoriteService(cache.NewRedisStore(config.RedisClient))
	if err := svc.Remove(ctx, userID.Hex(), c.Param("productId")); err != nil {
		status := utils.StatusOf(err)
		msg := err.Error()
		if status == http.StatusInternalServerError {
			log.Printf("[favorite.delete] failed for user %s: %v", userID.Hex(), err)
			msg = "Server error"
		}
		c.JSON(status, models.ErrorResponse(c, status, msg))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, http.StatusOK, "Removed from favorites successfully", nil))
}
