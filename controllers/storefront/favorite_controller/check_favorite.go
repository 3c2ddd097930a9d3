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
)

// CheckFavorite godoc
// @Summary Check whether a product is favorited
// @Tags Favorites
// @Produce json
// @Security BearerAuth
// @Param productId path string true "Product ID"
// @Success 200 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /favorites/:productId [get]
func CheckFavorite(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, http.StatusUnauthorized, "Please login to view favorites"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	svc := services.NewFavoriteService(cache.NewRedisStore(config.RedisClient))
	fav, err := svc.IsFavorite(ctx, userID.Hex(), c.Param("productId"))
	if err != nil {
		log.Printf("[favorite.check] failed for user %s: %v", userID.Hex(), err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, http.StatusInternalServerError, "Server error"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, http.StatusOK, "Favorite status fetched successfully", gin.H{"isFavorite": fav}))
}
