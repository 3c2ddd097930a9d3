package favorite_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/beratazgun/ecommerce-backend-api/cache"
	"github.com/beratazgun/ecommerce-backend-api/config"
	"github.com/beratazgun/ecommerce-backend-api/middleware"
	"github.com/beratazgun/ecommerce-backend-api/models"
	"github.com/beratazgun/ecommerce-backend-api/query"
	"github.com/beratazgun/ecommerce-backend-api/services"
)

// GetFavorites godoc
// @Summary List favorite products
// @Description Resolves the favorited product ids to their listing summaries
// @Tags Favorites
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /favorites [get]
func GetFavorites(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, http.StatusUnauthorized, "Please login to view favorites"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	svc := services.NewFavoriteService(cache.NewRedisStore(config.RedisClient))
	ids, err := svc.List(ctx, userID.Hex())
	if err != nil {
		log.Printf("[favorite.list] failed for user %s: %v", userID.Hex(), err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, http.StatusInternalServerError, "Server error"))
		return
	}

	objectIDs := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		oid, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			continue
		}
		objectIDs = append(objectIDs, oid)
	}

	docs := []models.ProductSummary{}
	if len(objectIDs) > 0 {
		pipeline := query.BuildListingPipeline(bson.M{"_id": bson.M{"$in": objectIDs}}, nil)
		cursor, err := config.DB.Collection(models.Product{}.Collection()).Aggregate(ctx, pipeline)
		if err != nil {
			log.Printf("[favorite.list] aggregation failed: %v", err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, http.StatusInternalServerError, "Server error"))
			return
		}
		defer cursor.Close(ctx)

		if err := cursor.All(ctx, &docs); err != nil {
			log.Printf("[favorite.list] decode failed: %v", err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, http.StatusInternalServerError, "Server error"))
			return
		}
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, http.StatusOK, "Get favorites successfully", docs))
}
