package category_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/beratazgun/ecommerce-backend-api/config"
	"github.com/beratazgun/ecommerce-backend-api/models"
)

// GetCategories godoc
// @Summary List categories
// @Description Returns every category ordered by name
// @Tags Seller catalog
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /seller/categories [get]
func GetCategories(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	coll := config.DB.Collection(models.Category{}.Collection())

	cursor, err := coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "category", Value: 1}}))
	if err != nil {
		log.Printf("[seller.category.list] query failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, http.StatusInternalServerError, "Server error"))
		return
	}

	categories := []models.Category{}
	if err := cursor.All(ctx, &categories); err != nil {
		log.Printf("[seller.category.list] decode failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, http.StatusInternalServerError, "Server error"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, http.StatusOK, "Categories fetched successfully", categories))
}
