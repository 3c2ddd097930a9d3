package brand_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/beratazgun/ecommerce-backend-api/config"
	"github.com/beratazgun/ecommerce-backend-api/models"
)

// GetBrands godoc
// @Summary List brands
// @Description Returns the public projection of every brand ordered by name
// @Tags Seller catalog
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /seller/brands [get]
func GetBrands(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	coll := config.DB.Collection(models.Brand{}.Collection())

	cursor, err := coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "brand", Value: 1}}))
	if err != nil {
		log.Printf("[seller.brand.list] query failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, http.StatusInternalServerError, "Server error"))
		return
	}

	brands := []models.BrandSummary{}
	if err := cursor.All(ctx, &brands); err != nil {
		log.Printf("[seller.brand.list] decode failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, http.StatusInternalServerError, "Server error"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, http.StatusOK, "Brands fetched successfully", brands))
}
