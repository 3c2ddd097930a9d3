package product_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/beratazgun/ecommerce-backend-api/config"
	"github.com/beratazgun/ecommerce-backend-api/middleware"
	"github.com/beratazgun/ecommerce-backend-api/models"
)

// GetSellerProducts godoc
// @Summary List the seller's products
// @Tags Seller products
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /seller/products [get]
func GetSellerProducts(c *gin.Context) {
	sellerID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, http.StatusUnauthorized, "Please login as a seller"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"sellerId": sellerID}}},
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         "brands",
			"localField":   "brandId",
			"foreignField": "_id",
			"as":           "brand",
		}}},
		bson.D{{Key: "$unwind", Value: "$brand"}},
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         "productmodels",
			"localField":   "modelId",
			"foreignField": "_id",
			"as":           "model",
		}}},
		bson.D{{Key: "$unwind", Value: "$model"}},
		bson.D{{Key: "$project", Value: bson.M{
			"_id":             1,
			"name":            1,
			"images":          1,
			"model":           "$model.model",
			"brand":           "$brand.brand",
			"price":           1,
			"cargoPrice":      1,
			"productSlug":     1,
			"quantityOfStock": 1,
			"saleCount":       1,
		}}},
	}

	cursor, err := config.DB.Collection(models.Product{}.Collection()).Aggregate(ctx, pipeline)
	if err != nil {
		log.Printf("[seller.product.list] aggregation failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, http.StatusInternalServerError, "Server error"))
		return
	}
	defer cursor.Close(ctx)

	var products []bson.M
	if err := cursor.All(ctx, &products); err != nil {
		log.Printf("[seller.product.list] decode failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, http.StatusInternalServerError, "Server error"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, http.StatusOK, "Get seller products successfully", products))
}
