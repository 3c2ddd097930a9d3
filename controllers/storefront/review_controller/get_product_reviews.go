package review_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/beratazgun/ecommerce-backend-api/config"
	"github.com/beratazgun/ecommerce-backend-api/models"
)

// GetProductReviews godoc
// @Summary List a product's reviews
// @Description Reviews with the reviewer's name joined in, newest first
// @Tags Reviews
// @Produce json
// @Param productSlug path string true "Product slug"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse "Product not found"
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /products/:productSlug/reviews [get]
func GetProductReviews(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	var product models.Product
	err := config.DB.Collection(models.Product{}.Collection()).
		FindOne(ctx, bson.M{"productSlug": c.Param("productSlug")}).
		Decode(&product)
	if err == mongo.ErrNoDocuments {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, http.StatusNotFound, "Product not found"))
		return
	}
	if err != nil {
		log.Printf("[review.list] product lookup failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, http.StatusInternalServerError, "Server error"))
		return
	}

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"productId": product.ID}}},
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         "customers",
			"localField":   "customerId",
			"foreignField": "_id",
			"as":           "customer",
		}}},
		bson.D{{Key: "$unwind", Value: "$customer"}},
		bson.D{{Key: "$project", Value: bson.M{
			"_id":         1,
			"rating":      1,
			"review":      1,
			"createdAt":   1,
			"firstName":   "$customer.firstName",
			"lastName":    "$customer.lastName",
			"productSlug": bson.M{"$literal": product.ProductSlug},
		}}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "createdAt", Value: -1}}}},
	}

	cursor, err := config.DB.Collection(models.Review{}.Collection()).Aggregate(ctx, pipeline)
	if err != nil {
		log.Printf("[review.list] aggregation failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, http.StatusInternalServerError, "Server error"))
		return
	}
	defer cursor.Close(ctx)

	var reviews []models.ReviewWithAuthor
	if err := cursor.All(ctx, &reviews); err != nil {
		log.Printf("[review.list] decode failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, http.StatusInternalServerError, "Server error"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, http.StatusOK, "Get reviews successfully", reviews))
}
