package review_controller

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/beratazgun/ecommerce-backend-api/config"
	"github.com/beratazgun/ecommerce-backend-api/middleware"
	"github.com/beratazgun/ecommerce-backend-api/models"
)

// CreateReview godoc
// @Summary Review a product
// @Description Stores the review and folds the rating into the product's aggregates
// @Tags Reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param productSlug path string true "Product slug"
// @Param request body models.CreateReviewRequest true "Review"
// @Success 201 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse "Product not found"
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /products/:productSlug/reviews [post]
func CreateReview(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, http.StatusUnauthorized, "Please login to review"))
		return
	}

	var req models.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, http.StatusBadRequest, err.Error()))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	products := config.DB.Collection(models.Product{}.Collection())

	var product models.Product
	err := products.FindOne(ctx, bson.M{"productSlug": c.Param("productSlug")}).Decode(&product)
	if err == mongo.ErrNoDocuments {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, http.StatusNotFound, "Product not found"))
		return
	}
	if err != nil {
		log.Printf("[review.create] product lookup failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, http.StatusInternalServerError, "Server error"))
		return
	}

	now := time.Now()
	review := models.Review{
		ID:         primitive.NewObjectID(),
		CustomerID: userID,
		ProductID:  product.ID,
		Rating:     req.Rating,
		Review:     req.Review,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if _, err := config.DB.Collection(models.Review{}.Collection()).InsertOne(ctx, review); err != nil {
		log.Printf("[review.create] insert failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, http.StatusInternalServerError, "Server error"))
		return
	}

	// fold the rating into the histogram bucket and the counters, then
	// recompute the average from the updated histogram
	update := bson.M{
		"$inc": bson.M{
			"numberOfRating":          1,
			"numberOfComments":        1,
			"ratingsCount.$[b].count": 1,
		},
	}
	arrayFilters := options.Update().SetArrayFilters(options.ArrayFilters{
		Filters: []interface{}{bson.M{"b.rate": req.Rating}},
	})
	if _, err := products.UpdateByID(ctx, product.ID, update, arrayFilters); err != nil {
		log.Printf("[review.create] aggregate update failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, http.StatusInternalServerError, "Server error"))
		return
	}

	var updated models.Product
	if err := products.FindOne(ctx, bson.M{"_id": product.ID}).Decode(&updated); err != nil {
		log.Printf("[review.create] reload failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, http.StatusInternalServerError, "Server error"))
		return
	}
	if _, err := products.UpdateByID(ctx, product.ID, bson.M{
		"$set": bson.M{"averageRating": averageRating(updated.RatingsCount)},
	}); err != nil {
		log.Printf("[review.create] average update failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, http.StatusInternalServerError, "Server error"))
		return
	}

	c.JSON(http.StatusCreated, models.SuccessResponse(c, http.StatusCreated, "Review created successfully", review))
}

func averageRating(buckets []models.RatingCount) float64 {
	total, weighted := 0, 0
	for _, b := range buckets {
		total += b.Count
		weighted += b.Rate * b.Count
	}
	if total == 0 {
		return 0
	}
	return float64(weighted) / float64(total)
}
