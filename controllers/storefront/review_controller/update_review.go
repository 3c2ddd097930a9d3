package review_controller

import (
	"context"
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

// UpdateReview godoc
// @Summary Update an own review
// @Description Only the review author can change the text and rating; a rating change moves the histogram bucket
// @Tags Reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param reviewId path string true "Review ID"
// @Param request body models.UpdateReviewRequest true "Fields to update"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse "Nothing to update"
// @Failure 404 {object} models.ApiResponse "Review not found"
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /reviews/:reviewId [patch]
func UpdateReview(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, http.StatusUnauthorized, "Please login to update reviews"))
		return
	}

	reviewID, err := primitive.ObjectIDFromHex(c.Param("reviewId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, http.StatusBadRequest, "Invalid review id"))
		return
	}

	var req models.UpdateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, http.StatusBadRequest, err.Error()))
		return
	}
	if req.Rating == nil && req.Review == nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, http.StatusBadRequest, "Nothing to update"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	reviews := config.DB.Collection(models.Review{}.Collection())

	var review models.Review
	err = reviews.FindOne(ctx, bson.M{"_id": reviewID, "customerId": userID}).Decode(&review)
	if err == mongo.ErrNoDocuments {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, http.StatusNotFound, "Review not found"))
		return
	}
	if err != nil {
		log.Printf("[review.update] lookup failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, http.StatusInternalServerError, "Server error"))
		return
	}

	set := bson.M{"updatedAt": time.Now()}
	if req.Review != nil {
		set["review"] = *req.Review
	}
	if req.Rating != nil {
		set["rating"] = *req.Rating
	}
	if _, err := reviews.UpdateByID(ctx, review.ID, bson.M{"$set": set}); err != nil {
		log.Printf("[review.update] update failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, http.StatusInternalServerError, "Server error"))
		return
	}

	if req.Rating != nil && *req.Rating != review.Rating {
		if err := moveRatingBucket(ctx, review.ProductID, review.Rating, *req.Rating); err != nil {
			log.Printf("[review.update] histogram update failed: %v", err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, http.StatusInternalServerError, "Server error"))
			return
		}
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, http.StatusOK, "Review updated successfully", nil))
}

// moveRatingBucket shifts one vote between histogram buckets and recomputes
// the product's average from the result.
func moveRatingBucket(ctx context.Context, productID primitive.ObjectID, oldRating, newRating int) error {
	products := config.DB.Collection(models.Product{}.Collection())

	dec := options.Update().SetArrayFilters(options.ArrayFilters{
		Filters: []interface{}{bson.M{"b.rate": oldRating}},
	})
	if _, err := products.UpdateByID(ctx, productID, bson.M{
		"$inc": bson.M{"ratingsCount.$[b].count": -1},
	}, dec); err != nil {
		return err
	}

	inc := options.Update().SetArrayFilters(options.ArrayFilters{
		Filters: []interface{}{bson.M{"b.rate": newRating}},
	})
	if _, err := products.UpdateByID(ctx, productID, bson.M{
		"$inc": bson.M{"ratingsCount.$[b].count": 1},
	}, inc); err != nil {
		return err
	}

	var updated models.Product
	if err := products.FindOne(ctx, bson.M{"_id": productID}).Decode(&updated); err != nil {
		return err
	}
	_, err := products.UpdateByID(ctx, productID, bson.M{
		"$set": bson.M{"averageRating": averageRating(updated.RatingsCount)},
	})
	return err
}
