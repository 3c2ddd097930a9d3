package review_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/beratazgun/ecommerce-backend-api/config"
	"github.com/beratazgun/ecommerce-backend-api/middleware"
	"github.com/beratazgun/ecommerce-backend-api/models"
)

// DeleteReview godoc
// @Summary Delete an own review
// @Description Removes the review and backs its rating out of the product's aggregates
// @Tags Reviews
// @Produce json
// @Security BearerAuth
// @Param reviewId path string true "Review ID"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse "Review not found"
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /reviews/:reviewId [delete]
func DeleteReview(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, http.StatusUnauthorized, "Please login to delete reviews"))
		return
	}

	reviewID, err := primitive.ObjectIDFromHex(c.Param("reviewId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, http.StatusBadRequest, "Invalid review id"))
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
		log.Printf("[review.delete] lookup failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, http.StatusInternalServerError, "Server error"))
		return
	}

	if _, err := reviews.DeleteOne(ctx, bson.M{"_id": review.ID}); err != nil {
		log.Printf("[review.delete] delete failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, http.StatusInternalServerError, "Server error"))
		return
	}

	products := config.DB.Collection(models.Product{}.Collection())
	arrayFilters := options.Update().SetArrayFilters(options.ArrayFilters{
		Filters: []interface{}{bson.M{"b.rate": review.Rating}},
	})
	if _, err := products.UpdateByID(ctx, review.ProductID, bson.M{
		"$inc": bson.M{
			"numberOfRating":          -1,
			"numberOfComments":        -1,
			"ratingsCount.$[b].count": -1,
		},
	}, arrayFilters); err != nil {
		log.Printf("[review.delete] aggregate update failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, http.StatusInternalServerError, "Server error"))
		return
	}

	var updated models.Product
	if err := products.FindOne(ctx, bson.M{"_id": review.ProductID}).Decode(&updated); err != nil {
		log.Printf("[review.delete] reload failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, http.StatusInternalServerError, "Server error"))
		return
	}
	if _, err := products.UpdateByID(ctx, review.ProductID, bson.M{
		"$set": bson.M{"averageRating": averageRating(updated.RatingsCount)},
	}); err != nil {
		log.Printf("[review.delete] average update failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, http.StatusInternalServerError, "Server error"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, http.StatusOK, "Review deleted successfully", nil))
}
