package category_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/beratazgun/ecommerce-backend-api/cache"
	"github.com/beratazgun/ecommerce-backend-api/config"
	"github.com/beratazgun/ecommerce-backend-api/models"
)

// DeleteCategory godoc
// @Summary Delete a category
// @Description Removes the category, its precomputed filters and its cached entries
// @Tags Seller catalog
// @Produce json
// @Security BearerAuth
// @Param categorySlug path string true "Category slug"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse "Category not found"
// @Router /seller/categories/:categorySlug [delete]
func DeleteCategory(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	categorySlug := c.Param("categorySlug")
	coll := config.DB.Collection(models.Category{}.Collection())

	var category models.Category
	if err := coll.FindOne(ctx, bson.M{"categorySlug": categorySlug}).Decode(&category); err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, http.StatusNotFound, "Category not found"))
		return
	}

	if _, err := coll.DeleteOne(ctx, bson.M{"_id": category.ID}); err != nil {
		log.Printf("[seller.category.delete] delete failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, http.StatusInternalServerError, "Server error"))
		return
	}

	// derived data goes with the category; failures here only leave stale
	// filters behind, the category itself is already gone
	if _, err := config.DB.Collection(models.Filter{}.Collection()).
		DeleteMany(ctx, bson.M{"categoryId": category.ID}); err != nil {
		log.Printf("[seller.category.delete] filter cleanup failed: %v", err)
	}
	if _, err := config.DB.Collection(models.FormFields{}.Collection()).
		DeleteMany(ctx, bson.M{"categoryId": category.ID}); err != nil {
		log.Printf("[seller.category.delete] form fields cleanup failed: %v", err)
	}
	store := cache.NewRedisStore(config.RedisClient)
	if err := store.Del(ctx, cache.FilterKey(categorySlug), cache.FormFieldKey(categorySlug)); err != nil {
		log.Printf("[seller.category.delete] cache cleanup failed: %v", err)
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, http.StatusOK, "Category deleted successfully", nil))
}
