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

// DeleteProduct godoc
// @Summary Delete a product
// @Description Removes an owned product and its features document
// @Tags Seller products
// @Produce json
// @Security BearerAuth
// @Param productSlug path string true "Product slug"
// @Success 200 {object} models.ApiResponse
// @Failure 403 {object} models.ApiResponse "Not the owner"
// @Failure 404 {object} models.ApiResponse "Product not found"
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /seller/products/:productSlug [delete]
func DeleteProduct(c *gin.Context) {
	sellerID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, http.StatusUnauthorized, "Please login as a seller"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	coll := config.DB.Collection(models.Product{}.Collection())

	var product models.Product
	err := coll.FindOne(ctx, bson.M{"productSlug": c.Param("productSlug")}).Decode(&product)
	if err == mongo.ErrNoDocuments {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, http.StatusNotFound, "Product not found"))
		return
	}
	if err != nil {
		log.Printf("[seller.product.delete] lookup failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, http.StatusInternalServerError, "Server error"))
		return
	}
	if product.SellerID != sellerID {
		c.JSON(http.StatusForbidden, models.ErrorResponse(c, http.StatusForbidden, "You are not allowed to delete this product"))
		return
	}

	if _, err := coll.DeleteOne(ctx, bson.M{"_id": product.ID}); err != nil {
		log.Printf("[seller.product.delete] delete failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, http.StatusInternalServerError, "Server error"))
		return
	}
	if _, err := config.DB.Collection(models.Features{}.Collection()).
		DeleteOne(ctx, bson.M{"productId": product.ID}); err != nil {
		log.Printf("[seller.product.delete] features delete failed: %v", err)
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, http.StatusOK, "Product deleted successfully", nil))
}
