package product_controller

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/beratazgun/ecommerce-backend-api/config"
	"github.com/beratazgun/ecommerce-backend-api/middleware"
	"github.com/beratazgun/ecommerce-backend-api/models"
)

// UpdateProduct godoc
// @Summary Update a product
// @Description Patches the allow-listed mutable fields of an owned product
// @Tags Seller products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param productSlug path string true "Product slug"
// @Param request body models.UpdateProductRequest true "Fields to update"
// @Success 200 {object} models.ApiResponse
// @Failure 403 {object} models.ApiResponse "Not the owner"
// @Failure 404 {object} models.ApiResponse "Product not found"
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /seller/products/:productSlug [patch]
func UpdateProduct(c *gin.Context) {
	sellerID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, http.StatusUnauthorized, "Please login as a seller"))
		return
	}

	var req models.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, http.StatusBadRequest, err.Error()))
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
		log.Printf("[seller.product.update] lookup failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, http.StatusInternalServerError, "Server error"))
		return
	}
	if product.SellerID != sellerID {
		c.JSON(http.StatusForbidden, models.ErrorResponse(c, http.StatusForbidden, "You are not allowed to update this product"))
		return
	}

	set := bson.M{"updatedAt": time.Now()}
	if req.Name != nil {
		set["name"] = *req.Name
	}
	if req.Price != nil {
		set["price"] = *req.Price
	}
	if req.Description != nil {
		set["description"] = *req.Description
	}
	if req.QuantityOfStock != nil {
		set["quantityOfStock"] = *req.QuantityOfStock
	}
	if req.Images != nil {
		set["images"] = *req.Images
	}
	if req.GuarantyTime != nil {
		set["guarantyTime"] = *req.GuarantyTime
	}
	if req.GuarantyType != nil {
		set["guarantyType"] = *req.GuarantyType
	}
	if req.CargoPrice != nil {
		set["cargoPrice"] = *req.CargoPrice
	}
	if req.FreeCargo != nil {
		set["freeCargo"] = *req.FreeCargo
	}
	if req.DeliveryTime != nil {
		set["deliveryTime"] = *req.DeliveryTime
	}

	if _, err := coll.UpdateByID(ctx, product.ID, bson.M{"$set": set}); err != nil {
		log.Printf("[seller.product.update] update failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, http.StatusInternalServerError, "Server error"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, http.StatusOK, "Product updated successfully", nil))
}
