package model_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/beratazgun/ecommerce-backend-api/config"
	"github.com/beratazgun/ecommerce-backend-api/models"
)

// GetProductModels godoc
// @Summary List models of a category
// @Description Returns model name and slug for every model in the category
// @Tags Seller catalog
// @Produce json
// @Param categorySlug path string true "Category slug"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse "Category not found"
// @Router /seller/models/:categorySlug [get]
func GetProductModels(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	var category models.Category
	err := config.DB.Collection(models.Category{}.Collection()).
		FindOne(ctx, bson.M{"categorySlug": c.Param("categorySlug")}).Decode(&category)
	if err == mongo.ErrNoDocuments {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, http.StatusNotFound, "Category not found"))
		return
	}
	if err != nil {
		log.Printf("[seller.model.list] category lookup failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, http.StatusInternalServerError, "Server error"))
		return
	}

	cursor, err := config.DB.Collection(models.ProductModel{}.Collection()).
		Find(ctx, bson.M{"categoryId": category.ID})
	if err != nil {
		log.Printf("[seller.model.list] query failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, http.StatusInternalServerError, "Server error"))
		return
	}

	modelList := []models.ProductModelSummary{}
	if err := cursor.All(ctx, &modelList); err != nil {
		log.Printf("[seller.model.list] decode failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, http.StatusInternalServerError, "Server error"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, http.StatusOK, "Product models fetched successfully", modelList))
}
