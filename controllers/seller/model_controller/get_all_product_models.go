package model_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/beratazgun/ecommerce-backend-api/config"
	"github.com/beratazgun/ecommerce-backend-api/models"
)

// GetAllProductModels godoc
// @Summary List every product model
// @Tags Seller catalog
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /seller/models [get]
func GetAllProductModels(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	cursor, err := config.DB.Collection(models.ProductModel{}.Collection()).
		Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "model", Value: 1}}))
	if err != nil {
		log.Printf("[seller.model.listAll] query failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, http.StatusInternalServerError, "Server error"))
		return
	}

	modelList := []models.ProductModel{}
	if err := cursor.All(ctx, &modelList); err != nil {
		log.Printf("[seller.model.listAll] decode failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, http.StatusInternalServerError, "Server error"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, http.StatusOK, "Product models fetched successfully", modelList))
}
