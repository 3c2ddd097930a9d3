package product_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/beratazgun/ecommerce-backend-api/config"
	"github.com/beratazgun/ecommerce-backend-api/models"
)

// GetProductBySlug godoc
// @Summary Get a single product
// @Description Full product detail with features, brand, model, category and store joined in
// @Tags Products
// @Produce json
// @Param productSlug path string true "Product slug"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse "Product not found"
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /products/:productSlug [get]
func GetProductBySlug(c *gin.Context) {
	productSlug := c.Param("productSlug")

	ctx, cancel := config.WithTimeout()
	defer cancel()

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"productSlug": productSlug}}},
		lookup("features", "featuresId", "_id", "features"),
		unwind("$features"),
		lookup("productmodels", "modelId", "_id", "model"),
		unwind("$model"),
		lookup("brands", "brandId", "_id", "brand"),
		unwind("$brand"),
		lookup("categories", "categoryId", "_id", "category"),
		unwind("$category"),
		lookup("stores", "sellerId", "sellerId", "store"),
		unwind("$store"),
	}

	cursor, err := config.DB.Collection(models.Product{}.Collection()).Aggregate(ctx, pipeline)
	if err != nil {
		log.Printf("[product.get] aggregation failed for %s: %v", productSlug, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, http.StatusInternalServerError, "Server error"))
		return
	}
	defer cursor.Close(ctx)

	var docs []bson.M
	if err := cursor.All(ctx, &docs); err != nil {
		log.Printf("[product.get] decode failed for %s: %v", productSlug, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, http.StatusInternalServerError, "Server error"))
		return
	}
	if len(docs) == 0 {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, http.StatusNotFound, "Product not found"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, http.StatusOK, "Get product successfully", docs[0]))
}
