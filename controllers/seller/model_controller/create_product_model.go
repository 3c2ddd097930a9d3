package model_controller

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/beratazgun/ecommerce-backend-api/config"
	"github.com/beratazgun/ecommerce-backend-api/models"
	"github.com/beratazgun/ecommerce-backend-api/utils"
)

// CreateProductModel godoc
// @Summary Create a product model
// @Description Creates a manufacturer model bound to an existing brand and category
// @Tags Seller catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param model body models.CreateProductModelRequest true "Model payload"
// @Success 201 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse "Validation error"
// @Failure 404 {object} models.ApiResponse "Brand or category not found"
// @Router /seller/models [post]
func CreateProductModel(c *gin.Context) {
	var req models.CreateProductModelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, http.StatusBadRequest, "Invalid request body"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	brandSlug := req.BrandSlug
	if brandSlug == "" {
		brandSlug = utils.GenerateSlug(req.Brand)
	}
	categorySlug := req.CategorySlug
	if categorySlug == "" {
		categorySlug = utils.GenerateSlug(req.Category)
	}

	var brand models.Brand
	err := config.DB.Collection(models.Brand{}.Collection()).
		FindOne(ctx, bson.M{"brandSlug": brandSlug}).Decode(&brand)
	if err == mongo.ErrNoDocuments {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, http.StatusNotFound, "Brand not found"))
		return
	}
	if err != nil {
		log.Printf("[seller.model.create] brand lookup failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, http.StatusInternalServerError, "Server error"))
		return
	}

	var category models.Category
	err = config.DB.Collection(models.Category{}.Collection()).
		FindOne(ctx, bson.M{"categorySlug": categorySlug}).Decode(&category)
	if err == mongo.ErrNoDocuments {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, http.StatusNotFound, "Category not found"))
		return
	}
	if err != nil {
		log.Printf("[seller.model.create] category lookup failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, http.StatusInternalServerError, "Server error"))
		return
	}

	now := time.Now()
	model := models.ProductModel{
		Model:      req.Model,
		ModelSlug:  utils.GenerateSlug(req.Model),
		BrandID:    brand.ID,
		CategoryID: category.ID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	res, err := config.DB.Collection(models.ProductModel{}.Collection()).InsertOne(ctx, model)
	if err != nil {
		log.Printf("[seller.model.create] insert failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, http.StatusInternalServerError, "Server error"))
		return
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		model.ID = id
	}

	c.JSON(http.StatusCreated, models.SuccessResponse(c, http.StatusCreated, "Product model created successfully", model))
}
