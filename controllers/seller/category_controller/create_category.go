package category_controller

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/beratazgun/ecommerce-backend-api/config"
	"github.com/beratazgun/ecommerce-backend-api/models"
	"github.com/beratazgun/ecommerce-backend-api/utils"
)

// CreateCategory godoc
// @Summary Create a category
// @Description Creates a category with a slug derived from its name
// @Tags Seller catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param category body models.CreateCategoryRequest true "Category payload"
// @Success 201 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse "Validation error"
// @Failure 409 {object} models.ApiResponse "Category already exists"
// @Router /seller/categories [post]
func CreateCategory(c *gin.Context) {
	var req models.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, http.StatusBadRequest, "Invalid request body"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	slug := utils.GenerateSlug(req.Category)
	coll := config.DB.Collection(models.Category{}.Collection())

	count, err := coll.CountDocuments(ctx, bson.M{"categorySlug": slug})
	if err != nil {
		log.Printf("[seller.category.create] lookup failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, http.StatusInternalServerError, "Server error"))
		return
	}
	if count > 0 {
		c.JSON(http.StatusConflict, models.ErrorResponse(c, http.StatusConflict, "Category already exists"))
		return
	}

	now := time.Now()
	category := models.Category{
		Category:     req.Category,
		CategorySlug: slug,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	res, err := coll.InsertOne(ctx, category)
	if err != nil {
		log.Printf("[seller.category.create] insert failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, http.StatusInternalServerError, "Server error"))
		return
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		category.ID = id
	}

	c.JSON(http.StatusCreated, models.SuccessResponse(c, http.StatusCreated, "Category created successfully", category))
}
