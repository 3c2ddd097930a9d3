package brand_controller

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

// CreateBrand godoc
// @Summary Create a brand
// @Description Creates a brand with a slug and a public digit id
// @Tags Seller catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param brand body models.CreateBrandRequest true "Brand payload"
// @Success 201 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse "Validation error"
// @Failure 409 {object} models.ApiResponse "Brand already exists"
// @Router /seller/brands [post]
func CreateBrand(c *gin.Context) {
	var req models.CreateBrandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, http.StatusBadRequest, "Invalid request body"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	slug := utils.GenerateSlug(req.Brand)
	coll := config.DB.Collection(models.Brand{}.Collection())

	count, err := coll.CountDocuments(ctx, bson.M{"brandSlug": slug})
	if err != nil {
		log.Printf("[seller.brand.create] lookup failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, http.StatusInternalServerError, "Server error"))
		return
	}
	if count > 0 {
		c.JSON(http.StatusConflict, models.ErrorResponse(c, http.StatusConflict, "Brand already exists"))
		return
	}

	now := time.Now()
	brand := models.Brand{
		Brand:     req.Brand,
		BrandSlug: slug,
		BrandID:   utils.DigitID(10),
		LogoImage: req.LogoImage,
		CreatedAt: now,
		UpdatedAt: now,
	}

	res, err := coll.InsertOne(ctx, brand)
	if err != nil {
		log.Printf("[seller.brand.create] insert failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, http.StatusInternalServerError, "Server error"))
		return
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		brand.ID = id
	}

	c.JSON(http.StatusCreated, models.SuccessResponse(c, http.StatusCreated, "Brand created successfully", brand))
}
