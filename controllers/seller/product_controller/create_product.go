package product_controller

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/beratazgun/ecommerce-backend-api/config"
	"github.com/beratazgun/ecommerce-backend-api/middleware"
	"github.com/beratazgun/ecommerce-backend-api/models"
	"github.com/beratazgun/ecommerce-backend-api/utils"
)

// CreateProduct godoc
// @Summary Create a product
// @Description Creates the product and its paired features document
// @Tags Seller products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.CreateProductRequest true "Product"
// @Success 201 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse "Unknown category, brand or model"
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /seller/products [post]
func CreateProduct(c *gin.Context) {
	sellerID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, http.StatusUnauthorized, "Please login as a seller"))
		return
	}

	var req models.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, http.StatusBadRequest, err.Error()))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var category models.Category
	err := config.DB.Collection(models.Category{}.Collection()).
		FindOne(ctx, bson.M{"categorySlug": utils.GenerateSlug(req.Category)}).
		Decode(&category)
	if err == mongo.ErrNoDocuments {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, http.StatusBadRequest, "This category does not exist"))
		return
	}
	if err != nil {
		log.Printf("[seller.product.create] category lookup failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, http.StatusInternalServerError, "Server error"))
		return
	}

	var brand models.Brand
	err = config.DB.Collection(models.Brand{}.Collection()).
		FindOne(ctx, bson.M{"brandSlug": utils.GenerateSlug(req.Brand)}).
		Decode(&brand)
	if err == mongo.ErrNoDocuments {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, http.StatusBadRequest, "This brand does not exist"))
		return
	}
	if err != nil {
		log.Printf("[seller.product.create] brand lookup failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, http.StatusInternalServerError, "Server error"))
		return
	}

	var productModel models.ProductModel
	err = config.DB.Collection(models.ProductModel{}.Collection()).
		FindOne(ctx, bson.M{"model": req.Model}).
		Decode(&productModel)
	if err == mongo.ErrNoDocuments {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, http.StatusBadRequest, "This model does not exist"))
		return
	}
	if err != nil {
		log.Printf("[seller.product.create] model lookup failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, http.StatusInternalServerError, "Server error"))
		return
	}

	noticeID := utils.DigitID(10)
	now := time.Now()

	product := models.Product{
		ID:              primitive.NewObjectID(),
		ProductSlug:     utils.GenerateSlug(fmt.Sprintf("%s %s-ni-%s", req.Brand, req.Name, noticeID)),
		NoticeID:        noticeID,
		Name:            req.Name,
		BrandID:         brand.ID,
		ModelID:         productModel.ID,
		CategoryID:      category.ID,
		SellerID:        sellerID,
		Price:           req.Price,
		Description:     req.Description,
		QuantityOfStock: req.QuantityOfStock,
		Images:          req.Images,
		GuarantyTime:    req.GuarantyTime,
		GuarantyType:    req.GuarantyType,
		RatingsCount:    models.NewRatingsCount(),
		CargoPrice:      req.CargoPrice,
		FreeCargo:       req.FreeCargo,
		DeliveryTime:    req.DeliveryTime,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	features := models.Features{
		ID:            primitive.NewObjectID(),
		NoticeID:      noticeID,
		ProductID:     product.ID,
		ModelID:       productModel.ID,
		Screen:        req.Features.Screen,
		Battery:       req.Features.Battery,
		Camera:        req.Features.Camera,
		BasicHardware: req.Features.BasicHardware,
		Design:        req.Features.Design,
	}
	product.FeaturesID = features.ID

	if _, err := config.DB.Collection(models.Product{}.Collection()).InsertOne(ctx, product); err != nil {
		log.Printf("[seller.product.create] insert product failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, http.StatusInternalServerError, "Server error"))
		return
	}
	if _, err := config.DB.Collection(models.Features{}.Collection()).InsertOne(ctx, features); err != nil {
		log.Printf("[seller.product.create] insert features failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, http.StatusInternalServerError, "Server error"))
		return
	}

	c.JSON(http.StatusCreated, models.SuccessResponse(c, http.StatusCreated, "Product created successfully", product))
}
