package brand_controller

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/beratazgun/ecommerce-backend-api/config"
	"github.com/beratazgun/ecommerce-backend-api/models"
	"github.com/beratazgun/ecommerce-backend-api/services"
)

// UploadBrandLogo godoc
// @Summary Upload a brand logo
// @Description Uploads the logo image and stores its delivery URL on the brand
// @Tags Seller catalog
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param brandSlug path string true "Brand slug"
// @Param logo formData file true "Logo image"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse "No file"
// @Failure 404 {object} models.ApiResponse "Brand not found"
// @Router /seller/brands/:brandSlug/logo [post]
func UploadBrandLogo(c *gin.Context) {
	file, err := c.FormFile("logo")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, http.StatusBadRequest, "No logo file provided"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	brandSlug := c.Param("brandSlug")
	coll := config.DB.Collection(models.Brand{}.Collection())

	count, err := coll.CountDocuments(ctx, bson.M{"brandSlug": brandSlug})
	if err != nil {
		log.Printf("[seller.brand.logo] lookup failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, http.StatusInternalServerError, "Server error"))
		return
	}
	if count == 0 {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, http.StatusNotFound, "Brand not found"))
		return
	}

	svc, err := services.NewImageService(
		os.Getenv("CLOUDINARY_CLOUD_NAME"),
		os.Getenv("CLOUDINARY_API_KEY"),
		os.Getenv("CLOUDINARY_API_SECRET"),
	)
	if err != nil {
		log.Printf("[seller.brand.logo] cloudinary init failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, http.StatusInternalServerError, "Server error"))
		return
	}

	url, err := svc.UploadBrandLogo(c.Request.Context(), file, brandSlug)
	if err != nil {
		log.Printf("[seller.brand.logo] upload failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, http.StatusInternalServerError, "Server error"))
		return
	}

	update := bson.M{"$set": bson.M{"logoImage": url, "updatedAt": time.Now()}}
	if _, err := coll.UpdateOne(ctx, bson.M{"brandSlug": brandSlug}, update); err != nil {
		log.Printf("[seller.brand.logo] update failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, http.StatusInternalServerError, "Server error"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, http.StatusOK, "Logo uploaded successfully", gin.H{"logoImage": url}))
}
