package product_controller

import (
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/beratazgun/ecommerce-backend-api/models"
	"github.com/beratazgun/ecommerce-backend-api/services"
)

// UploadProductImages godoc
// @Summary Upload product images
// @Description Uploads gallery images and returns their delivery URLs
// @Tags Seller products
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param productSlug path string true "Product slug"
// @Param images formData file true "Image files"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse "No files"
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /seller/products/:productSlug/images [post]
func UploadProductImages(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, http.StatusBadRequest, "Invalid multipart form"))
		return
	}
	files := form.File["images"]
	if len(files) == 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, http.StatusBadRequest, "No image files provided"))
		return
	}

	svc, err := services.NewImageService(
		os.Getenv("CLOUDINARY_CLOUD_NAME"),
		os.Getenv("CLOUDINARY_API_KEY"),
		os.Getenv("CLOUDINARY_API_SECRET"),
	)
	if err != nil {
		log.Printf("[seller.product.images] cloudinary init failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, http.StatusInternalServerError, "Server error"))
		return
	}

	urls, err := svc.UploadProductImages(c.Request.Context(), files, c.Param("productSlug"))
	if err != nil {
		log.Printf("[seller.product.images] upload failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, http.StatusInternalServerError, "Server error"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, http.StatusOK, "Images uploaded successfully", urls))
}
