package formfields_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/beratazgun/ecommerce-backend-api/cache"
	"github.com/beratazgun/ecommerce-backend-api/config"
	"github.com/beratazgun/ecommerce-backend-api/models"
	"github.com/beratazgun/ecommerce-backend-api/services"
	"github.com/beratazgun/ecommerce-backend-api/utils"
)

// CreateFormFields godoc
// @Summary Save the product form of a category
// @Description Replaces the dynamic form definition sellers fill in when listing a product
// @Tags Seller catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param fields body models.CreateFormFieldsRequest true "Form definition"
// @Success 201 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse "Validation error"
// @Failure 404 {object} models.ApiResponse "Category not found"
// @Router /seller/form-fields [post]
func CreateFormFields(c *gin.Context) {
	var req models.CreateFormFieldsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, http.StatusBadRequest, "Invalid request body"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	svc := services.NewFormFieldsService(config.DB, cache.NewRedisStore(config.RedisClient))

	formFields, err := svc.Save(ctx, req)
	if err != nil {
		status := utils.StatusOf(err)
		msg := err.Error()
		if status == http.StatusInternalServerError {
			log.Printf("[seller.formFields.create] save failed: %v", err)
			msg = "Server error"
		}
		c.JSON(status, models.ErrorResponse(c, status, msg))
		return
	}

	c.JSON(http.StatusCreated, models.SuccessResponse(c, http.StatusCreated, "Form fields saved successfully", formFields))
}
