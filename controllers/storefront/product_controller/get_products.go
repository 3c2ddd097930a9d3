package product_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/beratazgun/ecommerce-backend-api/config"
	"github.com/beratazgun/ecommerce-backend-api/models"
	"github.com/beratazgun/ecommerce-backend-api/query"
)

// GetProducts godoc
// @Summary List products with dynamic filters
// @Description Filter, sort and paginate products using URL query parameters
// @Tags Products
// @Produce json
// @Param category query string false "Category slug"
// @Param brand query string false "Brand name, pipe-delimited for alternatives"
// @Param price query string false "Price range, e.g. 100-200"
// @Param sort query string false "Sort order" Enums(PRICE_BY_ASC, PRICE_BY_DESC, MOST_RECENT, MOST_POPULAR, MOST_RATED, MOST_COMMENTED, MOST_VIEWED)
// @Param limit query int false "Page size"
// @Param page query int false "Page number"
// @Success 200 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /products [get]
func GetProducts(c *gin.Context) {
	raw := make(map[string]string)
	for key, values := range c.Request.URL.Query() {
		if len(values) > 0 {
			raw[key] = values[0]
		}
	}

	params := query.Normalize(raw)
	compiled := query.Compile(params, query.BuildKeyMap())

	ctx, cancel := config.WithTimeout()
	defer cancel()

	result, err := query.NewExecutor(config.DB).Execute(ctx, compiled, params)
	if err != nil {
		log.Printf("[product.list] query failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, http.StatusInternalServerError, "Server error"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, http.StatusOK, "Get products successfully", result))
}
