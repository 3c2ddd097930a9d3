package order_controller

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/beratazgun/ecommerce-backend-api/cache"
	"github.com/beratazgun/ecommerce-backend-api/config"
	"github.com/beratazgun/ecommerce-backend-api/middleware"
	"github.com/beratazgun/ecommerce-backend-api/models"
	"github.com/beratazgun/ecommerce-backend-api/services"
	"github.com/beratazgun/ecommerce-backend-api/utils"
)

// CreateOrder godoc
// @Summary Place an order
// @Description Creates the order, decrements stock and clears the cart
// @Tags Orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.CreateOrderRequest true "Order"
// @Success 201 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse "Invalid request or insufficient stock"
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /orders [post]
func CreateOrder(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, http.StatusUnauthorized, "Please login to place an order"))
		return
	}

	var req models.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, http.StatusBadRequest, err.Error()))
		return
	}
	if req.PaymentMethod != "cash" && req.Card == nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, http.StatusBadRequest, "Card details are required for card payments"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	products := config.DB.Collection(models.Product{}.Collection())

	// every line must be in stock before anything is decremented
	for _, line := range req.Products {
		var product models.Product
		if err := products.FindOne(ctx, bson.M{"_id": line.ProductID}).Decode(&product); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, http.StatusBadRequest, "Product not found"))
			return
		}
		if product.QuantityOfStock < line.Quantity {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, http.StatusBadRequest, "Insufficient stock for "+product.Name))
			return
		}
	}

	order := models.Order{
		ID:              primitive.NewObjectID(),
		OrderID:         utils.DigitID(18),
		CustomerID:      userID,
		Products:        req.Products,
		ShippingAddress: req.ShippingAddress,
		Quantity:        req.Quantity,
		TotalPrice:      req.TotalPrice,
		PaymentMethod:   req.PaymentMethod,
		Card:            req.Card,
		OrderDate:       time.Now(),
	}

	if _, err := config.DB.Collection(models.Order{}.Collection()).InsertOne(ctx, order); err != nil {
		log.Printf("[order.create] insert failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, http.StatusInternalServerError, "Server error"))
		return
	}

	for _, line := range req.Products {
		if _, err := products.UpdateByID(ctx, line.ProductID, bson.M{
			"$inc": bson.M{
				"quantityOfStock": -line.Quantity,
				"saleCount":       line.Quantity,
				"numberOfOrders":  1,
			},
		}); err != nil {
			log.Printf("[order.create] stock update failed for %s: %v", line.ProductID.Hex(), err)
		}
	}

	cartSvc := services.NewCartService(cache.NewRedisStore(config.RedisClient))
	if err := cartSvc.Clear(ctx, userID.Hex()); err != nil {
		log.Printf("[order.create] cart clear failed for %s: %v", userID.Hex(), err)
	}

	c.JSON(http.StatusCreated, models.SuccessResponse(c, http.StatusCreated, "Order created successfully", order))
}
