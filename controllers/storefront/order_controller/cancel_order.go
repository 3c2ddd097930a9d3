package order_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/beratazgun/ecommerce-backend-api/config"
	"github.com/beratazgun/ecommerce-backend-api/middleware"
	"github.com/beratazgun/ecommerce-backend-api/models"
)

// CancelOrder godoc
// @Summary Cancel an order
// @Description Flags the order as canceled; completed orders cannot be canceled
// @Tags Orders
// @Produce json
// @Security BearerAuth
// @Param orderId path string true "Public order number"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse "Order already completed"
// @Failure 404 {object} models.ApiResponse "Order not found"
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /orders/:orderId/cancel [patch]
func CancelOrder(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, http.StatusUnauthorized, "Please login to cancel orders"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	coll := config.DB.Collection(models.Order{}.Collection())

	var order models.Order
	err := coll.FindOne(ctx, bson.M{
		"orderId":    c.Param("orderId"),
		"customerId": userID,
	}).Decode(&order)
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, http.StatusNotFound, "Order not found"))
		return
	}
	if order.IsOrderCompleted {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, http.StatusBadRequest, "Completed orders cannot be canceled"))
		return
	}

	if _, err := coll.UpdateByID(ctx, order.ID, bson.M{"$set": bson.M{"isCanceled": true}}); err != nil {
		log.Printf("[order.cancel] update failed for %s: %v", order.OrderID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, http.StatusInternalServerError, "Server error"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, http.StatusOK, "Order canceled successfully", nil))
}
