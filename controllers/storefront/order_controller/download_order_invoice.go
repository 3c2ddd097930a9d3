package order_controller

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/beratazgun/ecommerce-backend-api/config"
	"github.com/beratazgun/ecommerce-backend-api/middleware"
	"github.com/beratazgun/ecommerce-backend-api/models"
	"github.com/beratazgun/ecommerce-backend-api/services"
)

// DownloadOrderInvoice godoc
// @Summary Download the order invoice PDF
// @Tags Orders
// @Produce octet-stream
// @Security BearerAuth
// @Param orderId path string true "Public order number"
// @Success 200 "PDF file"
// @Failure 404 {object} models.ApiResponse "Order not found"
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /orders/:orderId/invoice [get]
func DownloadOrderInvoice(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, http.StatusUnauthorized, "Please login to download invoices"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var order models.Order
	err := config.DB.Collection(models.Order{}.Collection()).FindOne(ctx, bson.M{
		"orderId":    c.Param("orderId"),
		"customerId": userID,
	}).Decode(&order)
	if err == mongo.ErrNoDocuments {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, http.StatusNotFound, "Order not found"))
		return
	}
	if err != nil {
		log.Printf("[order.invoice] lookup failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, http.StatusInternalServerError, "Server error"))
		return
	}

	var customer models.Customer
	if err := config.DB.Collection(models.Customer{}.Collection()).
		FindOne(ctx, bson.M{"_id": order.CustomerID}).
		Decode(&customer); err != nil {
		log.Printf("[order.invoice] customer lookup failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, http.StatusInternalServerError, "Server error"))
		return
	}

	lines := make([]services.InvoiceLine, 0, len(order.Products))
	for _, item := range order.Products {
		var product models.Product
		if err := config.DB.Collection(models.Product{}.Collection()).
			FindOne(ctx, bson.M{"_id": item.ProductID}).
			Decode(&product); err != nil {
			// deleted products still appear on old invoices, just without a name
			product.Name = "Unavailable product"
		}
		lines = append(lines, services.InvoiceLine{
			ProductName: product.Name,
			Quantity:    item.Quantity,
			UnitPrice:   product.Price.SellingPrice,
		})
	}

	buf, err := services.GenerateOrderInvoicePDF(&order, lines, customer.FirstName+" "+customer.LastName, customer.Email)
	if err != nil {
		log.Printf("[order.invoice] pdf generation failed for %s: %v", order.OrderID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, http.StatusInternalServerError, "Server error"))
		return
	}

	filename := fmt.Sprintf("invoice-%s.pdf", order.OrderID)
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Header("Content-Length", fmt.Sprintf("%d", buf.Len()))
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}
