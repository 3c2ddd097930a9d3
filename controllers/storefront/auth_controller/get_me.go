package auth_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/beratazgun/ecommerce-backend-api/config"
	"github.com/beratazgun/ecommerce-backend-api/middleware"
	"github.com/beratazgun/ecommerce-backend-api/models"
)

// GetMe godoc
// @Summary Get the authenticated account
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse "Account not found"
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /auth/me [get]
func GetMe(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, http.StatusUnauthorized, "Please login first"))
		return
	}
	role, _ := middleware.GetUserRole(c)

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var account bson.M
	err := config.DB.Collection(collectionForRole(role)).
		FindOne(ctx, bson.M{"_id": userID}).
		Decode(&account)
	if err == mongo.ErrNoDocuments {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, http.StatusNotFound, "Account not found"))
		return
	}
	if err != nil {
		log.Printf("[auth.me] lookup failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, http.StatusInternalServerError, "Server error"))
		return
	}

	delete(account, "password")
	c.JSON(http.StatusOK, models.SuccessResponse(c, http.StatusOK, "Get account successfully", account))
}
