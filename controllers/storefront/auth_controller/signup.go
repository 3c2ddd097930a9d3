package auth_controller

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"github.com/beratazgun/ecommerce-backend-api/config"
	"github.com/beratazgun/ecommerce-backend-api/models"
)

// Signup godoc
// @Summary Sign up as customer or seller
// @Description Creates the account; a seller signup also provisions their store
// @Tags Auth
// @Accept json
// @Produce json
// @Param role path string true "Account role" Enums(customer, seller)
// @Param request body models.SignupRequest true "Account details"
// @Success 201 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse "Invalid request"
// @Failure 409 {object} models.ApiResponse "Email already in use"
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /auth/signup/:role [post]
func Signup(c *gin.Context) {
	role := c.Param("role")
	if role != models.RoleCustomer && role != models.RoleSeller {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, http.StatusBadRequest, "Unknown account role"))
		return
	}

	var req models.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, http.StatusBadRequest, err.Error()))
		return
	}
	if role == models.RoleSeller && req.StoreName == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, http.StatusBadRequest, "Store name is required for sellers"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	coll := config.DB.Collection(collectionForRole(role))

	count, err := coll.CountDocuments(ctx, bson.M{"email": req.Email})
	if err != nil {
		log.Printf("[auth.signup] email check failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, http.StatusInternalServerError, "Server error"))
		return
	}
	if count > 0 {
		c.JSON(http.StatusConflict, models.ErrorResponse(c, http.StatusConflict, "Email already in use"))
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("[auth.signup] hashing failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, http.StatusInternalServerError, "Server error"))
		return
	}

	now := time.Now()
	switch role {
	case models.RoleSeller:
		seller := models.Seller{
			ID:        primitive.NewObjectID(),
			FirstName: req.FirstName,
			LastName:  req.LastName,
			Phone:     req.Phone,
			Email:     req.Email,
			Password:  string(hash),
			Role:      models.RoleSeller,
			CreatedAt: now,
			UpdatedAt: now,
		}
		store := models.Store{
			ID:        primitive.NewObjectID(),
			StoreName: req.StoreName,
			SellerID:  seller.ID,
		}
		seller.StoreID = store.ID

		if _, err := coll.InsertOne(ctx, seller); err != nil {
			log.Printf("[auth.signup] insert seller failed: %v", err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, http.StatusInternalServerError, "Server error"))
			return
		}
		if _, err := config.DB.Collection(models.Store{}.Collection()).InsertOne(ctx, store); err != nil {
			log.Printf("[auth.signup] insert store failed: %v", err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, http.StatusInternalServerError, "Server error"))
			return
		}
	default:
		customer := models.Customer{
			ID:        primitive.NewObjectID(),
			FirstName: req.FirstName,
			LastName:  req.LastName,
			Phone:     req.Phone,
			Email:     req.Email,
			Password:  string(hash),
			Role:      models.RoleCustomer,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if _, err := coll.InsertOne(ctx, customer); err != nil {
			log.Printf("[auth.signup] insert customer failed: %v", err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, http.StatusInternalServerError, "Server error"))
			return
		}
	}

	c.JSON(http.StatusCreated, models.SuccessResponse(c, http.StatusCreated, "Account created successfully", nil))
}

func collectionForRole(role string) string {
	if role == models.RoleSeller {
		return models.Seller{}.Collection()
	}
	return models.Customer{}.Collection()
}
