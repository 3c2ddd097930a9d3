package auth_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"github.com/beratazgun/ecommerce-backend-api/config"
	"github.com/beratazgun/ecommerce-backend-api/models"
	"github.com/beratazgun/ecommerce-backend-api/utils"
)

const authCookieMaxAge = 24 * 60 * 60

// Login godoc
// @Summary Log in
// @Description Verifies credentials and sets the session cookie
// @Tags Auth
// @Accept json
// @Produce json
// @Param role path string true "Account role" Enums(customer, seller)
// @Param request body models.LoginRequest true "Credentials"
// @Success 200 {object} models.ApiResponse
// @Failure 401 {object} models.ApiResponse "Wrong email or password"
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /auth/login/:role [post]
func Login(c *gin.Context) {
	role := c.Param("role")
	if role != models.RoleCustomer && role != models.RoleSeller {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, http.StatusBadRequest, "Unknown account role"))
		return
	}

	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, http.StatusBadRequest, err.Error()))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	// both account types share the credential fields used here
	var account struct {
		ID        primitive.ObjectID `bson:"_id"`
		Email     string             `bson:"email"`
		Password  string             `bson:"password"`
		FirstName string             `bson:"firstName"`
		LastName  string             `bson:"lastName"`
	}
	err := config.DB.Collection(collectionForRole(role)).
		FindOne(ctx, bson.M{"email": req.Email}).
		Decode(&account)
	if err == mongo.ErrNoDocuments {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, http.StatusUnauthorized, "Wrong email or password"))
		return
	}
	if err != nil {
		log.Printf("[auth.login] lookup failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, http.StatusInternalServerError, "Server error"))
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(account.Password), []byte(req.Password)) != nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, http.StatusUnauthorized, "Wrong email or password"))
		return
	}

	token, err := utils.GenerateJWT(account.ID, account.Email, role)
	if err != nil {
		log.Printf("[auth.login] token generation failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, http.StatusInternalServerError, "Server error"))
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie("auth_token", token, authCookieMaxAge, "/", "", false, true)

	c.JSON(http.StatusOK, models.SuccessResponse(c, http.StatusOK, "Logged in successfully", gin.H{
		"firstName": account.FirstName,
		"lastName":  account.LastName,
		"email":     account.Email,
		"role":      role,
	}))
}
