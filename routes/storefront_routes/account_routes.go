package storefront_routes

import (
	"github.com/gin-gonic/gin"

	"github.com/beratazgun/ecommerce-backend-api/controllers/storefront/address_controller"
	"github.com/beratazgun/ecommerce-backend-api/controllers/storefront/cart_controller"
	"github.com/beratazgun/ecommerce-backend-api/controllers/storefront/favorite_controller"
	"github.com/beratazgun/ecommerce-backend-api/controllers/storefront/order_controller"
	"github.com/beratazgun/ecommerce-backend-api/controllers/storefront/review_controller"
	"github.com/beratazgun/ecommerce-backend-api/middleware"
)

// SetupAccountRoutes registers everything that belongs to a logged-in
// customer: cart, favorites, addresses, orders and reviews.
func SetupAccountRoutes(router *gin.RouterGroup) {
	account := router.Group("")
	account.Use(middleware.AuthMiddleware())

	cart := account.Group("/cart")
	{
		cart.POST("", cart_controller.AddToCart)
		cart.GET("", cart_controller.GetCart)
		cart.GET("/count", cart_controller.GetItemCount)
		cart.DELETE("/:cartId", cart_controller.DeleteFromCart)
	}

	favorites := account.Group("/favorites")
	{
		favorites.POST("", favorite_controller.AddFavorite)
		favorites.GET("", favorite_controller.GetFavorites)
		favorites.GET("/:productId", favorite_controller.CheckFavorite)
		favorites.DELETE("/:productId", favorite_controller.DeleteFavorite)
	}

	addresses := account.Group("/addresses")
	{
		addresses.POST("", address_controller.CreateAddress)
		addresses.GET("", address_controller.GetAddresses)
		addresses.PATCH("", address_controller.UpdateAddress)
		addresses.DELETE("/:addressId", address_controller.DeleteAddress)
	}

	orders := account.Group("/orders")
	{
		orders.POST("", order_controller.CreateOrder)
		orders.GET("", order_controller.GetOrders)
		orders.PATCH("/:orderId/cancel", order_controller.CancelOrder)
		orders.GET("/:orderId/invoice", order_controller.DownloadOrderInvoice)
	}

	account.POST("/products/:productSlug/reviews", review_controller.CreateReview)
	account.PATCH("/reviews/:reviewId", review_controller.UpdateReview)
	account.DELETE("/reviews/:reviewId", review_controller.DeleteReview)
}
