package ecommerce_routes

import (
	"github.com/devkeshravani/engagewise-commerce-76/controllers/ecommerce/cart_controller"
	"github.com/devkeshravani/engagewise-commerce-76/controllers/ecommerce/session_controller"
	"github.com/devkeshravani/engagewise-commerce-76/controllers/ecommerce/wishlist_controller"
	"github.com/gin-gonic/gin"
)

// SetupCartRoutes registers the cart, wishlist and badge count routes.
func SetupCartRoutes(router *gin.RouterGroup, limit gin.HandlerFunc) {
	cart := router.Group("/cart")
	{
		cart.GET("", cart_controller.GetCart)
		cart.GET("/count", cart_controller.GetCartCount)
		cart.POST("/items", limit, cart_controller.AddCartItem)
		cart.PATCH("/items/:id", limit, cart_controller.UpdateCartItem)
		cart.DELETE("/items/:id", limit, cart_controller.RemoveCartItem)
	}

	wishlist := router.Group("/wishlist")
	{
		wishlist.GET("", wishlist_controller.GetWishlist)
		wishlist.POST("/items", limit, wishlist_controller.AddWishlistItem)
		wishlist.GET("/items/:productId", wishlist_controller.GetWishlistStatus)
		wishlist.DELETE("/items/:productId", limit, wishlist_controller.RemoveWishlistItem)
	}

	router.GET("/session/counts", session_controller.GetSessionCounts)
}
