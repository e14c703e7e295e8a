package wishlist_controller

import (
	"net/http"

	"github.com/devkeshravani/engagewise-commerce-76/config"
	"github.com/devkeshravani/engagewise-commerce-76/controllers/ecommerce/respond"
	"github.com/devkeshravani/engagewise-commerce-76/models"
	"github.com/devkeshravani/engagewise-commerce-76/services"
	"github.com/gin-gonic/gin"
)

// RemoveWishlistItem godoc
// @Summary Remove a product from the wishlist
// @Tags wishlist
// @Produce json
// @Param X-Session-ID header string false "Shopper session id"
// @Param productId path string true "Product ID"
// @Success 200 {object} models.ApiResponse{data=models.WishlistView}
// @Failure 500 {object} models.ApiResponse
// @Router /wishlist/items/{productId} [delete]
func RemoveWishlistItem(c *gin.Context) {
	sessionID, ok := respond.Session(c)
	if !ok {
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	wishlist := services.GetStorefront().Wishlist
	if err := wishlist.Remove(ctx, sessionID, c.Param("productId")); err != nil {
		respond.Error(c, err, "Failed to remove from wishlist")
		return
	}

	view, err := wishlist.View(ctx, sessionID)
	if err != nil {
		respond.Error(c, err, "Failed to fetch wishlist")
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Item removed from your wishlist", view))
}
