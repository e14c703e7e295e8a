package wishlist_controller

import (
	"net/http"

	"github.com/devkeshravani/engagewise-commerce-76/config"
	"github.com/devkeshravani/engagewise-commerce-76/controllers/ecommerce/respond"
	"github.com/devkeshravani/engagewise-commerce-76/models"
	"github.com/devkeshravani/engagewise-commerce-76/services"
	"github.com/gin-gonic/gin"
)

// GetWishlist godoc
// @Summary Get the shopper's wishlist
// @Tags wishlist
// @Produce json
// @Param X-Session-ID header string false "Shopper session id"
// @Success 200 {object} models.ApiResponse{data=models.WishlistView}
// @Failure 500 {object} models.ApiResponse
// @Router /wishlist [get]
func GetWishlist(c *gin.Context) {
	sessionID, ok := respond.Session(c)
	if !ok {
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	view, err := services.GetStorefront().Wishlist.View(ctx, sessionID)
	if err != nil {
		respond.Error(c, err, "Failed to fetch wishlist")
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Wishlist fetched successfully", view))
}
