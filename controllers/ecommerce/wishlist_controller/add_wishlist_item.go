package wishlist_controller

import (
	"net/http"

	"github.com/devkeshravani/engagewise-commerce-76/config"
	"github.com/devkeshravani/engagewise-commerce-76/controllers/ecommerce/respond"
	"github.com/devkeshravani/engagewise-commerce-76/models"
	"github.com/devkeshravani/engagewise-commerce-76/services"
	"github.com/gin-gonic/gin"
)

// AddWishlistItem godoc
// @Summary Save a product to the wishlist
// @Description Saving a product that is already in the wishlist succeeds without duplicating it
// @Tags wishlist
// @Accept json
// @Produce json
// @Param X-Session-ID header string false "Shopper session id"
// @Param item body models.AddWishlistItemRequest true "Product to save"
// @Success 201 {object} models.ApiResponse{data=models.WishlistView}
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /wishlist/items [post]
func AddWishlistItem(c *gin.Context) {
	sessionID, ok := respond.Session(c)
	if !ok {
		return
	}

	var req models.AddWishlistItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	wishlist := services.GetStorefront().Wishlist
	if err := wishlist.Add(ctx, sessionID, req.ProductID); err != nil {
		respond.Error(c, err, "Failed to add to wishlist")
		return
	}

	view, err := wishlist.View(ctx, sessionID)
	if err != nil {
		respond.Error(c, err, "Failed to fetch wishlist")
		return
	}
	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Item has been added to your wishlist", view))
}
