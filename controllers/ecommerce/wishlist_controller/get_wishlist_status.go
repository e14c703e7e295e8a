package wishlist_controller

import (
	"net/http"

	"github.com/devkeshravani/engagewise-commerce-76/config"
	"github.com/devkeshravani/engagewise-commerce-76/controllers/ecommerce/respond"
	"github.com/devkeshravani/engagewise-commerce-76/models"
	"github.com/devkeshravani/engagewise-commerce-76/services"
	"github.com/gin-gonic/gin"
)

type wishlistStatus struct {
	ProductID  string `json:"product_id"`
	Wishlisted bool   `json:"wishlisted"`
}

// GetWishlistStatus godoc
// @Summary Check whether a product is saved
// @Tags wishlist
// @Produce json
// @Param X-Session-ID header string false "Shopper session id"
// @Param productId path string true "Product ID"
// @Success 200 {object} models.ApiResponse
// @Router /wishlist/items/{productId} [get]
func GetWishlistStatus(c *gin.Context) {
	sessionID, ok := respond.Session(c)
	if !ok {
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	productID := c.Param("productId")
	saved, err := services.GetStorefront().Wishlist.Contains(ctx, sessionID, productID)
	if err != nil {
		respond.Error(c, err, "Failed to check wishlist")
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Wishlist status fetched successfully", wishlistStatus{ProductID: productID, Wishlisted: saved}))
}
