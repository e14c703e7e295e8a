package cart_controller

import (
	"net/http"

	"github.com/devkeshravani/engagewise-commerce-76/config"
	"github.com/devkeshravani/engagewise-commerce-76/controllers/ecommerce/respond"
	"github.com/devkeshravani/engagewise-commerce-76/models"
	"github.com/devkeshravani/engagewise-commerce-76/services"
	"github.com/gin-gonic/gin"
)

// AddCartItem godoc
// @Summary Add a product to the cart
// @Description Adds a product variant. Quantity defaults to 1 and a missing color or size defaults to the product's first option. Adding an existing variant increases its quantity.
// @Tags cart
// @Accept json
// @Produce json
// @Param X-Session-ID header string false "Shopper session id"
// @Param item body models.AddCartItemRequest true "Cart item"
// @Success 201 {object} models.ApiResponse{data=models.CartView}
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /cart/items [post]
func AddCartItem(c *gin.Context) {
	sessionID, ok := respond.Session(c)
	if !ok {
		return
	}

	var req models.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	carts := services.GetStorefront().Carts
	if err := carts.Add(ctx, sessionID, req); err != nil {
		respond.Error(c, err, "Failed to add to cart")
		return
	}

	view, err := carts.View(ctx, sessionID)
	if err != nil {
		respond.Error(c, err, "Failed to fetch cart")
		return
	}
	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Item has been added to your cart", view))
}
