package cart_controller

import (
	"net/http"

	"github.com/devkeshravani/engagewise-commerce-76/config"
	"github.com/devkeshravani/engagewise-commerce-76/controllers/ecommerce/respond"
	"github.com/devkeshravani/engagewise-commerce-76/models"
	"github.com/devkeshravani/engagewise-commerce-76/services"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// UpdateCartItem godoc
// @Summary Change a cart line's quantity
// @Description Sets the quantity of a cart line. Values below 1 are raised to 1.
// @Tags cart
// @Accept json
// @Produce json
// @Param X-Session-ID header string false "Shopper session id"
// @Param id path string true "Cart line ID"
// @Param item body models.UpdateCartItemRequest true "New quantity"
// @Success 200 {object} models.ApiResponse{data=models.CartView}
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /cart/items/{id} [patch]
func UpdateCartItem(c *gin.Context) {
	sessionID, ok := respond.Session(c)
	if !ok {
		return
	}

	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid cart item ID"))
		return
	}

	var req models.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	carts := services.GetStorefront().Carts
	if err := carts.UpdateQuantity(ctx, sessionID, itemID, req.Quantity); err != nil {
		respond.Error(c, err, "Failed to update cart item")
		return
	}

	view, err := carts.View(ctx, sessionID)
	if err != nil {
		respond.Error(c, err, "Failed to fetch cart")
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Cart item updated successfully", view))
}
