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

// RemoveCartItem godoc
// @Summary Remove a cart line
// @Tags cart
// @Produce json
// @Param X-Session-ID header string false "Shopper session id"
// @Param id path string true "Cart line ID"
// @Success 200 {object} models.ApiResponse{data=models.CartView}
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /cart/items/{id} [delete]
func RemoveCartItem(c *gin.Context) {
	sessionID, ok := respond.Session(c)
	if !ok {
		return
	}

	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid cart item ID"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	carts := services.GetStorefront().Carts
	if err := carts.Remove(ctx, sessionID, itemID); err != nil {
		respond.Error(c, err, "Failed to remove cart item")
		return
	}

	view, err := carts.View(ctx, sessionID)
	if err != nil {
		respond.Error(c, err, "Failed to fetch cart")
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Cart item removed successfully", view))
}
