package cart_controller

import (
	"net/http"

	"github.com/devkeshravani/engagewise-commerce-76/config"
	"github.com/devkeshravani/engagewise-commerce-76/controllers/ecommerce/respond"
	"github.com/devkeshravani/engagewise-commerce-76/models"
	"github.com/devkeshravani/engagewise-commerce-76/services"
	"github.com/gin-gonic/gin"
)

// GetCart godoc
// @Summary Get the shopper's cart
// @Description Cart lines joined with their products, line subtotals and the cart subtotal
// @Tags cart
// @Produce json
// @Param X-Session-ID header string false "Shopper session id (falls back to the session cookie)"
// @Success 200 {object} models.ApiResponse{data=models.CartView}
// @Failure 500 {object} models.ApiResponse
// @Router /cart [get]
func GetCart(c *gin.Context) {
	sessionID, ok := respond.Session(c)
	if !ok {
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	view, err := services.GetStorefront().Carts.View(ctx, sessionID)
	if err != nil {
		respond.Error(c, err, "Failed to fetch cart")
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Cart fetched successfully", view))
}
