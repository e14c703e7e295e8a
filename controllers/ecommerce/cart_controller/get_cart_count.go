package cart_controller

import (
	"net/http"

	"github.com/devkeshravani/engagewise-commerce-76/config"
	"github.com/devkeshravani/engagewise-commerce-76/controllers/ecommerce/respond"
	"github.com/devkeshravani/engagewise-commerce-76/models"
	"github.com/devkeshravani/engagewise-commerce-76/services"
	"github.com/gin-gonic/gin"
)

// GetCartCount godoc
// @Summary Get the cart badge count
// @Description Total number of units in the cart
// @Tags cart
// @Produce json
// @Param X-Session-ID header string false "Shopper session id"
// @Success 200 {object} models.ApiResponse{data=int}
// @Router /cart/count [get]
func GetCartCount(c *gin.Context) {
	sessionID, ok := respond.Session(c)
	if !ok {
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	count, err := services.GetStorefront().Carts.Count(ctx, sessionID)
	if err != nil {
		respond.Error(c, err, "Failed to count cart items")
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Cart count fetched successfully", count))
}
