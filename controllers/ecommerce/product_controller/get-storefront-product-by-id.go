package product_controller

import (
	"net/http"

	"github.com/devkeshravani/engagewise-commerce-76/config"
	"github.com/devkeshravani/engagewise-commerce-76/controllers/ecommerce/respond"
	"github.com/devkeshravani/engagewise-commerce-76/middleware"
	"github.com/devkeshravani/engagewise-commerce-76/models"
	"github.com/devkeshravani/engagewise-commerce-76/services"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GetStorefrontProductByID godoc
// @Summary Get single product details for storefront
// @Description Product page payload: the product, its reviews (newest first), the preselected color and size, and whether the shopper saved it
// @Tags store
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.ApiResponse{data=models.StorefrontProductDetail}
// @Failure 404 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /store/products/{id} [get]
func GetStorefrontProductByID(c *gin.Context) {
	productID := c.Param("id")

	ctx, cancel := config.WithTimeout()
	defer cancel()

	sf := services.GetStorefront()
	detail, err := sf.Catalog.Detail(ctx, productID)
	if err != nil {
		respond.Error(c, err, "Failed to fetch product")
		return
	}

	if sessionID := middleware.SessionID(c); sessionID != "" {
		saved, err := sf.Wishlist.Contains(ctx, sessionID, productID)
		if err != nil {
			config.Logger.Warn("⚠️ Could not read wishlist state", zap.String("product_id", productID), zap.Error(err))
		}
		detail.Wishlisted = saved
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Product fetched successfully", detail))
}
