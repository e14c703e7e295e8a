package product_controller

import (
	"net/http"
	"strconv"

	"github.com/devkeshravani/engagewise-commerce-76/config"
	"github.com/devkeshravani/engagewise-commerce-76/controllers/ecommerce/respond"
	"github.com/devkeshravani/engagewise-commerce-76/models"
	"github.com/devkeshravani/engagewise-commerce-76/services"
	"github.com/gin-gonic/gin"
)

// GetFeaturedProducts godoc
// @Summary Get featured products
// @Description Featured products first, topped up with the rest of the catalog when there are not enough
// @Tags store
// @Produce json
// @Param count query int false "Number of products" default(8)
// @Success 200 {object} models.ApiResponse{data=[]models.StorefrontProductResponse}
// @Failure 500 {object} models.ApiResponse
// @Router /store/products/featured [get]
func GetFeaturedProducts(c *gin.Context) {
	count, err := strconv.Atoi(c.DefaultQuery("count", strconv.Itoa(defaultFeatured)))
	if err != nil || count < 1 || count > maxLimit {
		count = defaultFeatured
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	products, err := services.GetStorefront().Catalog.Featured(ctx, count)
	if err != nil {
		respond.Error(c, err, "Failed to fetch featured products")
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Featured products fetched successfully", products))
}
