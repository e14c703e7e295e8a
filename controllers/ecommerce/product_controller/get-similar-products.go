package product_controller

import (
	"net/http"

	"github.com/devkeshravani/engagewise-commerce-76/config"
	"github.com/devkeshravani/engagewise-commerce-76/controllers/ecommerce/respond"
	"github.com/devkeshravani/engagewise-commerce-76/models"
	"github.com/devkeshravani/engagewise-commerce-76/services"
	"github.com/gin-gonic/gin"
)

// GetSimilarProducts godoc
// @Summary Get similar products
// @Description Up to four other products from the same category
// @Tags store
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.ApiResponse{data=[]models.StorefrontProductResponse}
// @Failure 404 {object} models.ApiResponse
// @Router /store/products/{id}/similar [get]
func GetSimilarProducts(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	products, err := services.GetStorefront().Catalog.Similar(ctx, c.Param("id"))
	if err != nil {
		respond.Error(c, err, "Failed to fetch similar products")
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Similar products fetched successfully", products))
}
