package category_controller

import (
	"net/http"

	"github.com/devkeshravani/engagewise-commerce-76/config"
	"github.com/devkeshravani/engagewise-commerce-76/controllers/ecommerce/respond"
	"github.com/devkeshravani/engagewise-commerce-76/models"
	"github.com/devkeshravani/engagewise-commerce-76/services"
	"github.com/gin-gonic/gin"
)

// GetCategories godoc
// @Summary Get storefront categories
// @Description Category registry in display order with subcategories and product counts
// @Tags store
// @Produce json
// @Success 200 {object} models.ApiResponse{data=[]models.CategoryWithProducts}
// @Failure 500 {object} models.ApiResponse
// @Router /store/categories [get]
func GetCategories(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	categories, err := services.GetStorefront().Catalog.Categories(ctx)
	if err != nil {
		respond.Error(c, err, "Failed to fetch categories")
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Categories fetched successfully", categories))
}
