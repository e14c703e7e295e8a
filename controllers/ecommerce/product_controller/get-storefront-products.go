package product_controller

import (
	"net/http"

	"github.com/devkeshravani/engagewise-commerce-76/catalog"
	"github.com/devkeshravani/engagewise-commerce-76/config"
	"github.com/devkeshravani/engagewise-commerce-76/controllers/ecommerce/respond"
	"github.com/devkeshravani/engagewise-commerce-76/models"
	"github.com/devkeshravani/engagewise-commerce-76/services"
	"github.com/gin-gonic/gin"
)

// GetStorefrontProducts godoc
// @Summary Get storefront products
// @Description Filtered, sorted and paginated product grid. Filters combine with AND; color, size and tag match any of the given values.
// @Tags store
// @Produce json
// @Param search query string false "Search term (name, description, category, subcategory, tags)"
// @Param category query string false "Category slug or name"
// @Param subcategory query string false "Subcategory name"
// @Param price query string false "Price band, e.g. 25-50 or 200 for 200 and up"
// @Param color query []string false "Colors (repeatable or comma separated)"
// @Param size query []string false "Sizes (repeatable or comma separated)"
// @Param tag query []string false "Tags (repeatable or comma separated)"
// @Param sort query string false "Sort key" Enums(featured, price-asc, price-desc, newest, rating-desc) default(featured)
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(12)
// @Success 200 {object} models.ApiResponse{data=models.StorefrontProductList}
// @Failure 400 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /store/products [get]
func GetStorefrontProducts(c *gin.Context) {
	state, err := catalog.ParseFilterState(c.Request.URL.Query())
	if err != nil {
		respond.Error(c, err, "Invalid filters")
		return
	}
	page, limit := parsePagination(c)

	ctx, cancel := config.WithTimeout()
	defer cancel()

	list, err := services.GetStorefront().Catalog.List(ctx, state)
	if err != nil {
		respond.Error(c, err, "Failed to fetch products")
		return
	}

	var meta *models.Pagination
	list.Products, meta = paginate(list.Products, page, limit)

	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Products fetched successfully", list, meta))
}
