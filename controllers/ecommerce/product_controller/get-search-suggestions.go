package product_controller

import (
	"net/http"

	"github.com/devkeshravani/engagewise-commerce-76/config"
	"github.com/devkeshravani/engagewise-commerce-76/controllers/ecommerce/respond"
	"github.com/devkeshravani/engagewise-commerce-76/models"
	"github.com/devkeshravani/engagewise-commerce-76/services"
	"github.com/gin-gonic/gin"
)

// GetSearchSuggestions godoc
// @Summary Search-as-you-type suggestions
// @Description Up to five products matching the query. Queries shorter than two characters return an empty list.
// @Tags store
// @Produce json
// @Param q query string true "Partial search term"
// @Success 200 {object} models.ApiResponse{data=[]models.SearchSuggestion}
// @Failure 500 {object} models.ApiResponse
// @Router /store/search/suggestions [get]
func GetSearchSuggestions(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	suggestions, err := services.GetStorefront().Catalog.Suggestions(ctx, c.Query("q"))
	if err != nil {
		respond.Error(c, err, "Failed to fetch suggestions")
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Suggestions fetched successfully", suggestions))
}
