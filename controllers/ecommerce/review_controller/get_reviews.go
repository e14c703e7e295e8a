package review_controller

import (
	"net/http"

	"github.com/devkeshravani/engagewise-commerce-76/config"
	"github.com/devkeshravani/engagewise-commerce-76/controllers/ecommerce/respond"
	"github.com/devkeshravani/engagewise-commerce-76/models"
	"github.com/devkeshravani/engagewise-commerce-76/services"
	"github.com/gin-gonic/gin"
)

// GetReviews godoc
// @Summary List product reviews
// @Description Reviews of a product, newest first
// @Tags store
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.ApiResponse{data=[]models.Review}
// @Failure 404 {object} models.ApiResponse
// @Router /store/products/{id}/reviews [get]
func GetReviews(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	reviews, err := services.GetStorefront().Reviews.List(ctx, c.Param("id"))
	if err != nil {
		respond.Error(c, err, "Failed to fetch reviews")
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Reviews fetched successfully", reviews))
}
