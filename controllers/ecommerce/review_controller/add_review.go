package review_controller

import (
	"net/http"

	"github.com/devkeshravani/engagewise-commerce-76/config"
	"github.com/devkeshravani/engagewise-commerce-76/controllers/ecommerce/respond"
	"github.com/devkeshravani/engagewise-commerce-76/middleware"
	"github.com/devkeshravani/engagewise-commerce-76/models"
	"github.com/devkeshravani/engagewise-commerce-76/services"
	"github.com/gin-gonic/gin"
)

// AddReview godoc
// @Summary Submit a product review
// @Description Records a review. The author is required and the rating must be between 1 and 5.
// @Tags store
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param review body models.AddReviewRequest true "Review"
// @Success 201 {object} models.ApiResponse{data=models.Review}
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /store/products/{id}/reviews [post]
func AddReview(c *gin.Context) {
	var req models.AddReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	review, err := services.GetStorefront().Reviews.Add(ctx, middleware.SessionID(c), c.Param("id"), req)
	if err != nil {
		respond.Error(c, err, "Failed to submit review")
		return
	}
	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Review submitted successfully", review))
}
