package chat_controller

import (
	"net/http"

	"github.com/devkeshravani/engagewise-commerce-76/models"
	"github.com/devkeshravani/engagewise-commerce-76/services"
	"github.com/gin-gonic/gin"
)

// GetSuggestions godoc
// @Summary Get suggested questions for a page
// @Description Four questions tailored to the page the shopper is on
// @Tags chat
// @Produce json
// @Param path query string false "Current storefront path" default(/)
// @Success 200 {object} models.ApiResponse{data=[]string}
// @Router /chat/suggestions [get]
func GetSuggestions(c *gin.Context) {
	path := c.DefaultQuery("path", "/")
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Suggestions fetched successfully", services.GetStorefront().Chat.Suggestions(path)))
}
