package chat_controller

import (
	"net/http"

	"github.com/devkeshravani/engagewise-commerce-76/models"
	"github.com/devkeshravani/engagewise-commerce-76/services"
	"github.com/gin-gonic/gin"
)

// GetMenu godoc
// @Summary Get the assistant's category menu
// @Tags chat
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Router /chat/menu [get]
func GetMenu(c *gin.Context) {
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Menu fetched successfully", services.GetStorefront().Chat.Menu()))
}
