package chat_controller

import (
	"net/http"

	"github.com/devkeshravani/engagewise-commerce-76/controllers/ecommerce/respond"
	"github.com/devkeshravani/engagewise-commerce-76/models"
	"github.com/devkeshravani/engagewise-commerce-76/services"
	"github.com/gin-gonic/gin"
)

// EndChat godoc
// @Summary End the conversation
// @Description Discards the transcript and cancels any reply still waiting on its typing delay
// @Tags chat
// @Produce json
// @Param X-Session-ID header string false "Shopper session id"
// @Success 200 {object} models.ApiResponse
// @Router /chat [delete]
func EndChat(c *gin.Context) {
	sessionID, ok := respond.Session(c)
	if !ok {
		return
	}
	services.GetStorefront().Chat.End(sessionID)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Conversation ended", nil))
}
