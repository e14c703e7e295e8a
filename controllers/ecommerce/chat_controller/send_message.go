package chat_controller

import (
	"net/http"

	"github.com/devkeshravani/engagewise-commerce-76/config"
	"github.com/devkeshravani/engagewise-commerce-76/controllers/ecommerce/respond"
	"github.com/devkeshravani/engagewise-commerce-76/models"
	"github.com/devkeshravani/engagewise-commerce-76/services"
	"github.com/gin-gonic/gin"
)

// SendMessage godoc
// @Summary Send a message to the shopping assistant
// @Description Records the message, resolves it to an action and schedules the reply. Cart and wishlist actions are carried out on the server; navigation, scrolling and color changes are returned for the client to perform.
// @Tags chat
// @Accept json
// @Produce json
// @Param X-Session-ID header string false "Shopper session id"
// @Param message body models.SendChatMessageRequest true "Message and the page it was sent from"
// @Success 200 {object} models.ApiResponse{data=models.ChatReply}
// @Failure 400 {object} models.ApiResponse
// @Failure 409 {object} models.ApiResponse
// @Router /chat/messages [post]
func SendMessage(c *gin.Context) {
	sessionID, ok := respond.Session(c)
	if !ok {
		return
	}

	var req models.SendChatMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	reply, err := services.GetStorefront().Chat.Send(ctx, sessionID, req)
	if err != nil {
		respond.Error(c, err, "Failed to process message")
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Message processed", reply))
}
