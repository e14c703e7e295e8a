package chat_controller

import (
	"net/http"

	"github.com/devkeshravani/engagewise-commerce-76/controllers/ecommerce/respond"
	"github.com/devkeshravani/engagewise-commerce-76/models"
	"github.com/devkeshravani/engagewise-commerce-76/services"
	"github.com/gin-gonic/gin"
)

type transcriptResponse struct {
	Messages []models.ChatMessage `json:"messages"`
	State    models.ChatState     `json:"state"`
}

// GetTranscript godoc
// @Summary Get the chat transcript
// @Description Messages so far, including replies that landed after their typing delay, and the window state
// @Tags chat
// @Produce json
// @Param X-Session-ID header string false "Shopper session id"
// @Success 200 {object} models.ApiResponse
// @Router /chat/transcript [get]
func GetTranscript(c *gin.Context) {
	sessionID, ok := respond.Session(c)
	if !ok {
		return
	}

	chat := services.GetStorefront().Chat
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Transcript fetched successfully", transcriptResponse{
		Messages: chat.Transcript(sessionID),
		State:    chat.State(sessionID),
	}))
}
