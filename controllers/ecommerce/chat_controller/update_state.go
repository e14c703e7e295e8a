package chat_controller

import (
	"net/http"

	"github.com/devkeshravani/engagewise-commerce-76/controllers/ecommerce/respond"
	"github.com/devkeshravani/engagewise-commerce-76/models"
	"github.com/devkeshravani/engagewise-commerce-76/services"
	"github.com/gin-gonic/gin"
)

// UpdateState godoc
// @Summary Update the chat window state
// @Description Sets any of open, showing_categories, recording and active_category. Omitted fields are left unchanged.
// @Tags chat
// @Accept json
// @Produce json
// @Param X-Session-ID header string false "Shopper session id"
// @Param state body models.UpdateChatStateRequest true "Facets to change"
// @Success 200 {object} models.ApiResponse{data=models.ChatState}
// @Failure 400 {object} models.ApiResponse
// @Router /chat/state [patch]
func UpdateState(c *gin.Context) {
	sessionID, ok := respond.Session(c)
	if !ok {
		return
	}

	var req models.UpdateChatStateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}

	state, err := services.GetStorefront().Chat.UpdateState(sessionID, req)
	if err != nil {
		respond.Error(c, err, "Failed to update chat state")
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Chat state updated", state))
}
