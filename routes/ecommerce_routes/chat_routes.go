package ecommerce_routes

import (
	"github.com/devkeshravani/engagewise-commerce-76/controllers/ecommerce/chat_controller"
	"github.com/gin-gonic/gin"
)

// SetupChatRoutes registers the shopping assistant routes.
func SetupChatRoutes(router *gin.RouterGroup, limit gin.HandlerFunc) {
	chat := router.Group("/chat")
	{
		chat.POST("/messages", limit, chat_controller.SendMessage)
		chat.GET("/transcript", chat_controller.GetTranscript)
		chat.GET("/menu", chat_controller.GetMenu)
		chat.GET("/suggestions", chat_controller.GetSuggestions)
		chat.PATCH("/state", chat_controller.UpdateState)
		chat.DELETE("", chat_controller.EndChat)
	}
}
