package routes

import (
	"github.com/gin-gonic/gin"

	chatcontroller "github.com/samadhii99/Shopping-Store/controllers/chat"
)

// SetupChatRoutes registers the chat widget endpoints.
func SetupChatRoutes(r *gin.Engine, deps Deps) {
	chat := r.Group("/chat")
	{
		chat.GET("/ws", chatcontroller.ChatWebSocketHandler(deps.Chat)) // websocket transcript
		chat.POST("/message", chatcontroller.SendMessage(deps.Chat))    // request/response fallback
	}
}
