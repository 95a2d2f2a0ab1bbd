package chatcontroller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/samadhii99/Shopping-Store/chatbot"
	"github.com/samadhii99/Shopping-Store/models"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type MessageInput struct {
	Message string `json:"message" binding:"required"`
}

func aiMessage(content string) models.ChatMessage {
	return models.ChatMessage{
		ID:        "ai-" + uuid.NewString(),
		Type:      models.ChatSenderAI,
		Content:   content,
		Timestamp: time.Now().UnixMilli(),
	}
}

// GET /chat/ws
//
// Websocket transcript: the server sends the welcome message on connect,
// then answers every text frame with a ChatMessage reply.
func ChatWebSocketHandler(responder *chatbot.Responder) gin.HandlerFunc {
	return func(c *gin.Context) {
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			return
		}
		defer conn.Close()

		if err := conn.WriteJSON(aiMessage(chatbot.Welcome)); err != nil {
			return
		}

		for {
			_, raw, err := conn.ReadMessage()
			if err != nil {
				return
			}
			reply := aiMessage(responder.Reply(string(raw)))
			if err := conn.WriteJSON(reply); err != nil {
				return
			}
		}
	}
}

// POST /chat/message
//
// Plain request/response fallback for clients without websockets.
func SendMessage(responder *chatbot.Responder) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input MessageInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"reply": aiMessage(responder.Reply(input.Message))})
	}
}
