package models

const (
	ChatSenderUser = "user"
	ChatSenderAI   = "ai"
)

// ChatMessage is one entry in the chat widget transcript. Timestamp is unix
// milliseconds, matching what the client renders.
type ChatMessage struct {
	ID        string `json:"id"`
	Type      string `json:"type"` // "user" or "ai"
	Content   string `json:"content"`
	Timestamp int64  `json:"timestamp"`
}
