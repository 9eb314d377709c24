package websocket

import "encoding/json"

const (
	// DashboardRoom receives every event.
	DashboardRoom = "dashboard"

	conversationRoomPrefix = "conversation:"
	redisChannelPrefix     = "support-desk:room:"
)

// ConversationRoom names the room carrying events for one conversation.
func ConversationRoom(conversationID string) string {
	return conversationRoomPrefix + conversationID
}

type Room struct {
	ID      string
	Clients map[string]*WSClient
}

// WSMessage is the frame written to clients and the payload published on
// Redis.
type WSMessage struct {
	Type      string          `json:"type"`
	Data      json.RawMessage `json:"data"`
	RoomID    string          `json:"roomId"`
	Timestamp int64           `json:"timestamp"`
}
