package websocket

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Handler joins clients to rooms and fans events out to them. With a Redis
// client, events are published on Redis and every process delivers what its
// subscriber receives; without one, delivery is local.
type Handler struct {
	hub         *Hub
	redisClient *redis.Client
	now         func() time.Time
}

func NewHandler(h *Hub, rdb *redis.Client) *Handler {
	return &Handler{
		hub:         h,
		redisClient: rdb,
		now:         time.Now,
	}
}

// Start runs the hub and, when Redis is configured, the room subscriber.
// Both stop when ctx is cancelled.
func (h *Handler) Start(ctx context.Context) {
	go h.hub.Run(ctx)
	if h.redisClient != nil {
		go h.subscribe(ctx)
	}
}

func (h *Handler) subscribe(ctx context.Context) {
	pattern := redisChannelPrefix + "*"
	subscriber := h.redisClient.PSubscribe(ctx, pattern)
	defer subscriber.Close()
	log.Printf("websocket: subscribed to redis pattern %s", pattern)

	for msg := range subscriber.Channel() {
		var frame WSMessage
		if err := json.Unmarshal([]byte(msg.Payload), &frame); err != nil {
			log.Printf("websocket: drop malformed redis payload on %s: %v", msg.Channel, err)
			continue
		}
		h.hub.broadcast(&frame)
	}
	log.Printf("websocket: redis subscription closed")
}

// JoinRoom upgrades the request and attaches the connection to roomID.
func (h *Handler) JoinRoom(w http.ResponseWriter, r *http.Request, roomID string) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already written the error response.
		log.Printf("websocket: upgrade for room %s: %v", roomID, err)
		return
	}

	cl := &WSClient{
		Conn:    conn,
		Message: make(chan *WSMessage, 16),
		ID:      uuid.NewString(),
		RoomID:  roomID,
		done:    make(chan struct{}),
	}

	if !h.hub.register(cl) {
		conn.Close()
		return
	}

	go cl.keepAlive()
	go cl.writeMessage()
	go cl.readMessage(h.hub)
}

// Notify sends an event of eventType carrying data to each room. Failures
// are logged; live updates are best-effort.
func (h *Handler) Notify(ctx context.Context, eventType string, data any, rooms ...string) {
	payload, err := json.Marshal(data)
	if err != nil {
		log.Printf("websocket: marshal %s event: %v", eventType, err)
		return
	}
	ts := h.now().Unix()
	for _, room := range rooms {
		frame := &WSMessage{
			Type:      eventType,
			Data:      payload,
			RoomID:    room,
			Timestamp: ts,
		}
		if h.redisClient == nil {
			h.hub.broadcast(frame)
			continue
		}
		if err := publish(ctx, h.redisClient, frame); err != nil {
			log.Printf("websocket: %v", err)
		}
	}
}
