package websocket

import (
	"context"
	"sync"
)

// Hub owns room membership. Register, Unregister and Broadcast are served
// by Run; the room map is guarded so counts can be read from elsewhere.
type Hub struct {
	mu         sync.RWMutex
	rooms      map[string]*Room
	Register   chan *WSClient
	Unregister chan *WSClient
	Broadcast  chan *WSMessage
	stopped    chan struct{}
}

func NewHub() *Hub {
	return &Hub{
		rooms:      make(map[string]*Room),
		Register:   make(chan *WSClient),
		Unregister: make(chan *WSClient),
		Broadcast:  make(chan *WSMessage, 64),
		stopped:    make(chan struct{}),
	}
}

func (h *Hub) Run(ctx context.Context) {
	defer close(h.stopped)
	for {
		select {
		case <-ctx.Done():
			h.closeAll()
			return

		case client := <-h.Register:
			h.mu.Lock()
			room, ok := h.rooms[client.RoomID]
			if !ok {
				room = &Room{ID: client.RoomID, Clients: make(map[string]*WSClient)}
				h.rooms[client.RoomID] = room
			}
			room.Clients[client.ID] = client
			setRooms(len(h.rooms))
			h.mu.Unlock()
			incConnections()

		case client := <-h.Unregister:
			h.mu.Lock()
			h.removeLocked(client)
			h.mu.Unlock()

		case message := <-h.Broadcast:
			h.deliver(message)
		}
	}
}

func (h *Hub) deliver(message *WSMessage) {
	h.mu.Lock()
	defer h.mu.Unlock()
	room, ok := h.rooms[message.RoomID]
	if !ok {
		return
	}
	delivered := 0
	for _, client := range room.Clients {
		select {
		case client.Message <- message:
			delivered++
		default:
			// Slow consumer; drop it rather than stall the room.
			h.removeLocked(client)
			incDropped()
		}
	}
	if delivered > 0 {
		addDelivered(message, delivered)
	}
}

func (h *Hub) removeLocked(client *WSClient) {
	room, ok := h.rooms[client.RoomID]
	if !ok {
		return
	}
	if current, ok := room.Clients[client.ID]; !ok || current != client {
		return
	}
	delete(room.Clients, client.ID)
	close(client.Message)
	decConnections()
	if len(room.Clients) == 0 {
		delete(h.rooms, room.ID)
	}
	setRooms(len(h.rooms))
}

func (h *Hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, room := range h.rooms {
		for _, client := range room.Clients {
			h.removeLocked(client)
		}
	}
}

// ClientCount reports how many clients are joined to roomID.
func (h *Hub) ClientCount(roomID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if room, ok := h.rooms[roomID]; ok {
		return len(room.Clients)
	}
	return 0
}

func (h *Hub) register(client *WSClient) bool {
	select {
	case h.Register <- client:
		return true
	case <-h.stopped:
		return false
	}
}

func (h *Hub) unregister(client *WSClient) {
	select {
	case h.Unregister <- client:
	case <-h.stopped:
	}
}

func (h *Hub) broadcast(message *WSMessage) {
	select {
	case h.Broadcast <- message:
	case <-h.stopped:
	}
}
