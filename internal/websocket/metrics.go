package websocket

import (
	"strings"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	connectionsGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "support_desk_ws_connections",
		Help: "Open websocket connections on this process.",
	})
	roomsGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "support_desk_ws_rooms",
		Help: "Rooms with at least one local client.",
	})
	deliveredTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "support_desk_ws_messages_delivered_total",
		Help: "Event frames queued to local clients.",
	}, []string{"room_kind", "type"})
	droppedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "support_desk_ws_slow_clients_dropped_total",
		Help: "Clients disconnected because their send buffer was full.",
	})
)

func init() {
	prometheus.MustRegister(connectionsGauge, roomsGauge, deliveredTotal, droppedTotal)
}

// roomKind keeps conversation ids out of metric labels.
func roomKind(roomID string) string {
	if strings.HasPrefix(roomID, conversationRoomPrefix) {
		return "conversation"
	}
	return roomID
}

func incConnections() { connectionsGauge.Inc() }

func decConnections() { connectionsGauge.Dec() }

func setRooms(count int) { roomsGauge.Set(float64(count)) }

func addDelivered(message *WSMessage, count int) {
	deliveredTotal.WithLabelValues(roomKind(message.RoomID), message.Type).Add(float64(count))
}

func incDropped() { droppedTotal.Inc() }
