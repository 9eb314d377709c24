package router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"

	"support-desk-backend/internal/api"
	"support-desk-backend/internal/assist"
	"support-desk-backend/internal/queue"
	"support-desk-backend/internal/service/support"
	"support-desk-backend/internal/store"
	ws "support-desk-backend/internal/websocket"
)

func newTestServer(t *testing.T) (*httptest.Server, *store.MemoryStore) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	st := store.NewMemoryStore()
	handler := ws.NewHandler(ws.NewHub(), nil)
	handler.Start(ctx)
	svc := support.New(st, assist.Offline(), support.WithNotifier(handler, support.Rooms{
		Dashboard:    ws.DashboardRoom,
		Conversation: ws.ConversationRoom,
	}))

	q := queue.NewRequestQueueManager("test", 10, 2)
	t.Cleanup(q.Shutdown)
	server := api.NewAPIServer(api.ServerConfig{ListenAddr: ":0", Registry: prometheus.NewRegistry()}, q, svc, handler, SupportRoutes("/api")...)

	srv := httptest.NewServer(server.Routes())
	t.Cleanup(srv.Close)
	return srv, st
}

func TestSupportRoutesRegistered(t *testing.T) {
	srv, _ := newTestServer(t)

	for _, path := range []string{
		"/api/health",
		"/api/analytics",
		"/api/customers",
		"/api/conversations",
		"/api/workflows",
		"/api/tickets",
		"/api/integrations",
		"/metrics",
	} {
		res, err := http.Get(srv.URL + path)
		if err != nil {
			t.Fatalf("GET %s: %v", path, err)
		}
		res.Body.Close()
		if res.StatusCode != http.StatusOK {
			t.Fatalf("GET %s: expected 200, got %d", path, res.StatusCode)
		}
	}

	res, err := http.Get(srv.URL + "/api/transcripts")
	if err != nil {
		t.Fatalf("GET transcripts: %v", err)
	}
	res.Body.Close()
	if res.StatusCode != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 without an archive, got %d", res.StatusCode)
	}
}

func TestDashboardWebsocketReceivesEvents(t *testing.T) {
	srv, _ := newTestServer(t)

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/ws/dashboard"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	// The client registers asynchronously; keep creating tickets until one
	// event arrives.
	received := make(chan ws.WSMessage, 1)
	go func() {
		var frame ws.WSMessage
		conn.SetReadDeadline(time.Now().Add(3 * time.Second))
		if err := conn.ReadJSON(&frame); err == nil {
			received <- frame
		}
		close(received)
	}()

	body := `{"customerId":"c1","subject":"Down","description":"Outage","category":"technical"}`
	deadline := time.After(3 * time.Second)
	for {
		res, err := http.Post(srv.URL+"/api/tickets", "application/json", strings.NewReader(body))
		if err != nil {
			t.Fatalf("POST ticket: %v", err)
		}
		res.Body.Close()

		select {
		case frame, ok := <-received:
			if !ok {
				t.Fatal("no event received")
			}
			if frame.Type != support.EventTicketCreated || frame.RoomID != ws.DashboardRoom {
				t.Fatalf("unexpected frame %+v", frame)
			}
			return
		case <-deadline:
			t.Fatal("timed out waiting for event")
		case <-time.After(50 * time.Millisecond):
		}
	}
}

func TestConversationWebsocketUnknownConversation(t *testing.T) {
	srv, _ := newTestServer(t)

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/ws/conversations/missing"
	_, res, err := websocket.DefaultDialer.Dial(url, nil)
	if err == nil {
		t.Fatal("expected dial to fail")
	}
	if res == nil || res.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %+v", res)
	}
}
