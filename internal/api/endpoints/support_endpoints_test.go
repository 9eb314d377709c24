package endpoints

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"support-desk-backend/internal/api"
	"support-desk-backend/internal/assist"
	"support-desk-backend/internal/dto"
	"support-desk-backend/internal/model"
	"support-desk-backend/internal/queue"
	"support-desk-backend/internal/service/support"
	"support-desk-backend/internal/store"
)

type scriptedGenerator struct {
	text string
	err  error
}

func (g *scriptedGenerator) Generate(ctx context.Context, req assist.Request) (string, error) {
	return g.text, g.err
}

func setupTestHandler(t *testing.T, gen assist.Generator) (http.Handler, *store.MemoryStore) {
	t.Helper()

	st := store.NewMemoryStore()
	assistant := assist.NewGemini(gen, assist.Models{Reply: "reply", Sentiment: "sentiment", Category: "category"}, time.Second)
	svc := support.New(st, assistant)

	queueManager := queue.NewRequestQueueManager("test", 10, 2)
	t.Cleanup(queueManager.Shutdown)
	server := api.NewAPIServer(api.ServerConfig{ListenAddr: ":0", Registry: prometheus.NewRegistry()}, queueManager, svc, nil)

	utils := NewUtilsEndpoints(svc)
	customers := NewCustomerEndpoints(svc, "/api")
	conversations := NewConversationEndpoints(svc, nil, "/api")
	workflows := NewWorkflowEndpoints(svc, "/api")
	tickets := NewTicketEndpoints(svc, "/api")
	integrations := NewIntegrationEndpoints(svc, "/api")
	transcripts := NewTranscriptEndpoints(svc, "/api")

	mux := http.NewServeMux()
	mux.HandleFunc("/api/health", server.MakeHTTPHandleFunc(utils.Health))
	mux.HandleFunc("/api/analytics", server.MakeHTTPHandleFunc(utils.Analytics))
	mux.HandleFunc("/api/customers", server.MakeHTTPHandleFunc(customers.Customers))
	mux.HandleFunc("/api/customers/", server.MakeHTTPHandleFunc(customers.Customer))
	mux.HandleFunc("/api/conversations", server.MakeHTTPHandleFunc(conversations.Conversations))
	mux.HandleFunc("/api/conversations/", server.MakeHTTPHandleFunc(conversations.Conversation))
	mux.HandleFunc("/api/ws/dashboard", server.MakeHTTPHandleFunc(conversations.DashboardWebsocket))
	mux.HandleFunc("/api/workflows", server.MakeHTTPHandleFunc(workflows.Workflows))
	mux.HandleFunc("/api/workflows/", server.MakeHTTPHandleFunc(workflows.Workflow))
	mux.HandleFunc("/api/tickets", server.MakeHTTPHandleFunc(tickets.Tickets))
	mux.HandleFunc("/api/tickets/", server.MakeHTTPHandleFunc(tickets.Ticket))
	mux.HandleFunc("/api/integrations", server.MakeHTTPHandleFunc(integrations.Integrations))
	mux.HandleFunc("/api/integrations/", server.MakeHTTPHandleFunc(integrations.Integration))
	mux.HandleFunc("/api/transcripts", server.MakeHTTPHandleFunc(transcripts.Transcripts))
	mux.HandleFunc("/api/transcripts/", server.MakeHTTPHandleFunc(transcripts.Transcript))

	return mux, st
}

func doJSON(t *testing.T, handler http.Handler, method, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	var body *bytes.Reader
	switch p := payload.(type) {
	case nil:
		body = bytes.NewReader(nil)
	case string:
		body = bytes.NewReader([]byte(p))
	default:
		raw, err := json.Marshal(p)
		if err != nil {
			t.Fatalf("marshal payload: %v", err)
		}
		body = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.NewDecoder(rec.Body).Decode(v); err != nil {
		t.Fatalf("decode response: %v", err)
	}
}

func createConversation(t *testing.T, st *store.MemoryStore) model.Conversation {
	t.Helper()
	customer := st.CreateCustomer(model.Customer{Name: "Sarah", Email: "sarah@example.com"})
	return st.CreateConversation(model.Conversation{CustomerID: customer.ID, Subject: "Billing", Status: model.ConversationStatusOpen})
}

func TestPostCustomerMessageWithAIFailure(t *testing.T) {
	handler, st := setupTestHandler(t, &scriptedGenerator{err: errors.New("model unavailable")})
	conv := createConversation(t, st)

	rec := doJSON(t, handler, http.MethodPost, "/api/conversations/"+conv.ID+"/messages", dto.PostMessageRequest{Sender: "customer", Content: "Where is my refund?"})
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var raw map[string]json.RawMessage
	decodeBody(t, rec, &raw)
	if _, ok := raw["userMessage"]; !ok {
		t.Fatal("expected userMessage")
	}
	if _, ok := raw["aiMessage"]; ok {
		t.Fatal("aiMessage must be absent when the draft fails")
	}
	if n := len(st.ListMessages(conv.ID)); n != 1 {
		t.Fatalf("expected only the customer message stored, got %d", n)
	}
}

func TestPostCustomerMessageWithAIReply(t *testing.T) {
	handler, st := setupTestHandler(t, &scriptedGenerator{text: "We are on it."})
	conv := createConversation(t, st)

	rec := doJSON(t, handler, http.MethodPost, "/api/conversations/"+conv.ID+"/messages", dto.PostMessageRequest{Sender: "customer", Content: "Hello"})
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", rec.Code)
	}

	var resp dto.PostMessageResponse
	decodeBody(t, rec, &resp)
	if resp.AIMessage == nil || resp.AIMessage.Content != "We are on it." || resp.AIMessage.Sender != model.SenderAI {
		t.Fatalf("unexpected ai message %+v", resp.AIMessage)
	}

	rec = doJSON(t, handler, http.MethodGet, "/api/conversations/"+conv.ID+"/messages", nil)
	var msgs []model.Message
	decodeBody(t, rec, &msgs)
	if len(msgs) != 2 || msgs[0].Sender != model.SenderCustomer || msgs[1].Sender != model.SenderAI {
		t.Fatalf("unexpected messages %+v", msgs)
	}
}

func TestListMessagesUnknownConversation(t *testing.T) {
	handler, _ := setupTestHandler(t, &scriptedGenerator{})

	rec := doJSON(t, handler, http.MethodGet, "/api/conversations/nope/messages", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if body := strings.TrimSpace(rec.Body.String()); body != "[]" {
		t.Fatalf("expected empty list, got %s", body)
	}
}

func TestCustomerNotFound(t *testing.T) {
	handler, _ := setupTestHandler(t, &scriptedGenerator{})

	rec := doJSON(t, handler, http.MethodGet, "/api/customers/missing", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", rec.Code)
	}
	var resp api.ApiError
	decodeBody(t, rec, &resp)
	if resp.Error != "customer not found" {
		t.Fatalf("unexpected message %q", resp.Error)
	}
}

func TestCreateCustomerValidation(t *testing.T) {
	handler, st := setupTestHandler(t, &scriptedGenerator{})

	rec := doJSON(t, handler, http.MethodPost, "/api/customers", map[string]any{"name": "Ann", "email": "nope"})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
	var resp api.ApiError
	decodeBody(t, rec, &resp)
	if len(resp.Fields) != 1 || resp.Fields[0].Field != "email" {
		t.Fatalf("unexpected fields %+v", resp.Fields)
	}
	if n := len(st.ListCustomers()); n != 0 {
		t.Fatalf("invalid customer was stored")
	}
}

func TestCreateAndGetCustomer(t *testing.T) {
	handler, _ := setupTestHandler(t, &scriptedGenerator{})

	rec := doJSON(t, handler, http.MethodPost, "/api/customers", dto.CreateCustomerRequest{Name: "Ann", Email: "ann@example.com"})
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", rec.Code)
	}
	var created model.Customer
	decodeBody(t, rec, &created)
	if created.ID == "" || created.Tags == nil {
		t.Fatalf("unexpected customer %+v", created)
	}

	rec = doJSON(t, handler, http.MethodGet, "/api/customers/"+created.ID, nil)
	var got model.Customer
	decodeBody(t, rec, &got)
	if got.ID != created.ID || got.Email != "ann@example.com" {
		t.Fatalf("round trip mismatch %+v", got)
	}
}

func TestMalformedJSON(t *testing.T) {
	handler, _ := setupTestHandler(t, &scriptedGenerator{})

	rec := doJSON(t, handler, http.MethodPost, "/api/tickets", "{not json")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}

func TestRoutingErrors(t *testing.T) {
	handler, _ := setupTestHandler(t, &scriptedGenerator{})

	cases := []struct {
		method string
		path   string
		want   int
	}{
		{http.MethodDelete, "/api/customers", http.StatusMethodNotAllowed},
		{http.MethodPut, "/api/analytics", http.StatusMethodNotAllowed},
		{http.MethodGet, "/api/conversations/c/unknown", http.StatusNotFound},
		{http.MethodGet, "/api/workflows/w/executions", http.StatusMethodNotAllowed},
		{http.MethodGet, "/api/tickets/a/b", http.StatusNotFound},
		{http.MethodGet, "/api/integrations/", http.StatusNotFound},
		{http.MethodGet, "/api/ws/dashboard", http.StatusServiceUnavailable},
	}
	for _, tc := range cases {
		rec := doJSON(t, handler, tc.method, tc.path, nil)
		if rec.Code != tc.want {
			t.Fatalf("%s %s: expected %d, got %d", tc.method, tc.path, tc.want, rec.Code)
		}
	}
}

func TestHealth(t *testing.T) {
	handler, _ := setupTestHandler(t, &scriptedGenerator{})

	rec := doJSON(t, handler, http.MethodGet, "/api/health", nil)
	if rec.Code != http.StatusOK || strings.TrimSpace(rec.Body.String()) != "{}" {
		t.Fatalf("unexpected health response %d %s", rec.Code, rec.Body.String())
	}
}

func TestCreateTicketCategorized(t *testing.T) {
	handler, _ := setupTestHandler(t, &scriptedGenerator{text: " Technical \n"})

	rec := doJSON(t, handler, http.MethodPost, "/api/tickets", dto.CreateTicketRequest{CustomerID: "c1", Subject: "App crash", Description: "It crashes on start"})
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", rec.Code)
	}
	var ticket model.Ticket
	decodeBody(t, rec, &ticket)
	if ticket.Category != model.CategoryTechnical {
		t.Fatalf("expected technical, got %q", ticket.Category)
	}
}

func TestCreateTicketCategoryFallback(t *testing.T) {
	handler, _ := setupTestHandler(t, &scriptedGenerator{err: errors.New("boom")})

	rec := doJSON(t, handler, http.MethodPost, "/api/tickets", dto.CreateTicketRequest{CustomerID: "c1", Subject: "s", Description: "d"})
	var ticket model.Ticket
	decodeBody(t, rec, &ticket)
	if ticket.Category != model.CategoryGeneral {
		t.Fatalf("expected general, got %q", ticket.Category)
	}
}

func TestWorkflowCountersForced(t *testing.T) {
	handler, _ := setupTestHandler(t, &scriptedGenerator{})

	rec := doJSON(t, handler, http.MethodPost, "/api/workflows", map[string]any{
		"name":           "Refund",
		"trigger":        "refund_request",
		"actions":        []string{"validate_request"},
		"successRate":    99,
		"executionCount": 12,
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", rec.Code)
	}
	var wf model.Workflow
	decodeBody(t, rec, &wf)
	if wf.SuccessRate != 0 || wf.ExecutionCount != 0 {
		t.Fatalf("counters not reset: %+v", wf)
	}

	rec = doJSON(t, handler, http.MethodPost, "/api/workflows/"+wf.ID+"/executions", map[string]bool{"succeeded": false})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	decodeBody(t, rec, &wf)
	if wf.ExecutionCount != 1 || wf.SuccessRate != 0 {
		t.Fatalf("unexpected counters %+v", wf)
	}
}

func TestPatchIntegrationLastSync(t *testing.T) {
	handler, st := setupTestHandler(t, &scriptedGenerator{})
	integration := st.CreateIntegration(model.Integration{Name: "Stripe", Type: model.IntegrationStripe, Status: model.IntegrationDisconnected})

	rec := doJSON(t, handler, http.MethodPatch, "/api/integrations/"+integration.ID, map[string]string{"status": "error"})
	var got model.Integration
	decodeBody(t, rec, &got)
	if got.LastSync != nil {
		t.Fatalf("lastSync changed on non-connected status: %v", got.LastSync)
	}

	before := time.Now().Add(-time.Millisecond)
	rec = doJSON(t, handler, http.MethodPatch, "/api/integrations/"+integration.ID, map[string]string{"status": "connected"})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	decodeBody(t, rec, &got)
	if got.LastSync == nil || got.LastSync.Before(before) {
		t.Fatalf("lastSync not refreshed: %v", got.LastSync)
	}

	rec = doJSON(t, handler, http.MethodPatch, "/api/integrations/missing", map[string]string{"status": "connected"})
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", rec.Code)
	}
}

func TestPatchCustomer(t *testing.T) {
	handler, st := setupTestHandler(t, &scriptedGenerator{})
	rating := 3.0
	customer := st.CreateCustomer(model.Customer{Name: "Ann", Email: "ann@example.com", SatisfactionRating: &rating, Tags: []string{"trial"}})

	rec := doJSON(t, handler, http.MethodPatch, "/api/customers/"+customer.ID, map[string]any{"tags": []string{"vip"}, "satisfactionRating": 5})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var got model.Customer
	decodeBody(t, rec, &got)
	if got.Name != "Ann" || got.Email != "ann@example.com" || len(got.Tags) != 1 || got.Tags[0] != "vip" {
		t.Fatalf("unexpected customer %+v", got)
	}
	if got.SatisfactionRating == nil || *got.SatisfactionRating != 5 {
		t.Fatalf("rating not updated: %v", got.SatisfactionRating)
	}

	rec = doJSON(t, handler, http.MethodPatch, "/api/customers/"+customer.ID, map[string]any{"satisfactionRating": 9})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
	rec = doJSON(t, handler, http.MethodPatch, "/api/customers/missing", map[string]string{"name": "Bo"})
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", rec.Code)
	}
}

func TestPatchConversation(t *testing.T) {
	handler, st := setupTestHandler(t, &scriptedGenerator{})
	conv := createConversation(t, st)

	rec := doJSON(t, handler, http.MethodPatch, "/api/conversations/"+conv.ID, map[string]string{"status": "resolved"})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var got model.Conversation
	decodeBody(t, rec, &got)
	if got.Status != model.ConversationStatusResolved || got.Subject != "Billing" || got.CustomerID != conv.CustomerID {
		t.Fatalf("unexpected conversation %+v", got)
	}
	if got.LastActivity.Before(conv.LastActivity) {
		t.Fatalf("lastActivity went backwards: %v < %v", got.LastActivity, conv.LastActivity)
	}

	rec = doJSON(t, handler, http.MethodPatch, "/api/conversations/missing", map[string]string{"status": "resolved"})
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", rec.Code)
	}
}

func TestPatchWorkflow(t *testing.T) {
	handler, st := setupTestHandler(t, &scriptedGenerator{})
	wf := st.CreateWorkflow(model.Workflow{Name: "Refund", Trigger: "refund_request", Actions: []string{"validate_request"}, IsActive: true})
	st.RecordWorkflowExecution(wf.ID, true)

	rec := doJSON(t, handler, http.MethodPatch, "/api/workflows/"+wf.ID, map[string]any{
		"isActive":       false,
		"successRate":    10,
		"executionCount": 99,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var got model.Workflow
	decodeBody(t, rec, &got)
	if got.IsActive || got.Name != "Refund" || len(got.Actions) != 1 {
		t.Fatalf("unexpected workflow %+v", got)
	}
	if got.SuccessRate != 100 || got.ExecutionCount != 1 {
		t.Fatalf("counters must not be client-settable: %+v", got)
	}

	rec = doJSON(t, handler, http.MethodPatch, "/api/workflows/missing", map[string]bool{"isActive": true})
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", rec.Code)
	}
}

func TestPatchTicket(t *testing.T) {
	handler, st := setupTestHandler(t, &scriptedGenerator{})
	ticket := st.CreateTicket(model.Ticket{CustomerID: "cust-1", Subject: "Broken", Description: "It broke", Category: model.CategoryTechnical, Status: model.TicketStatusOpen, Priority: model.PriorityLow})

	rec := doJSON(t, handler, http.MethodPatch, "/api/tickets/"+ticket.ID, map[string]string{"status": "resolved", "resolution": "Restarted"})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var got model.Ticket
	decodeBody(t, rec, &got)
	if got.Status != model.TicketStatusResolved || got.Resolution != "Restarted" {
		t.Fatalf("patch not applied: %+v", got)
	}
	if got.Subject != "Broken" || got.Category != model.CategoryTechnical || got.Priority != model.PriorityLow {
		t.Fatalf("patch discarded fields: %+v", got)
	}
	if got.UpdatedAt.Before(ticket.UpdatedAt) {
		t.Fatalf("updatedAt went backwards: %v < %v", got.UpdatedAt, ticket.UpdatedAt)
	}

	rec = doJSON(t, handler, http.MethodPatch, "/api/tickets/"+ticket.ID, map[string]string{"priority": "critical"})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
	rec = doJSON(t, handler, http.MethodPatch, "/api/tickets/missing", map[string]string{"status": "closed"})
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", rec.Code)
	}
}

func TestAnalyticsEndpoint(t *testing.T) {
	handler, st := setupTestHandler(t, &scriptedGenerator{})
	for _, r := range []float64{4, 5, 3} {
		rating := r
		st.CreateCustomer(model.Customer{Name: "c", Email: "c@example.com", SatisfactionRating: &rating})
	}

	rec := doJSON(t, handler, http.MethodGet, "/api/analytics", nil)
	var a model.Analytics
	decodeBody(t, rec, &a)
	if a.AverageRating != 4.0 || a.ResponseTime != store.DefaultResponseTime {
		t.Fatalf("unexpected analytics %+v", a)
	}
}

func TestTranscriptsUnavailable(t *testing.T) {
	handler, st := setupTestHandler(t, &scriptedGenerator{})
	conv := createConversation(t, st)

	rec := doJSON(t, handler, http.MethodGet, "/api/transcripts", nil)
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected status 503, got %d", rec.Code)
	}
	rec = doJSON(t, handler, http.MethodPost, "/api/conversations/"+conv.ID+"/archive", nil)
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected status 503, got %d", rec.Code)
	}
	rec = doJSON(t, handler, http.MethodGet, "/api/transcripts?limit=abc", nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}
