package store

import (
	"testing"
	"time"

	"support-desk-backend/internal/model"
)

func TestAnalyticsEmptyStore(t *testing.T) {
	s, _ := newTestStore(t)
	got := s.Analytics()
	if got.ActiveTickets != 0 || got.TotalConversations != 0 || got.ResolvedToday != 0 {
		t.Fatalf("unexpected counts %+v", got)
	}
	if got.AverageRating != 0 {
		t.Fatalf("expected 0 rating, got %v", got.AverageRating)
	}
	if got.ResponseTime != DefaultResponseTime || got.CSAT != DefaultCSAT {
		t.Fatalf("unexpected placeholders %q %v", got.ResponseTime, got.CSAT)
	}
}

func TestAnalyticsCounts(t *testing.T) {
	s, clock := newTestStore(t)
	now := clock.Now()

	for _, rating := range []float64{4, 5, 3} {
		r := rating
		s.CreateCustomer(model.Customer{Name: "c", SatisfactionRating: &r})
	}
	s.CreateCustomer(model.Customer{Name: "unrated"})

	s.CreateConversation(model.Conversation{Subject: "a"})
	s.CreateConversation(model.Conversation{Subject: "b"})

	s.CreateTicket(model.Ticket{Status: model.TicketStatusOpen})
	s.CreateTicket(model.Ticket{Status: model.TicketStatusOpen})
	s.CreateTicket(model.Ticket{Status: model.TicketStatusInProgress})
	s.CreateTicket(model.Ticket{Status: model.TicketStatusResolved})

	// Resolved yesterday must not count.
	clock.Set(now.Add(-24 * time.Hour))
	s.CreateTicket(model.Ticket{Status: model.TicketStatusResolved})
	clock.Set(now)

	got := s.Analytics()
	if got.ActiveTickets != 2 {
		t.Fatalf("expected 2 active tickets, got %d", got.ActiveTickets)
	}
	if got.ResolvedToday != 1 {
		t.Fatalf("expected 1 resolved today, got %d", got.ResolvedToday)
	}
	if got.TotalConversations != 2 {
		t.Fatalf("expected 2 conversations, got %d", got.TotalConversations)
	}
	if got.AverageRating != 4.0 {
		t.Fatalf("expected 4.0, got %v", got.AverageRating)
	}
}

func TestAnalyticsAverageRatingRounds(t *testing.T) {
	s, _ := newTestStore(t)
	for _, rating := range []float64{4, 4, 5} {
		r := rating
		s.CreateCustomer(model.Customer{SatisfactionRating: &r})
	}
	if got := s.Analytics().AverageRating; got != 4.3 {
		t.Fatalf("expected 4.3, got %v", got)
	}
}

func TestAnalyticsWorkflowCounts(t *testing.T) {
	s, _ := newTestStore(t)
	s.workflows.put(model.Workflow{ID: "wf-a", IsActive: true, SuccessRate: 92})
	s.workflows.put(model.Workflow{ID: "wf-b", IsActive: true, SuccessRate: 80})
	s.workflows.put(model.Workflow{ID: "wf-c", IsActive: false, SuccessRate: 95})
	s.workflows.put(model.Workflow{ID: "wf-d", IsActive: false, SuccessRate: 99})

	got := s.Analytics()
	if got.SuccessfulWorkflows != 3 {
		t.Fatalf("expected 3 successful, got %d", got.SuccessfulWorkflows)
	}
	// 2 active minus 3 successful.
	if got.PendingWorkflows != -1 {
		t.Fatalf("expected -1 pending, got %d", got.PendingWorkflows)
	}
}

func TestAnalyticsPlaceholderOverride(t *testing.T) {
	s := NewMemoryStore(WithPlaceholderMetrics("45s", 4.8))
	got := s.Analytics()
	if got.ResponseTime != "45s" || got.CSAT != 4.8 {
		t.Fatalf("unexpected placeholders %q %v", got.ResponseTime, got.CSAT)
	}
}
