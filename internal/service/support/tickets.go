package support

import (
	"context"
	"fmt"

	"support-desk-backend/internal/dto"
	"support-desk-backend/internal/model"
	"support-desk-backend/internal/notify"
)

func (s *Service) ListTickets() []model.Ticket {
	return s.store.ListTickets()
}

func (s *Service) GetTicket(id string) (model.Ticket, error) {
	t, ok := s.store.GetTicket(id)
	if !ok {
		return model.Ticket{}, notFound("ticket")
	}
	return t, nil
}

// CreateTicket asks the assistant for a category when none was given.
// Urgent tickets are announced on connected Slack integrations.
func (s *Service) CreateTicket(ctx context.Context, req dto.CreateTicketRequest) (model.Ticket, error) {
	if err := checkRequest(req); err != nil {
		return model.Ticket{}, err
	}
	ticket := req.ToModel()
	if ticket.Category == "" {
		ticket.Category = s.assistant.CategorizeTicket(ctx, ticket.Description, ticket.Subject)
	}
	ticket = s.store.CreateTicket(ticket)
	s.publish(ctx, EventTicketCreated, ticket, "")

	if ticket.Priority == model.PriorityUrgent {
		s.alertUrgent(ctx, ticket)
	}
	return ticket, nil
}

func (s *Service) UpdateTicket(ctx context.Context, id string, req dto.UpdateTicketRequest) (model.Ticket, error) {
	if err := checkRequest(req); err != nil {
		return model.Ticket{}, err
	}
	t, before, ok := s.store.UpdateTicket(id, req.ToPatch())
	if !ok {
		return model.Ticket{}, notFound("ticket")
	}
	s.publish(ctx, EventTicketUpdated, t, "")

	if t.Priority == model.PriorityUrgent && before.Priority != model.PriorityUrgent {
		s.alertUrgent(ctx, t)
	}
	return t, nil
}

func (s *Service) alertUrgent(ctx context.Context, t model.Ticket) {
	if s.alerter == nil {
		return
	}
	webhooks := notify.SlackWebhooks(s.store.ListIntegrations())
	if len(webhooks) == 0 {
		return
	}
	var customer *model.Customer
	if c, ok := s.store.GetCustomer(t.CustomerID); ok {
		customer = &c
	}
	s.runBackground(ctx, "urgent alert "+t.ID, func(ctx context.Context) error {
		if err := s.alerter.TicketAlert(ctx, webhooks, t, customer); err != nil {
			return fmt.Errorf("ticket %s: %w", t.ID, err)
		}
		return nil
	})
}
