package store

import "support-desk-backend/internal/model"

// Analytics recomputes the dashboard snapshot from the current collections on
// every call.
//
// PendingWorkflows is active workflows minus workflows above the success
// threshold. Inactive high performers make it negative; the dashboard has
// always shown it this way, so the formula is kept as is.
func (s *MemoryStore) Analytics() model.Analytics {
	out := model.Analytics{
		ResponseTime:       s.responseTime,
		CSAT:               s.csat,
		TotalConversations: s.conversations.len(),
	}

	year, month, day := s.now().In(s.location).Date()
	s.tickets.scan(func(t model.Ticket) {
		switch t.Status {
		case model.TicketStatusOpen:
			out.ActiveTickets++
		case model.TicketStatusResolved:
			y, m, d := t.UpdatedAt.In(s.location).Date()
			if y == year && m == month && d == day {
				out.ResolvedToday++
			}
		}
	})

	var sum float64
	var rated int
	s.customers.scan(func(c model.Customer) {
		if c.SatisfactionRating != nil {
			sum += *c.SatisfactionRating
			rated++
		}
	})
	if rated > 0 {
		out.AverageRating = roundTo(sum/float64(rated), 1)
	}

	var active int
	s.workflows.scan(func(w model.Workflow) {
		if w.IsActive {
			active++
		}
		if w.SuccessRate > model.SuccessfulWorkflowThreshold {
			out.SuccessfulWorkflows++
		}
	})
	out.PendingWorkflows = active - out.SuccessfulWorkflows

	return out
}
